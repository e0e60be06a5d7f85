package handlers

import (
	"net/http"

	request "erp_vendas/internal/adapter/http/dto/request"
	response "erp_vendas/internal/adapter/http/dto/response"
	"erp_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	usecase usecase.IGoalUseCase
}

func NewGoalHandler(uc usecase.IGoalUseCase) *GoalHandler {
	return &GoalHandler{usecase: uc}
}

// List godoc
// @Summary List goals
// @Tags metas
// @Produce json
// @Success 200 {array} response.GoalResponse
// @Security BearerAuth
// @Router /metas [get]
func (h *GoalHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGoals(items))
}

// Create godoc
// @Summary Create a monthly tonnage goal
// @Tags metas
// @Accept json
// @Produce json
// @Param goal body request.GoalRequest true "Goal"
// @Success 201 {object} response.GoalResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /metas [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var payload request.GoalRequest
	if !bindJSON(c, &payload) {
		return
	}
	g, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromGoal(g))
}

// Update godoc
// @Summary Update a goal
// @Tags metas
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param goal body request.GoalRequest true "Goal"
// @Success 200 {object} response.GoalResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /metas/{id} [put]
func (h *GoalHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.GoalRequest
	if !bindJSON(c, &payload) {
		return
	}
	g, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGoal(g))
}

// Delete godoc
// @Summary Delete a goal
// @Tags metas
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /metas/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
