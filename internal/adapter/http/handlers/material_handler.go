package handlers

import (
	"net/http"

	request "erp_vendas/internal/adapter/http/dto/request"
	response "erp_vendas/internal/adapter/http/dto/response"
	"erp_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

// List godoc
// @Summary List materials
// @Tags materiais
// @Produce json
// @Success 200 {array} response.MaterialResponse
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /materiais [get]
func (h *MaterialHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(items))
}

// Get godoc
// @Summary Get a material
// @Tags materiais
// @Produce json
// @Param id path string true "Material ID"
// @Success 200 {object} response.MaterialResponse
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /materiais/{id} [get]
func (h *MaterialHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(m))
}

// Create godoc
// @Summary Create a material
// @Tags materiais
// @Accept json
// @Produce json
// @Param material body request.MaterialRequest true "Material"
// @Success 201 {object} response.MaterialResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /materiais [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	var payload request.MaterialRequest
	if !bindJSON(c, &payload) {
		return
	}
	m, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMaterial(m))
}

// Update godoc
// @Summary Update a material
// @Description Changing the commission rate recomputes the commission of every unpaid installment linked to it.
// @Tags materiais
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Param material body request.MaterialRequest true "Material"
// @Success 200 {object} response.MaterialResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /materiais/{id} [put]
func (h *MaterialHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.MaterialRequest
	if !bindJSON(c, &payload) {
		return
	}
	m, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(m))
}

// Delete godoc
// @Summary Delete a material
// @Tags materiais
// @Param id path string true "Material ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /materiais/{id} [delete]
func (h *MaterialHandler) Delete(c *gin.Context) {
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
