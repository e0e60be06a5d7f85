package handlers

import (
	"net/http"

	request "erp_vendas/internal/adapter/http/dto/request"
	response "erp_vendas/internal/adapter/http/dto/response"
	"erp_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// List godoc
// @Summary List clients
// @Tags clientes
// @Produce json
// @Success 200 {array} response.ClientResponse
// @Security BearerAuth
// @Router /clientes [get]
func (h *ClientHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(items))
}

// Get godoc
// @Summary Get a client
// @Tags clientes
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.ClientResponse
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /clientes/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cl, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(cl))
}

// Create godoc
// @Summary Create a client
// @Description The sequential reference (CLI-0001) is assigned by the server.
// @Tags clientes
// @Accept json
// @Produce json
// @Param client body request.ClientRequest true "Client"
// @Success 201 {object} response.ClientResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /clientes [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var payload request.ClientRequest
	if !bindJSON(c, &payload) {
		return
	}
	cl, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(cl))
}

// Update godoc
// @Summary Update a client
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body request.ClientRequest true "Client"
// @Success 200 {object} response.ClientResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /clientes/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.ClientRequest
	if !bindJSON(c, &payload) {
		return
	}
	cl, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(cl))
}

// Delete godoc
// @Summary Delete a client
// @Tags clientes
// @Param id path string true "Client ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /clientes/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
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
