package handlers

import (
	"net/http"

	request "erp_vendas/internal/adapter/http/dto/request"
	response "erp_vendas/internal/adapter/http/dto/response"
	"erp_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// List godoc
// @Summary List orders, newest first
// @Tags pedidos
// @Produce json
// @Success 200 {array} response.OrderResponse
// @Security BearerAuth
// @Router /pedidos [get]
func (h *OrderHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(items))
}

// Get godoc
// @Summary Get an order
// @Tags pedidos
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.OrderResponse
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /pedidos/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// Create godoc
// @Summary Create an order
// @Tags pedidos
// @Accept json
// @Produce json
// @Param order body request.OrderRequest true "Order"
// @Success 201 {object} response.OrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /pedidos [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.OrderRequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := payload.ToEntity()
	if err != nil {
		respondError(c, err)
		return
	}
	o, err := h.usecase.Create(c.Request.Context(), order)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

// Update godoc
// @Summary Update an order
// @Description Invoiced orders are read-only; FATURADO is only reachable by issuing an invoice.
// @Tags pedidos
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param order body request.OrderRequest true "Order"
// @Success 200 {object} response.OrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /pedidos/{id} [put]
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.OrderRequest
	if !bindJSON(c, &payload) {
		return
	}
	order, err := payload.ToEntity()
	if err != nil {
		respondError(c, err)
		return
	}
	o, err := h.usecase.Update(c.Request.Context(), id, order)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// Delete godoc
// @Summary Delete an order
// @Tags pedidos
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /pedidos/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
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
