package handlers

import (
	"net/http"

	request "erp_vendas/internal/adapter/http/dto/request"
	response "erp_vendas/internal/adapter/http/dto/response"
	"erp_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// List godoc
// @Summary List invoices
// @Tags notas-fiscais
// @Produce json
// @Success 200 {array} response.InvoiceResponse
// @Security BearerAuth
// @Router /notas-fiscais [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(items))
}

// Get godoc
// @Summary Get an invoice
// @Tags notas-fiscais
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.InvoiceResponse
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /notas-fiscais/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	inv, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// Issue godoc
// @Summary Issue an invoice
// @Description Creates the invoice with its installment schedule and moves the order to FATURADO in one atomic write.
// @Tags notas-fiscais
// @Accept json
// @Produce json
// @Param invoice body request.InvoiceRequest true "Invoice"
// @Success 201 {object} response.IssuedInvoiceResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /notas-fiscais [post]
func (h *InvoiceHandler) Issue(c *gin.Context) {
	var payload request.InvoiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		respondError(c, err)
		return
	}
	inv, items, err := h.usecase.Issue(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromIssuedInvoice(inv, items))
}

// Correct godoc
// @Summary Correct an invoice
// @Description Regenerates the schedule of an invoice none of whose installments is paid.
// @Tags notas-fiscais
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body request.InvoiceCorrectionRequest true "Correction"
// @Success 200 {object} response.IssuedInvoiceResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /notas-fiscais/{id} [put]
func (h *InvoiceHandler) Correct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.InvoiceCorrectionRequest
	if !bindJSON(c, &payload) {
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		respondError(c, err)
		return
	}
	inv, items, err := h.usecase.Correct(c.Request.Context(), id, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromIssuedInvoice(inv, items))
}

// Installments godoc
// @Summary List the installments of an invoice
// @Tags notas-fiscais
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {array} response.InstallmentResponse
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /notas-fiscais/{id}/vencimentos [get]
func (h *InvoiceHandler) Installments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.usecase.Installments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInstallments(items))
}
