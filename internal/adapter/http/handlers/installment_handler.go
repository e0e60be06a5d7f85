package handlers

import (
	"net/http"

	request "erp_vendas/internal/adapter/http/dto/request"
	response "erp_vendas/internal/adapter/http/dto/response"
	"erp_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type InstallmentHandler struct {
	usecase usecase.IInstallmentUseCase
}

func NewInstallmentHandler(uc usecase.IInstallmentUseCase) *InstallmentHandler {
	return &InstallmentHandler{usecase: uc}
}

// List godoc
// @Summary List installments with their effective status
// @Tags vencimentos
// @Produce json
// @Success 200 {array} response.InstallmentResponse
// @Security BearerAuth
// @Router /vencimentos [get]
func (h *InstallmentHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInstallments(items))
}

// MarkPaid godoc
// @Summary Settle an installment
// @Description Freezes the commission at the material's current rate. Paying twice is rejected.
// @Tags vencimentos
// @Accept json
// @Produce json
// @Param id path string true "Installment ID"
// @Param status body request.InstallmentStatusRequest true "Payment"
// @Success 200 {object} response.InstallmentResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /vencimentos/{id} [put]
func (h *InstallmentHandler) MarkPaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.InstallmentStatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	paidOn, err := payload.PaidOn()
	if err != nil {
		respondError(c, err)
		return
	}
	it, err := h.usecase.MarkPaid(c.Request.Context(), id, paidOn)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInstallment(it))
}
