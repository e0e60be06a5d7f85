package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	response "erp_vendas/internal/adapter/http/dto/response"
	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/domain/reporting"
	"erp_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// Dashboard godoc
// @Summary Headline figures of the current month
// @Tags relatorios
// @Produce json
// @Success 200 {object} response.DashboardResponse
// @Failure 503 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(stats))
}

// Commissions godoc
// @Summary Commission report
// @Tags relatorios
// @Produce json
// @Param status query string false "Todos, Pendente, Atrasado or Pago"
// @Param mes query int false "Due-date month, 1-12; 0 for all"
// @Param busca query string false "Matches invoice number, client name or factory number"
// @Success 200 {object} response.CommissionReportResponse
// @Failure 400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /relatorios/comissoes [get]
func (h *ReportHandler) Commissions(c *gin.Context) {
	f, err := commissionFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := h.usecase.CommissionReport(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCommissionReport(report))
}

// ExportCommissions godoc
// @Summary Export the commission report as a spreadsheet
// @Tags relatorios
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Todos, Pendente, Atrasado or Pago"
// @Param mes query int false "Due-date month, 1-12; 0 for all"
// @Param busca query string false "Search term"
// @Success 200 {file} file
// @Failure 400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /export/comissoes [get]
func (h *ReportHandler) ExportCommissions(c *gin.Context) {
	f, err := commissionFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}
	content, contentType, err := h.usecase.ExportCommissions(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(f.Month)))
	c.Data(http.StatusOK, contentType, content)
}

// GoalProgress godoc
// @Summary Goal attainment per client
// @Tags metas
// @Produce json
// @Param ano query int false "Year, defaults to the current one"
// @Param mes query int false "Month, defaults to the current one"
// @Success 200 {object} response.GoalProgressResponse
// @Failure 400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /metas/progresso [get]
func (h *ReportHandler) GoalProgress(c *gin.Context) {
	year, err := queryInt(c, "ano")
	if err != nil {
		respondError(c, err)
		return
	}
	month, err := queryInt(c, "mes")
	if err != nil {
		respondError(c, err)
		return
	}
	progress, err := h.usecase.GoalProgress(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromGoalProgress(progress))
}

func commissionFilter(c *gin.Context) (reporting.CommissionFilter, error) {
	month, err := queryInt(c, "mes")
	if err != nil {
		return reporting.CommissionFilter{}, err
	}
	return reporting.CommissionFilter{
		Status: entities.InstallmentStatus(strings.TrimSpace(c.Query("status"))),
		Month:  month,
		Search: c.Query("busca"),
	}, nil
}

// queryInt reads an optional integer parameter; absent means zero.
func queryInt(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, entities.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func exportFilename(month int) string {
	if month == 0 {
		return "relatorio_comissoes_todos.xlsx"
	}
	return fmt.Sprintf("relatorio_comissoes_%02d.xlsx", month)
}
