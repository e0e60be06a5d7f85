package handlers

import (
	"net/http"
	"strings"
	"testing"

	"erp_vendas/internal/adapter/http/handlers/mocks"
	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/domain/reporting"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newReportRouter(t *testing.T) (*gin.Engine, *mocks.MockIReportUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc)
	r := gin.New()
	r.GET("/dashboard/stats", h.Dashboard)
	r.GET("/relatorios/comissoes", h.Commissions)
	r.GET("/export/comissoes", h.ExportCommissions)
	r.GET("/metas/progresso", h.GoalProgress)
	return r, uc
}

func TestReportHandler_Dashboard(t *testing.T) {
	r, uc := newReportRouter(t)
	uc.EXPECT().Dashboard(gomock.Any()).Return(reporting.DashboardStats{
		PredictedCommission: decimal.RequireFromString("25"),
		RealizedCommission:  decimal.RequireFromString("25"),
		TotalOrders:         1,
	}, nil)

	w := perform(r, http.MethodGet, "/dashboard/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	decodeJSON(t, w, &body)
	if body["comissao_prevista"] != 25.0 || body["comissao_realizada"] != 25.0 || body["total_pedidos"] != 1.0 {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestReportHandler_Commissions(t *testing.T) {
	t.Run("filter from query", func(t *testing.T) {
		r, uc := newReportRouter(t)
		want := reporting.CommissionFilter{Status: entities.InstallmentStatusPago, Month: 2, Search: "sul"}
		uc.EXPECT().CommissionReport(gomock.Any(), want).Return(reporting.CommissionReport{
			Rows: []reporting.CommissionRow{{
				Installment:   entities.Installment{ID: "v-1", Number: 1, TotalInstallments: 1, Commission: decimal.RequireFromString("10")},
				InvoiceNumber: "NF-1",
				ClientName:    "Embalagens Sul",
			}},
			Totals:     map[entities.InstallmentStatus]decimal.Decimal{entities.InstallmentStatusPago: decimal.RequireFromString("10")},
			GrandTotal: decimal.RequireFromString("10"),
		}, nil)

		w := perform(r, http.MethodGet, "/relatorios/comissoes?status=Pago&mes=2&busca=sul", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Linhas []struct {
				NumeroNF    string `json:"numero_nf"`
				ClienteNome string `json:"cliente_nome"`
			} `json:"linhas"`
			Totais     map[string]float64 `json:"totais"`
			TotalGeral float64            `json:"total_geral"`
		}
		decodeJSON(t, w, &body)
		if len(body.Linhas) != 1 || body.Linhas[0].ClienteNome != "Embalagens Sul" || body.Totais["Pago"] != 10 || body.TotalGeral != 10 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("non numeric month", func(t *testing.T) {
		r, _ := newReportRouter(t)
		if w := perform(r, http.MethodGet, "/relatorios/comissoes?mes=fev", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestReportHandler_ExportCommissions(t *testing.T) {
	r, uc := newReportRouter(t)
	uc.EXPECT().ExportCommissions(gomock.Any(), reporting.CommissionFilter{Month: 3}).
		Return([]byte("xlsx"), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil)

	w := perform(r, http.MethodGet, "/export/comissoes?mes=3", "")
	if w.Code != http.StatusOK || w.Body.String() != "xlsx" {
		t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "relatorio_comissoes_03.xlsx") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/vnd.openxmlformats") {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestReportHandler_GoalProgress(t *testing.T) {
	r, uc := newReportRouter(t)
	uc.EXPECT().GoalProgress(gomock.Any(), 2025, 1).Return(reporting.MonthlyAttainment{
		Year: 2025, Month: 1,
		Clients: []reporting.Attainment{{ClientID: "c-1", ClientName: "Embalagens Sul", TargetTons: decimal.NewFromInt(10)}},
	}, nil)

	w := perform(r, http.MethodGet, "/metas/progresso?ano=2025&mes=1", "")
	var body map[string]any
	decodeJSON(t, w, &body)
	if body["ano"] != 2025.0 || len(body["clientes"].([]any)) != 1 {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
