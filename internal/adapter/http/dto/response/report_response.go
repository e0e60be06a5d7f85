package response

import (
	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/domain/reporting"

	"github.com/shopspring/decimal"
)

type DashboardResponse struct {
	TonelagemImplantada  decimal.Decimal `json:"tonelagem_implantada" swaggertype:"number"`
	ComissaoPrevista     decimal.Decimal `json:"comissao_prevista" swaggertype:"number"`
	TonelagemFaturada    decimal.Decimal `json:"tonelagem_faturada" swaggertype:"number"`
	ComissaoRealizada    decimal.Decimal `json:"comissao_realizada" swaggertype:"number"`
	PedidosMesValor      decimal.Decimal `json:"pedidos_mes_valor" swaggertype:"number"`
	FaturadoMesValor     decimal.Decimal `json:"faturado_mes_valor" swaggertype:"number"`
	ComissaoMes          decimal.Decimal `json:"comissao_mes" swaggertype:"number"`
	ComissoesAReceber    decimal.Decimal `json:"comissoes_a_receber" swaggertype:"number"`
	MetaMesTon           decimal.Decimal `json:"meta_mes_ton" swaggertype:"number"`
	TotalPedidos         int             `json:"total_pedidos"`
	PedidosImplantados   int             `json:"pedidos_implantados"`
	NotasMes             int             `json:"notas_mes"`
	VencimentosPendentes int             `json:"vencimentos_pendentes"`
	VencimentosAtrasados int             `json:"vencimentos_atrasados"`
}

func FromDashboard(s reporting.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TonelagemImplantada:  s.ImplantedTons,
		ComissaoPrevista:     s.PredictedCommission,
		TonelagemFaturada:    s.InvoicedTons,
		ComissaoRealizada:    s.RealizedCommission,
		PedidosMesValor:      s.OrdersMonthValue,
		FaturadoMesValor:     s.InvoicedMonthValue,
		ComissaoMes:          s.CommissionMonth,
		ComissoesAReceber:    s.CommissionReceivable,
		MetaMesTon:           s.GoalMonthTons,
		TotalPedidos:         s.TotalOrders,
		PedidosImplantados:   s.ImplantedOrders,
		NotasMes:             s.InvoicesThisMonth,
		VencimentosPendentes: s.PendingInstallments,
		VencimentosAtrasados: s.OverdueInstallments,
	}
}

type CommissionRowResponse struct {
	InstallmentResponse
	NumeroNF      string `json:"numero_nf"`
	PedidoID      string `json:"pedido_id"`
	NumeroFabrica string `json:"numero_fabrica"`
	ClienteID     string `json:"cliente_id"`
	ClienteNome   string `json:"cliente_nome"`
}

type CommissionTotalsResponse struct {
	Pendente decimal.Decimal `json:"Pendente" swaggertype:"number"`
	Atrasado decimal.Decimal `json:"Atrasado" swaggertype:"number"`
	Pago     decimal.Decimal `json:"Pago" swaggertype:"number"`
}

type CommissionReportResponse struct {
	Linhas     []CommissionRowResponse  `json:"linhas"`
	Totais     CommissionTotalsResponse `json:"totais"`
	TotalGeral decimal.Decimal          `json:"total_geral" swaggertype:"number"`
}

func FromCommissionReport(r reporting.CommissionReport) CommissionReportResponse {
	return CommissionReportResponse{
		Linhas: mapSlice(r.Rows, func(row reporting.CommissionRow) CommissionRowResponse {
			return CommissionRowResponse{
				InstallmentResponse: FromInstallment(row.Installment),
				NumeroNF:            row.InvoiceNumber,
				PedidoID:            row.OrderID,
				NumeroFabrica:       row.FactoryNumber,
				ClienteID:           row.ClientID,
				ClienteNome:         row.ClientName,
			}
		}),
		Totais: CommissionTotalsResponse{
			Pendente: r.Totals[entities.InstallmentStatusPendente],
			Atrasado: r.Totals[entities.InstallmentStatusAtrasado],
			Pago:     r.Totals[entities.InstallmentStatusPago],
		},
		TotalGeral: r.GrandTotal,
	}
}

type AttainmentResponse struct {
	ClienteID    string          `json:"cliente_id"`
	ClienteNome  string          `json:"cliente_nome"`
	MetaTon      decimal.Decimal `json:"meta_ton" swaggertype:"number"`
	RealizadoTon decimal.Decimal `json:"realizado_ton" swaggertype:"number"`
	Percentual   decimal.Decimal `json:"percentual" swaggertype:"number"`
}

type GoalProgressResponse struct {
	Ano          int                  `json:"ano"`
	Mes          int                  `json:"mes"`
	Clientes     []AttainmentResponse `json:"clientes"`
	MetaTon      decimal.Decimal      `json:"meta_ton" swaggertype:"number"`
	RealizadoTon decimal.Decimal      `json:"realizado_ton" swaggertype:"number"`
	Percentual   decimal.Decimal      `json:"percentual" swaggertype:"number"`
}

func FromGoalProgress(m reporting.MonthlyAttainment) GoalProgressResponse {
	return GoalProgressResponse{
		Ano: m.Year,
		Mes: m.Month,
		Clientes: mapSlice(m.Clients, func(a reporting.Attainment) AttainmentResponse {
			return AttainmentResponse{
				ClienteID:    a.ClientID,
				ClienteNome:  a.ClientName,
				MetaTon:      a.TargetTons,
				RealizadoTon: a.RealizedTons,
				Percentual:   a.Percent,
			}
		}),
		MetaTon:      m.TargetTons,
		RealizadoTon: m.RealizedTons,
		Percentual:   m.Percent,
	}
}
