package reporting

import (
	"time"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

// DashboardStats are the headline figures of the home screen. Tonnages are in
// metric tons; "month" figures refer to the calendar month of the evaluation
// date.
type DashboardStats struct {
	PredictedCommission  decimal.Decimal
	RealizedCommission   decimal.Decimal
	CommissionReceivable decimal.Decimal
	CommissionMonth      decimal.Decimal

	TotalOrders         int
	ImplantedOrders     int
	InvoicesThisMonth   int
	PendingInstallments int
	OverdueInstallments int

	ImplantedTons      decimal.Decimal
	InvoicedTons       decimal.Decimal
	OrdersMonthValue   decimal.Decimal
	InvoicedMonthValue decimal.Decimal
	GoalMonthTons      decimal.Decimal
}

var kgPerTon = decimal.NewFromInt(1000)

// Dashboard aggregates the snapshot as of today.
//
// Predicted commission is what is still expected: the commission of every
// unpaid installment plus, for implanted orders that have no invoice yet, the
// order value times the material rate. Realized commission is the frozen
// commission of paid installments.
func Dashboard(s Snapshot, today time.Time) DashboardStats {
	idx := s.index()
	st := DashboardStats{}

	implantedKg := decimal.Zero
	for _, o := range s.Orders {
		st.TotalOrders++
		if sameMonth(o.CreatedAt, today) {
			st.OrdersMonthValue = st.OrdersMonthValue.Add(o.TotalValue)
		}
		if o.Status != entities.OrderStatusImplantado {
			continue
		}
		st.ImplantedOrders++
		implantedKg = implantedKg.Add(o.TotalWeight)
		if idx.invoiced[o.ID] {
			continue
		}
		estimate, _ := ledger.ComputeCommission(o.TotalValue, ledger.RateOf(o, idx.materials))
		st.PredictedCommission = st.PredictedCommission.Add(estimate)
	}
	st.ImplantedTons = implantedKg.Div(kgPerTon)

	invoicedKg := decimal.Zero
	for _, inv := range s.Invoices {
		if !sameMonth(inv.IssueDate, today) {
			continue
		}
		st.InvoicesThisMonth++
		st.InvoicedMonthValue = st.InvoicedMonthValue.Add(inv.TotalValue)
		if o, ok := idx.orders[inv.OrderID]; ok {
			invoicedKg = invoicedKg.Add(o.TotalWeight)
		}
	}
	st.InvoicedTons = invoicedKg.Div(kgPerTon)

	for _, it := range s.Installments {
		switch ledger.EffectiveStatus(it.Status, it.DueDate, today) {
		case entities.InstallmentStatusPago:
			st.RealizedCommission = st.RealizedCommission.Add(it.Commission)
			if it.PaymentDate != nil && sameMonth(*it.PaymentDate, today) {
				st.CommissionMonth = st.CommissionMonth.Add(it.Commission)
			}
		case entities.InstallmentStatusAtrasado:
			st.OverdueInstallments++
			st.PendingInstallments++
			st.CommissionReceivable = st.CommissionReceivable.Add(it.Commission)
		default:
			st.PendingInstallments++
			st.CommissionReceivable = st.CommissionReceivable.Add(it.Commission)
		}
	}
	st.PredictedCommission = st.PredictedCommission.Add(st.CommissionReceivable)

	for _, g := range s.Goals {
		if g.Year == today.Year() && g.Month == int(today.Month()) {
			st.GoalMonthTons = st.GoalMonthTons.Add(g.TargetTons)
		}
	}
	return st
}
