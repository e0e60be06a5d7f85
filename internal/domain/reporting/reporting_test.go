package reporting

import (
	"testing"
	"time"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(s string) time.Time {
	t, err := time.Parse(entities.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// invoicedSnapshot is one client, one 5% material, one order of 1000.00
// invoiced as NF-1 in two installments due 2025-01-15 and 2025-02-15.
func invoicedSnapshot() Snapshot {
	created := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	rate := d("5")
	shares, err := ledger.BuildSchedule(d("1000.00"), 2, date("2025-01-15"), nil)
	if err != nil {
		panic(err)
	}
	var items []entities.Installment
	for _, s := range shares {
		it := entities.Installment{
			ID:                "inst-" + string(rune('0'+s.Number)),
			InvoiceID:         "nf-1",
			Number:            s.Number,
			TotalInstallments: 2,
			Value:             s.Value,
			DueDate:           s.DueDate,
			Status:            entities.InstallmentStatusPendente,
			CreatedAt:         created,
		}
		items = append(items, ledger.ApplyCommission(it, &rate))
	}
	return Snapshot{
		Clients:   []entities.Client{{ID: "c1", Name: "Embalagens Sul"}},
		Materials: []entities.Material{{ID: "m1", Code: "CX-01", CommissionRate: rate}},
		Orders: []entities.Order{{
			ID: "o1", ClientID: "c1", MaterialID: "m1", TotalValue: d("1000.00"),
			TotalWeight: d("2500"), FactoryNumber: "F-77", Status: entities.OrderStatusFaturado, CreatedAt: created,
		}},
		Invoices: []entities.Invoice{{
			ID: "nf-1", OrderID: "o1", ClientID: "c1", Number: "NF-1", TotalValue: d("1000.00"),
			IssueDate: date("2025-01-05"), InstallmentCount: 2, CreatedAt: created,
		}},
		Installments: items,
	}
}

func TestDashboard_PaymentMovesCommissionFromPredictedToRealized(t *testing.T) {
	s := invoicedSnapshot()
	today := date("2025-01-10")

	before := Dashboard(s, today)
	if !before.PredictedCommission.Equal(d("50")) || !before.RealizedCommission.IsZero() {
		t.Fatalf("expected predicted 50 and realized 0, got %s and %s", before.PredictedCommission, before.RealizedCommission)
	}
	if before.PendingInstallments != 2 || before.OverdueInstallments != 0 {
		t.Fatalf("unexpected counts: %+v", before)
	}

	paidOn := date("2025-01-20")
	s.Installments[0].Status = entities.InstallmentStatusPago
	s.Installments[0].PaymentDate = &paidOn

	after := Dashboard(s, paidOn)
	if !after.PredictedCommission.Equal(d("25")) || !after.RealizedCommission.Equal(d("25")) {
		t.Fatalf("expected predicted 25 and realized 25, got %s and %s", after.PredictedCommission, after.RealizedCommission)
	}
	if !after.CommissionMonth.Equal(d("25")) {
		t.Fatalf("expected 25 realized this month, got %s", after.CommissionMonth)
	}
	if after.InvoicesThisMonth != 1 || !after.InvoicedTons.Equal(d("2.5")) {
		t.Fatalf("unexpected invoice figures: %d / %s", after.InvoicesThisMonth, after.InvoicedTons)
	}
}

func TestDashboard_ImplantedOrderWithoutInvoiceIsEstimated(t *testing.T) {
	s := Snapshot{
		Materials: []entities.Material{{ID: "m1", CommissionRate: d("2")}},
		Orders: []entities.Order{
			{ID: "o1", MaterialID: "m1", TotalValue: d("1500"), TotalWeight: d("1200"), Status: entities.OrderStatusImplantado},
			{ID: "o2", ItemName: "avulso", TotalValue: d("800"), Status: entities.OrderStatusImplantado},
			{ID: "o3", MaterialID: "m1", TotalValue: d("900"), Status: entities.OrderStatusPendente},
		},
	}
	st := Dashboard(s, date("2025-06-01"))
	if !st.PredictedCommission.Equal(d("30")) {
		t.Fatalf("expected 30 predicted, got %s", st.PredictedCommission)
	}
	if st.TotalOrders != 3 || st.ImplantedOrders != 2 || !st.ImplantedTons.Equal(d("1.2")) {
		t.Fatalf("unexpected order figures: %+v", st)
	}
}

func TestDashboard_OverdueCountsAsReceivable(t *testing.T) {
	s := invoicedSnapshot()
	st := Dashboard(s, date("2025-01-16"))
	if st.OverdueInstallments != 1 || st.PendingInstallments != 2 {
		t.Fatalf("expected 1 overdue out of 2 open, got %d/%d", st.OverdueInstallments, st.PendingInstallments)
	}
	if !st.CommissionReceivable.Equal(d("50")) {
		t.Fatalf("expected receivable 50, got %s", st.CommissionReceivable)
	}
}

func TestBuildCommissionReport(t *testing.T) {
	s := invoicedSnapshot()
	today := date("2025-01-20")

	t.Run("month filter ignores year", func(t *testing.T) {
		r := BuildCommissionReport(s, CommissionFilter{Month: 2}, today)
		if len(r.Rows) != 1 || r.Rows[0].Installment.Number != 2 {
			t.Fatalf("expected only installment #2, got %+v", r.Rows)
		}
		if !r.GrandTotal.Equal(d("25")) {
			t.Fatalf("expected total 25, got %s", r.GrandTotal)
		}
	})

	t.Run("overdue rows are derived", func(t *testing.T) {
		r := BuildCommissionReport(s, CommissionFilter{Status: entities.InstallmentStatusAtrasado}, today)
		if len(r.Rows) != 1 || r.Rows[0].Installment.Status != entities.InstallmentStatusAtrasado {
			t.Fatalf("expected one overdue row, got %+v", r.Rows)
		}
		if !r.Totals[entities.InstallmentStatusPendente].Equal(d("25")) || !r.Totals[entities.InstallmentStatusAtrasado].Equal(d("25")) {
			t.Fatalf("unexpected per-status totals: %v", r.Totals)
		}
		if !r.GrandTotal.Equal(d("25")) {
			t.Fatalf("expected grand total over filtered rows, got %s", r.GrandTotal)
		}
	})

	t.Run("search matches invoice client and factory number", func(t *testing.T) {
		for _, term := range []string{"nf-1", "SUL", "f-77"} {
			r := BuildCommissionReport(s, CommissionFilter{Search: term}, today)
			if len(r.Rows) != 2 {
				t.Fatalf("search %q: expected 2 rows, got %d", term, len(r.Rows))
			}
			if r.Rows[0].InvoiceNumber != "NF-1" || r.Rows[0].ClientName != "Embalagens Sul" || r.Rows[0].FactoryNumber != "F-77" {
				t.Fatalf("row not enriched: %+v", r.Rows[0])
			}
		}
		r := BuildCommissionReport(s, CommissionFilter{Search: "nothing"}, today)
		if len(r.Rows) != 0 || !r.GrandTotal.IsZero() {
			t.Fatalf("expected empty report, got %+v", r)
		}
	})

	t.Run("rows keep insertion order", func(t *testing.T) {
		shuffled := s
		shuffled.Installments = []entities.Installment{s.Installments[1], s.Installments[0]}
		r := BuildCommissionReport(shuffled, CommissionFilter{Status: StatusAll}, today)
		if r.Rows[0].Installment.Number != 1 || r.Rows[1].Installment.Number != 2 {
			t.Fatalf("expected parcel order 1,2, got %d,%d", r.Rows[0].Installment.Number, r.Rows[1].Installment.Number)
		}
		if !r.GrandTotal.Equal(d("50")) {
			t.Fatalf("expected total 50, got %s", r.GrandTotal)
		}
	})

	t.Run("orphan installments are skipped", func(t *testing.T) {
		orphan := s
		orphan.Installments = append([]entities.Installment{{ID: "x", InvoiceID: "missing", Commission: d("99")}}, s.Installments...)
		r := BuildCommissionReport(orphan, CommissionFilter{}, today)
		if len(r.Rows) != 2 {
			t.Fatalf("expected orphan to be skipped, got %d rows", len(r.Rows))
		}
	})
}

func TestGoalAttainment(t *testing.T) {
	client := entities.Client{ID: "c1", Name: "Embalagens Sul"}
	goals := []entities.Goal{
		{ClientID: "c1", Year: 2025, Month: 3, TargetTons: d("50")},
		{ClientID: "c1", Year: 2025, Month: 4, TargetTons: d("70")},
	}

	a := GoalAttainment(goals, client, 2025, 3)
	if !a.TargetTons.Equal(d("50")) || !a.RealizedTons.IsZero() || !a.Percent.IsZero() {
		t.Fatalf("unexpected attainment: %+v", a)
	}

	none := GoalAttainment(goals, client, 2025, 5)
	if !none.TargetTons.IsZero() || !none.Percent.IsZero() {
		t.Fatalf("expected zero target without goal: %+v", none)
	}

	m := MonthAttainment(Snapshot{Clients: []entities.Client{client, {ID: "c2"}}, Goals: goals}, 2025, 4)
	if len(m.Clients) != 2 || !m.TargetTons.Equal(d("70")) || !m.Percent.IsZero() {
		t.Fatalf("unexpected month attainment: %+v", m)
	}
}

func TestPercent(t *testing.T) {
	if got := percent(d("12.5"), d("50")); !got.Equal(d("25")) {
		t.Fatalf("expected 25, got %s", got)
	}
	if got := percent(d("10"), decimal.Zero); !got.IsZero() {
		t.Fatalf("expected 0 for zero target, got %s", got)
	}
}
