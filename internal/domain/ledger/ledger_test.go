package ledger

import (
	"errors"
	"testing"
	"time"

	"erp_vendas/internal/domain/entities"

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

func TestSplitAmount(t *testing.T) {
	cases := []struct {
		total string
		n     int
		want  []string
	}{
		{"100.00", 3, []string{"33.33", "33.33", "33.34"}},
		{"1000.00", 2, []string{"500", "500"}},
		{"0.05", 3, []string{"0.01", "0.01", "0.03"}},
		{"10", 1, []string{"10"}},
		{"999.99", 7, []string{"142.85", "142.85", "142.85", "142.85", "142.85", "142.85", "142.89"}},
	}
	for _, tc := range cases {
		got := SplitAmount(d(tc.total), tc.n)
		if len(got) != tc.n {
			t.Fatalf("%s/%d: expected %d shares, got %d", tc.total, tc.n, tc.n, len(got))
		}
		sum := decimal.Zero
		for i, g := range got {
			if !g.Equal(d(tc.want[i])) {
				t.Fatalf("%s/%d: share %d expected %s, got %s", tc.total, tc.n, i+1, tc.want[i], g)
			}
			sum = sum.Add(g)
		}
		if !sum.Equal(d(tc.total)) {
			t.Fatalf("%s/%d: shares add up to %s", tc.total, tc.n, sum)
		}
	}

	if SplitAmount(d("10"), 0) != nil {
		t.Fatalf("expected nil for zero installments")
	}
}

func TestSplitAmount_SumInvariant(t *testing.T) {
	for cents := int64(1); cents < 5000; cents += 37 {
		total := decimal.New(cents, -2)
		for n := 1; n <= 12; n++ {
			sum := decimal.Zero
			for _, s := range SplitAmount(total, n) {
				sum = sum.Add(s)
			}
			if !sum.Equal(total) {
				t.Fatalf("total %s n %d: sum %s", total, n, sum)
			}
		}
	}
}

func TestAddMonthsClamped(t *testing.T) {
	cases := []struct {
		from   string
		months int
		want   string
	}{
		{"2025-01-15", 1, "2025-02-15"},
		{"2025-01-31", 1, "2025-02-28"},
		{"2024-01-31", 1, "2024-02-29"},
		{"2025-01-31", 2, "2025-03-31"},
		{"2025-03-31", 1, "2025-04-30"},
		{"2025-11-30", 3, "2026-02-28"},
		{"2025-12-15", 0, "2025-12-15"},
	}
	for _, tc := range cases {
		if got := AddMonthsClamped(date(tc.from), tc.months); !got.Equal(date(tc.want)) {
			t.Fatalf("%s + %d: expected %s, got %s", tc.from, tc.months, tc.want, got.Format(entities.DateLayout))
		}
	}
}

func TestBuildSchedule(t *testing.T) {
	t.Run("computed due dates keep day of month", func(t *testing.T) {
		shares, err := BuildSchedule(d("300"), 3, date("2025-01-31"), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"2025-01-31", "2025-02-28", "2025-03-31"}
		for i, s := range shares {
			if s.Number != i+1 || !s.DueDate.Equal(date(want[i])) || !s.Value.Equal(d("100")) {
				t.Fatalf("unexpected share %d: %+v", i, s)
			}
		}
	})

	t.Run("explicit due dates", func(t *testing.T) {
		shares, err := BuildSchedule(d("100"), 2, time.Time{}, []time.Time{date("2025-05-10"), date("2025-06-01")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !shares[1].DueDate.Equal(date("2025-06-01")) {
			t.Fatalf("expected explicit date, got %s", shares[1].DueDate)
		}
	})

	invalid := []struct {
		name  string
		total string
		n     int
		first time.Time
		dates []time.Time
	}{
		{"zero total", "0", 1, date("2025-01-01"), nil},
		{"negative total", "-10", 1, date("2025-01-01"), nil},
		{"fractional cents", "10.005", 1, date("2025-01-01"), nil},
		{"zero installments", "10", 0, date("2025-01-01"), nil},
		{"too many installments", "10", entities.MaxInstallments + 1, date("2025-01-01"), nil},
		{"missing first due", "10", 1, time.Time{}, nil},
		{"date count mismatch", "10", 2, time.Time{}, []time.Time{date("2025-01-01")}},
		{"dates out of order", "10", 2, time.Time{}, []time.Time{date("2025-02-01"), date("2025-01-01")}},
		{"less than a cent per installment", "0.02", 3, date("2025-01-01"), nil},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildSchedule(d(tc.total), tc.n, tc.first, tc.dates)
			if !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestComputeCommission(t *testing.T) {
	rate := d("5")
	amount, unknown := ComputeCommission(d("500.00"), &rate)
	if unknown || !amount.Equal(d("25")) {
		t.Fatalf("expected 25.00, got %s (unknown=%v)", amount, unknown)
	}

	one := d("1")
	amount, _ = ComputeCommission(d("0.50"), &one) // 0.005
	if !amount.Equal(d("0.01")) {
		t.Fatalf("expected half-up rounding to 0.01, got %s", amount)
	}

	amount, unknown = ComputeCommission(d("500.00"), nil)
	if !unknown || !amount.IsZero() {
		t.Fatalf("expected zero with unknown rate, got %s (unknown=%v)", amount, unknown)
	}

	again, _ := ComputeCommission(d("33.34"), &rate)
	twice, _ := ComputeCommission(d("33.34"), &rate)
	if !again.Equal(twice) || !again.Equal(d("1.67")) {
		t.Fatalf("expected stable 1.67, got %s and %s", again, twice)
	}
}

func TestApplyCommission(t *testing.T) {
	rate := d("10")
	pending := entities.Installment{Value: d("200"), Status: entities.InstallmentStatusPendente}
	got := ApplyCommission(pending, &rate)
	if !got.Commission.Equal(d("20")) || !got.CommissionRate.Equal(rate) || got.CommissionRateUnknown {
		t.Fatalf("unexpected pending commission: %+v", got)
	}

	paid := entities.Installment{Value: d("200"), Status: entities.InstallmentStatusPago, Commission: d("10"), CommissionRate: d("5")}
	got = ApplyCommission(paid, &rate)
	if !got.Commission.Equal(d("10")) || !got.CommissionRate.Equal(d("5")) {
		t.Fatalf("paid commission must stay frozen: %+v", got)
	}

	got = ApplyCommission(pending, nil)
	if !got.CommissionRateUnknown || !got.Commission.IsZero() {
		t.Fatalf("expected unknown rate flag: %+v", got)
	}
}

func TestRateOf(t *testing.T) {
	materials := map[string]entities.Material{"m1": {ID: "m1", CommissionRate: d("3.5")}}
	if r := RateOf(entities.Order{MaterialID: "m1"}, materials); r == nil || !r.Equal(d("3.5")) {
		t.Fatalf("expected 3.5, got %v", r)
	}
	if r := RateOf(entities.Order{ItemName: "free text"}, materials); r != nil {
		t.Fatalf("expected nil rate for free-text order")
	}
	if r := RateOf(entities.Order{MaterialID: "gone"}, materials); r != nil {
		t.Fatalf("expected nil rate for missing material")
	}
}

func TestEffectiveStatus(t *testing.T) {
	today := date("2025-03-10")
	cases := []struct {
		status entities.InstallmentStatus
		due    string
		want   entities.InstallmentStatus
	}{
		{entities.InstallmentStatusPendente, "2025-03-09", entities.InstallmentStatusAtrasado},
		{entities.InstallmentStatusPendente, "2025-03-10", entities.InstallmentStatusPendente},
		{entities.InstallmentStatusPendente, "2025-04-01", entities.InstallmentStatusPendente},
		{entities.InstallmentStatusPago, "2024-01-01", entities.InstallmentStatusPago},
		{entities.InstallmentStatusAtrasado, "2025-05-01", entities.InstallmentStatusPendente},
	}
	for _, tc := range cases {
		if got := EffectiveStatus(tc.status, date(tc.due), today); got != tc.want {
			t.Fatalf("%s due %s: expected %s, got %s", tc.status, tc.due, tc.want, got)
		}
	}

	// time of day on "today" does not matter
	late := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	if got := EffectiveStatus(entities.InstallmentStatusPendente, date("2025-03-10"), late); got != entities.InstallmentStatusPendente {
		t.Fatalf("expected Pendente on the due date itself, got %s", got)
	}

	items := WithEffectiveStatus([]entities.Installment{{Status: entities.InstallmentStatusPendente, DueDate: date("2025-01-01")}}, today)
	if items[0].Status != entities.InstallmentStatusAtrasado {
		t.Fatalf("expected Atrasado, got %s", items[0].Status)
	}
}

func TestBuildSchedule_EveryInstallmentHoldsACent(t *testing.T) {
	_, err := BuildSchedule(d("0.47"), 48, date("2025-01-01"), nil)
	var ve *entities.ValidationError
	if !errors.As(err, &ve) || ve.Field != "valor_total" {
		t.Fatalf("expected valor_total validation error, got %v", err)
	}

	shares, err := BuildSchedule(d("0.03"), 3, date("2025-01-01"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range shares {
		if !s.Value.Equal(d("0.01")) {
			t.Fatalf("installment %d: expected 0.01, got %s", s.Number, s.Value)
		}
	}
}
