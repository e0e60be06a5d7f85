package entities

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2025-01-15", "2025-01-15", true},
		{" 2025-01-15 ", "2025-01-15", true},
		{"2025-01-15T13:45:00Z", "2025-01-15", true},
		{"2025-01-15T23:00:00.123-03:00", "2025-01-15", true},
		{"15/01/2025", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("%q: unexpected error state %v", tc.in, err)
		}
		if tc.ok && FormatDate(got) != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.in, tc.want, FormatDate(got))
		}
	}
	if FormatDate(time.Time{}) != "" {
		t.Fatalf("expected empty string for zero date")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{nil, ""},
		{NewValidationError("numero_nf", "required"), KindValidation},
		{fmt.Errorf("issue: %w", ErrDuplicateInvoiceNumber), KindDuplicateInvoiceNumber},
		{ErrInvalidOrderState, KindInvalidOrderState},
		{ErrAlreadySettled, KindAlreadySettled},
		{ErrNotFound, KindNotFound},
		{StorageError("PutItem", errors.New("throttled")), KindStorageFailure},
		{errors.New("boom"), KindInternal},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Fatalf("%v: expected %s, got %s", tc.err, tc.want, got)
		}
	}
	if StorageError("PutItem", nil) != nil {
		t.Fatalf("expected nil for nil storage error")
	}
}

func TestMaterialFactor(t *testing.T) {
	m := Material{UnitPrice: decimal.RequireFromString("3.20"), UnitWeight: decimal.RequireFromString("0.8")}
	if got := m.Factor(); !got.IsZero() {
		t.Fatalf("expected 0.004 to round to 0, got %s", got)
	}
	m = Material{UnitPrice: decimal.RequireFromString("4500"), UnitWeight: decimal.RequireFromString("0.5")}
	if got := m.Factor(); !got.Equal(decimal.RequireFromString("9")) {
		t.Fatalf("expected 9, got %s", got)
	}
	if got := (Material{UnitPrice: decimal.NewFromInt(10)}).Factor(); !got.IsZero() {
		t.Fatalf("expected 0 without weight, got %s", got)
	}
}

func TestStatuses(t *testing.T) {
	if !SegmentDieCut.Valid() || Segment("PAPEL").Valid() {
		t.Fatalf("unexpected segment validity")
	}
	if !OrderStatusPendente.Invoiceable() || !OrderStatusImplantado.Invoiceable() || OrderStatusFaturado.Invoiceable() {
		t.Fatalf("unexpected invoiceable statuses")
	}
	if OrderStatus("CANCELADO").Valid() || !InstallmentStatusPago.Valid() {
		t.Fatalf("unexpected status validity")
	}
	if got := (Installment{Number: 2, TotalInstallments: 3}).Label(); got != "2/3" {
		t.Fatalf("expected 2/3, got %s", got)
	}
}
