package spreadsheet

import (
	"bytes"
	"testing"
	"time"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/domain/reporting"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestCommissionExporter_Export(t *testing.T) {
	paid := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	report := reporting.CommissionReport{
		Rows: []reporting.CommissionRow{
			{
				Installment: entities.Installment{
					Number: 1, TotalInstallments: 2,
					Value:          decimal.RequireFromString("500"),
					DueDate:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
					Status:         entities.InstallmentStatusPago,
					PaymentDate:    &paid,
					Commission:     decimal.RequireFromString("25"),
					CommissionRate: decimal.RequireFromString("5"),
				},
				InvoiceNumber: "NF-1",
				ClientName:    "Embalagens Sul",
				FactoryNumber: "F-77",
			},
			{
				Installment: entities.Installment{
					Number: 2, TotalInstallments: 2,
					Value:                 decimal.RequireFromString("500"),
					DueDate:               time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
					Status:                entities.InstallmentStatusPendente,
					CommissionRateUnknown: true,
				},
				InvoiceNumber: "NF-1",
			},
		},
		Totals: map[entities.InstallmentStatus]decimal.Decimal{
			entities.InstallmentStatusPago:     decimal.RequireFromString("25"),
			entities.InstallmentStatusPendente: decimal.Zero,
			entities.InstallmentStatusAtrasado: decimal.Zero,
		},
		GrandTotal: decimal.RequireFromString("25"),
	}

	content, contentType, err := NewCommissionExporter().Export(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != ContentType {
		t.Fatalf("unexpected content type %q", contentType)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("output is not a workbook: %v", err)
	}
	defer f.Close()

	raw := excelize.Options{RawCellValue: true}
	checks := []struct {
		sheet, cell, want string
	}{
		{rowsSheet, "A1", "Nota Fiscal"},
		{rowsSheet, "A2", "NF-1"},
		{rowsSheet, "B2", "1/2"},
		{rowsSheet, "C2", "Embalagens Sul"},
		{rowsSheet, "H2", "25"},
		{rowsSheet, "J2", "2025-01-20"},
		{rowsSheet, "G3", "-"},
		{rowsSheet, "I3", "Pendente"},
		{summarySheet, "B2", "25"},
		{summarySheet, "A5", "Total"},
	}
	for _, c := range checks {
		got, err := f.GetCellValue(c.sheet, c.cell, raw)
		if err != nil {
			t.Fatalf("%s!%s: %v", c.sheet, c.cell, err)
		}
		if got != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}
}

func TestCommissionExporter_EmptyReport(t *testing.T) {
	content, _, err := NewCommissionExporter().Export(reporting.CommissionReport{})
	if err != nil || len(content) == 0 {
		t.Fatalf("expected a workbook with headers only, got %d bytes (%v)", len(content), err)
	}
}
