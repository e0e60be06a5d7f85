package spreadsheet

import (
	"fmt"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/domain/reporting"
	"erp_vendas/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	rowsSheet    = "Comissoes"
	summarySheet = "Resumo"

	// Built-in "#,##0.00".
	moneyFormat = 4
)

var header = []any{
	"Nota Fiscal", "Parcela", "Cliente", "Numero Fabrica", "Vencimento",
	"Valor", "% Comissao", "Comissao", "Status", "Pagamento",
}

// CommissionExporter renders a commission report as an XLSX workbook with
// one row per installment and a summary sheet with the per-status totals.
type CommissionExporter struct{}

var _ interfaces.ICommissionExporter = (*CommissionExporter)(nil)

func NewCommissionExporter() *CommissionExporter {
	return &CommissionExporter{}
}

func (e *CommissionExporter) Export(report reporting.CommissionReport) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rowsSheet); err != nil {
		return nil, "", err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		return nil, "", err
	}

	if err := f.SetSheetRow(rowsSheet, "A1", &header); err != nil {
		return nil, "", err
	}
	for i, row := range report.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(rowsSheet, cell, rowValues(row)); err != nil {
			return nil, "", err
		}
	}
	if n := len(report.Rows); n > 0 {
		if err := f.SetCellStyle(rowsSheet, "F2", fmt.Sprintf("F%d", n+1), money); err != nil {
			return nil, "", err
		}
		if err := f.SetCellStyle(rowsSheet, "H2", fmt.Sprintf("H%d", n+1), money); err != nil {
			return nil, "", err
		}
	}
	if err := f.SetColWidth(rowsSheet, "A", "J", 16); err != nil {
		return nil, "", err
	}

	if err := writeSummary(f, report, money); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), ContentType, nil
}

func rowValues(row reporting.CommissionRow) *[]any {
	it := row.Installment
	rate := any(it.CommissionRate.InexactFloat64())
	if it.CommissionRateUnknown {
		rate = "-"
	}
	paid := ""
	if it.PaymentDate != nil {
		paid = entities.FormatDate(*it.PaymentDate)
	}
	return &[]any{
		row.InvoiceNumber,
		it.Label(),
		row.ClientName,
		row.FactoryNumber,
		entities.FormatDate(it.DueDate),
		it.Value.InexactFloat64(),
		rate,
		it.Commission.InexactFloat64(),
		string(it.Status),
		paid,
	}
}

func writeSummary(f *excelize.File, report reporting.CommissionReport, money int) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	rows := [][]any{
		{"Status", "Comissao"},
		{"Pago", report.Totals[entities.InstallmentStatusPago].InexactFloat64()},
		{"Pendente", report.Totals[entities.InstallmentStatusPendente].InexactFloat64()},
		{"Atrasado", report.Totals[entities.InstallmentStatusAtrasado].InexactFloat64()},
		{"Total", report.GrandTotal.InexactFloat64()},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &r); err != nil {
			return err
		}
	}
	return f.SetCellStyle(summarySheet, "B2", fmt.Sprintf("B%d", len(rows)), money)
}
