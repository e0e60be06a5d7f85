package reporting

import (
	"strings"
	"time"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

// StatusAll disables the status filter of the commission report.
const StatusAll entities.InstallmentStatus = "Todos"

// CommissionFilter selects rows of the commission report. Month is 1-12 or 0
// for every month; it matches the calendar month of the due date in any year.
type CommissionFilter struct {
	Status entities.InstallmentStatus
	Month  int
	Search string
}

// CommissionRow is an installment enriched with the names a reader needs.
type CommissionRow struct {
	Installment   entities.Installment
	InvoiceNumber string
	OrderID       string
	FactoryNumber string
	ClientID      string
	ClientName    string
}

type CommissionReport struct {
	Rows       []CommissionRow
	Totals     map[entities.InstallmentStatus]decimal.Decimal
	GrandTotal decimal.Decimal
}

// BuildCommissionReport filters the installments of s as of today.
//
// Rows keep insertion order (see SortInstallments). Per-status totals are
// taken over the month and search filtered set, before the status filter, so
// every status card stays meaningful while one status is selected. The grand
// total is the sum over the returned rows. Installments whose invoice is
// unknown are left out.
func BuildCommissionReport(s Snapshot, f CommissionFilter, today time.Time) CommissionReport {
	idx := s.index()
	items := append([]entities.Installment(nil), s.Installments...)
	SortInstallments(items)

	report := CommissionReport{
		Rows: []CommissionRow{},
		Totals: map[entities.InstallmentStatus]decimal.Decimal{
			entities.InstallmentStatusPendente: decimal.Zero,
			entities.InstallmentStatusAtrasado: decimal.Zero,
			entities.InstallmentStatusPago:     decimal.Zero,
		},
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))

	for _, it := range items {
		inv, ok := idx.invoices[it.InvoiceID]
		if !ok {
			continue
		}
		it.Status = ledger.EffectiveStatus(it.Status, it.DueDate, today)
		row := CommissionRow{Installment: it, InvoiceNumber: inv.Number, OrderID: inv.OrderID, ClientID: inv.ClientID}
		if o, ok := idx.orders[inv.OrderID]; ok {
			row.FactoryNumber = o.FactoryNumber
			if row.ClientID == "" {
				row.ClientID = o.ClientID
			}
		}
		if c, ok := idx.clients[row.ClientID]; ok {
			row.ClientName = c.Name
		}

		if f.Month != 0 && int(it.DueDate.Month()) != f.Month {
			continue
		}
		if term != "" && !matches(term, row.InvoiceNumber, row.ClientName, row.FactoryNumber) {
			continue
		}
		report.Totals[it.Status] = report.Totals[it.Status].Add(it.Commission)

		if f.Status != "" && f.Status != StatusAll && f.Status != it.Status {
			continue
		}
		report.Rows = append(report.Rows, row)
		report.GrandTotal = report.GrandTotal.Add(it.Commission)
	}
	return report
}

func matches(term string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
