package ledger

import (
	"time"

	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Share is one slot of an installment schedule.
type Share struct {
	Number  int
	Value   decimal.Decimal
	DueDate time.Time
}

// SplitAmount divides total into n shares floored to the cent. The last
// share absorbs the remainder so the shares always add up to total exactly.
func SplitAmount(total decimal.Decimal, n int) []decimal.Decimal {
	if n < 1 {
		return nil
	}
	share := total.Div(decimal.NewFromInt(int64(n))).RoundFloor(2)
	out := make([]decimal.Decimal, n)
	for i := 0; i < n-1; i++ {
		out[i] = share
	}
	out[n-1] = total.Sub(share.Mul(decimal.NewFromInt(int64(n - 1))))
	return out
}

// AddMonthsClamped moves d forward by months calendar months keeping the
// day of month, clamped to the last day of the target month
// (Jan 31 + 1 month = Feb 28/29).
func AddMonthsClamped(d time.Time, months int) time.Time {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// BuildSchedule returns the n shares of total. Due dates come from dueDates
// when given (len must equal n), otherwise installment k is due
// firstDue + (k-1) months.
func BuildSchedule(total decimal.Decimal, n int, firstDue time.Time, dueDates []time.Time) ([]Share, error) {
	if n < 1 || n > entities.MaxInstallments {
		return nil, entities.NewValidationError("numero_parcelas", "must be between 1 and 48")
	}
	if !total.IsPositive() {
		return nil, entities.NewValidationError("valor_total", "must be greater than zero")
	}
	if !total.Equal(total.Round(2)) {
		return nil, entities.NewValidationError("valor_total", "must have at most two decimal places")
	}
	if total.LessThan(decimal.New(int64(n), -2)) {
		return nil, entities.NewValidationError("valor_total", "must be at least 0.01 per installment")
	}
	if len(dueDates) > 0 {
		if len(dueDates) != n {
			return nil, entities.NewValidationError("datas_vencimento", "must have one date per installment")
		}
		for i := 1; i < len(dueDates); i++ {
			if dueDates[i].Before(dueDates[i-1]) {
				return nil, entities.NewValidationError("datas_vencimento", "must be in chronological order")
			}
		}
	} else if firstDue.IsZero() {
		return nil, entities.NewValidationError("data_primeiro_vencimento", "is required")
	}

	values := SplitAmount(total, n)
	shares := make([]Share, n)
	for i := range values {
		due := AddMonthsClamped(entities.DateOf(firstDue), i)
		if len(dueDates) > 0 {
			due = entities.DateOf(dueDates[i])
		}
		shares[i] = Share{Number: i + 1, Value: values[i], DueDate: due}
	}
	return shares, nil
}
