package usecase

import (
	"strings"
	"time"

	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Clock returns the current instant. Use cases take one so tests can pin
// "today", which drives overdue status and default dates.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

func orSystemClock(c Clock) Clock {
	if c == nil {
		return systemClock
	}
	return c
}

var maxRate = decimal.NewFromInt(100)

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", entities.NewValidationError(field, "required")
	}
	return value, nil
}

func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return entities.NewValidationError(field, "must not be negative")
	}
	return nil
}

func requireCents(field string, v decimal.Decimal) error {
	if !v.Equal(v.Round(2)) {
		return entities.NewValidationError(field, "at most 2 decimal places")
	}
	return nil
}
