package response

import (
	"time"

	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func init() {
	// Money and tonnage render as JSON numbers, the shape the frontend reads.
	decimal.MarshalJSONWithoutQuotes = true
}

func date(t time.Time) string {
	return entities.FormatDate(t)
}

func datePtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := entities.FormatDate(*t)
	return &s
}

// mapSlice converts a slice keeping an empty result as [] rather than null.
func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
