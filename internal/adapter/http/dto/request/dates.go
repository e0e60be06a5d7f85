package request

import (
	"strings"
	"time"

	"erp_vendas/internal/domain/entities"
)

// optionalDate parses a calendar date; an empty value is the zero time.
func optionalDate(field, raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	t, err := entities.ParseDate(raw)
	if err != nil {
		return time.Time{}, entities.NewValidationError(field, "expected YYYY-MM-DD")
	}
	return t, nil
}

func dateList(field string, raw []string) ([]time.Time, error) {
	var out []time.Time
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		t, err := optionalDate(field, r)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
