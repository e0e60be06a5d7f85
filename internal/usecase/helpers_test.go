package usecase

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

func fixedClock(s string) Clock {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func expectKind(t *testing.T, err error, kind entities.ErrorKind) {
	t.Helper()
	if got := entities.KindOf(err); got != kind {
		t.Fatalf("expected %s, got %s (%v)", kind, got, err)
	}
}

var errDB = entities.StorageError("Scan", errors.New("throttled"))
