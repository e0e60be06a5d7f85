package ledger

import (
	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeCommission returns faceValue * rate / 100 rounded half-up to the
// cent. A nil rate means the installment has no resolvable material: the
// commission is zero and rateUnknown is set.
func ComputeCommission(faceValue decimal.Decimal, rate *decimal.Decimal) (amount decimal.Decimal, rateUnknown bool) {
	if rate == nil {
		return decimal.Zero, true
	}
	// Round is half away from zero, which is half-up for non-negative values.
	return faceValue.Mul(*rate).Div(hundred).Round(2), false
}

// RateOf resolves the commission rate for an order. Orders without a catalog
// material, or whose material no longer exists, have no rate.
func RateOf(order entities.Order, materials map[string]entities.Material) *decimal.Decimal {
	if order.MaterialID == "" {
		return nil
	}
	m, ok := materials[order.MaterialID]
	if !ok {
		return nil
	}
	r := m.CommissionRate
	return &r
}

// ApplyCommission stores the commission derived from rate on inst. Paid
// installments are returned untouched: their commission is frozen.
func ApplyCommission(inst entities.Installment, rate *decimal.Decimal) entities.Installment {
	if inst.IsPaid() {
		return inst
	}
	amount, unknown := ComputeCommission(inst.Value, rate)
	inst.Commission = amount
	inst.CommissionRateUnknown = unknown
	if unknown {
		inst.CommissionRate = decimal.Zero
	} else {
		inst.CommissionRate = *rate
	}
	return inst
}
