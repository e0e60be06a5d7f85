package reporting

import (
	"erp_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Attainment is the progress of one client towards its monthly goal.
type Attainment struct {
	ClientID     string
	ClientName   string
	Year         int
	Month        int
	TargetTons   decimal.Decimal
	RealizedTons decimal.Decimal
	Percent      decimal.Decimal
}

type MonthlyAttainment struct {
	Year         int
	Month        int
	Clients      []Attainment
	TargetTons   decimal.Decimal
	RealizedTons decimal.Decimal
	Percent      decimal.Decimal
}

// realizedTons is a known limitation: invoices carry no weight linkage per
// client and month yet, so realized tonnage is always zero until that
// integration exists.
func realizedTons(string, int, int) decimal.Decimal {
	return decimal.Zero
}

func percent(realized, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	return realized.Div(target).Mul(hundred).Round(2)
}

var hundred = decimal.NewFromInt(100)

// GoalAttainment computes the attainment of client in year/month. A client
// without a goal has a zero target.
func GoalAttainment(goals []entities.Goal, client entities.Client, year, month int) Attainment {
	target := decimal.Zero
	for _, g := range goals {
		if g.ClientID == client.ID && g.Year == year && g.Month == month {
			target = g.TargetTons
			break
		}
	}
	realized := realizedTons(client.ID, year, month)
	return Attainment{
		ClientID:     client.ID,
		ClientName:   client.Name,
		Year:         year,
		Month:        month,
		TargetTons:   target,
		RealizedTons: realized,
		Percent:      percent(realized, target),
	}
}

// MonthAttainment lists every client for year/month with overall totals.
func MonthAttainment(s Snapshot, year, month int) MonthlyAttainment {
	out := MonthlyAttainment{Year: year, Month: month, Clients: make([]Attainment, 0, len(s.Clients))}
	for _, c := range s.Clients {
		a := GoalAttainment(s.Goals, c, year, month)
		out.Clients = append(out.Clients, a)
		out.TargetTons = out.TargetTons.Add(a.TargetTons)
		out.RealizedTons = out.RealizedTons.Add(a.RealizedTons)
	}
	out.Percent = percent(out.RealizedTons, out.TargetTons)
	return out
}
