package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plot is the leased land parcel a work order is billed against. From the
// work-order workflow's perspective it is a read model: balances are derived
// from submitted work, never edited directly here.
//
// Storage model (DynamoDB):
//   - PK: id
type Plot struct {
	ID                       string    `json:"id"`
	Name                     string    `json:"name"`
	CustomerID               string    `json:"customer_id"`
	MonthlyMaintenanceBudget float64   `json:"monthly_maintenance_budget"`
	MaintenanceBalance       float64   `json:"maintenance_balance"`
	TotalAmountSpent         float64   `json:"total_amount_spent"`
	SupervisionCharges       float64   `json:"supervision_charges"`
	LastMaintenanceReset     time.Time `json:"last_maintenance_reset"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// PlotBalances is the budget snapshot consumed by the submission guard.
type PlotBalances struct {
	MonthlyMaintenanceBudget float64 `json:"monthly_maintenance_budget"`
	MaintenanceBalance       float64 `json:"maintenance_balance"`
}

// NeedsMonthlyReset reports whether the plot's balance bookkeeping predates
// the current month. Plots without a budget never reset.
func (p *Plot) NeedsMonthlyReset(now time.Time) bool {
	if p.MonthlyMaintenanceBudget <= 0 {
		return false
	}
	monthStart := FirstOfMonth(now)
	last := p.LastMaintenanceReset
	if last.IsZero() {
		last = monthStart
	}
	return last.Before(monthStart)
}

// SpentWithSupervision applies the plot's supervision surcharge percentage
// to a work order total: total × (1 + pct/100).
func SpentWithSupervision(total, supervisionPct float64) float64 {
	spent := decimal.NewFromFloat(total).
		Mul(decimal.NewFromInt(100).Add(decimal.NewFromFloat(supervisionPct))).
		Div(decimal.NewFromInt(100))
	f, _ := spent.Float64()
	return f
}

// FirstOfMonth returns midnight UTC on the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// LastOfMonth returns midnight UTC on the last day of t's month.
func LastOfMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, 1, -1)
}
