package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrderStatus represents the lifecycle of a work order.
//
// Domain notes:
//   - Draft orders are freely mutable (line items, description, references).
//   - Submitted and Cancelled orders are immutable; Cancelled is terminal.
//   - Cancellation is only reachable from Submitted.

type WorkOrderStatus string

const (
	WorkOrderStatusDraft     WorkOrderStatus = "draft"
	WorkOrderStatusSubmitted WorkOrderStatus = "submitted"
	WorkOrderStatusCancelled WorkOrderStatus = "cancelled"
)

// WorkOrder is one unit of billable farm work against a plot.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (plot_id-index): plot_id
//
// Monetary representation:
//   - TotalCost is always a recomputation over the three line-item tables,
//     never an independently maintained figure. The stored value is a cache
//     of the last recompute.
type WorkOrder struct {
	ID          string          `json:"id"`
	PlotID      string          `json:"plot_id"`
	CustomerID  string          `json:"customer_id"`
	WorkTypeID  string          `json:"work_type_id"`
	WorkDate    time.Time       `json:"work_date"`
	Description string          `json:"description"`
	Status      WorkOrderStatus `json:"status"`

	Equipment []LineItem `json:"equipment"`
	Material  []LineItem `json:"material"`
	Labor     []LineItem `json:"labor"`

	TotalCost float64 `json:"total_cost"`

	// Copied from the plot at draft creation; consulted by the budget gate.
	MonthlyMaintenanceBudget float64 `json:"monthly_maintenance_budget"`
	MaintenanceBalance       float64 `json:"maintenance_balance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Table returns the line-item collection for the given category.
func (w *WorkOrder) Table(c Category) []LineItem {
	switch c {
	case CategoryEquipment:
		return w.Equipment
	case CategoryMaterial:
		return w.Material
	case CategoryLabor:
		return w.Labor
	}
	return nil
}

// AppendLine adds a line item to the category's table. Line items are never
// mutated in place after creation; re-entry appends a new row.
func (w *WorkOrder) AppendLine(c Category, li LineItem) {
	switch c {
	case CategoryEquipment:
		w.Equipment = append(w.Equipment, li)
	case CategoryMaterial:
		w.Material = append(w.Material, li)
	case CategoryLabor:
		w.Labor = append(w.Labor, li)
	}
}

// RecomputeTotalCost sums total_price across all three tables and writes the
// result into TotalCost. A nil table counts as empty and an unset row total
// counts as zero.
func (w *WorkOrder) RecomputeTotalCost() float64 {
	total := decimal.Zero
	for _, table := range [][]LineItem{w.Equipment, w.Material, w.Labor} {
		for _, row := range table {
			total = total.Add(decimal.NewFromFloat(row.TotalPrice))
		}
	}
	w.TotalCost, _ = total.Float64()
	return w.TotalCost
}

// NormalizeLineNames re-derives every line's display-name multiplier prefix
// from its own count. Idempotent.
func (w *WorkOrder) NormalizeLineNames() {
	tables := [][]LineItem{w.Equipment, w.Material, w.Labor}
	for _, table := range tables {
		for i := range table {
			table[i].DisplayName = NormalizeDisplayName(table[i].DisplayName, table[i].Count)
		}
	}
}

// Editable reports whether the order still accepts mutations.
func (w *WorkOrder) Editable() bool {
	return w.Status == WorkOrderStatusDraft
}

// Immutable reports whether the order has left Draft.
func (w *WorkOrder) Immutable() bool {
	return w.Status == WorkOrderStatusSubmitted || w.Status == WorkOrderStatusCancelled
}
