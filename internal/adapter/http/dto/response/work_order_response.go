package response

import (
	"time"

	"managefarms/internal/domain/entities"
	"managefarms/internal/domain/form"
)

type LineItemResponse struct {
	ItemID      string  `json:"item_id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"item_display_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Count       int     `json:"count"`
	TotalPrice  float64 `json:"total_price"`
}

type WorkOrderResponse struct {
	ID                       string             `json:"id"`
	PlotID                   string             `json:"plot_id"`
	CustomerID               string             `json:"customer_id"`
	WorkTypeID               string             `json:"work_type_id"`
	WorkDate                 time.Time          `json:"work_date"`
	Description              string             `json:"description"`
	Status                   string             `json:"status"`
	Equipment                []LineItemResponse `json:"equipment_table"`
	Material                 []LineItemResponse `json:"material_table"`
	Labor                    []LineItemResponse `json:"labor_table"`
	TotalCost                float64            `json:"total_cost"`
	MonthlyMaintenanceBudget float64            `json:"monthly_maintenance_budget"`
	MaintenanceBalance       float64            `json:"maintenance_balance"`
	CreatedAt                time.Time          `json:"created_at"`
	UpdatedAt                time.Time          `json:"updated_at"`
}

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                       w.ID,
		PlotID:                   w.PlotID,
		CustomerID:               w.CustomerID,
		WorkTypeID:               w.WorkTypeID,
		WorkDate:                 w.WorkDate,
		Description:              w.Description,
		Status:                   string(w.Status),
		Equipment:                fromLineItems(w.Equipment),
		Material:                 fromLineItems(w.Material),
		Labor:                    fromLineItems(w.Labor),
		TotalCost:                w.TotalCost,
		MonthlyMaintenanceBudget: w.MonthlyMaintenanceBudget,
		MaintenanceBalance:       w.MaintenanceBalance,
		CreatedAt:                w.CreatedAt,
		UpdatedAt:                w.UpdatedAt,
	}
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ItemID:      li.ItemID,
		Name:        li.Name,
		DisplayName: li.DisplayName,
		Quantity:    li.Quantity,
		Unit:        li.Unit,
		UnitPrice:   li.UnitPrice,
		Count:       li.Count,
		TotalPrice:  li.TotalPrice,
	}
}

func fromLineItems(lines []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(lines))
	for _, li := range lines {
		out = append(out, FromLineItem(li))
	}
	return out
}

// FormStateResponse is the visibility snapshot of an open form session.
type FormStateResponse struct {
	ActiveSection string          `json:"active_section"`
	TablesVisible map[string]bool `json:"tables_visible"`
	Focus         string          `json:"focus"`
	ReadOnly      bool            `json:"read_only"`
}

func FromFormState(s form.State) FormStateResponse {
	visible := make(map[string]bool, len(s.TableVisible))
	for c, v := range s.TableVisible {
		visible[string(c)] = v
	}
	return FormStateResponse{
		ActiveSection: string(s.Active),
		TablesVisible: visible,
		Focus:         string(s.Focus),
		ReadOnly:      s.ReadOnly,
	}
}

// SaveOutcomeResponse reports how the save pipeline ended; Prompt is only
// present when the budget confirmation is required.
type SaveOutcomeResponse struct {
	Status    string             `json:"status"`
	Prompt    string             `json:"prompt,omitempty"`
	WorkOrder *WorkOrderResponse `json:"work_order,omitempty"`
}

// AddLineOutcomeResponse reports one pass of the line-item pipeline. Skips
// are not errors: the order is returned unchanged with staging retained.
type AddLineOutcomeResponse struct {
	Status    string            `json:"status"`
	Line      *LineItemResponse `json:"line,omitempty"`
	WorkOrder WorkOrderResponse `json:"work_order"`
	FormState FormStateResponse `json:"form_state"`
}

type PlotBalancesResponse struct {
	MonthlyMaintenanceBudget float64 `json:"monthly_maintenance_budget"`
	MaintenanceBalance       float64 `json:"maintenance_balance"`
}

func FromPlotBalances(b entities.PlotBalances) PlotBalancesResponse {
	return PlotBalancesResponse{
		MonthlyMaintenanceBudget: b.MonthlyMaintenanceBudget,
		MaintenanceBalance:       b.MaintenanceBalance,
	}
}
