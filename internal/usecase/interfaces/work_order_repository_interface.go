package interfaces

import (
	"context"
	"time"

	"managefarms/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// The work-order workflow must be able to:
//   - create the document on its first save
//   - replace the full document on subsequent draft saves
//   - transition status on submit/cancel
//   - list a plot's submitted orders inside a date window for spending rollups

type IWorkOrderRepository interface {
	Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
	Update(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error)
	ListSubmittedByPlotBetween(ctx context.Context, plotID string, from, to time.Time) ([]entities.WorkOrder, error)
}
