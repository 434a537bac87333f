package interfaces

import (
	"context"
	"time"

	"managefarms/internal/domain/entities"
)

// IPlotRepository abstracts DynamoDB persistence for Plot. The workflow only
// reads plots and writes back derived balance bookkeeping.

type IPlotRepository interface {
	GetByID(ctx context.Context, id string) (entities.Plot, error)
	UpdateBalances(ctx context.Context, id string, totalSpent, balance float64, lastReset time.Time) (entities.Plot, error)
}
