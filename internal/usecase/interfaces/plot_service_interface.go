package interfaces

import (
	"context"

	"managefarms/internal/domain/entities"
)

// IPlotService exposes the plot-side collaborators of the work-order
// workflow: current balances (with the monthly reset applied) and the
// spending rollup that runs after a work order submits or cancels.

type IPlotService interface {
	GetByID(ctx context.Context, plotID string) (entities.Plot, error)
	GetBalances(ctx context.Context, plotID string) (entities.PlotBalances, error)
	RecalculateAfterWork(ctx context.Context, plotID string) (entities.Plot, error)
}
