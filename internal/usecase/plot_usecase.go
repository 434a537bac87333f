package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"managefarms/internal/domain/entities"
	"managefarms/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPlotID = errors.New("invalid plot id")
	ErrPlotNotFound  = errors.New("plot not found")
)

// IPlotUseCase exposes plot balance operations to the HTTP layer.

type IPlotUseCase interface {
	GetBalances(ctx context.Context, plotID string) (entities.PlotBalances, error)
}

// PlotUseCase derives a plot's monthly spending figures from its submitted
// work orders, including the supervision surcharge, and keeps the stored
// bookkeeping fresh (monthly reset, post-submit rollups).

type PlotUseCase struct {
	repo     interfaces.IPlotRepository
	workRepo interfaces.IWorkOrderRepository
	bus      interfaces.IRealtimeBus
}

var (
	_ IPlotUseCase            = (*PlotUseCase)(nil)
	_ interfaces.IPlotService = (*PlotUseCase)(nil)
)

func NewPlotUseCase(repo interfaces.IPlotRepository, workRepo interfaces.IWorkOrderRepository, bus interfaces.IRealtimeBus) *PlotUseCase {
	return &PlotUseCase{repo: repo, workRepo: workRepo, bus: bus}
}

func (u *PlotUseCase) GetByID(ctx context.Context, plotID string) (entities.Plot, error) {
	plotID = strings.TrimSpace(plotID)
	if plotID == "" {
		return entities.Plot{}, ErrInvalidPlotID
	}
	p, err := u.repo.GetByID(ctx, plotID)
	if err != nil {
		return entities.Plot{}, err
	}
	if p.ID == "" {
		return entities.Plot{}, ErrPlotNotFound
	}
	return p, nil
}

// GetBalances returns the plot's monthly budget and remaining balance.
// Plots without a budget answer zeros. A stale month is reset before the
// current month's spending is applied.
func (u *PlotUseCase) GetBalances(ctx context.Context, plotID string) (entities.PlotBalances, error) {
	p, err := u.GetByID(ctx, plotID)
	if err != nil {
		return entities.PlotBalances{}, err
	}
	if p.MonthlyMaintenanceBudget <= 0 {
		return entities.PlotBalances{}, nil
	}

	p, err = u.refreshBalances(ctx, p)
	if err != nil {
		return entities.PlotBalances{}, err
	}
	return entities.PlotBalances{
		MonthlyMaintenanceBudget: p.MonthlyMaintenanceBudget,
		MaintenanceBalance:       p.MaintenanceBalance,
	}, nil
}

// RecalculateAfterWork refreshes the plot's spending bookkeeping after a
// work order submits or cancels and publishes a plot_updated event.
func (u *PlotUseCase) RecalculateAfterWork(ctx context.Context, plotID string) (entities.Plot, error) {
	p, err := u.GetByID(ctx, plotID)
	if err != nil {
		return entities.Plot{}, err
	}
	if p.MonthlyMaintenanceBudget <= 0 {
		return p, nil
	}

	p, err = u.refreshBalances(ctx, p)
	if err != nil {
		return entities.Plot{}, err
	}

	if u.bus != nil {
		u.bus.Publish(interfaces.EventPlotUpdated, map[string]any{
			"plot_name":           p.ID,
			"total_amount_spent":  p.TotalAmountSpent,
			"maintenance_balance": p.MaintenanceBalance,
		})
	}
	return p, nil
}

func (u *PlotUseCase) refreshBalances(ctx context.Context, p entities.Plot) (entities.Plot, error) {
	now := time.Now().UTC()
	lastReset := p.LastMaintenanceReset
	if p.NeedsMonthlyReset(now) {
		log.Printf("[plot][usecase] monthly reset plot_id=%s", p.ID)
		lastReset = entities.FirstOfMonth(now)
	}

	spent, err := u.totalSpentThisMonth(ctx, p, now)
	if err != nil {
		return entities.Plot{}, err
	}
	balance, _ := decimal.NewFromFloat(p.MonthlyMaintenanceBudget).
		Sub(decimal.NewFromFloat(spent)).Float64()

	updated, err := u.repo.UpdateBalances(ctx, p.ID, spent, balance, lastReset)
	if err != nil {
		return entities.Plot{}, err
	}
	if updated.ID == "" {
		return entities.Plot{}, ErrPlotNotFound
	}
	return updated, nil
}

// totalSpentThisMonth sums the plot's submitted work-order totals for the
// current month, each inflated by the supervision surcharge.
func (u *PlotUseCase) totalSpentThisMonth(ctx context.Context, p entities.Plot, now time.Time) (float64, error) {
	orders, err := u.workRepo.ListSubmittedByPlotBetween(ctx, p.ID, entities.FirstOfMonth(now), entities.LastOfMonth(now))
	if err != nil {
		return 0, err
	}
	total := decimal.Zero
	for _, w := range orders {
		total = total.Add(decimal.NewFromFloat(entities.SpentWithSupervision(w.TotalCost, p.SupervisionCharges)))
	}
	f, _ := total.Float64()
	return f, nil
}
