package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"managefarms/internal/domain/entities"
	"managefarms/internal/domain/form"
	"managefarms/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidWorkOrderID    = errors.New("invalid work order id")
	ErrWorkOrderNotFound     = errors.New("work order not found")
	ErrWorkOrderImmutable    = errors.New("work order is no longer editable")
	ErrWorkOrderNotSaved     = errors.New("work order has never been saved")
	ErrWorkOrderNotSubmitted = errors.New("work order is not submitted")
	ErrInvalidSaveDecision   = errors.New("invalid save decision")
)

// MaintenanceBalancePrompt is the confirmation shown when a first save
// exceeds the plot's remaining maintenance balance.
const MaintenanceBalancePrompt = "This work amount exceeds the Maintenance balance. Do you still want to save this work?"

// SaveDecision is the caller's answer to the budget confirmation.

type SaveDecision string

const (
	SaveDecisionUnasked SaveDecision = "unasked"
	SaveDecisionConfirm SaveDecision = "yes"
	SaveDecisionDecline SaveDecision = "no"
)

// SaveStatus is the tri-state outcome of the save pipeline.

type SaveStatus string

const (
	SaveStatusSaved             SaveStatus = "saved"
	SaveStatusNeedsConfirmation SaveStatus = "needs_confirmation"
	SaveStatusAborted           SaveStatus = "aborted"
)

// SaveResult reports how the save pipeline ended. On NeedsConfirmation the
// document is untouched and Prompt carries the question to resolve; on
// Aborted nothing was persisted.
type SaveResult struct {
	Status SaveStatus
	Prompt string
	Order  entities.WorkOrder
}

// BuildStatus classifies one pass through the line-item builder. The skip
// variants are soft outcomes: staging stays populated and no row is created.

type BuildStatus string

const (
	LineBuilt              BuildStatus = "built"
	LineSkippedIncomplete  BuildStatus = "skipped_incomplete"
	LineSkippedUnknownItem BuildStatus = "skipped_unknown_item"
	LineSkippedNoPrice     BuildStatus = "skipped_no_price"
)

// AddLineResult is the outcome of the catalog-lookup → line-item-builder →
// cost-aggregator pipeline for one staging selection.
type AddLineResult struct {
	Status    BuildStatus
	Line      entities.LineItem
	Order     entities.WorkOrder
	Staging   form.StagingSelection
	FormState form.State
}

// CreateDraftInput carries the header fields of a new draft.
type CreateDraftInput struct {
	PlotID      string
	CustomerID  string
	WorkTypeID  string
	WorkDate    time.Time
	Description string
}

// IWorkOrderUseCase exposes the work-order workflow.
//
// These operations map to the form lifecycle:
//   - opening a new form => CreateDraft()
//   - filling a staging group => AddLineItem()
//   - ctrl+s / Save button => Save() with the confirmation decision
//   - Submit / Cancel actions => Submit(), Cancel()

type IWorkOrderUseCase interface {
	CreateDraft(ctx context.Context, input CreateDraftInput) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	AddLineItem(ctx context.Context, orderID string, category entities.Category, sel form.StagingSelection) (AddLineResult, error)
	Save(ctx context.Context, orderID string, decision SaveDecision) (SaveResult, error)
	Submit(ctx context.Context, orderID string) (entities.WorkOrder, error)
	Cancel(ctx context.Context, orderID string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo     interfaces.IWorkOrderRepository
	plots    interfaces.IPlotService
	lookup   interfaces.ICatalogLookup
	sessions interfaces.IFormSessions
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, plots interfaces.IPlotService, lookup interfaces.ICatalogLookup, sessions interfaces.IFormSessions) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, plots: plots, lookup: lookup, sessions: sessions}
}

// CreateDraft opens a new draft work order in a form session. The draft is
// not persisted until the first Save; the budget gate keys off that.
func (u *WorkOrderUseCase) CreateDraft(ctx context.Context, input CreateDraftInput) (entities.WorkOrder, error) {
	now := time.Now().UTC()
	w := entities.WorkOrder{
		ID:          uuid.NewString(),
		PlotID:      strings.TrimSpace(input.PlotID),
		CustomerID:  strings.TrimSpace(input.CustomerID),
		WorkTypeID:  strings.TrimSpace(input.WorkTypeID),
		WorkDate:    input.WorkDate,
		Description: strings.TrimSpace(input.Description),
		Status:      entities.WorkOrderStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if w.WorkDate.IsZero() {
		w.WorkDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	if w.PlotID != "" {
		plot, err := u.plots.GetByID(ctx, w.PlotID)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		if w.CustomerID == "" {
			w.CustomerID = plot.CustomerID
		}
		balances, err := u.plots.GetBalances(ctx, w.PlotID)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		w.MonthlyMaintenanceBudget = balances.MonthlyMaintenanceBudget
		w.MaintenanceBalance = balances.MaintenanceBalance
	}

	if w.WorkTypeID != "" && w.Description == "" {
		desc, found, err := u.lookup.ResolveDescription(ctx, w.WorkTypeID)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		if found {
			w.Description = desc
		}
	}

	if _, err := u.sessions.Open(ctx, w, false); err != nil {
		return entities.WorkOrder{}, err
	}
	log.Printf("[work][usecase] draft created id=%s plot_id=%s", w.ID, w.PlotID)
	return w, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	sess, err := u.session(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return sess.Order(), nil
}

// AddLineItem runs one staging selection through the pipeline: resolve the
// unit when absent, require a complete selection, resolve name and price,
// append the priced row and recompute the total. Lookup misses return a
// skip outcome with staging untouched; no partial row is ever created.
func (u *WorkOrderUseCase) AddLineItem(ctx context.Context, orderID string, category entities.Category, sel form.StagingSelection) (AddLineResult, error) {
	if !category.Valid() {
		return AddLineResult{}, ErrInvalidCategory
	}
	sess, err := u.session(ctx, orderID)
	if err != nil {
		return AddLineResult{}, err
	}
	order := sess.Order()
	if order.Immutable() {
		return AddLineResult{}, ErrWorkOrderImmutable
	}

	staged := sess.MergeStaging(category, sel)

	if staged.Unit == "" && staged.ItemID != "" {
		unit, found, err := u.lookup.ResolveUnit(ctx, staged.ItemID)
		if err != nil {
			return AddLineResult{}, err
		}
		if found {
			sess.SetStagingUnit(category, unit)
			staged.Unit = unit
		}
	}

	if !staged.Complete() {
		return AddLineResult{Status: LineSkippedIncomplete, Order: order, Staging: staged, FormState: sess.State()}, nil
	}

	name, found, err := u.lookup.ResolveName(ctx, staged.ItemID)
	if err != nil {
		return AddLineResult{}, err
	}
	if !found {
		return AddLineResult{Status: LineSkippedUnknownItem, Order: order, Staging: staged, FormState: sess.State()}, nil
	}

	price, found, err := u.lookup.ResolvePrice(ctx, staged.ItemID)
	if err != nil {
		return AddLineResult{}, err
	}
	if !found {
		// No price-list entry: abort with no feedback, staging intact.
		return AddLineResult{Status: LineSkippedNoPrice, Order: order, Staging: staged, FormState: sess.State()}, nil
	}

	line := entities.NewLineItem(staged.ItemID, name, staged.Quantity, staged.Unit, price, staged.Count)
	order = sess.Mutate(func(o *entities.WorkOrder) {
		o.AppendLine(category, line)
		o.RecomputeTotalCost()
		o.UpdatedAt = time.Now().UTC()
	})
	state := sess.LineAppended(category)

	log.Printf("[work][usecase] line added order_id=%s category=%s item_id=%s total=%.2f order_total=%.2f",
		order.ID, category, line.ItemID, line.TotalPrice, order.TotalCost)
	return AddLineResult{Status: LineBuilt, Line: line, Order: order, FormState: state}, nil
}

// Save runs the pre-commit pipeline: recompute the total, gate a first save
// that exceeds the plot's maintenance balance behind the confirmation, then
// normalize display names and persist. Declining aborts with no write.
func (u *WorkOrderUseCase) Save(ctx context.Context, orderID string, decision SaveDecision) (SaveResult, error) {
	switch decision {
	case SaveDecisionUnasked, SaveDecisionConfirm, SaveDecisionDecline:
	default:
		return SaveResult{}, ErrInvalidSaveDecision
	}

	sess, err := u.session(ctx, orderID)
	if err != nil {
		return SaveResult{}, err
	}
	order := sess.Order()
	if order.Immutable() {
		return SaveResult{}, ErrWorkOrderImmutable
	}

	order = sess.Mutate(func(o *entities.WorkOrder) {
		o.RecomputeTotalCost()
	})

	firstSave := !sess.Persisted()
	if firstSave && order.MonthlyMaintenanceBudget > 0 && order.TotalCost > order.MaintenanceBalance {
		switch decision {
		case SaveDecisionUnasked:
			return SaveResult{Status: SaveStatusNeedsConfirmation, Prompt: MaintenanceBalancePrompt, Order: order}, nil
		case SaveDecisionDecline:
			log.Printf("[work][usecase] save aborted by user order_id=%s total=%.2f balance=%.2f",
				order.ID, order.TotalCost, order.MaintenanceBalance)
			return SaveResult{Status: SaveStatusAborted, Order: order}, nil
		}
	}

	order = sess.Mutate(func(o *entities.WorkOrder) {
		o.NormalizeLineNames()
		o.UpdatedAt = time.Now().UTC()
	})

	var saved entities.WorkOrder
	if firstSave {
		saved, err = u.repo.Create(ctx, order)
	} else {
		saved, err = u.repo.Update(ctx, order)
	}
	if err != nil {
		log.Printf("[work][usecase] save failed order_id=%s first_save=%t err=%v", order.ID, firstSave, err)
		return SaveResult{}, err
	}
	sess.MarkPersisted()
	sess.SetOrder(saved)

	log.Printf("[work][usecase] saved order_id=%s first_save=%t total=%.2f", saved.ID, firstSave, saved.TotalCost)
	return SaveResult{Status: SaveStatusSaved, Order: saved}, nil
}

// Submit transitions a saved draft to Submitted and rolls the spending up
// to the plot.
func (u *WorkOrderUseCase) Submit(ctx context.Context, orderID string) (entities.WorkOrder, error) {
	return u.transition(ctx, orderID, entities.WorkOrderStatusSubmitted)
}

// Cancel transitions a submitted order to Cancelled and rolls the spending
// back off the plot.
func (u *WorkOrderUseCase) Cancel(ctx context.Context, orderID string) (entities.WorkOrder, error) {
	return u.transition(ctx, orderID, entities.WorkOrderStatusCancelled)
}

func (u *WorkOrderUseCase) transition(ctx context.Context, orderID string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	sess, err := u.session(ctx, orderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	order := sess.Order()

	switch status {
	case entities.WorkOrderStatusSubmitted:
		if !sess.Persisted() {
			return entities.WorkOrder{}, ErrWorkOrderNotSaved
		}
		if order.Status != entities.WorkOrderStatusDraft {
			return entities.WorkOrder{}, ErrWorkOrderImmutable
		}
	case entities.WorkOrderStatusCancelled:
		if order.Status != entities.WorkOrderStatusSubmitted {
			return entities.WorkOrder{}, ErrWorkOrderNotSubmitted
		}
	}

	updated, err := u.repo.UpdateStatusByID(ctx, order.ID, status)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	sess.SetOrder(updated)

	if updated.PlotID != "" {
		// Rollup failure does not undo the transition; the next rollup
		// recomputes from scratch anyway.
		if _, err := u.plots.RecalculateAfterWork(ctx, updated.PlotID); err != nil {
			log.Printf("[work][usecase] plot rollup failed order_id=%s plot_id=%s err=%v", updated.ID, updated.PlotID, err)
		}
	}
	log.Printf("[work][usecase] status changed order_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

// session resolves the form session for a document, opening one over the
// persisted document when no session is live (load/refresh recovery).
func (u *WorkOrderUseCase) session(ctx context.Context, orderID string) (*form.Session, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidWorkOrderID
	}
	if sess, ok := u.sessions.Lookup(orderID); ok {
		return sess, nil
	}
	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, ErrWorkOrderNotFound
	}
	return u.sessions.Open(ctx, order, true)
}
