package handlers

import (
	"errors"
	"net/http"

	request "managefarms/internal/adapter/http/dto/request"
	response "managefarms/internal/adapter/http/dto/response"
	"managefarms/internal/usecase"
	"managefarms/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
)

// WorkOrderHandler handles HTTP requests for the work-order workflow: draft
// creation, line-item entry, the gated save pipeline and status transitions.

type WorkOrderHandler struct {
	usecase  usecase.IWorkOrderUseCase
	sessions usecase.IFormSessionUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase, sessions usecase.IFormSessionUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc, sessions: sessions}
}

func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	workDate, err := payload.ResolveWorkDate()
	if err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateDraft(c.Request.Context(), usecase.CreateDraftInput{
		PlotID:      payload.PlotID,
		CustomerID:  payload.CustomerID,
		WorkTypeID:  payload.WorkTypeID,
		WorkDate:    workDate,
		Description: payload.Description,
	})
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// AddLineItem runs one staging selection through the lookup/builder/
// aggregator pipeline. Lookup misses answer 200 with the unchanged order;
// the skip reason is reported in the outcome status only.
func (h *WorkOrderHandler) AddLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("id"), payload.ResolveCategory(), payload.ToStagingSelection())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := response.AddLineOutcomeResponse{
		Status:    string(res.Status),
		WorkOrder: response.FromWorkOrder(res.Order),
		FormState: response.FromFormState(res.FormState),
	}
	if res.Status == usecase.LineBuilt {
		line := response.FromLineItem(res.Line)
		out.Line = &line
	}
	c.JSON(http.StatusOK, out)
}

// SaveWorkOrder runs the pre-commit pipeline. A required confirmation is
// answered with 409 and the prompt; the caller retries with a decision.
func (h *WorkOrderHandler) SaveWorkOrder(c *gin.Context) {
	var payload request.SaveWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil && err.Error() != "EOF" {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	decision, err := payload.ResolveDecision()
	if err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Save(c.Request.Context(), c.Param("id"), usecase.SaveDecision(decision))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := response.SaveOutcomeResponse{Status: string(res.Status), Prompt: res.Prompt}
	switch res.Status {
	case usecase.SaveStatusSaved:
		order := response.FromWorkOrder(res.Order)
		out.WorkOrder = &order
		c.JSON(http.StatusOK, out)
	case usecase.SaveStatusNeedsConfirmation:
		c.JSON(http.StatusConflict, out)
	default:
		// Aborted: nothing was persisted, the in-memory draft is untouched.
		c.JSON(http.StatusOK, out)
	}
}

func (h *WorkOrderHandler) SubmitWorkOrder(c *gin.Context) {
	order, err := h.usecase.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) CancelWorkOrder(c *gin.Context) {
	order, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) GetFormState(c *gin.Context) {
	state, err := h.sessions.State(c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFormState(state))
}

func (h *WorkOrderHandler) ActivateSection(c *gin.Context) {
	var payload request.LineItemRequest
	payload.Category = c.Param("category")

	state, err := h.sessions.ActivateSection(c.Param("id"), payload.ResolveCategory())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFormState(state))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidSaveDecision),
		errors.Is(err, usecase.ErrInvalidPlotID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound), errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlotNotFound):
		return pkg.NewDomainErrorSimple("PLOT_NOT_FOUND", "Plot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderImmutable):
		return pkg.NewDomainErrorSimple("WORK_ORDER_IMMUTABLE", "Work order is no longer editable", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkOrderNotSaved):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_SAVED", "Work order must be saved first", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkOrderNotSubmitted):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_SUBMITTED", "Work order is not submitted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
