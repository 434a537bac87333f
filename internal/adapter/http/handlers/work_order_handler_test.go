package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"managefarms/internal/adapter/http/handlers/mocks"
	"managefarms/internal/domain/entities"
	"managefarms/internal/domain/form"
	"managefarms/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkOrderHandler_CreateWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/work-orders", h.CreateWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid work date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/work-orders", h.CreateWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString(`{"plot_id":"plot-1","work_date":"15/06/2025"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("creates the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, input usecase.CreateDraftInput) (entities.WorkOrder, error) {
				if input.PlotID != "plot-1" {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.WorkOrder{ID: "wo-1", PlotID: "plot-1", Status: entities.WorkOrderStatusDraft}, nil
			})

		r := gin.New()
		r.POST("/v1/work-orders", h.CreateWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString(`{"plot_id":"plot-1","work_date":"2025-06-15"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "wo-1" || body["status"] != "draft" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("plot not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).
			Return(entities.WorkOrder{}, usecase.ErrPlotNotFound)

		r := gin.New()
		r.POST("/v1/work-orders", h.CreateWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString(`{"plot_id":"ghost"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_GetWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().GetByID(gomock.Any(), "wo-1").
			Return(entities.WorkOrder{ID: "wo-1", TotalCost: 3000}, nil)

		r := gin.New()
		r.GET("/v1/work-orders/:id", h.GetWorkOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/wo-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").
			Return(entities.WorkOrder{}, usecase.ErrWorkOrderNotFound)

		r := gin.New()
		r.GET("/v1/work-orders/:id", h.GetWorkOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_AddLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/work-orders/:id/line-items", h.AddLineItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/line-items", bytes.NewBufferString(`{"item_id":"eq-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("built line answers 200 with the line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().AddLineItem(gomock.Any(), "wo-1", entities.CategoryEquipment,
			form.StagingSelection{ItemID: "eq-1", Quantity: 2, Unit: "Hour", Count: 3}).
			Return(usecase.AddLineResult{
				Status: usecase.LineBuilt,
				Line:   entities.NewLineItem("eq-1", "Tractor", 2, "Hour", 500, 3),
				Order:  entities.WorkOrder{ID: "wo-1", TotalCost: 3000},
			}, nil)

		r := gin.New()
		r.POST("/v1/work-orders/:id/line-items", h.AddLineItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/line-items",
			bytes.NewBufferString(`{"category":"equipment","item_id":"eq-1","quantity":2,"unit":"Hour","count":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["status"] != "built" {
			t.Fatalf("unexpected status: %v", body["status"])
		}
		line, _ := body["line"].(map[string]any)
		if line == nil || line["item_display_name"] != "3 Tractor" {
			t.Fatalf("unexpected line: %v", body["line"])
		}
	})

	t.Run("skip outcome answers 200 without a line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().AddLineItem(gomock.Any(), "wo-1", entities.CategoryMaterial, gomock.Any()).
			Return(usecase.AddLineResult{
				Status: usecase.LineSkippedNoPrice,
				Order:  entities.WorkOrder{ID: "wo-1"},
			}, nil)

		r := gin.New()
		r.POST("/v1/work-orders/:id/line-items", h.AddLineItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/line-items",
			bytes.NewBufferString(`{"category":"material","item_id":"mt-9","quantity":2,"unit":"Kg"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["status"] != "skipped_no_price" {
			t.Fatalf("unexpected status: %v", body["status"])
		}
		if _, present := body["line"]; present {
			t.Fatal("expected no line in the response")
		}
	})

	t.Run("immutable order answers 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().AddLineItem(gomock.Any(), "wo-1", entities.CategoryLabor, gomock.Any()).
			Return(usecase.AddLineResult{}, usecase.ErrWorkOrderImmutable)

		r := gin.New()
		r.POST("/v1/work-orders/:id/line-items", h.AddLineItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/line-items",
			bytes.NewBufferString(`{"category":"labor","item_id":"lb-1","quantity":1,"unit":"Hour"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_SaveWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body means unasked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().Save(gomock.Any(), "wo-1", usecase.SaveDecisionUnasked).
			Return(usecase.SaveResult{Status: usecase.SaveStatusSaved, Order: entities.WorkOrder{ID: "wo-1"}}, nil)

		r := gin.New()
		r.POST("/v1/work-orders/:id/save", h.SaveWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/save", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("needs confirmation answers 409 with the prompt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().Save(gomock.Any(), "wo-1", usecase.SaveDecisionUnasked).
			Return(usecase.SaveResult{
				Status: usecase.SaveStatusNeedsConfirmation,
				Prompt: usecase.MaintenanceBalancePrompt,
			}, nil)

		r := gin.New()
		r.POST("/v1/work-orders/:id/save", h.SaveWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/save", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["prompt"] != usecase.MaintenanceBalancePrompt {
			t.Fatalf("unexpected prompt: %v", body["prompt"])
		}
	})

	t.Run("declined confirmation answers 200 aborted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().Save(gomock.Any(), "wo-1", usecase.SaveDecisionDecline).
			Return(usecase.SaveResult{Status: usecase.SaveStatusAborted}, nil)

		r := gin.New()
		r.POST("/v1/work-orders/:id/save", h.SaveWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/save", bytes.NewBufferString(`{"decision":"no"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["status"] != "aborted" {
			t.Fatalf("unexpected status: %v", body["status"])
		}
	})

	t.Run("invalid decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/work-orders/:id/save", h.SaveWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/save", bytes.NewBufferString(`{"decision":"maybe"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().Submit(gomock.Any(), "wo-1").
			Return(entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusSubmitted}, nil)

		r := gin.New()
		r.POST("/v1/work-orders/:id/submit", h.SubmitWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("submit before save answers 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().Submit(gomock.Any(), "wo-1").
			Return(entities.WorkOrder{}, usecase.ErrWorkOrderNotSaved)

		r := gin.New()
		r.POST("/v1/work-orders/:id/submit", h.SubmitWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel of a draft answers 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().Cancel(gomock.Any(), "wo-1").
			Return(entities.WorkOrder{}, usecase.ErrWorkOrderNotSubmitted)

		r := gin.New()
		r.POST("/v1/work-orders/:id/cancel", h.CancelWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("internal error answers 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc, nil)

		uc.EXPECT().Cancel(gomock.Any(), "wo-1").
			Return(entities.WorkOrder{}, errors.New("db down"))

		r := gin.New()
		r.POST("/v1/work-orders/:id/cancel", h.CancelWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_FormState(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the visibility snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockIFormSessionUseCase(ctrl)
		h := NewWorkOrderHandler(nil, sessions)

		st := form.NewState()
		st.Apply(form.Event{Kind: form.EventActivate, Category: entities.CategoryEquipment})
		sessions.EXPECT().State("wo-1").Return(st, nil)

		r := gin.New()
		r.GET("/v1/work-orders/:id/form", h.GetFormState)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/wo-1/form", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["active_section"] != "equipment" || body["focus"] != "item" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("activate section", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockIFormSessionUseCase(ctrl)
		h := NewWorkOrderHandler(nil, sessions)

		st := form.NewState()
		st.Apply(form.Event{Kind: form.EventActivate, Category: entities.CategoryLabor})
		sessions.EXPECT().ActivateSection("wo-1", entities.CategoryLabor).Return(st, nil)

		r := gin.New()
		r.POST("/v1/work-orders/:id/form/sections/:category", h.ActivateSection)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/wo-1/form/sections/labor", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing session answers 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockIFormSessionUseCase(ctrl)
		h := NewWorkOrderHandler(nil, sessions)

		sessions.EXPECT().State("ghost").Return(form.State{}, usecase.ErrSessionNotFound)

		r := gin.New()
		r.GET("/v1/work-orders/:id/form", h.GetFormState)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/ghost/form", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
