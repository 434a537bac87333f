package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"managefarms/internal/adapter/http/handlers/mocks"
	"managefarms/internal/domain/entities"
	"managefarms/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPlotHandler_GetPlotBalances(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the balances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlotUseCase(ctrl)
		h := NewPlotHandler(uc)

		uc.EXPECT().GetBalances(gomock.Any(), "plot-1").
			Return(entities.PlotBalances{MonthlyMaintenanceBudget: 5000, MaintenanceBalance: 3900}, nil)

		r := gin.New()
		r.GET("/v1/plots/:id/balances", h.GetPlotBalances)

		req := httptest.NewRequest(http.MethodGet, "/v1/plots/plot-1/balances", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["monthly_maintenance_budget"] != 5000.0 || body["maintenance_balance"] != 3900.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("plot not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlotUseCase(ctrl)
		h := NewPlotHandler(uc)

		uc.EXPECT().GetBalances(gomock.Any(), "ghost").
			Return(entities.PlotBalances{}, usecase.ErrPlotNotFound)

		r := gin.New()
		r.GET("/v1/plots/:id/balances", h.GetPlotBalances)

		req := httptest.NewRequest(http.MethodGet, "/v1/plots/ghost/balances", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlotUseCase(ctrl)
		h := NewPlotHandler(uc)

		uc.EXPECT().GetBalances(gomock.Any(), "plot-1").
			Return(entities.PlotBalances{}, errors.New("db down"))

		r := gin.New()
		r.GET("/v1/plots/:id/balances", h.GetPlotBalances)

		req := httptest.NewRequest(http.MethodGet, "/v1/plots/plot-1/balances", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
