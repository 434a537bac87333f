package handlers

import (
	"errors"
	"net/http"

	response "managefarms/internal/adapter/http/dto/response"
	"managefarms/internal/usecase"
	"managefarms/pkg"

	"github.com/gin-gonic/gin"
)

// PlotHandler serves plot balance queries for the work-order form.

type PlotHandler struct {
	usecase usecase.IPlotUseCase
}

func NewPlotHandler(uc usecase.IPlotUseCase) *PlotHandler {
	return &PlotHandler{usecase: uc}
}

func (h *PlotHandler) GetPlotBalances(c *gin.Context) {
	balances, err := h.usecase.GetBalances(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlotBalances(balances))
}

func mapPlotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlotID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlotNotFound):
		return pkg.NewDomainErrorSimple("PLOT_NOT_FOUND", "Plot not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
