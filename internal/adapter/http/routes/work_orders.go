package routes

import (
	"managefarms/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/work-orders"
	PathPlots      = "/plots"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, workOrderHandler *handlers.WorkOrderHandler, plotHandler *handlers.PlotHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", workOrderHandler.CreateWorkOrder)
		workOrders.GET("/:id", workOrderHandler.GetWorkOrder)
		workOrders.POST("/:id/line-items", workOrderHandler.AddLineItem)
		workOrders.POST("/:id/save", workOrderHandler.SaveWorkOrder)
		workOrders.POST("/:id/submit", workOrderHandler.SubmitWorkOrder)
		workOrders.POST("/:id/cancel", workOrderHandler.CancelWorkOrder)

		// Form session surface consumed by the entry UI.
		workOrders.GET("/:id/form", workOrderHandler.GetFormState)
		workOrders.POST("/:id/form/sections/:category", workOrderHandler.ActivateSection)
	}

	plots := rg.Group(PathPlots)
	{
		plots.GET("/:id/balances", plotHandler.GetPlotBalances)
	}
}
