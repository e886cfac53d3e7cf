package routes

import (
	"decora_festas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets   = "/budgets"
	PathDashboard = "/dashboard"
	PathProviders = "/providers"
	PathUploads   = "/uploads"
)

func addBookingRoutes(
	rg *gin.RouterGroup,
	budgetHandler *handlers.BudgetHandler,
	dashboardHandler *handlers.DashboardHandler,
	dispatchHandler *handlers.DispatchHandler,
	providerHandler *handlers.ProviderHandler,
	uploadHandler *handlers.UploadHandler,
) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PUT("/:id", budgetHandler.UpdateBudget)
		budgets.DELETE("/:id", budgetHandler.DeleteBudget)
		budgets.PATCH("/:id/status", budgetHandler.ChangeStatus)
		budgets.POST("/:id/dispatch", dispatchHandler.DispatchBudget)
		budgets.GET("/:id/notifications", dispatchHandler.ListNotifications)
	}

	board := rg.Group(PathDashboard)
	{
		board.GET("", dashboardHandler.GetDashboard)
		board.POST("/reload", dashboardHandler.Reload)
	}

	providers := rg.Group(PathProviders)
	{
		providers.PATCH("/:id/approve", providerHandler.ApproveProvider)
		providers.PATCH("/:id/reject", providerHandler.RejectProvider)
	}

	uploads := rg.Group(PathUploads)
	{
		uploads.POST("/inspiration", uploadHandler.UploadInspirationImage)
	}
}
