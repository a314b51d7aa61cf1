package routes

import (
	"painel_pedidos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard     = "/dashboard"
	PathNotifications = "/notifications"
	PathOrders        = "/orders"
	PathTransactions  = "/transactions"
	PathContacts      = "/contacts"
	PathSavedEmails   = "/saved-emails"
)

func addHealthRoutes(rg *gin.RouterGroup, h *handlers.HealthHandler) {
	rg.GET("/ping", h.Ping)
	rg.GET("/health", h.Health)
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	board := rg.Group(PathDashboard)
	{
		board.GET("", h.GetDashboard)
		board.POST("/reload", h.Reload)
	}
	rg.GET(PathNotifications, h.ListNotifications)
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.SubmitOrder)
		// Edit mode of the order form.
		orders.DELETE("/edit", h.CancelEdit)
		orders.POST("/:id/edit", h.EditOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.DELETE("/:id", h.DeleteOrder)
	}
}

func addTransactionRoutes(rg *gin.RouterGroup, h *handlers.TransactionHandler) {
	transactions := rg.Group(PathTransactions)
	{
		transactions.GET("", h.ListTransactions)
		transactions.POST("", h.CreateTransaction)
		transactions.GET("/totals", h.Totals)
		transactions.PUT("/:id", h.UpdateTransaction)
		transactions.DELETE("/:id", h.DeleteTransaction)
	}
}

func addContactRoutes(rg *gin.RouterGroup, h *handlers.ContactHandler) {
	contacts := rg.Group(PathContacts)
	{
		contacts.GET("", h.ListContacts)
		contacts.POST("", h.CreateContact)
		contacts.PUT("/:id", h.UpdateContact)
		contacts.DELETE("/:id", h.DeleteContact)
	}
}

func addSavedEmailRoutes(rg *gin.RouterGroup, h *handlers.SavedEmailHandler) {
	emails := rg.Group(PathSavedEmails)
	{
		emails.GET("", h.ListSavedEmails)
		emails.POST("", h.CreateSavedEmail)
		emails.PUT("/:id", h.UpdateSavedEmail)
		emails.DELETE("/:id", h.DeleteSavedEmail)
	}
}
