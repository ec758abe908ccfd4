package routes

import (
	"pizzeria-pos/handlers"
	"pizzeria-pos/middleware"
	"pizzeria-pos/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu (no auth needed)
		public.GET("/combos", handlers.ListCombos)
		public.GET("/combos/:id", handlers.GetCombo)
		public.GET("/categories", handlers.ListCategories)
		public.GET("/flavors", handlers.ListFlavors)

		// Delivery areas (the checkout screen needs fees before login)
		public.GET("/delivery-areas", handlers.ListDeliveryAreas)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.GET("/addresses", handlers.ListAddresses)
		auth.POST("/addresses", handlers.CreateAddress)
		auth.GET("/notifications", handlers.GetNotifications)
		auth.PUT("/notifications/:id/read", handlers.MarkNotificationRead)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/orders", handlers.PlaceOrder)
		customer.GET("/orders", handlers.GetMyOrders)
		customer.GET("/orders/:id", handlers.GetOrderDetail)
		customer.PUT("/orders/:id/cancel", handlers.CancelOrder)
	}

	// ── POS staff routes (admin, manager, cashier) ─────────────────
	staff := r.Group("/api")
	staff.Use(middleware.AuthRequired(), middleware.RoleRequired(
		models.RoleAdmin, models.RoleManager, models.RoleCashier))
	{
		// Order management
		staff.GET("/admin/orders", handlers.GetOrders)
		staff.GET("/admin/orders/history", handlers.GetOrderHistory)
		staff.POST("/orders/:id/:action", handlers.OrderAction)
		staff.PUT("/admin/orders/:id/status", handlers.UpdateOrderStatus)

		// Ticket rendering
		staff.POST("/print", handlers.PrintTicket)

		// Cash register
		staff.POST("/cash/open", handlers.OpenCash)
		staff.POST("/cash/close", handlers.CloseCash)
		staff.GET("/cash/log", handlers.GetCashLog)
	}

	// ── Admin/manager routes ───────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(
		models.RoleAdmin, models.RoleManager))
	{
		// Menu management
		admin.POST("/combos", handlers.CreateCombo)
		admin.PUT("/combos/:id", handlers.UpdateCombo)
		admin.POST("/categories", handlers.CreateCategory)
		admin.POST("/flavors", handlers.CreateFlavor)
		admin.PUT("/flavors/:id", handlers.UpdateFlavor)
		admin.DELETE("/flavors/:id", handlers.DeleteFlavor)

		// Delivery areas
		admin.POST("/delivery-areas", handlers.CreateDeliveryArea)

		// Delivery personnel
		admin.GET("/delivery-persons", handlers.ListDeliveryPersons)
		admin.POST("/delivery-persons", handlers.CreateDeliveryPerson)
		admin.PUT("/delivery-persons/:id", handlers.UpdateDeliveryPerson)
		admin.PUT("/delivery-persons/:id/status", handlers.UpdateDeliveryPersonStatus)
	}
}
