package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "ecommerce-backend/controllers/order"
	"ecommerce-backend/middleware"
)

// SetupOrderRoutes registers checkout and order management.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")

	// websocket feed for real-time status updates
	orders.GET("/ws", orderControllers.OrderWebSocketHandler)

	protected := orders.Group("")
	protected.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		protected.POST("/checkout", orderControllers.Checkout(deps.Orders, deps.Payments, deps.Auth))
		protected.GET("", orderControllers.GetOrders(deps.Orders))
		protected.GET("/:orderId", orderControllers.GetOrderByID(deps.Orders))
		protected.POST("/:orderId/cancel", orderControllers.CancelOrder(deps.Orders))
	}
}
