package routes

import (
	"github.com/gin-gonic/gin"

	paymentControllers "ecommerce-backend/controllers/payment"
	"ecommerce-backend/middleware"
)

// SetupPaymentRoutes registers the gateway webhook (self-authenticating) and
// the status polling endpoint.
func SetupPaymentRoutes(r *gin.Engine, deps Deps) {
	payment := r.Group("/payment")
	{
		payment.POST("/notification", paymentControllers.HandleNotification(deps.Payments))

		payment.GET("/status/:orderId",
			middleware.ValidateToken(deps.JWTSecret),
			paymentControllers.CheckStatus(deps.Payments),
		)
	}
}
