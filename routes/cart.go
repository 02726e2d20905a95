package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "ecommerce-backend/controllers/cart"
	"ecommerce-backend/middleware"
)

// SetupCartRoutes registers the JWT-protected "/cart/*" endpoints.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		cart.GET("", cartControllers.GetCart(deps.Cart))
		cart.POST("", cartControllers.AddItem(deps.Cart))
		cart.PATCH("/:productId", cartControllers.UpdateQuantity(deps.Cart))
		cart.DELETE("/:productId", cartControllers.RemoveItem(deps.Cart))
		cart.DELETE("", cartControllers.ClearCart(deps.Cart))
	}
}
