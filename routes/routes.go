package routes

import (
	"github.com/gin-gonic/gin"

	"ecommerce-backend/services"
)

// Deps bundles everything the route groups need: service objects built once
// at startup plus the two auth secrets.
type Deps struct {
	Auth     *services.AuthService
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Orders   *services.OrderService
	Payments *services.PaymentService

	JWTSecret   string
	AdminAPIKey string
}

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupAuthRoutes(r, deps)
	SetupProductRoutes(r, deps)
	SetupCartRoutes(r, deps)
	SetupOrderRoutes(r, deps)
	SetupPaymentRoutes(r, deps)
}
