package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "ecommerce-backend/controllers/auth"
	"ecommerce-backend/middleware"
)

// SetupAuthRoutes registers the "/auth/*" endpoints: public registration and
// login, plus the bearer-protected profile read.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(deps.Auth))
		authGroup.POST("/login", authControllers.Login(deps.Auth))

		authGroup.GET("/profile",
			middleware.ValidateToken(deps.JWTSecret),
			authControllers.Profile(deps.Auth),
		)
	}
}
