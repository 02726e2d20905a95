package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "ecommerce-backend/controllers/product"
	"ecommerce-backend/middleware"
)

// SetupProductRoutes registers catalog browsing (public), catalog management
// (JWT) and the API-key-protected admin export.
func SetupProductRoutes(r *gin.Engine, deps Deps) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(deps.Catalog))
		products.GET("/:id", productControllers.GetProductByID(deps.Catalog))

		protected := products.Group("")
		protected.Use(middleware.ValidateToken(deps.JWTSecret))
		{
			protected.POST("", productControllers.CreateProduct(deps.Catalog))
			protected.PUT("/:id", productControllers.UpdateProduct(deps.Catalog))
			protected.DELETE("/:id", productControllers.DeleteProduct(deps.Catalog))
		}
	}

	admin := r.Group("/admin/products")
	admin.Use(middleware.ValidateAPIKey(deps.AdminAPIKey))
	{
		admin.GET("/export-excel", productControllers.ExportProductsToExcel(deps.Catalog))
	}
}
