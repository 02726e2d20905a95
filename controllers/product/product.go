package productControllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/apperr"
	"ecommerce-backend/response"
	"ecommerce-backend/services"
)

// GET /products?category=&search=
func GetProducts(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.List(c.Request.Context(), c.Query("category"), c.Query("search"))
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Success", products)
	}
}

// GET /products/:id
func GetProductByID(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseProductID(c.Param("id"))
		if err != nil {
			response.Fail(c, err)
			return
		}

		product, err := catalog.Get(c.Request.Context(), id)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Success", product)
	}
}

// POST /products
func CreateProduct(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.ValidationFailed(c, []string{"Invalid product payload: " + err.Error()})
			return
		}

		product, err := catalog.Create(c.Request.Context(), input)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.Created(c, "Product created successfully", product)
	}
}

// PUT /products/:id
func UpdateProduct(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseProductID(c.Param("id"))
		if err != nil {
			response.Fail(c, err)
			return
		}

		var input services.ProductUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			response.ValidationFailed(c, []string{"Invalid product payload: " + err.Error()})
			return
		}

		product, err := catalog.Update(c.Request.Context(), id, input)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Product updated successfully", product)
	}
}

// DELETE /products/:id — soft delete, the record stays for order history.
func DeleteProduct(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseProductID(c.Param("id"))
		if err != nil {
			response.Fail(c, err)
			return
		}

		if err := catalog.Delete(c.Request.Context(), id); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Product deleted successfully", nil)
	}
}

func parseProductID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, apperr.Validation("Invalid product ID")
	}
	return uint(id), nil
}
