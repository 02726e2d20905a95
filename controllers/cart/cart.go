package cartControllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/apperr"
	"ecommerce-backend/middleware"
	"ecommerce-backend/response"
	"ecommerce-backend/services"
)

type AddItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GET /cart
func GetCart(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		result, err := cart.GetCart(c.Request.Context(), userID)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Success", result)
	}
}

// POST /cart — quantity defaults to 1 when omitted.
func AddItem(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.ValidationFailed(c, []string{"Product ID is required"})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		result, err := cart.AddItem(c.Request.Context(), userID, input.ProductID, input.Quantity)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Item added to cart", result)
	}
}

// PATCH /cart/:productId
func UpdateQuantity(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		productID, err := parseCartProductID(c.Param("productId"))
		if err != nil {
			response.Fail(c, err)
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.ValidationFailed(c, []string{"Quantity must be a positive integer"})
			return
		}

		result, err := cart.UpdateQuantity(c.Request.Context(), userID, productID, input.Quantity)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Cart updated", result)
	}
}

// DELETE /cart/:productId
func RemoveItem(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		productID, err := parseCartProductID(c.Param("productId"))
		if err != nil {
			response.Fail(c, err)
			return
		}

		result, err := cart.RemoveItem(c.Request.Context(), userID, productID)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Item removed from cart", result)
	}
}

// DELETE /cart — idempotent, clearing a nonexistent cart succeeds.
func ClearCart(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		if err := cart.Clear(c.Request.Context(), userID); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Cart cleared", nil)
	}
}

func parseCartProductID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, apperr.Validation("Invalid product ID")
	}
	return uint(id), nil
}
