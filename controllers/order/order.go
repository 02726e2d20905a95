package orderControllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/apperr"
	"ecommerce-backend/middleware"
	"ecommerce-backend/response"
	"ecommerce-backend/services"
)

type CheckoutInput struct {
	ShippingAddress string `json:"shippingAddress" binding:"required"`
}

// POST /orders/checkout
//
// Creates the order first, then asks the gateway for a payment session. A
// gateway failure is surfaced to the caller while the order stays Pending
// with no token attached, so payment can be retried or reconciled manually.
func Checkout(orders *services.OrderService, payments *services.PaymentService, auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.ValidationFailed(c, []string{"shippingAddress is required"})
			return
		}

		order, err := orders.Checkout(c.Request.Context(), userID, input.ShippingAddress)
		if err != nil {
			response.Fail(c, err)
			return
		}

		user, err := auth.GetUser(c.Request.Context(), userID)
		if err != nil {
			response.Fail(c, err)
			return
		}

		session, err := payments.CreateSession(c.Request.Context(), order, user)
		if err != nil {
			slog.Error("payment session creation failed",
				"order_id", order.OrderID, "error", err)
			response.Fail(c, err)
			return
		}

		response.Created(c, "Order created successfully", gin.H{
			"orderId":     order.OrderID,
			"paymentUrl":  session.RedirectURL,
			"totalAmount": order.TotalAmount,
			"status":      order.Status,
		})
	}
}

// GET /orders
func GetOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		result, err := orders.GetOrders(c.Request.Context(), userID)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Success", result)
	}
}

// GET /orders/:orderId
func GetOrderByID(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		result, err := orders.GetOrder(c.Request.Context(), c.Param("orderId"), userID)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Success", result)
	}
}

// POST /orders/:orderId/cancel
func CancelOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		result, err := orders.CancelOrder(c.Request.Context(), c.Param("orderId"), userID)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Order cancelled successfully", result)
	}
}
