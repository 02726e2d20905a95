package paymentControllers

import (
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/apperr"
	orderControllers "ecommerce-backend/controllers/order"
	"ecommerce-backend/middleware"
	"ecommerce-backend/response"
	"ecommerce-backend/services"
)

// POST /payment/notification
//
// Unauthenticated endpoint: the payload authenticates itself via the gateway
// signature, which is verified before any field is trusted.
func HandleNotification(payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Fail(c, apperr.Validation("failed to read notification payload"))
			return
		}

		result, err := payments.HandleNotification(c.Request.Context(), payload)
		if err != nil {
			slog.Warn("payment notification rejected", "error", err)
			response.Fail(c, err)
			return
		}

		slog.Info("payment notification applied",
			"order_id", result.OrderID,
			"status", result.Status,
			"transaction_status", result.TransactionStatus)

		orderControllers.BroadcastOrderStatus(result.OrderID, result.Status)

		response.OK(c, "Notification processed", result)
	}
}

// GET /payment/status/:orderId — read-only gateway passthrough.
func CheckStatus(payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.UserID(c); !ok {
			response.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		status, err := payments.CheckStatus(c.Request.Context(), c.Param("orderId"))
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Success", status)
	}
}
