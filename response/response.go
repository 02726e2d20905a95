// Package response renders the API's JSON envelopes:
// success: {"status":"success","message":...,"data":...}
// error:   {"status":"error","message":...,"errors":...}
package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/apperr"
)

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func OK(c *gin.Context, message string, data any) {
	Success(c, http.StatusOK, message, data)
}

func Created(c *gin.Context, message string, data any) {
	Success(c, http.StatusCreated, message, data)
}

// ValidationFailed returns a 400 with per-field messages.
func ValidationFailed(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Validation failed",
		"errors":  errs,
	})
}

// Fail maps a service error to its status code. Unrecognized errors become a
// generic 500 outside debug mode; full detail is logged server-side either way.
func Fail(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("unhandled error", "path", c.FullPath(), "error", err)
		if gin.Mode() == gin.ReleaseMode {
			message = "Internal server error"
		}
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}
