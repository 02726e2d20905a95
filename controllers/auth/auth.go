package authControllers

import (
	"github.com/gin-gonic/gin"

	"ecommerce-backend/apperr"
	"ecommerce-backend/middleware"
	"ecommerce-backend/response"
	"ecommerce-backend/services"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func Register(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.ValidationFailed(c, []string{"username, email and password are required"})
			return
		}

		user, err := auth.Register(c.Request.Context(), input.Username, input.Email, input.Password)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.Created(c, "User registered successfully", user)
	}
}

// POST /auth/login
func Login(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.ValidationFailed(c, []string{"email and password are required"})
			return
		}

		result, err := auth.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Login successful", result)
	}
}

// GET /auth/profile — returns the authenticated user; the password hash is
// excluded by the model's json tag.
func Profile(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Fail(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		user, err := auth.GetUser(c.Request.Context(), userID)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "Success", user)
	}
}
