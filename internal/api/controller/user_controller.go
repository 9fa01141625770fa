package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"news-backend/internal/api/models"
	"news-backend/internal/api/response"
	"news-backend/internal/api/service"
	"news-backend/internal/api/validation"

	"github.com/gin-gonic/gin"
)

// UserController handles the account endpoints: user info, registration,
// login and the password reset flow.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// UserInfo handles GET /user-info?userId=.
func (uc *UserController) UserInfo(c *gin.Context) {
	raw := c.Query("userId")
	if raw == "" {
		response.Error(c, http.StatusBadRequest, "User ID is required")
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "User ID is required")
		return
	}

	user, err := uc.userService.GetInfo(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to fetch user info", "error", err, "user_id", id)
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Register handles POST /register. Validation failures return one message
// per failing field; a duplicate email is a 400 of its own.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := validation.CheckRegister(&req); fieldErrors != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	user, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Message(c, http.StatusBadRequest, "Email already in use.")
			return
		}
		slog.Error("failed to register user", "error", err)
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login handles POST /login. Unknown email and wrong password produce
// identical responses.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Status(c, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	token, userID, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Status(c, http.StatusUnauthorized, false, "Invalid credentials", nil)
			return
		}
		slog.Error("login failed", "error", err)
		response.Status(c, http.StatusInternalServerError, false, "Server error", nil)
		return
	}

	response.Status(c, http.StatusOK, true, "Login successful", gin.H{
		"token":  token,
		"userId": userID,
	})
}

// SendResetLink handles POST /send-reset-link.
func (uc *UserController) SendResetLink(c *gin.Context) {
	var req models.ResetLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil || !strings.Contains(req.Email, "@gmail.com") {
		response.Message(c, http.StatusBadRequest, "Invalid email address")
		return
	}

	if err := uc.userService.SendResetLink(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, "We cannot find your email, re-check your email!!!")
			return
		}
		slog.Error("failed to send reset link", "error", err)
		response.Message(c, http.StatusInternalServerError, "Error sending email")
		return
	}
	response.Message(c, http.StatusOK, "Password reset link sent!")
}

// ResetPassword handles POST /reset-password. Issues a fresh 1 hour token on
// success.
func (uc *UserController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.NewPassword) < 5 {
		response.Status(c, http.StatusBadRequest, false, "Password must be at least 5 characters long.", nil)
		return
	}

	token, err := uc.userService.ResetPassword(c.Request.Context(), req.Email, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Status(c, http.StatusNotFound, false, "User not found", nil)
			return
		}
		slog.Error("failed to reset password", "error", err)
		response.Status(c, http.StatusInternalServerError, false, "Error resetting password", nil)
		return
	}

	response.Status(c, http.StatusOK, true, "Password has been reset successfully.", gin.H{
		"token": token,
	})
}
