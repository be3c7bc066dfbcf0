package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"moodsync/apps/backend/internal/users"
)

func (a *App) register(c *gin.Context) {
	var payload registerRequest
	if !mustJSON(c, &payload) {
		return
	}
	a.log.Info("new user registration",
		"fullName", payload.FullName,
		"email", payload.Email,
		"age", string(payload.Age),
		"gender", payload.Gender,
	)

	user, err := a.directory.Register(c.Request.Context(), users.RegisterInput{
		FullName: payload.FullName,
		Email:    payload.Email,
		Age:      payload.Age,
		Gender:   payload.Gender,
		Password: payload.Password,
	})
	if errors.Is(err, users.ErrAlreadyExists) {
		writeError(c, http.StatusBadRequest, "User with this email already exists")
		return
	}
	if err != nil {
		a.log.Error("registration failed", "error", err)
		writeError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome to MoodSync! Your emotional journey begins now.",
		"userId":  user.UserID,
		"user":    user.Profile(),
	})
}

func (a *App) login(c *gin.Context) {
	var payload loginRequest
	if !mustJSON(c, &payload) {
		return
	}
	a.log.Info("login attempt", "email", payload.Email)

	result, err := a.directory.Login(c.Request.Context(), payload.Email, payload.Password)
	switch {
	case errors.Is(err, users.ErrMissingCredentials):
		writeError(c, http.StatusBadRequest, "Email and password are required")
		return
	case errors.Is(err, users.ErrNotFound):
		writeError(c, http.StatusUnauthorized, "User not found. Please check your email or register first.")
		return
	case errors.Is(err, users.ErrInvalidPassword):
		writeError(c, http.StatusUnauthorized, "Invalid password")
		return
	case err != nil:
		a.log.Error("login failed", "error", err)
		writeError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome back to MoodSync!",
		"token":   result.Token,
		"user":    result.User.Profile(),
	})
}

func (a *App) listUsers(c *gin.Context) {
	listing, err := a.directory.List(c.Request.Context())
	if err != nil {
		a.log.Error("list users failed", "error", err)
		writeError(c, http.StatusInternalServerError, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": listing, "count": len(listing)})
}
