package controllers

import (
	"context"
	"net/http"

	"github.com/Dhanushvel123/PetShop-Server/middleware"
	"github.com/Dhanushvel123/PetShop-Server/models"
	"github.com/Dhanushvel123/PetShop-Server/pkg/apperrors"
	"github.com/Dhanushvel123/PetShop-Server/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IAuthService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	AdminLogin(username, password string) error
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, req services.ProfileUpdate) (*models.User, error)
	UpdateCredentials(ctx context.Context, userID primitive.ObjectID, email, password string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserRole(ctx context.Context, callerID, targetID primitive.ObjectID, isAdmin bool) (*models.User, error)
}

type AuthController struct {
	service IAuthService
}

func NewAuthController(service IAuthService) *AuthController {
	return &AuthController{service: service}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Username      *string `json:"username"`
	IsAdmin       bool    `json:"isAdmin"`
	AdminPassword string  `json:"adminPassword"`
}

type updateCredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type setRoleRequest struct {
	IsAdmin *bool `json:"isAdmin"`
}

// Register creates an account and returns a bearer token.
func (ac *AuthController) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	token, err := ac.service.Register(c, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// Login authenticates and returns a fresh bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	token, err := ac.service.Login(c, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// AdminLogin checks the shared admin secret.
func (ac *AuthController) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	if err := ac.service.AdminLogin(req.Username, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin authenticated successfully"})
}

// Profile returns the caller's user record without the password hash.
func (ac *AuthController) Profile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	user, err := ac.service.GetProfile(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile changes the username and/or elevates to admin.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	user, err := ac.service.UpdateProfile(c, userID, services.ProfileUpdate{
		Username:      req.Username,
		RequestAdmin:  req.IsAdmin,
		AdminPassword: req.AdminPassword,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}

// UpdateCredentials changes email and/or password.
func (ac *AuthController) UpdateCredentials(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req updateCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	user, err := ac.service.UpdateCredentials(c, userID, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Credentials updated successfully", "user": user})
}

// ListUsers returns every account for the admin dashboard.
func (ac *AuthController) ListUsers(c *gin.Context) {
	users, err := ac.service.ListUsers(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetUserRole toggles another user's admin flag; caller must be an admin.
func (ac *AuthController) SetUserRole(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	targetID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.ErrUserNotFound)
		return
	}

	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAdmin == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "isAdmin must be a boolean"})
		return
	}

	user, err := ac.service.SetUserRole(c, callerID, targetID, *req.IsAdmin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User role updated", "user": user})
}
