package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Dhanushvel123/PetShop-Server/middleware"
	"github.com/Dhanushvel123/PetShop-Server/models"
	"github.com/Dhanushvel123/PetShop-Server/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IOrderService interface {
	Checkout(ctx context.Context, userID primitive.ObjectID) (*models.Order, error)
	ListOwn(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	EditItems(ctx context.Context, userID, orderID primitive.ObjectID, items []models.OrderItem) (*models.Order, error)
	SetStatus(ctx context.Context, orderID primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
	Cancel(ctx context.Context, userID, orderID primitive.ObjectID) (*models.Order, error)
}

type OrderController struct {
	service IOrderService
}

func NewOrderController(service IOrderService) *OrderController {
	return &OrderController{service: service}
}

type editOrderRequest struct {
	Items []models.OrderItem `json:"items"`
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Checkout turns the caller's carts into a Pending order.
func (oc *OrderController) Checkout(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	order, err := oc.service.Checkout(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order placed", "order": order})
}

// ListOwn returns the caller's orders, newest first.
func (oc *OrderController) ListOwn(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	orders, err := oc.service.ListOwn(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListAll is the admin view over every order.
func (oc *OrderController) ListAll(c *gin.Context) {
	orders, err := oc.service.ListAll(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Edit replaces a Pending order's items and recomputes the total.
func (oc *OrderController) Edit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.ErrOrderNotFound)
		return
	}

	var req editOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid items"})
		return
	}

	order, err := oc.service.EditItems(c, userID, orderID, req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated", "order": order})
}

// SetStatus is the admin status overwrite.
func (oc *OrderController) SetStatus(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.ErrOrderNotFound)
		return
	}

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
		return
	}

	order, err := oc.service.SetStatus(c, orderID, models.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Order marked as %s", order.Status),
		"order":   order,
	})
}

// Cancel cancels the caller's Pending order and restores its stock.
func (oc *OrderController) Cancel(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.ErrOrderNotFound)
		return
	}

	order, err := oc.service.Cancel(c, userID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled", "order": order})
}
