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

type ICartService interface {
	AddItem(ctx context.Context, userID primitive.ObjectID, in services.AddItemInput) error
	UpdateQuantity(ctx context.Context, userID, lineID primitive.ObjectID, quantity int) error
	RemoveItem(ctx context.Context, userID, lineID primitive.ObjectID) error
	ListCart(ctx context.Context, userID primitive.ObjectID) ([]models.CartLine, error)
}

// CartController serves one cart variant. The add payload historically keys
// the product id by variant (foodId / accessoryId); both are accepted, plus
// the generic productId.
type CartController struct {
	service ICartService
}

func NewCartController(service ICartService) *CartController {
	return &CartController{service: service}
}

type addToCartRequest struct {
	ProductID   string  `json:"productId"`
	FoodID      string  `json:"foodId"`
	AccessoryID string  `json:"accessoryId"`
	Quantity    int     `json:"quantity" binding:"required,gte=1"`
	Price       float64 `json:"price" binding:"gte=0"`
	Image       string  `json:"image"`
}

func (r *addToCartRequest) productID() (primitive.ObjectID, error) {
	raw := r.ProductID
	if raw == "" {
		raw = r.FoodID
	}
	if raw == "" {
		raw = r.AccessoryID
	}
	return primitive.ObjectIDFromHex(raw)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// AddItem reserves stock and upserts a cart line.
func (cc *CartController) AddItem(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	productID, err := req.productID()
	if err != nil {
		respondError(c, apperrors.ErrProductNotFound)
		return
	}

	err = cc.service.AddItem(c, userID, services.AddItemInput{
		ProductID: productID,
		Quantity:  req.Quantity,
		Price:     req.Price,
		Image:     req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to cart"})
}

// List returns the caller's cart lines.
func (cc *CartController) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	lines, err := cc.service.ListCart(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// UpdateQuantity sets a cart line to a new absolute quantity.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	lineID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.ErrCartItemNotFound)
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be at least 1"})
		return
	}

	if err := cc.service.UpdateQuantity(c, userID, lineID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated"})
}

// RemoveItem deletes a cart line and restores its stock.
func (cc *CartController) RemoveItem(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	lineID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.ErrCartItemNotFound)
		return
	}

	if err := cc.service.RemoveItem(c, userID, lineID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed and stock restored"})
}
