package controllers

import (
	"context"
	"net/http"

	"github.com/Dhanushvel123/PetShop-Server/models"
	"github.com/Dhanushvel123/PetShop-Server/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ICatalogService interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	SetStock(ctx context.Context, id primitive.ObjectID, stock int) (*models.Product, error)
	ToggleFavorite(ctx context.Context, id primitive.ObjectID) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProductController serves one catalog variant; petfoods and accessories get
// separate instances over separate services.
type ProductController struct {
	service ICatalogService
}

func NewProductController(service ICatalogService) *ProductController {
	return &ProductController{service: service}
}

type createProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Image       string  `json:"image"`
}

type setStockRequest struct {
	Stock *int `json:"stock"`
}

// List returns every product, no pagination.
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.service.List(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Create adds a catalog entry.
func (pc *ProductController) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
	}
	if err := pc.service.Create(c, product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// SetStock overwrites a product's stock count.
func (pc *ProductController) SetStock(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.ErrProductNotFound)
		return
	}

	var req setStockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Stock == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid stock value"})
		return
	}

	product, err := pc.service.SetStock(c, id, *req.Stock)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock updated", "product": product})
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (pc *ProductController) ToggleFavorite(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.ErrProductNotFound)
		return
	}

	favorite, err := pc.service.ToggleFavorite(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite toggled", "favorite": favorite})
}

// Delete removes a catalog entry.
func (pc *ProductController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.ErrProductNotFound)
		return
	}

	if err := pc.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
