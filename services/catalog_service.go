package services

import (
	"context"
	"errors"

	"github.com/Dhanushvel123/PetShop-Server/models"
	"github.com/Dhanushvel123/PetShop-Server/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type IProductRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	UpdateStock(ctx context.Context, id primitive.ObjectID, stock int) (*models.Product, error)
	SetFavorite(ctx context.Context, id primitive.ObjectID, favorite bool) error
	ReserveStock(ctx context.Context, id primitive.ObjectID, qty, required int) (bool, error)
	ReleaseStock(ctx context.Context, id primitive.ObjectID, qty int) error
	ReleaseStockByName(ctx context.Context, name string, qty int) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CatalogService covers one product variant; foods and accessories get
// separate instances over separate collections.
type CatalogService struct {
	products IProductRepository
}

func NewCatalogService(products IProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *CatalogService) Create(ctx context.Context, product *models.Product) error {
	if product.Name == "" || product.Price < 0 || product.Stock < 0 {
		return apperrors.ErrMissingFields
	}
	return s.products.Create(ctx, product)
}

// SetStock unconditionally overwrites the stock count. It does not
// reconcile against outstanding cart reservations.
func (s *CatalogService) SetStock(ctx context.Context, id primitive.ObjectID, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, apperrors.ErrInvalidStock
	}

	product, err := s.products.UpdateStock(ctx, id, stock)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// ToggleFavorite flips the flag and returns the new value.
func (s *CatalogService) ToggleFavorite(ctx context.Context, id primitive.ObjectID) (bool, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, apperrors.ErrProductNotFound
		}
		return false, err
	}

	favorite := !product.Favorite
	if err := s.products.SetFavorite(ctx, id, favorite); err != nil {
		return false, err
	}
	return favorite, nil
}

func (s *CatalogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.products.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.ErrProductNotFound
	}
	return err
}
