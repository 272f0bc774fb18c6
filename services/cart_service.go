package services

import (
	"context"
	"errors"

	"github.com/Dhanushvel123/PetShop-Server/models"
	"github.com/Dhanushvel123/PetShop-Server/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ICartRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.CartLine, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.CartLine, error)
	FindByUserAndProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.CartLine, error)
	Create(ctx context.Context, line *models.CartLine) error
	SetQuantity(ctx context.Context, id primitive.ObjectID, quantity int) error
	IncrementQuantity(ctx context.Context, id primitive.ObjectID, delta int) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

// AddItemInput is the payload for adding a product to the cart. Price and
// image are snapshots supplied by the caller, as the storefront contract has
// always worked; the line name is snapshotted from the product itself.
type AddItemInput struct {
	ProductID primitive.ObjectID
	Quantity  int
	Price     float64
	Image     string
}

// CartService manages one cart collection against its product collection.
// Adding to the cart reserves stock: every unit is either available on the
// product or held by a cart line (or a non-cancelled order), never both.
type CartService struct {
	products IProductRepository
	carts    ICartRepository
}

func NewCartService(products IProductRepository, carts ICartRepository) *CartService {
	return &CartService{products: products, carts: carts}
}

// AddItem upserts a cart line and reserves stock for it. When a line for
// this product already exists the stock check is cumulative: the product
// must cover the existing line quantity plus the new request. The stock
// check and decrement are one conditional update, so a failed add leaves
// neither the cart nor the stock touched.
func (s *CartService) AddItem(ctx context.Context, userID primitive.ObjectID, in AddItemInput) error {
	if in.Quantity < 1 {
		return apperrors.ErrInvalidQuantity
	}

	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrProductNotFound
		}
		return err
	}

	line, err := s.carts.FindByUserAndProduct(ctx, userID, in.ProductID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	required := in.Quantity
	if line != nil {
		required = line.Quantity + in.Quantity
	}

	reserved, err := s.products.ReserveStock(ctx, in.ProductID, in.Quantity, required)
	if err != nil {
		return err
	}
	if !reserved {
		return apperrors.ErrInsufficientStock
	}

	if line != nil {
		return s.carts.IncrementQuantity(ctx, line.ID, in.Quantity)
	}
	return s.carts.Create(ctx, &models.CartLine{
		UserID:    userID,
		ProductID: in.ProductID,
		Name:      product.Name,
		Price:     in.Price,
		Image:     in.Image,
		Quantity:  in.Quantity,
	})
}

// UpdateQuantity sets a line to a new absolute quantity. A positive delta
// reserves the difference (and may fail on stock); a negative delta restores
// it without any check.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, lineID primitive.ObjectID, quantity int) error {
	if quantity < 1 {
		return apperrors.ErrInvalidQuantity
	}

	line, err := s.findOwnedLine(ctx, userID, lineID)
	if err != nil {
		return err
	}

	if _, err := s.products.FindByID(ctx, line.ProductID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.ErrProductNotFound
		}
		return err
	}

	delta := quantity - line.Quantity
	switch {
	case delta > 0:
		reserved, err := s.products.ReserveStock(ctx, line.ProductID, delta, delta)
		if err != nil {
			return err
		}
		if !reserved {
			return apperrors.ErrInsufficientStock
		}
	case delta < 0:
		if err := s.products.ReleaseStock(ctx, line.ProductID, -delta); err != nil {
			return err
		}
	}

	return s.carts.SetQuantity(ctx, lineID, quantity)
}

// RemoveItem deletes a line and returns its quantity to the product stock.
// If the product was deleted from the catalog in the meantime the restore is
// skipped.
func (s *CartService) RemoveItem(ctx context.Context, userID, lineID primitive.ObjectID) error {
	line, err := s.findOwnedLine(ctx, userID, lineID)
	if err != nil {
		return err
	}

	if err := s.products.ReleaseStock(ctx, line.ProductID, line.Quantity); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
	}

	return s.carts.Delete(ctx, lineID)
}

// ListCart returns the caller's lines only.
func (s *CartService) ListCart(ctx context.Context, userID primitive.ObjectID) ([]models.CartLine, error) {
	lines, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []models.CartLine{}
	}
	return lines, nil
}

// findOwnedLine answers Not Found for foreign lines as well, so a caller
// cannot probe other users' cart ids.
func (s *CartService) findOwnedLine(ctx context.Context, userID, lineID primitive.ObjectID) (*models.CartLine, error) {
	line, err := s.carts.FindByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCartItemNotFound
		}
		return nil, err
	}
	if line.UserID != userID {
		return nil, apperrors.ErrCartItemNotFound
	}
	return line, nil
}
