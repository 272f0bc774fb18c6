package services

import (
	"context"
	"errors"

	"github.com/Dhanushvel123/PetShop-Server/models"
	"github.com/Dhanushvel123/PetShop-Server/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type IOrderRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	UpdateItems(ctx context.Context, id primitive.ObjectID, items []models.OrderItem, totalPrice float64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
}

// OrderService handles checkout and the post-checkout lifecycle
// (Pending → Delivered/Cancelled). Stock is already reserved by the cart, so
// checkout never touches product records; cancellation is the operation that
// hands reserved units back.
type OrderService struct {
	orders            IOrderRepository
	foodProducts      IProductRepository
	accessoryProducts IProductRepository
	foodCarts         ICartRepository
	accessoryCarts    ICartRepository
}

func NewOrderService(
	orders IOrderRepository,
	foodProducts, accessoryProducts IProductRepository,
	foodCarts, accessoryCarts ICartRepository,
) *OrderService {
	return &OrderService{
		orders:            orders,
		foodProducts:      foodProducts,
		accessoryProducts: accessoryProducts,
		foodCarts:         foodCarts,
		accessoryCarts:    accessoryCarts,
	}
}

// Checkout merges both carts into one Pending order with snapshot items,
// then empties the carts. Products deleted since add-to-cart keep their line
// snapshots but fall back to a placeholder name.
func (s *OrderService) Checkout(ctx context.Context, userID primitive.ObjectID) (*models.Order, error) {
	foodLines, err := s.foodCarts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	accessoryLines, err := s.accessoryCarts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(foodLines)+len(accessoryLines))
	for _, line := range foodLines {
		item, err := s.snapshot(ctx, models.ProductTypeFood, line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	for _, line := range accessoryLines {
		item, err := s.snapshot(ctx, models.ProductTypeAccessory, line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	order := &models.Order{
		UserID:     userID,
		Items:      items,
		TotalPrice: models.TotalOf(items),
		Status:     models.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.foodCarts.DeleteByUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.accessoryCarts.DeleteByUser(ctx, userID); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) snapshot(ctx context.Context, productType models.ProductType, line models.CartLine) (models.OrderItem, error) {
	name := productType.PlaceholderName()
	product, err := s.productRepoFor(productType).FindByID(ctx, line.ProductID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return models.OrderItem{}, err
	}
	if product != nil {
		name = product.Name
	}

	productID := line.ProductID
	return models.OrderItem{
		ProductType: productType,
		ProductID:   &productID,
		Name:        name,
		Image:       line.Image,
		Price:       line.Price,
		Quantity:    line.Quantity,
	}, nil
}

// ListOwn returns the caller's orders, newest first.
func (s *OrderService) ListOwn(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// ListAll returns every order for the admin view, newest first.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// EditItems replaces a Pending order's items wholesale and recomputes the
// total. Reserved stock is not reconciled against the new item list.
func (s *OrderService) EditItems(ctx context.Context, userID, orderID primitive.ObjectID, items []models.OrderItem) (*models.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.ErrNotOrderOwner
	}
	if order.Status != models.OrderStatusPending {
		return nil, apperrors.ErrOrderNotEdit
	}
	if len(items) == 0 {
		return nil, apperrors.ErrInvalidItems
	}

	return s.orders.UpdateItems(ctx, orderID, items, models.TotalOf(items))
}

// SetStatus is the admin status overwrite. Only the enum is enforced; no
// transition graph is applied, so Delivered can technically be moved back to
// Pending. That mirrors the admin dashboard contract.
func (s *OrderService) SetStatus(ctx context.Context, orderID primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if _, err := s.findOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return s.orders.UpdateStatus(ctx, orderID, status)
}

// Cancel restores each item's stock and marks the order Cancelled. Stock is
// restored by the stored product id; items written before ids were stored
// fall back to a name lookup. Items whose product vanished entirely are
// skipped. Cancelled is terminal: a second cancel fails.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID primitive.ObjectID) (*models.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.ErrNotOrderOwner
	}
	if order.Status != models.OrderStatusPending {
		return nil, apperrors.ErrOrderNotCancel
	}

	for _, item := range order.Items {
		products := s.productRepoFor(item.ProductType)
		if products == nil {
			continue
		}
		if err := s.restoreStock(ctx, products, item); err != nil {
			return nil, err
		}
	}

	return s.orders.UpdateStatus(ctx, orderID, models.OrderStatusCancelled)
}

func (s *OrderService) restoreStock(ctx context.Context, products IProductRepository, item models.OrderItem) error {
	if item.ProductID != nil {
		err := products.ReleaseStock(ctx, *item.ProductID, item.Quantity)
		if err == nil || !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
	}

	err := products.ReleaseStockByName(ctx, item.Name, item.Quantity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return err
}

func (s *OrderService) findOrder(ctx context.Context, orderID primitive.ObjectID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) productRepoFor(productType models.ProductType) IProductRepository {
	switch productType {
	case models.ProductTypeFood:
		return s.foodProducts
	case models.ProductTypeAccessory:
		return s.accessoryProducts
	}
	return nil
}
