package services

import (
	"context"

	"github.com/Dhanushvel123/PetShop-Server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repositories backing the cart/order/catalog tests. They mirror
// the Mongo repositories' contract, including the conditional stock
// reservation and mongo.ErrNoDocuments for missing records.

type fakeProductRepo struct {
	products map[primitive.ObjectID]*models.Product
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[primitive.ObjectID]*models.Product)}
	for _, p := range products {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) FindByName(_ context.Context, name string) (*models.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			copied := *p
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id primitive.ObjectID, stock int) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	p.Stock = stock
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) SetFavorite(_ context.Context, id primitive.ObjectID, favorite bool) error {
	p, ok := r.products[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.Favorite = favorite
	return nil
}

func (r *fakeProductRepo) ReserveStock(_ context.Context, id primitive.ObjectID, qty, required int) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.Stock < required {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (r *fakeProductRepo) ReleaseStock(_ context.Context, id primitive.ObjectID, qty int) error {
	p, ok := r.products[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.Stock += qty
	return nil
}

func (r *fakeProductRepo) ReleaseStockByName(_ context.Context, name string, qty int) error {
	for _, p := range r.products {
		if p.Name == name {
			p.Stock += qty
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeProductRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.products[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) stockOf(id primitive.ObjectID) int {
	if p, ok := r.products[id]; ok {
		return p.Stock
	}
	return -1
}

type fakeCartRepo struct {
	lines map[primitive.ObjectID]*models.CartLine
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{lines: make(map[primitive.ObjectID]*models.CartLine)}
}

func (r *fakeCartRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.CartLine, error) {
	line, ok := r.lines[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *line
	return &copied, nil
}

func (r *fakeCartRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.CartLine, error) {
	var out []models.CartLine
	for _, line := range r.lines {
		if line.UserID == userID {
			out = append(out, *line)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) FindByUserAndProduct(_ context.Context, userID, productID primitive.ObjectID) (*models.CartLine, error) {
	for _, line := range r.lines {
		if line.UserID == userID && line.ProductID == productID {
			copied := *line
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeCartRepo) Create(_ context.Context, line *models.CartLine) error {
	if line.ID.IsZero() {
		line.ID = primitive.NewObjectID()
	}
	copied := *line
	r.lines[line.ID] = &copied
	return nil
}

func (r *fakeCartRepo) SetQuantity(_ context.Context, id primitive.ObjectID, quantity int) error {
	line, ok := r.lines[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	line.Quantity = quantity
	return nil
}

func (r *fakeCartRepo) IncrementQuantity(_ context.Context, id primitive.ObjectID, delta int) error {
	line, ok := r.lines[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	line.Quantity += delta
	return nil
}

func (r *fakeCartRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.lines[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.lines, id)
	return nil
}

func (r *fakeCartRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	for id, line := range r.lines {
		if line.UserID == userID {
			delete(r.lines, id)
		}
	}
	return nil
}

func (r *fakeCartRepo) quantityFor(userID, productID primitive.ObjectID) int {
	for _, line := range r.lines {
		if line.UserID == userID && line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}

type fakeOrderRepo struct {
	orders map[primitive.ObjectID]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]*models.Order)}
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, order := range r.orders {
		out = append(out, *order)
	}
	return out, nil
}

func (r *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) UpdateItems(_ context.Context, id primitive.ObjectID, items []models.OrderItem, totalPrice float64) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	order.Items = items
	order.TotalPrice = totalPrice
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	order.Status = status
	copied := *order
	return &copied, nil
}
