package services

import (
	"context"
	"testing"

	"github.com/Dhanushvel123/PetShop-Server/models"
	"github.com/Dhanushvel123/PetShop-Server/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newCartFixture(stock int) (*CartService, *fakeProductRepo, *fakeCartRepo, *models.Product) {
	product := &models.Product{Name: "Salmon Bites", Price: 5, Stock: stock}
	products := newFakeProductRepo(product)
	carts := newFakeCartRepo()
	return NewCartService(products, carts), products, carts, product
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("creates a line and reserves stock", func(t *testing.T) {
		svc, products, carts, product := newCartFixture(10)

		err := svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 3, Price: 5})

		assert.NoError(t, err)
		assert.Equal(t, 7, products.stockOf(product.ID))
		assert.Equal(t, 3, carts.quantityFor(userID, product.ID))
	})

	t.Run("repeated adds increment the existing line", func(t *testing.T) {
		svc, products, carts, product := newCartFixture(10)

		assert.NoError(t, svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 2}))
		assert.NoError(t, svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 3}))

		assert.Equal(t, 5, products.stockOf(product.ID))
		assert.Equal(t, 5, carts.quantityFor(userID, product.ID))
		lines, _ := carts.FindByUser(ctx, userID)
		assert.Len(t, lines, 1, "one line per (user, product)")
	})

	t.Run("insufficient stock leaves no partial effect", func(t *testing.T) {
		svc, products, carts, product := newCartFixture(2)

		err := svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 3})

		assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
		assert.Equal(t, 2, products.stockOf(product.ID))
		assert.Equal(t, 0, carts.quantityFor(userID, product.ID))
	})

	t.Run("cumulative check counts the existing line", func(t *testing.T) {
		// Stock 5, line already holds 3 of it; a further add of 3 must fail
		// because 5 < 3+3, even though 3 units are still available.
		svc, products, _, product := newCartFixture(5)
		assert.NoError(t, svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 3}))

		err := svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 3})

		assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
		assert.Equal(t, 2, products.stockOf(product.ID))
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, _, _, _ := newCartFixture(5)

		err := svc.AddItem(ctx, userID, AddItemInput{ProductID: primitive.NewObjectID(), Quantity: 1})

		assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	})

	t.Run("quantity below one", func(t *testing.T) {
		svc, _, _, product := newCartFixture(5)

		err := svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 0})

		assert.ErrorIs(t, err, apperrors.ErrInvalidQuantity)
	})
}

// Stock plus active cart quantities must stay constant across any add/remove
// sequence on one product.
func TestStockConservation(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	svc, products, carts, product := newCartFixture(10)

	total := func() int {
		return products.stockOf(product.ID) + carts.quantityFor(userID, product.ID)
	}

	assert.NoError(t, svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 4}))
	assert.Equal(t, 10, total())

	assert.NoError(t, svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 2}))
	assert.Equal(t, 10, total())

	lines, _ := carts.FindByUser(ctx, userID)
	assert.NoError(t, svc.UpdateQuantity(ctx, userID, lines[0].ID, 1))
	assert.Equal(t, 10, total())

	assert.NoError(t, svc.RemoveItem(ctx, userID, lines[0].ID))
	assert.Equal(t, 10, total())
	assert.Equal(t, 10, products.stockOf(product.ID))
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("reducing restores stock without a stock check", func(t *testing.T) {
		svc, products, carts, product := newCartFixture(10)
		assert.NoError(t, svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 3}))
		lines, _ := carts.FindByUser(ctx, userID)

		err := svc.UpdateQuantity(ctx, userID, lines[0].ID, 1)

		assert.NoError(t, err)
		assert.Equal(t, 9, products.stockOf(product.ID))
		assert.Equal(t, 1, carts.quantityFor(userID, product.ID))
	})

	t.Run("raising past available stock fails", func(t *testing.T) {
		svc, products, carts, product := newCartFixture(5)
		assert.NoError(t, svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 3}))
		lines, _ := carts.FindByUser(ctx, userID)

		err := svc.UpdateQuantity(ctx, userID, lines[0].ID, 6)

		assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
		assert.Equal(t, 2, products.stockOf(product.ID))
		assert.Equal(t, 3, carts.quantityFor(userID, product.ID))
	})

	t.Run("foreign line reads as not found", func(t *testing.T) {
		svc, _, carts, product := newCartFixture(10)
		assert.NoError(t, svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 2}))
		lines, _ := carts.FindByUser(ctx, userID)

		err := svc.UpdateQuantity(ctx, primitive.NewObjectID(), lines[0].ID, 1)

		assert.ErrorIs(t, err, apperrors.ErrCartItemNotFound)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("restores stock and deletes the line", func(t *testing.T) {
		svc, products, carts, product := newCartFixture(10)
		assert.NoError(t, svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 4}))
		lines, _ := carts.FindByUser(ctx, userID)

		err := svc.RemoveItem(ctx, userID, lines[0].ID)

		assert.NoError(t, err)
		assert.Equal(t, 10, products.stockOf(product.ID))
		lines, _ = carts.FindByUser(ctx, userID)
		assert.Empty(t, lines)
	})

	t.Run("product deleted in the meantime still removes the line", func(t *testing.T) {
		svc, products, carts, product := newCartFixture(10)
		assert.NoError(t, svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 4}))
		assert.NoError(t, products.Delete(ctx, product.ID))
		lines, _ := carts.FindByUser(ctx, userID)

		err := svc.RemoveItem(ctx, userID, lines[0].ID)

		assert.NoError(t, err)
		lines, _ = carts.FindByUser(ctx, userID)
		assert.Empty(t, lines)
	})

	t.Run("missing line", func(t *testing.T) {
		svc, _, _, _ := newCartFixture(10)

		err := svc.RemoveItem(ctx, userID, primitive.NewObjectID())

		assert.ErrorIs(t, err, apperrors.ErrCartItemNotFound)
	})
}

func TestListCart(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	svc, _, _, product := newCartFixture(10)

	assert.NoError(t, svc.AddItem(ctx, userID, AddItemInput{ProductID: product.ID, Quantity: 2}))
	assert.NoError(t, svc.AddItem(ctx, otherID, AddItemInput{ProductID: product.ID, Quantity: 1}))

	lines, err := svc.ListCart(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, userID, lines[0].UserID)

	empty, err := svc.ListCart(ctx, primitive.NewObjectID())
	assert.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
