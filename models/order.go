package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the order lifecycle state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the three known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is an immutable snapshot of a product at checkout time. Later
// catalog edits never retroactively alter past orders. ProductID is kept so
// cancellation can restore stock without a name lookup.
type OrderItem struct {
	ProductType ProductType         `bson:"product_type" json:"productType"`
	ProductID   *primitive.ObjectID `bson:"product_id,omitempty" json:"productId,omitempty"`
	Name        string              `bson:"name" json:"name"`
	Image       string              `bson:"image,omitempty" json:"image,omitempty"`
	Price       float64             `bson:"price" json:"price"`
	Quantity    int                 `bson:"quantity" json:"quantity"`
}

// Order is one checkout record.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user" json:"user"`
	Items      []OrderItem        `bson:"items" json:"items"`
	TotalPrice float64            `bson:"total_price" json:"totalPrice"`
	Status     OrderStatus        `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// TotalOf sums price*quantity over items.
func TotalOf(items []OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
