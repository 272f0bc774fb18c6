package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductType distinguishes the two catalog variants.
type ProductType string

const (
	ProductTypeFood      ProductType = "food"
	ProductTypeAccessory ProductType = "accessory"
)

// PlaceholderName is the snapshot name used at checkout when the referenced
// product no longer exists.
func (t ProductType) PlaceholderName() string {
	if t == ProductTypeAccessory {
		return "Unnamed Accessory"
	}
	return "Unnamed Food"
}

// Product is one catalog entry. Pet foods and accessories share this shape
// but live in separate collections.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Favorite    bool               `bson:"favorite" json:"favorite"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
