package repository

import (
	"context"
	"time"

	"github.com/Dhanushvel123/PetShop-Server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartRepository wraps one cart collection (food_carts or accessory_carts).
type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database, collectionName string) *CartRepository {
	return &CartRepository{
		collection: db.Collection(collectionName),
	}
}

func (r *CartRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.CartLine, error) {
	var line models.CartLine
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&line)
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.CartLine, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lines []models.CartLine
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *CartRepository) FindByUserAndProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.CartLine, error) {
	var line models.CartLine
	err := r.collection.FindOne(ctx, bson.M{"user": userID, "product": productID}).Decode(&line)
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) Create(ctx context.Context, line *models.CartLine) error {
	now := time.Now().UTC()
	line.CreatedAt = now
	line.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, line)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		line.ID = id
	}
	return nil
}

func (r *CartRepository) SetQuantity(ctx context.Context, id primitive.ObjectID, quantity int) error {
	update := bson.M{"$set": bson.M{"quantity": quantity, "updated_at": time.Now().UTC()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *CartRepository) IncrementQuantity(ctx context.Context, id primitive.ObjectID, delta int) error {
	update := bson.M{
		"$inc": bson.M{"quantity": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByUser clears every line of the user's cart, used at checkout.
func (r *CartRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user": userID})
	return err
}
