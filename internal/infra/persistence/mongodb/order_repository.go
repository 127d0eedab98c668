package mongodb

import (
	"context"

	"foodio/internal/domain/entity"
	"foodio/internal/domain/repository"
	"foodio/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// orderRepository implements repository.OrderRepository against the orders
// collection.
type orderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{
		collection: db.Collection(ordersCollection),
	}
}

// Insert persists a new order and returns the store-assigned id.
func (repo *orderRepository) Insert(ctx context.Context, order *entity.Order) (primitive.ObjectID, error) {
	result, err := repo.collection.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "failed to insert order")
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return id, nil
}

// FindByBuyerWithFood matches the buyer's orders and joins each one with its
// food document. food_id is stored as a native ObjectID, so the lookup joins
// directly on _id with no per-document coercion. Orders whose food has been
// deleted keep a nil FoodInfo rather than disappearing from the result.
func (repo *orderRepository) FindByBuyerWithFood(ctx context.Context, email string) ([]*entity.Order, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "buyer_email", Value: email}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: foodsCollection},
			{Key: "localField", Value: "food_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "food_info"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$food_info"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := repo.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders with food info")
	}

	orders := make([]*entity.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, errors.Wrap(err, "failed to decode orders")
	}

	return orders, nil
}
