package mongodb

import (
	"context"
	"regexp"

	"foodio/internal/domain/entity"
	"foodio/internal/domain/repository"
	"foodio/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// foodRepository implements repository.FoodRepository against the foods
// collection.
type foodRepository struct {
	collection *mongo.Collection
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(db *mongo.Database) repository.FoodRepository {
	return &foodRepository{
		collection: db.Collection(foodsCollection),
	}
}

// Find returns all foods, filtered to a case-insensitive substring match on
// food_name when search is non-empty. The search text is quoted so it always
// matches literally, never as a regex.
func (repo *foodRepository) Find(ctx context.Context, search string) ([]*entity.Food, error) {
	filter := bson.M{}
	if search != "" {
		filter["food_name"] = primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	}

	cursor, err := repo.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find foods")
	}

	return decodeFoods(ctx, cursor)
}

// FindByOwner returns all foods whose user_email matches the given email.
func (repo *foodRepository) FindByOwner(ctx context.Context, email string) ([]*entity.Food, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{"user_email": email})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find foods by owner")
	}

	return decodeFoods(ctx, cursor)
}

// FindByID returns a single food by its id.
func (repo *foodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Food, error) {
	var food entity.Food
	if err := repo.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&food); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by id")
	}

	return &food, nil
}

// Insert persists a new food and returns the store-assigned id.
func (repo *foodRepository) Insert(ctx context.Context, food *entity.Food) (primitive.ObjectID, error) {
	result, err := repo.collection.InsertOne(ctx, food)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "failed to insert food")
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return id, nil
}

// UpdateOwned applies a partial $set to the food matched by both id and
// owner email. The compound filter makes not-found and not-owned
// indistinguishable on purpose.
func (repo *foodRepository) UpdateOwned(ctx context.Context, id primitive.ObjectID, email string, patch *repository.FoodPatch) error {
	set := bson.M{}
	if patch.Name != nil {
		set["food_name"] = *patch.Name
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Image != nil {
		set["food_image"] = *patch.Image
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Origin != nil {
		set["food_origin"] = *patch.Origin
	}

	filter := bson.M{"_id": id, "user_email": email}

	if len(set) == 0 {
		// Nothing to set; still enforce the ownership check.
		if err := repo.collection.FindOne(ctx, filter).Err(); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return repository.ErrFoodNotOwned
			}

			return errors.Wrap(err, "failed to check food ownership")
		}

		return nil
	}

	result, err := repo.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return errors.Wrap(err, "failed to update food")
	}
	if result.MatchedCount == 0 {
		return repository.ErrFoodNotOwned
	}

	return nil
}

// DeleteOwned removes the food matched by both id and owner email.
func (repo *foodRepository) DeleteOwned(ctx context.Context, id primitive.ObjectID, email string) error {
	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": id, "user_email": email})
	if err != nil {
		return errors.Wrap(err, "failed to delete food")
	}
	if result.DeletedCount == 0 {
		return repository.ErrFoodNotOwned
	}

	return nil
}

// TopByPurchaseCount returns up to limit foods sorted by purchase_count
// descending.
func (repo *foodRepository) TopByPurchaseCount(ctx context.Context, limit int64) ([]*entity.Food, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "purchase_count", Value: -1}}).
		SetLimit(limit)

	cursor, err := repo.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find top foods")
	}

	return decodeFoods(ctx, cursor)
}

// ReserveStock decrements quantity and increments purchase_count in one
// conditional update. The quantity guard and the increment are applied by
// the store as a single document operation, so stock can never go negative
// even under concurrent placements.
func (repo *foodRepository) ReserveStock(ctx context.Context, id primitive.ObjectID, n int64) error {
	filter := bson.M{
		"_id":      id,
		"quantity": bson.M{"$gte": n},
	}
	update := bson.M{
		"$inc": bson.M{
			"quantity":       -n,
			"purchase_count": n,
		},
	}

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return errors.Wrap(err, "failed to reserve stock")
	}
	if result.MatchedCount == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// ReleaseStock reverses a prior reservation.
func (repo *foodRepository) ReleaseStock(ctx context.Context, id primitive.ObjectID, n int64) error {
	update := bson.M{
		"$inc": bson.M{
			"quantity":       n,
			"purchase_count": -n,
		},
	}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return errors.Wrap(err, "failed to release stock")
	}
	if result.MatchedCount == 0 {
		return repository.ErrFoodNotFound
	}

	return nil
}

func decodeFoods(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Food, error) {
	foods := make([]*entity.Food, 0)
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, errors.Wrap(err, "failed to decode foods")
	}

	return foods, nil
}
