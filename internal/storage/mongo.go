package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/junguanghe/cafe-rater/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CafesCollection   = "cafes"
	ReviewsCollection = "reviews"
)

// MongoRepository keeps cafes, with their items embedded, in one collection
// and reviews of both kinds in another.
type MongoRepository struct {
	cafes   *mongo.Collection
	reviews *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		cafes:   db.Collection(CafesCollection),
		reviews: db.Collection(ReviewsCollection),
	}
}

// EnsureIndexes creates the unique cafe name index and the lookup indexes
// used by item ownership and review aggregation.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	if _, err := r.cafes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "items._id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("ensure %s indexes: %w", CafesCollection, err)
	}
	if _, err := r.reviews.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "cafeId", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "itemId", Value: 1}, {Key: "timestamp", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("ensure %s indexes: %w", ReviewsCollection, err)
	}
	return nil
}

func (r *MongoRepository) InsertCafe(ctx context.Context, cafe *domain.Cafe) error {
	if cafe.Items == nil {
		cafe.Items = []domain.Item{}
	}
	if _, err := r.cafes.InsertOne(ctx, cafe); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *MongoRepository) ListCafes(ctx context.Context) ([]domain.Cafe, error) {
	cursor, err := r.cafes.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	cafes := []domain.Cafe{}
	if err := cursor.All(ctx, &cafes); err != nil {
		return nil, err
	}
	return cafes, nil
}

func (r *MongoRepository) FindCafeByID(ctx context.Context, id primitive.ObjectID) (*domain.Cafe, error) {
	return r.findCafe(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *MongoRepository) FindCafeByName(ctx context.Context, name string) (*domain.Cafe, error) {
	return r.findCafe(ctx, bson.D{{Key: "name", Value: name}})
}

func (r *MongoRepository) FindItemOwner(ctx context.Context, itemID primitive.ObjectID) (*domain.Cafe, error) {
	return r.findCafe(ctx, bson.D{{Key: "items._id", Value: itemID}})
}

func (r *MongoRepository) findCafe(ctx context.Context, filter bson.D) (*domain.Cafe, error) {
	var cafe domain.Cafe
	if err := r.cafes.FindOne(ctx, filter).Decode(&cafe); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &cafe, nil
}

func (r *MongoRepository) PushItem(ctx context.Context, cafeID primitive.ObjectID, item domain.Item) (bool, error) {
	res, err := r.cafes.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: cafeID}},
		bson.D{{Key: "$push", Value: bson.D{{Key: "items", Value: item}}}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoRepository) PullItem(ctx context.Context, itemID primitive.ObjectID) (bool, error) {
	res, err := r.cafes.UpdateOne(ctx,
		bson.D{{Key: "items._id", Value: itemID}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: "items", Value: bson.D{{Key: "_id", Value: itemID}}}}}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoRepository) DeleteCafe(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.cafes.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	_, err := r.reviews.InsertOne(ctx, review)
	return err
}

func (r *MongoRepository) DeleteReviews(ctx context.Context, filter domain.ReviewFilter) (int64, error) {
	res, err := r.reviews.DeleteMany(ctx, reviewQuery(filter))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// SummarizeReviews runs a match + group pipeline returning count and rating
// sum. An empty match yields no group document and a zero summary.
func (r *MongoRepository) SummarizeReviews(ctx context.Context, filter domain.ReviewFilter) (domain.RatingSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: reviewQuery(filter)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$rating"}}},
		}}},
	}
	cursor, err := r.reviews.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.RatingSummary{}, err
	}
	var results []domain.RatingSummary
	if err := cursor.All(ctx, &results); err != nil {
		return domain.RatingSummary{}, err
	}
	if len(results) == 0 {
		return domain.RatingSummary{}, nil
	}
	return results[0], nil
}

func (r *MongoRepository) RecentReviews(ctx context.Context, filter domain.ReviewFilter, limit int) ([]domain.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))
	cursor, err := r.reviews.Find(ctx, reviewQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	reviews := []domain.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func reviewQuery(filter domain.ReviewFilter) bson.D {
	query := bson.D{}
	if !filter.CafeID.IsZero() {
		query = append(query, bson.E{Key: "cafeId", Value: filter.CafeID})
	}
	if !filter.ItemID.IsZero() {
		query = append(query, bson.E{Key: "itemId", Value: filter.ItemID})
	}
	if filter.CafeOnly {
		query = append(query, bson.E{Key: "itemId", Value: bson.D{{Key: "$exists", Value: false}}})
	}
	return query
}
