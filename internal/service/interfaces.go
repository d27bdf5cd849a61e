package service

import (
	"context"
	"time"

	"github.com/junguanghe/cafe-rater/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CafeRepository stores cafes with their embedded items. Lookups return a nil
// cafe and nil error when nothing matches.
type CafeRepository interface {
	InsertCafe(ctx context.Context, cafe *domain.Cafe) error
	ListCafes(ctx context.Context) ([]domain.Cafe, error)
	FindCafeByID(ctx context.Context, id primitive.ObjectID) (*domain.Cafe, error)
	FindCafeByName(ctx context.Context, name string) (*domain.Cafe, error)
	FindItemOwner(ctx context.Context, itemID primitive.ObjectID) (*domain.Cafe, error)
	PushItem(ctx context.Context, cafeID primitive.ObjectID, item domain.Item) (bool, error)
	PullItem(ctx context.Context, itemID primitive.ObjectID) (bool, error)
	DeleteCafe(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type ReviewRepository interface {
	InsertReview(ctx context.Context, review *domain.Review) error
	DeleteReviews(ctx context.Context, filter domain.ReviewFilter) (int64, error)
	SummarizeReviews(ctx context.Context, filter domain.ReviewFilter) (domain.RatingSummary, error)
	// RecentReviews returns at most limit reviews, newest first. Reviews with
	// equal timestamps keep insertion order.
	RecentReviews(ctx context.Context, filter domain.ReviewFilter, limit int) ([]domain.Review, error)
}

type StatsCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.ReviewEvent) error
}

type CafeServiceInterface interface {
	CreateCafe(ctx context.Context, input domain.NewCafeInput) (*domain.Cafe, error)
	ListCafes(ctx context.Context) ([]domain.Cafe, error)
	FindCafe(ctx context.Context, cafeID primitive.ObjectID) (*domain.Cafe, error)
	FindItemOwner(ctx context.Context, itemID primitive.ObjectID) (*domain.Cafe, error)
	AddItem(ctx context.Context, cafeID primitive.ObjectID, input domain.NewItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, itemID primitive.ObjectID) error
	DeleteCafe(ctx context.Context, cafeID primitive.ObjectID) error
	QRCode(ctx context.Context, cafeID primitive.ObjectID) ([]byte, error)
}

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, input domain.NewReviewInput) (*domain.Review, error)
}

type StatsServiceInterface interface {
	CafeSummaries(ctx context.Context) ([]domain.CafeSummary, error)
	CafeStats(ctx context.Context, cafeID primitive.ObjectID) (*domain.CafeStats, error)
	ItemStats(ctx context.Context, itemID primitive.ObjectID) (*domain.ItemStats, error)
	GlobalStats(ctx context.Context) (*domain.GlobalStats, error)
}

// Clock is swapped out in tests.
type Clock func() time.Time

var (
	_ CafeServiceInterface   = (*CafeService)(nil)
	_ ReviewServiceInterface = (*ReviewService)(nil)
	_ StatsServiceInterface  = (*StatsService)(nil)
)
