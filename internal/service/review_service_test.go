package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/junguanghe/cafe-rater/internal/domain"
	"github.com/junguanghe/cafe-rater/internal/mocks"
	"github.com/junguanghe/cafe-rater/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(v int) *int { return &v }

func TestReviewService_CreateReview_RatingBounds(t *testing.T) {
	ctx := context.Background()
	cafeID := primitive.NewObjectID()
	now := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)

	for rating := 0; rating <= 6; rating++ {
		t.Run(fmt.Sprintf("rating_%d", rating), func(t *testing.T) {
			cafes := mocks.NewCafeRepository(t)
			reviews := mocks.NewReviewRepository(t)
			valid := rating >= 1 && rating <= 5

			if valid {
				cafes.On("FindCafeByID", ctx, cafeID).Return(&domain.Cafe{ID: cafeID, Name: "Beanery"}, nil).Once()
				reviews.On("InsertReview", ctx, mock.AnythingOfType("*domain.Review")).Return(nil).Once()
			}

			svc := service.NewReviewService(cafes, reviews, nil, nil).WithClock(func() time.Time { return now })
			review, err := svc.CreateReview(ctx, domain.NewReviewInput{
				CafeID: cafeID.Hex(),
				Rating: intPtr(rating),
			})

			if !valid {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), "rating must be between 1 and 5")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, rating, review.Rating)
			assert.Equal(t, cafeID, review.CafeID)
			assert.Nil(t, review.ItemID)
			assert.Equal(t, now.Truncate(time.Millisecond), review.Timestamp)
		})
	}
}

func TestReviewService_CreateReview_Validation(t *testing.T) {
	ctx := context.Background()
	cafeID := primitive.NewObjectID()
	itemID := primitive.NewObjectID()
	otherItem := primitive.NewObjectID()
	cafe := &domain.Cafe{ID: cafeID, Items: []domain.Item{{ID: itemID, Name: "Latte"}}}

	tests := []struct {
		name         string
		input        domain.NewReviewInput
		prepareMocks func(cafes *mocks.CafeRepository)
		errContains  string
	}{
		{
			name:         "missing_cafe_id",
			input:        domain.NewReviewInput{Rating: intPtr(3)},
			prepareMocks: func(cafes *mocks.CafeRepository) {},
			errContains:  "cafeId and rating are required",
		},
		{
			name:         "missing_rating",
			input:        domain.NewReviewInput{CafeID: cafeID.Hex()},
			prepareMocks: func(cafes *mocks.CafeRepository) {},
			errContains:  "cafeId and rating are required",
		},
		{
			name:         "comment_too_long",
			input:        domain.NewReviewInput{CafeID: cafeID.Hex(), Rating: intPtr(3), Comment: string(make([]byte, 201))},
			prepareMocks: func(cafes *mocks.CafeRepository) {},
			errContains:  "comment",
		},
		{
			name:         "malformed_cafe_id",
			input:        domain.NewReviewInput{CafeID: "not-an-id", Rating: intPtr(3)},
			prepareMocks: func(cafes *mocks.CafeRepository) {},
			errContains:  `invalid cafeId "not-an-id"`,
		},
		{
			name:  "unknown_cafe",
			input: domain.NewReviewInput{CafeID: cafeID.Hex(), Rating: intPtr(3)},
			prepareMocks: func(cafes *mocks.CafeRepository) {
				cafes.On("FindCafeByID", ctx, cafeID).Return(nil, nil).Once()
			},
			errContains: "does not exist",
		},
		{
			name:  "item_of_another_cafe",
			input: domain.NewReviewInput{CafeID: cafeID.Hex(), ItemID: otherItem.Hex(), Rating: intPtr(3)},
			prepareMocks: func(cafes *mocks.CafeRepository) {
				cafes.On("FindCafeByID", ctx, cafeID).Return(cafe, nil).Once()
			},
			errContains: "does not belong to cafe",
		},
		{
			name:  "malformed_item_id",
			input: domain.NewReviewInput{CafeID: cafeID.Hex(), ItemID: "xyz", Rating: intPtr(3)},
			prepareMocks: func(cafes *mocks.CafeRepository) {
				cafes.On("FindCafeByID", ctx, cafeID).Return(cafe, nil).Once()
			},
			errContains: `invalid itemId "xyz"`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cafes := mocks.NewCafeRepository(t)
			reviews := mocks.NewReviewRepository(t)
			testCase.prepareMocks(cafes)

			svc := service.NewReviewService(cafes, reviews, nil, nil)
			review, err := svc.CreateReview(ctx, testCase.input)

			assert.Nil(t, review)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), testCase.errContains)
		})
	}
}

func TestReviewService_CreateReview_ItemReview(t *testing.T) {
	ctx := context.Background()
	cafeID := primitive.NewObjectID()
	itemID := primitive.NewObjectID()
	cafe := &domain.Cafe{ID: cafeID, Items: []domain.Item{{ID: itemID, Name: "Latte"}}}

	cafes := mocks.NewCafeRepository(t)
	reviews := mocks.NewReviewRepository(t)
	cache := mocks.NewStatsCache(t)
	publisher := mocks.NewEventPublisher(t)

	cafes.On("FindCafeByID", ctx, cafeID).Return(cafe, nil).Once()
	reviews.On("InsertReview", ctx, mock.MatchedBy(func(r *domain.Review) bool {
		return r.ItemID != nil && *r.ItemID == itemID && r.Comment == "smooth"
	})).Return(nil).Once()
	cache.On("Delete", ctx, service.CafeStatsKey(cafeID), "stats:cafes", "stats:global", service.ItemStatsKey(itemID)).
		Return(nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.ReviewEvent) bool {
		return e.Type == domain.EventReviewCreated && e.Rating == 4 && e.ItemID != nil
	})).Return(nil).Once()

	svc := service.NewReviewService(cafes, reviews, cache, publisher)
	review, err := svc.CreateReview(ctx, domain.NewReviewInput{
		CafeID:  cafeID.Hex(),
		ItemID:  itemID.Hex(),
		Rating:  intPtr(4),
		Comment: "smooth",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ItemTarget{CafeID: cafeID, ItemID: itemID}, review.Target())
}
