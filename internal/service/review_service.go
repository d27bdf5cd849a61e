package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/junguanghe/cafe-rater/internal/domain"
)

type ReviewService struct {
	cafes   CafeRepository
	reviews ReviewRepository
	effects sideEffects
	now     Clock
}

func NewReviewService(cafes CafeRepository, reviews ReviewRepository, cache StatsCache, publisher EventPublisher) *ReviewService {
	return &ReviewService{
		cafes:   cafes,
		reviews: reviews,
		effects: sideEffects{cache: cache, publisher: publisher},
		now:     time.Now,
	}
}

// WithClock replaces the timestamp source.
func (s *ReviewService) WithClock(now Clock) *ReviewService {
	s.now = now
	return s
}

func (s *ReviewService) CreateReview(ctx context.Context, input domain.NewReviewInput) (*domain.Review, error) {
	if input.CafeID == "" || input.Rating == nil {
		return nil, domain.Validationf("cafeId and rating are required")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	target, err := s.resolveTarget(ctx, input)
	if err != nil {
		return nil, err
	}

	review := domain.NewReview(target, *input.Rating, input.Comment, s.now())
	if err := s.reviews.InsertReview(ctx, &review); err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}

	keys := []string{CafeStatsKey(review.CafeID), cafeListKey, globalStatsKey}
	if review.ItemID != nil {
		keys = append(keys, ItemStatsKey(*review.ItemID))
	}
	s.effects.invalidate(ctx, keys...)
	s.effects.publish(ctx, domain.ReviewEvent{
		Type:      domain.EventReviewCreated,
		CafeID:    review.CafeID,
		ItemID:    review.ItemID,
		Rating:    review.Rating,
		Timestamp: review.Timestamp,
	})

	log.Printf("Created review %s for cafe %s (rating %d)", review.ID.Hex(), review.CafeID.Hex(), review.Rating)
	return &review, nil
}

// resolveTarget checks that the cafe exists and, for item reviews, that the
// item is embedded in that cafe.
func (s *ReviewService) resolveTarget(ctx context.Context, input domain.NewReviewInput) (domain.ReviewTarget, error) {
	cafeID, err := domain.ParseID("cafeId", input.CafeID)
	if err != nil {
		return nil, err
	}
	cafe, err := s.cafes.FindCafeByID(ctx, cafeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cafe: %w", err)
	}
	if cafe == nil {
		return nil, domain.Validationf("cafe %s does not exist", cafeID.Hex())
	}

	if input.ItemID == "" {
		return domain.CafeTarget{CafeID: cafeID}, nil
	}
	itemID, err := domain.ParseID("itemId", input.ItemID)
	if err != nil {
		return nil, err
	}
	if cafe.FindItem(itemID) == nil {
		return nil, domain.Validationf("item %s does not belong to cafe %s", itemID.Hex(), cafeID.Hex())
	}
	return domain.ItemTarget{CafeID: cafeID, ItemID: itemID}, nil
}
