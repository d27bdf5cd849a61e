package service

import (
	"context"
	"fmt"
	"log"

	"github.com/junguanghe/cafe-rater/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RecentCafeReviews = 5
	RecentItemReviews = 10
)

// StatsService derives rating rollups. Cafe and global rollups cover reviews
// of cafes only; item reviews count toward their item alone.
type StatsService struct {
	cafes   CafeRepository
	reviews ReviewRepository
	cache   StatsCache
}

func NewStatsService(cafes CafeRepository, reviews ReviewRepository, cache StatsCache) *StatsService {
	return &StatsService{cafes: cafes, reviews: reviews, cache: cache}
}

func (s *StatsService) CafeSummaries(ctx context.Context) ([]domain.CafeSummary, error) {
	var summaries []domain.CafeSummary
	if s.cached(ctx, cafeListKey, &summaries) {
		return summaries, nil
	}

	cafes, err := s.cafes.ListCafes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cafes: %w", err)
	}
	summaries = make([]domain.CafeSummary, 0, len(cafes))
	for _, cafe := range cafes {
		rating, err := s.rating(ctx, domain.ReviewFilter{CafeID: cafe.ID, CafeOnly: true})
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, domain.CafeSummary{Cafe: cafe, Rating: rating})
	}

	s.store(ctx, cafeListKey, summaries)
	return summaries, nil
}

func (s *StatsService) CafeStats(ctx context.Context, cafeID primitive.ObjectID) (*domain.CafeStats, error) {
	key := CafeStatsKey(cafeID)
	var stats domain.CafeStats
	if s.cached(ctx, key, &stats) {
		return &stats, nil
	}

	cafe, err := s.cafes.FindCafeByID(ctx, cafeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cafe: %w", err)
	}
	if cafe == nil {
		return nil, domain.ErrCafeNotFound
	}

	filter := domain.ReviewFilter{CafeID: cafeID, CafeOnly: true}
	rating, err := s.rating(ctx, filter)
	if err != nil {
		return nil, err
	}
	recent, err := s.reviews.RecentReviews(ctx, filter, RecentCafeReviews)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent reviews: %w", err)
	}
	attributed := make([]domain.AttributedReview, 0, len(recent))
	for _, r := range recent {
		attributed = append(attributed, domain.AttributedReview{Review: r, CafeName: cafe.Name})
	}

	items := make([]domain.ItemRating, 0, len(cafe.Items))
	for _, item := range cafe.Items {
		itemRating, err := s.rating(ctx, domain.ReviewFilter{ItemID: item.ID})
		if err != nil {
			return nil, err
		}
		items = append(items, domain.ItemRating{Item: item, Rating: itemRating})
	}

	stats = domain.CafeStats{
		Cafe:          *cafe,
		Rating:        rating,
		RecentRatings: attributed,
		Items:         items,
	}
	s.store(ctx, key, stats)
	return &stats, nil
}

func (s *StatsService) ItemStats(ctx context.Context, itemID primitive.ObjectID) (*domain.ItemStats, error) {
	key := ItemStatsKey(itemID)
	var stats domain.ItemStats
	if s.cached(ctx, key, &stats) {
		return &stats, nil
	}

	owner, err := s.cafes.FindItemOwner(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find item owner: %w", err)
	}
	if owner == nil {
		return nil, domain.ErrItemNotFound
	}
	item := owner.FindItem(itemID)
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	filter := domain.ReviewFilter{ItemID: itemID}
	rating, err := s.rating(ctx, filter)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.RecentReviews(ctx, filter, RecentItemReviews)
	if err != nil {
		return nil, fmt.Errorf("failed to load item reviews: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	stats = domain.ItemStats{
		CafeID:  owner.ID,
		Item:    *item,
		Rating:  rating,
		Reviews: reviews,
	}
	s.store(ctx, key, stats)
	return &stats, nil
}

// GlobalStats resolves each recent review's cafe with its own lookup. A cafe
// deleted while its reviews are still being cascaded renders with no name.
func (s *StatsService) GlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	var stats domain.GlobalStats
	if s.cached(ctx, globalStatsKey, &stats) {
		return &stats, nil
	}

	filter := domain.ReviewFilter{CafeOnly: true}
	rating, err := s.rating(ctx, filter)
	if err != nil {
		return nil, err
	}
	recent, err := s.reviews.RecentReviews(ctx, filter, RecentCafeReviews)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent reviews: %w", err)
	}

	names := make(map[primitive.ObjectID]string)
	attributed := make([]domain.AttributedReview, 0, len(recent))
	for _, r := range recent {
		name, ok := names[r.CafeID]
		if !ok {
			cafe, err := s.cafes.FindCafeByID(ctx, r.CafeID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cafe %s: %w", r.CafeID.Hex(), err)
			}
			if cafe != nil {
				name = cafe.Name
			}
			names[r.CafeID] = name
		}
		attributed = append(attributed, domain.AttributedReview{Review: r, CafeName: name})
	}

	stats = domain.GlobalStats{Rating: rating, RecentRatings: attributed}
	s.store(ctx, globalStatsKey, stats)
	return &stats, nil
}

func (s *StatsService) rating(ctx context.Context, filter domain.ReviewFilter) (domain.RatingStats, error) {
	summary, err := s.reviews.SummarizeReviews(ctx, filter)
	if err != nil {
		return domain.RatingStats{}, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	return domain.NewRatingStats(summary), nil
}

func (s *StatsService) cached(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		log.Printf("Warning: stats cache read %s failed: %v", key, err)
		return false
	}
	return hit
}

func (s *StatsService) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		log.Printf("Warning: stats cache write %s failed: %v", key, err)
	}
}
