package service

import (
	"context"
	"log"

	"github.com/junguanghe/cafe-rater/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	cafeListKey    = "stats:cafes"
	globalStatsKey = "stats:global"
)

func CafeStatsKey(cafeID primitive.ObjectID) string {
	return "stats:cafe:" + cafeID.Hex()
}

func ItemStatsKey(itemID primitive.ObjectID) string {
	return "stats:item:" + itemID.Hex()
}

// sideEffects groups the best-effort work that follows a successful write.
// Failures are logged and never fail the request.
type sideEffects struct {
	cache     StatsCache
	publisher EventPublisher
}

func (s sideEffects) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil || len(keys) == 0 {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Printf("Warning: failed to invalidate stats cache %v: %v", keys, err)
	}
}

func (s sideEffects) publish(ctx context.Context, event domain.ReviewEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s event for cafe %s: %v", event.Type, event.CafeID.Hex(), err)
	}
}

// cafeKeys lists every cache key derived from the cafe and its items.
func cafeKeys(cafe *domain.Cafe) []string {
	keys := []string{CafeStatsKey(cafe.ID), cafeListKey, globalStatsKey}
	for _, item := range cafe.Items {
		keys = append(keys, ItemStatsKey(item.ID))
	}
	return keys
}
