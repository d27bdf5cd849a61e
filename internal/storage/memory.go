package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/junguanghe/cafe-rater/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is a process-local store with the same contracts as
// MongoRepository. Each method is atomic; sequences of calls are not.
type MemoryStore struct {
	mu      sync.RWMutex
	cafes   []domain.Cafe
	reviews []domain.Review
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) InsertCafe(_ context.Context, cafe *domain.Cafe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.cafes {
		if existing.Name == cafe.Name {
			return domain.ErrDuplicateName
		}
	}
	if cafe.Items == nil {
		cafe.Items = []domain.Item{}
	}
	s.cafes = append(s.cafes, copyCafe(*cafe))
	return nil
}

func (s *MemoryStore) ListCafes(_ context.Context) ([]domain.Cafe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cafes := make([]domain.Cafe, 0, len(s.cafes))
	for _, cafe := range s.cafes {
		cafes = append(cafes, copyCafe(cafe))
	}
	return cafes, nil
}

func (s *MemoryStore) FindCafeByID(_ context.Context, id primitive.ObjectID) (*domain.Cafe, error) {
	return s.findCafe(func(c *domain.Cafe) bool { return c.ID == id }), nil
}

func (s *MemoryStore) FindCafeByName(_ context.Context, name string) (*domain.Cafe, error) {
	return s.findCafe(func(c *domain.Cafe) bool { return c.Name == name }), nil
}

func (s *MemoryStore) FindItemOwner(_ context.Context, itemID primitive.ObjectID) (*domain.Cafe, error) {
	return s.findCafe(func(c *domain.Cafe) bool { return c.FindItem(itemID) != nil }), nil
}

func (s *MemoryStore) findCafe(match func(*domain.Cafe) bool) *domain.Cafe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.cafes {
		if match(&s.cafes[i]) {
			cafe := copyCafe(s.cafes[i])
			return &cafe
		}
	}
	return nil
}

func (s *MemoryStore) PushItem(_ context.Context, cafeID primitive.ObjectID, item domain.Item) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cafes {
		if s.cafes[i].ID == cafeID {
			s.cafes[i].Items = append(s.cafes[i].Items, item)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) PullItem(_ context.Context, itemID primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cafes {
		items := s.cafes[i].Items
		for j := range items {
			if items[j].ID == itemID {
				s.cafes[i].Items = append(items[:j:j], items[j+1:]...)
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *MemoryStore) DeleteCafe(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cafes {
		if s.cafes[i].ID == id {
			s.cafes = append(s.cafes[:i], s.cafes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) InsertReview(_ context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *MemoryStore) DeleteReviews(_ context.Context, filter domain.ReviewFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.reviews[:0]
	var deleted int64
	for _, r := range s.reviews {
		if filter.Matches(r) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	s.reviews = kept
	return deleted, nil
}

func (s *MemoryStore) SummarizeReviews(_ context.Context, filter domain.ReviewFilter) (domain.RatingSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var summary domain.RatingSummary
	for _, r := range s.reviews {
		if filter.Matches(r) {
			summary.Count++
			summary.Total += int64(r.Rating)
		}
	}
	return summary, nil
}

func (s *MemoryStore) RecentReviews(_ context.Context, filter domain.ReviewFilter, limit int) ([]domain.Review, error) {
	s.mu.RLock()
	matched := []domain.Review{}
	for _, r := range s.reviews {
		if filter.Matches(r) {
			matched = append(matched, r)
		}
	}
	s.mu.RUnlock()

	// reviews are held in insertion order, so a stable sort keeps ties in it
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func copyCafe(c domain.Cafe) domain.Cafe {
	items := make([]domain.Item, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
