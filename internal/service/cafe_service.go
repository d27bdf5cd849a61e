package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/junguanghe/cafe-rater/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CafeService struct {
	cafes   CafeRepository
	reviews ReviewRepository
	qr      QRGenerator
	effects sideEffects
	now     Clock
}

func NewCafeService(cafes CafeRepository, reviews ReviewRepository, qr QRGenerator, cache StatsCache, publisher EventPublisher) *CafeService {
	return &CafeService{
		cafes:   cafes,
		reviews: reviews,
		qr:      qr,
		effects: sideEffects{cache: cache, publisher: publisher},
		now:     time.Now,
	}
}

func (s *CafeService) CreateCafe(ctx context.Context, input domain.NewCafeInput) (*domain.Cafe, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Building = strings.TrimSpace(input.Building)
	if input.Name == "" || input.Building == "" {
		return nil, domain.Validationf("name and building are required")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.cafes.FindCafeByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check cafe name: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateName
	}

	cafe := &domain.Cafe{
		ID:       primitive.NewObjectID(),
		Name:     input.Name,
		Building: input.Building,
		Items:    []domain.Item{},
	}
	if err := s.cafes.InsertCafe(ctx, cafe); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to insert cafe: %w", err)
	}

	s.effects.invalidate(ctx, cafeListKey)
	log.Printf("Created cafe %s (%q)", cafe.ID.Hex(), cafe.Name)
	return cafe, nil
}

func (s *CafeService) ListCafes(ctx context.Context) ([]domain.Cafe, error) {
	return s.cafes.ListCafes(ctx)
}

func (s *CafeService) FindCafe(ctx context.Context, cafeID primitive.ObjectID) (*domain.Cafe, error) {
	return s.cafes.FindCafeByID(ctx, cafeID)
}

func (s *CafeService) FindItemOwner(ctx context.Context, itemID primitive.ObjectID) (*domain.Cafe, error) {
	return s.cafes.FindItemOwner(ctx, itemID)
}

func (s *CafeService) AddItem(ctx context.Context, cafeID primitive.ObjectID, input domain.NewItemInput) (*domain.Item, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, domain.Validationf("item name is required")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	cafe, err := s.cafes.FindCafeByID(ctx, cafeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cafe: %w", err)
	}
	if cafe == nil {
		return nil, domain.ErrCafeNotFound
	}

	item := domain.Item{
		ID:   primitive.NewObjectID(),
		Name: input.Name,
		Type: domain.DefaultItemType,
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Type != nil && strings.TrimSpace(*input.Type) != "" {
		item.Type = strings.TrimSpace(*input.Type)
	}

	matched, err := s.cafes.PushItem(ctx, cafeID, item)
	if err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	if !matched {
		return nil, domain.ErrCafeNotFound
	}

	s.effects.invalidate(ctx, CafeStatsKey(cafeID), cafeListKey)
	return &item, nil
}

// DeleteItem pulls the item out of its cafe and then deletes its reviews.
// The two writes are separate documents; a failure between them leaves
// orphaned item reviews, which no stats query can reach.
func (s *CafeService) DeleteItem(ctx context.Context, itemID primitive.ObjectID) error {
	owner, err := s.cafes.FindItemOwner(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to find item owner: %w", err)
	}
	if owner == nil {
		return domain.ErrItemNotFound
	}

	removed, err := s.cafes.PullItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	if !removed {
		return domain.ErrItemNotFound
	}

	deleted, err := s.reviews.DeleteReviews(ctx, domain.ReviewFilter{ItemID: itemID})
	if err != nil {
		return fmt.Errorf("failed to delete item reviews: %w", err)
	}

	s.effects.invalidate(ctx, CafeStatsKey(owner.ID), ItemStatsKey(itemID), cafeListKey, globalStatsKey)
	s.effects.publish(ctx, domain.ReviewEvent{
		Type:      domain.EventItemDeleted,
		CafeID:    owner.ID,
		ItemID:    &itemID,
		Timestamp: s.now(),
	})
	log.Printf("Deleted item %s from cafe %s with %d reviews", itemID.Hex(), owner.ID.Hex(), deleted)
	return nil
}

// DeleteCafe removes the cafe document, which carries its items, then every
// review referencing it. Deleting an unknown cafe is not an error and the
// review cascade still runs. The cascade is not atomic with the first delete:
// a failure in between leaves reviews behind until the call is repeated.
func (s *CafeService) DeleteCafe(ctx context.Context, cafeID primitive.ObjectID) error {
	cafe, err := s.cafes.FindCafeByID(ctx, cafeID)
	if err != nil {
		return fmt.Errorf("failed to load cafe: %w", err)
	}
	if cafe == nil {
		cafe = &domain.Cafe{ID: cafeID}
	}

	if _, err := s.cafes.DeleteCafe(ctx, cafeID); err != nil {
		return fmt.Errorf("failed to delete cafe: %w", err)
	}
	deleted, err := s.reviews.DeleteReviews(ctx, domain.ReviewFilter{CafeID: cafeID})
	if err != nil {
		return fmt.Errorf("failed to delete cafe reviews: %w", err)
	}

	s.effects.invalidate(ctx, cafeKeys(cafe)...)
	s.effects.publish(ctx, domain.ReviewEvent{
		Type:      domain.EventCafeDeleted,
		CafeID:    cafeID,
		Timestamp: s.now(),
	})
	log.Printf("Deleted cafe %s with %d items and %d reviews", cafeID.Hex(), len(cafe.Items), deleted)
	return nil
}

func (s *CafeService) QRCode(ctx context.Context, cafeID primitive.ObjectID) ([]byte, error) {
	cafe, err := s.cafes.FindCafeByID(ctx, cafeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cafe: %w", err)
	}
	if cafe == nil {
		return nil, domain.ErrCafeNotFound
	}
	if s.qr == nil {
		return nil, errors.New("qr code generator not configured")
	}
	return s.qr.Generate(cafe.ID)
}
