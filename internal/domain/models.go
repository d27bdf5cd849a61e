package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultItemType = "other"

type Cafe struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Building string             `bson:"building" json:"building"`
	Items    []Item             `bson:"items" json:"items"`
}

// FindItem returns the embedded item with the given id, or nil.
func (c *Cafe) FindItem(itemID primitive.ObjectID) *Item {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

type Item struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Type  string             `bson:"type" json:"type"`
}

// Review is the stored form of a rating. ItemID is nil for reviews of the
// cafe itself; item reviews still carry CafeID so cafe deletes can cascade.
type Review struct {
	ID        primitive.ObjectID  `bson:"_id" json:"id"`
	CafeID    primitive.ObjectID  `bson:"cafeId" json:"cafe_id"`
	ItemID    *primitive.ObjectID `bson:"itemId,omitempty" json:"item_id,omitempty"`
	Rating    int                 `bson:"rating" json:"rating"`
	Comment   string              `bson:"comment" json:"comment"`
	Timestamp time.Time           `bson:"timestamp" json:"timestamp"`
}

// ReviewTarget is what a review rates: either a cafe or one of its items.
type ReviewTarget interface {
	Cafe() primitive.ObjectID
	isReviewTarget()
}

type CafeTarget struct {
	CafeID primitive.ObjectID
}

func (t CafeTarget) Cafe() primitive.ObjectID { return t.CafeID }
func (CafeTarget) isReviewTarget()            {}

type ItemTarget struct {
	CafeID primitive.ObjectID
	ItemID primitive.ObjectID
}

func (t ItemTarget) Cafe() primitive.ObjectID { return t.CafeID }
func (ItemTarget) isReviewTarget()            {}

// NewReview builds a review for target. Timestamps are kept at millisecond
// precision, the resolution of BSON dates.
func NewReview(target ReviewTarget, rating int, comment string, at time.Time) Review {
	review := Review{
		ID:        primitive.NewObjectID(),
		CafeID:    target.Cafe(),
		Rating:    rating,
		Comment:   comment,
		Timestamp: at.UTC().Truncate(time.Millisecond),
	}
	if it, ok := target.(ItemTarget); ok {
		itemID := it.ItemID
		review.ItemID = &itemID
	}
	return review
}

func (r Review) Target() ReviewTarget {
	if r.ItemID != nil {
		return ItemTarget{CafeID: r.CafeID, ItemID: *r.ItemID}
	}
	return CafeTarget{CafeID: r.CafeID}
}

// ReviewFilter selects reviews. Zero ids match anything.
type ReviewFilter struct {
	CafeID primitive.ObjectID
	ItemID primitive.ObjectID
	// CafeOnly restricts the match to reviews without an item.
	CafeOnly bool
}

func (f ReviewFilter) Matches(r Review) bool {
	if !f.CafeID.IsZero() && r.CafeID != f.CafeID {
		return false
	}
	if !f.ItemID.IsZero() && (r.ItemID == nil || *r.ItemID != f.ItemID) {
		return false
	}
	if f.CafeOnly && r.ItemID != nil {
		return false
	}
	return true
}

type ReviewEvent struct {
	Type      string              `json:"type"`
	CafeID    primitive.ObjectID  `json:"cafeId"`
	ItemID    *primitive.ObjectID `json:"itemId,omitempty"`
	Rating    int                 `json:"rating,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

const (
	EventReviewCreated = "review_created"
	EventItemDeleted   = "item_deleted"
	EventCafeDeleted   = "cafe_deleted"
)
