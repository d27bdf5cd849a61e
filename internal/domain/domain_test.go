package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/junguanghe/cafe-rater/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRatingSummary_Average(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int64
		want    float64
	}{
		{name: "empty", ratings: nil, want: 0},
		{name: "single", ratings: []int64{5}, want: 5.0},
		{name: "half_rounds_up", ratings: []int64{1, 2, 2, 2}, want: 1.8},
		{name: "below_half_rounds_down", ratings: []int64{1, 1, 2}, want: 1.3},
		{name: "thirds", ratings: []int64{4, 5, 5}, want: 4.7},
		{name: "exact", ratings: []int64{3, 4}, want: 3.5},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var summary domain.RatingSummary
			for _, r := range testCase.ratings {
				summary.Count++
				summary.Total += r
			}
			assert.Equal(t, testCase.want, summary.Average())
		})
	}
}

func TestNewRatingStats_Empty(t *testing.T) {
	stats := domain.NewRatingStats(domain.RatingSummary{})
	assert.Equal(t, int64(0), stats.TotalRatings)
	assert.Equal(t, 0.0, stats.AverageRating)
}

func TestNewReview_Target(t *testing.T) {
	cafeID := primitive.NewObjectID()
	itemID := primitive.NewObjectID()
	at := time.Date(2024, 3, 1, 9, 30, 0, 123456789, time.FixedZone("X", 3600))

	cafeReview := domain.NewReview(domain.CafeTarget{CafeID: cafeID}, 4, "", at)
	assert.Nil(t, cafeReview.ItemID)
	assert.Equal(t, cafeID, cafeReview.CafeID)
	assert.Equal(t, domain.CafeTarget{CafeID: cafeID}, cafeReview.Target())
	assert.Equal(t, time.UTC, cafeReview.Timestamp.Location())
	assert.Equal(t, 123000000, cafeReview.Timestamp.Nanosecond())

	itemReview := domain.NewReview(domain.ItemTarget{CafeID: cafeID, ItemID: itemID}, 5, "good", at)
	require.NotNil(t, itemReview.ItemID)
	assert.Equal(t, itemID, *itemReview.ItemID)
	assert.Equal(t, cafeID, itemReview.CafeID)
	assert.Equal(t, domain.ItemTarget{CafeID: cafeID, ItemID: itemID}, itemReview.Target())
}

func TestReviewFilter_Matches(t *testing.T) {
	cafeID := primitive.NewObjectID()
	otherCafe := primitive.NewObjectID()
	itemID := primitive.NewObjectID()

	cafeReview := domain.NewReview(domain.CafeTarget{CafeID: cafeID}, 3, "", time.Now())
	itemReview := domain.NewReview(domain.ItemTarget{CafeID: cafeID, ItemID: itemID}, 3, "", time.Now())

	assert.True(t, domain.ReviewFilter{}.Matches(cafeReview))
	assert.True(t, domain.ReviewFilter{CafeID: cafeID}.Matches(itemReview))
	assert.False(t, domain.ReviewFilter{CafeID: otherCafe}.Matches(cafeReview))
	assert.True(t, domain.ReviewFilter{CafeID: cafeID, CafeOnly: true}.Matches(cafeReview))
	assert.False(t, domain.ReviewFilter{CafeID: cafeID, CafeOnly: true}.Matches(itemReview))
	assert.True(t, domain.ReviewFilter{ItemID: itemID}.Matches(itemReview))
	assert.False(t, domain.ReviewFilter{ItemID: itemID}.Matches(cafeReview))
}

func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()

	parsed, err := domain.ParseID("cafeId", id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = domain.ParseID("cafeId", "not-an-id")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = domain.ParseID("cafeId", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "cafeId is required")
}

func TestNotFoundErrors(t *testing.T) {
	assert.ErrorIs(t, domain.ErrCafeNotFound, domain.ErrNotFound)
	assert.ErrorIs(t, domain.ErrItemNotFound, domain.ErrNotFound)
	assert.Equal(t, "cafe not found", domain.ErrCafeNotFound.Error())
}

func TestNewCafeView_RendersIdentifiers(t *testing.T) {
	cafe := domain.Cafe{
		ID:       primitive.NewObjectID(),
		Name:     "Beanery",
		Building: "Hall A",
		Items: []domain.Item{
			{ID: primitive.NewObjectID(), Name: "Latte", Price: 3.5, Type: "drink"},
			{ID: primitive.NewObjectID(), Name: "Bagel", Price: 2, Type: "food"},
		},
	}

	view := domain.NewCafeView(cafe)
	assert.Equal(t, cafe.ID.Hex(), view.ID)
	require.Len(t, view.Items, 2)
	assert.Equal(t, cafe.Items[0].ID.Hex(), view.Items[0].ID)
	assert.Equal(t, cafe.Items[1].ID.Hex(), view.Items[1].ID)

	first, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded domain.CafeView
	require.NoError(t, json.Unmarshal(first, &decoded))
	second, err := json.Marshal(decoded)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
	assert.Equal(t, view, decoded)
}

func TestNewCafeView_EmptyItemsIsArray(t *testing.T) {
	body, err := json.Marshal(domain.NewCafeView(domain.Cafe{ID: primitive.NewObjectID(), Name: "A", Building: "B"}))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"items":[]`)
}

func TestNewRatedReviewView(t *testing.T) {
	cafeID := primitive.NewObjectID()
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	review := domain.NewReview(domain.CafeTarget{CafeID: cafeID}, 5, "nice", at)

	view := domain.NewRatedReviewView(domain.AttributedReview{Review: review, CafeName: "Beanery"})
	assert.Equal(t, domain.CafeRefView{ID: cafeID.Hex(), Name: "Beanery"}, view.Cafe)
	assert.Equal(t, "2024-03-01T09:30:00.000Z", view.Timestamp)
	assert.Empty(t, view.ItemID)

	body, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"cafeId":{"_id":"`+cafeID.Hex()+`","name":"Beanery"}`)
	assert.NotContains(t, string(body), "itemId")
}

func TestNewItemStatsView(t *testing.T) {
	cafeID := primitive.NewObjectID()
	item := domain.Item{ID: primitive.NewObjectID(), Name: "Latte", Price: 3.5, Type: "other"}
	review := domain.NewReview(domain.ItemTarget{CafeID: cafeID, ItemID: item.ID}, 5, "", time.Now())

	view := domain.NewItemStatsView(domain.ItemStats{
		CafeID:  cafeID,
		Item:    item,
		Rating:  domain.RatingStats{TotalRatings: 1, AverageRating: 5},
		Reviews: []domain.Review{review},
	})

	assert.Equal(t, item.ID.Hex(), view.Item.ID)
	assert.Equal(t, 5.0, view.AverageRating)
	require.Len(t, view.Reviews, 1)
	assert.Equal(t, item.ID.Hex(), view.Reviews[0].ItemID)
	assert.Equal(t, cafeID.Hex(), view.Reviews[0].CafeID)
}
