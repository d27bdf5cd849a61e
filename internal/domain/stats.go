package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// RatingSummary is the raw aggregate over a set of reviews.
type RatingSummary struct {
	Count int64 `bson:"count" json:"count"`
	Total int64 `bson:"total" json:"total"`
}

// Average is the mean rating rounded half-up to one decimal place, or 0 for
// an empty set. Rounding is done on integers so 1.75 becomes 1.8 exactly.
func (s RatingSummary) Average() float64 {
	if s.Count <= 0 {
		return 0
	}
	tenths := (20*s.Total + s.Count) / (2 * s.Count)
	return float64(tenths) / 10
}

type RatingStats struct {
	TotalRatings  int64   `json:"total_ratings"`
	AverageRating float64 `json:"average_rating"`
}

func NewRatingStats(s RatingSummary) RatingStats {
	return RatingStats{TotalRatings: s.Count, AverageRating: s.Average()}
}

// AttributedReview is a review with its cafe's display name resolved.
type AttributedReview struct {
	Review   Review `json:"review"`
	CafeName string `json:"cafe_name"`
}

type ItemRating struct {
	Item   Item        `json:"item"`
	Rating RatingStats `json:"rating"`
}

type CafeSummary struct {
	Cafe   Cafe        `json:"cafe"`
	Rating RatingStats `json:"rating"`
}

type CafeStats struct {
	Cafe          Cafe               `json:"cafe"`
	Rating        RatingStats        `json:"rating"`
	RecentRatings []AttributedReview `json:"recent_ratings"`
	Items         []ItemRating       `json:"items"`
}

type ItemStats struct {
	CafeID  primitive.ObjectID `json:"cafe_id"`
	Item    Item               `json:"item"`
	Rating  RatingStats        `json:"rating"`
	Reviews []Review           `json:"reviews"`
}

type GlobalStats struct {
	Rating        RatingStats        `json:"rating"`
	RecentRatings []AttributedReview `json:"recent_ratings"`
}
