package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimestampLayout is ISO-8601 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Views are the outbound shapes of entities. They hold only strings, numbers
// and other views, so a view survives an encode/decode/encode cycle
// unchanged.

type ItemView struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

type CafeView struct {
	ID       string     `json:"_id"`
	Name     string     `json:"name"`
	Building string     `json:"building"`
	Items    []ItemView `json:"items"`
}

type ReviewView struct {
	ID        string `json:"_id"`
	CafeID    string `json:"cafeId"`
	ItemID    string `json:"itemId,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Timestamp string `json:"timestamp"`
}

type CafeRefView struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// RatedReviewView is a review whose cafe reference is expanded to the
// cafe's id and display name.
type RatedReviewView struct {
	ID        string      `json:"_id"`
	Cafe      CafeRefView `json:"cafeId"`
	ItemID    string      `json:"itemId,omitempty"`
	Rating    int         `json:"rating"`
	Comment   string      `json:"comment"`
	Timestamp string      `json:"timestamp"`
}

type RatedItemView struct {
	ItemView
	TotalRatings  int64   `json:"totalRatings"`
	AverageRating float64 `json:"averageRating"`
}

type CafeSummaryView struct {
	CafeView
	TotalRatings  int64   `json:"totalRatings"`
	AverageRating float64 `json:"averageRating"`
}

type CafeStatsView struct {
	CafeID        string            `json:"_id"`
	CafeName      string            `json:"cafeName"`
	TotalRatings  int64             `json:"totalRatings"`
	AverageRating float64           `json:"averageRating"`
	RecentRatings []RatedReviewView `json:"recentRatings"`
	Items         []RatedItemView   `json:"items"`
}

type ItemStatsView struct {
	Item          ItemView     `json:"item"`
	CafeID        string       `json:"cafeId"`
	AverageRating float64      `json:"averageRating"`
	TotalRatings  int64        `json:"totalRatings"`
	Reviews       []ReviewView `json:"reviews"`
}

type GlobalStatsView struct {
	TotalRatings  int64             `json:"totalRatings"`
	AverageRating float64           `json:"averageRating"`
	RecentRatings []RatedReviewView `json:"recentRatings"`
}

func FormatID(id primitive.ObjectID) string {
	return id.Hex()
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func NewItemView(item Item) ItemView {
	return ItemView{
		ID:    FormatID(item.ID),
		Name:  item.Name,
		Price: item.Price,
		Type:  item.Type,
	}
}

func NewCafeView(cafe Cafe) CafeView {
	items := make([]ItemView, 0, len(cafe.Items))
	for _, item := range cafe.Items {
		items = append(items, NewItemView(item))
	}
	return CafeView{
		ID:       FormatID(cafe.ID),
		Name:     cafe.Name,
		Building: cafe.Building,
		Items:    items,
	}
}

func NewReviewView(review Review) ReviewView {
	view := ReviewView{
		ID:        FormatID(review.ID),
		CafeID:    FormatID(review.CafeID),
		Rating:    review.Rating,
		Comment:   review.Comment,
		Timestamp: FormatTimestamp(review.Timestamp),
	}
	if review.ItemID != nil {
		view.ItemID = FormatID(*review.ItemID)
	}
	return view
}

func NewRatedReviewView(r AttributedReview) RatedReviewView {
	base := NewReviewView(r.Review)
	return RatedReviewView{
		ID:        base.ID,
		Cafe:      CafeRefView{ID: base.CafeID, Name: r.CafeName},
		ItemID:    base.ItemID,
		Rating:    base.Rating,
		Comment:   base.Comment,
		Timestamp: base.Timestamp,
	}
}

func newRatedReviewViews(reviews []AttributedReview) []RatedReviewView {
	views := make([]RatedReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, NewRatedReviewView(r))
	}
	return views
}

func NewCafeSummaryView(s CafeSummary) CafeSummaryView {
	return CafeSummaryView{
		CafeView:      NewCafeView(s.Cafe),
		TotalRatings:  s.Rating.TotalRatings,
		AverageRating: s.Rating.AverageRating,
	}
}

func NewCafeStatsView(s CafeStats) CafeStatsView {
	items := make([]RatedItemView, 0, len(s.Items))
	for _, ir := range s.Items {
		items = append(items, RatedItemView{
			ItemView:      NewItemView(ir.Item),
			TotalRatings:  ir.Rating.TotalRatings,
			AverageRating: ir.Rating.AverageRating,
		})
	}
	return CafeStatsView{
		CafeID:        FormatID(s.Cafe.ID),
		CafeName:      s.Cafe.Name,
		TotalRatings:  s.Rating.TotalRatings,
		AverageRating: s.Rating.AverageRating,
		RecentRatings: newRatedReviewViews(s.RecentRatings),
		Items:         items,
	}
}

func NewItemStatsView(s ItemStats) ItemStatsView {
	reviews := make([]ReviewView, 0, len(s.Reviews))
	for _, r := range s.Reviews {
		reviews = append(reviews, NewReviewView(r))
	}
	return ItemStatsView{
		Item:          NewItemView(s.Item),
		CafeID:        FormatID(s.CafeID),
		AverageRating: s.Rating.AverageRating,
		TotalRatings:  s.Rating.TotalRatings,
		Reviews:       reviews,
	}
}

func NewGlobalStatsView(s GlobalStats) GlobalStatsView {
	return GlobalStatsView{
		TotalRatings:  s.Rating.TotalRatings,
		AverageRating: s.Rating.AverageRating,
		RecentRatings: newRatedReviewViews(s.RecentRatings),
	}
}
