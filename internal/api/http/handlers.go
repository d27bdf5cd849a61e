package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/junguanghe/cafe-rater/internal/domain"
	"github.com/junguanghe/cafe-rater/internal/service"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	Cafes   service.CafeServiceInterface
	Reviews service.ReviewServiceInterface
	Stats   service.StatsServiceInterface
}

func NewHandler(cafes service.CafeServiceInterface, reviews service.ReviewServiceInterface, stats service.StatsServiceInterface) *Handler {
	return &Handler{
		Cafes:   cafes,
		Reviews: reviews,
		Stats:   stats,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/cafes", h.getCafes).Methods("GET")
	r.HandleFunc("/cafes", h.createCafe).Methods("POST")
	r.HandleFunc("/cafes/{cafeId}", h.deleteCafe).Methods("DELETE")
	r.HandleFunc("/cafes/{cafeId}/items", h.addItem).Methods("POST")
	r.HandleFunc("/cafes/{cafeId}/stats", h.getCafeStats).Methods("GET")
	r.HandleFunc("/cafes/{cafeId}/qrcode", h.getCafeQRCode).Methods("GET")

	r.HandleFunc("/items/{itemId}", h.deleteItem).Methods("DELETE")
	r.HandleFunc("/items/{itemId}/stats", h.getItemStats).Methods("GET")

	r.HandleFunc("/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/stats", h.getGlobalStats).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "cafe-rater",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getCafes(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Stats.CafeSummaries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	views := make([]domain.CafeSummaryView, 0, len(summaries))
	for _, s := range summaries {
		views = append(views, domain.NewCafeSummaryView(s))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) createCafe(w http.ResponseWriter, r *http.Request) {
	var input domain.NewCafeInput
	if !decodeBody(w, r, &input) {
		return
	}
	cafe, err := h.Cafes.CreateCafe(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, domain.NewCafeView(*cafe))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	cafeID, ok := pathID(w, r, "cafeId")
	if !ok {
		return
	}
	var input domain.NewItemInput
	if !decodeBody(w, r, &input) {
		return
	}
	item, err := h.Cafes.AddItem(r.Context(), cafeID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, domain.NewItemView(*item))
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "itemId")
	if !ok {
		return
	}
	if err := h.Cafes.DeleteItem(r.Context(), itemID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Item and its reviews deleted")
}

func (h *Handler) deleteCafe(w http.ResponseWriter, r *http.Request) {
	cafeID, ok := pathID(w, r, "cafeId")
	if !ok {
		return
	}
	if err := h.Cafes.DeleteCafe(r.Context(), cafeID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Cafe, items, and reviews deleted")
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var input domain.NewReviewInput
	if !decodeBody(w, r, &input) {
		return
	}
	review, err := h.Reviews.CreateReview(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, domain.NewReviewView(*review))
}

func (h *Handler) getCafeStats(w http.ResponseWriter, r *http.Request) {
	cafeID, ok := pathID(w, r, "cafeId")
	if !ok {
		return
	}
	stats, err := h.Stats.CafeStats(r.Context(), cafeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.NewCafeStatsView(*stats))
}

func (h *Handler) getItemStats(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "itemId")
	if !ok {
		return
	}
	stats, err := h.Stats.ItemStats(r.Context(), itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.NewItemStatsView(*stats))
}

func (h *Handler) getGlobalStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.GlobalStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.NewGlobalStatsView(*stats))
}

func (h *Handler) getCafeQRCode(w http.ResponseWriter, r *http.Request) {
	cafeID, ok := pathID(w, r, "cafeId")
	if !ok {
		return
	}
	qr, err := h.Cafes.QRCode(r.Context(), cafeID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (primitive.ObjectID, bool) {
	id, err := domain.ParseID(name, mux.Vars(r)[name])
	if err != nil {
		writeError(w, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		writeError(w, domain.Validationf("invalid JSON body: %v", err))
		return false
	}
	return true
}
