package httpapi_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	httpapi "github.com/junguanghe/cafe-rater/internal/api/http"
	"github.com/junguanghe/cafe-rater/internal/domain"
	"github.com/junguanghe/cafe-rater/internal/service"
	"github.com/junguanghe/cafe-rater/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type app struct {
	t      *testing.T
	router http.Handler
}

func newApp(t *testing.T, publicDir string) *app {
	store := storage.NewMemoryStore()
	qr := service.DefaultQRGenerator{BaseURL: "http://localhost:3000"}

	// reviews created within one test carry increasing timestamps
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return start.Add(time.Duration(tick) * time.Second)
	}

	handler := httpapi.NewHandler(
		service.NewCafeService(store, store, qr, nil, nil),
		service.NewReviewService(store, store, nil, nil).WithClock(clock),
		service.NewStatsService(store, store, nil),
	)
	return &app{t: t, router: httpapi.NewRouter(handler, publicDir)}
}

func (a *app) do(method, path string, body interface{}, wantStatus int, dest interface{}) {
	a.t.Helper()
	rr := serve(a.router, method, path, body)
	require.Equal(a.t, wantStatus, rr.Code, rr.Body.String())
	if dest != nil {
		require.NoError(a.t, json.Unmarshal(rr.Body.Bytes(), dest))
	}
}

func (a *app) createCafe(name string) domain.CafeView {
	var cafe domain.CafeView
	a.do("POST", "/cafes", map[string]string{"name": name, "building": "Hall A"}, http.StatusCreated, &cafe)
	return cafe
}

func (a *app) addItem(cafeID, name string) domain.ItemView {
	var item domain.ItemView
	a.do("POST", "/cafes/"+cafeID+"/items", map[string]interface{}{"name": name, "price": 3.5, "type": "drink"}, http.StatusCreated, &item)
	return item
}

func (a *app) review(cafeID, itemID string, rating int) domain.ReviewView {
	var review domain.ReviewView
	body := map[string]interface{}{"cafeId": cafeID, "rating": rating, "comment": "ok"}
	if itemID != "" {
		body["itemId"] = itemID
	}
	a.do("POST", "/reviews", body, http.StatusCreated, &review)
	return review
}

func TestEndToEnd_ItemReviewFlow(t *testing.T) {
	a := newApp(t, "")
	cafe := a.createCafe("Beanery")
	latte := a.addItem(cafe.ID, "Latte")
	a.review(cafe.ID, latte.ID, 5)

	var item domain.ItemStatsView
	a.do("GET", "/items/"+latte.ID+"/stats", nil, http.StatusOK, &item)
	assert.Equal(t, 5.0, item.AverageRating)
	assert.Equal(t, int64(1), item.TotalRatings)
	assert.Equal(t, cafe.ID, item.CafeID)
	require.Len(t, item.Reviews, 1)
	assert.Equal(t, latte.ID, item.Reviews[0].ItemID)

	// item reviews stay out of the cafe rollup
	var stats domain.CafeStatsView
	a.do("GET", "/cafes/"+cafe.ID+"/stats", nil, http.StatusOK, &stats)
	assert.Equal(t, int64(0), stats.TotalRatings)
	assert.Empty(t, stats.RecentRatings)
	require.Len(t, stats.Items, 1)
	assert.Equal(t, 5.0, stats.Items[0].AverageRating)
	assert.Equal(t, int64(1), stats.Items[0].TotalRatings)
}

func TestEndToEnd_CafeRatingsAndRecency(t *testing.T) {
	a := newApp(t, "")
	cafe := a.createCafe("Beanery")
	other := a.createCafe("Grounds")

	for _, rating := range []int{1, 2, 2, 2, 3, 4} {
		a.review(cafe.ID, "", rating)
	}
	a.review(other.ID, "", 5)

	var stats domain.CafeStatsView
	a.do("GET", "/cafes/"+cafe.ID+"/stats", nil, http.StatusOK, &stats)
	assert.Equal(t, int64(6), stats.TotalRatings)
	assert.Equal(t, 2.3, stats.AverageRating)
	require.Len(t, stats.RecentRatings, service.RecentCafeReviews)
	assert.Equal(t, 4, stats.RecentRatings[0].Rating)
	assert.Equal(t, 2, stats.RecentRatings[4].Rating)
	assert.Equal(t, "Beanery", stats.RecentRatings[0].Cafe.Name)

	var global domain.GlobalStatsView
	a.do("GET", "/stats", nil, http.StatusOK, &global)
	assert.Equal(t, int64(7), global.TotalRatings)
	assert.Equal(t, 2.7, global.AverageRating)
	require.Len(t, global.RecentRatings, 5)
	assert.Equal(t, domain.CafeRefView{ID: other.ID, Name: "Grounds"}, global.RecentRatings[0].Cafe)

	var cafes []domain.CafeSummaryView
	a.do("GET", "/cafes", nil, http.StatusOK, &cafes)
	require.Len(t, cafes, 2)
	assert.Equal(t, "Beanery", cafes[0].Name)
	assert.Equal(t, 2.3, cafes[0].AverageRating)
	assert.Equal(t, int64(1), cafes[1].TotalRatings)
}

func TestEndToEnd_DuplicateAndValidation(t *testing.T) {
	a := newApp(t, "")
	cafe := a.createCafe("Beanery")

	var errBody map[string]string
	a.do("POST", "/cafes", map[string]string{"name": " Beanery ", "building": "Hall B"}, http.StatusBadRequest, &errBody)
	assert.Equal(t, "cafe with this name already exists", errBody["error"])

	a.do("POST", "/cafes", map[string]string{"name": "Beanery2"}, http.StatusBadRequest, nil)

	for _, rating := range []int{0, 6} {
		a.do("POST", "/reviews", map[string]interface{}{"cafeId": cafe.ID, "rating": rating}, http.StatusBadRequest, nil)
	}
	a.do("POST", "/reviews", map[string]interface{}{"cafeId": "bad", "rating": 3}, http.StatusBadRequest, nil)
	a.do("GET", "/cafes/bad/stats", nil, http.StatusBadRequest, nil)
}

func TestEndToEnd_DeleteItemCascade(t *testing.T) {
	a := newApp(t, "")
	cafe := a.createCafe("Beanery")
	latte := a.addItem(cafe.ID, "Latte")
	muffin := a.addItem(cafe.ID, "Muffin")
	a.review(cafe.ID, latte.ID, 5)
	a.review(cafe.ID, muffin.ID, 3)
	a.review(cafe.ID, "", 4)

	a.do("DELETE", "/items/"+latte.ID, nil, http.StatusOK, nil)
	a.do("DELETE", "/items/"+latte.ID, nil, http.StatusNotFound, nil)
	a.do("GET", "/items/"+latte.ID+"/stats", nil, http.StatusNotFound, nil)

	var sibling domain.ItemStatsView
	a.do("GET", "/items/"+muffin.ID+"/stats", nil, http.StatusOK, &sibling)
	assert.Equal(t, int64(1), sibling.TotalRatings)

	var stats domain.CafeStatsView
	a.do("GET", "/cafes/"+cafe.ID+"/stats", nil, http.StatusOK, &stats)
	assert.Equal(t, int64(1), stats.TotalRatings)
	require.Len(t, stats.Items, 1)
	assert.Equal(t, muffin.ID, stats.Items[0].ID)

	// the deleted item can no longer be reviewed
	a.do("POST", "/reviews", map[string]interface{}{"cafeId": cafe.ID, "itemId": latte.ID, "rating": 4}, http.StatusBadRequest, nil)
}

func TestEndToEnd_DeleteCafeCascade(t *testing.T) {
	a := newApp(t, "")
	cafe := a.createCafe("Beanery")
	other := a.createCafe("Grounds")
	latte := a.addItem(cafe.ID, "Latte")
	a.review(cafe.ID, "", 4)
	a.review(cafe.ID, latte.ID, 5)
	a.review(other.ID, "", 2)

	a.do("DELETE", "/cafes/"+cafe.ID, nil, http.StatusOK, nil)
	a.do("DELETE", "/cafes/"+cafe.ID, nil, http.StatusOK, nil)
	a.do("GET", "/cafes/"+cafe.ID+"/stats", nil, http.StatusNotFound, nil)
	a.do("GET", "/items/"+latte.ID+"/stats", nil, http.StatusNotFound, nil)

	var global domain.GlobalStatsView
	a.do("GET", "/stats", nil, http.StatusOK, &global)
	assert.Equal(t, int64(1), global.TotalRatings)
	assert.Equal(t, 2.0, global.AverageRating)

	// the name is free again
	a.createCafe("Beanery")
}

func TestEndToEnd_QRCode(t *testing.T) {
	a := newApp(t, "")
	cafe := a.createCafe("Beanery")

	rr := serve(a.router, "GET", "/cafes/"+cafe.ID+"/qrcode", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), rr.Body.Bytes()[:4])
}

func TestEndToEnd_StaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Cafe Rater</h1>"), 0o644))
	a := newApp(t, dir)

	rr := serve(a.router, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Cafe Rater")

	rr = serve(a.router, "GET", "/missing.js", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// api routes take precedence over the file server
	rr = serve(a.router, "GET", "/cafes", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}
