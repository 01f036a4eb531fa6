package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/arash-karimi/moodreel/internal/telemetry"
	"github.com/arash-karimi/moodreel/models"
)

func newCatalogHandler(cat *fakeCatalog) *CatalogHandler {
	return &CatalogHandler{
		Catalog:  cat,
		Render:   Renderer{ImageBaseURL: "https://image.tmdb.org/t/p"},
		Tele:     telemetry.New(),
		MaxPages: 5,
	}
}

func doGet(t *testing.T, h echo.HandlerFunc, target string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return rec, h(e.NewContext(req, rec))
}

func TestGenres(t *testing.T) {
	h := newCatalogHandler(&fakeCatalog{})
	rec, err := doGet(t, h.genres, "/api/genres")
	if err != nil {
		t.Fatalf("genres: %v", err)
	}
	var got []models.Genre
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("expected 8 genres, got %d", len(got))
	}
	if got[0].Name != "Comedy" || got[0].ID != 35 {
		t.Fatalf("unexpected first genre: %+v", got[0])
	}
}

func TestCatalogRows(t *testing.T) {
	cat := &fakeCatalog{movies: []models.Movie{
		{ID: iptr(1), Title: "Alpha", ReleaseDate: "2020-01-02", PosterPath: sptr("/a.jpg"), VoteAverage: fptr(7.5), VoteCount: iptr(10), Popularity: 42},
	}}
	h := newCatalogHandler(cat)

	rec, err := doGet(t, h.list, "/api/catalog?genre=Horror&pages=2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var resp CatalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Genre != "Horror" || resp.Pages != 2 || len(resp.Rows) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	row := resp.Rows[0]
	if row.Title != "Alpha" || row.Popularity != 42 {
		t.Fatalf("unexpected row: %+v", row)
	}
	// Posters default on, thumbnail size.
	if row.PosterURL != "https://image.tmdb.org/t/p/w92/a.jpg" {
		t.Fatalf("unexpected poster url: %q", row.PosterURL)
	}
}

func TestCatalogPostersOff(t *testing.T) {
	cat := &fakeCatalog{movies: []models.Movie{
		{ID: iptr(1), Title: "Alpha", PosterPath: sptr("/a.jpg")},
	}}
	h := newCatalogHandler(cat)

	rec, err := doGet(t, h.list, "/api/catalog?genre=Horror&posters=false")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var resp CatalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Rows[0].PosterURL != "" {
		t.Fatalf("poster should be omitted: %+v", resp.Rows[0])
	}
}

func TestCatalogValidation(t *testing.T) {
	h := newCatalogHandler(&fakeCatalog{})

	_, err := doGet(t, h.list, "/api/catalog?genre=Nope")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown genre, got %#v", err)
	}

	_, err = doGet(t, h.list, "/api/catalog?genre=Horror&pages=abc")
	httpErr, ok = err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid pages, got %#v", err)
	}
}
