package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/arash-karimi/moodreel/catalog"
	"github.com/arash-karimi/moodreel/internal/reconcile"
	"github.com/arash-karimi/moodreel/internal/telemetry"
	"github.com/arash-karimi/moodreel/models"
	"github.com/arash-karimi/moodreel/provider"
)

// defaultPages matches the original recommendation flow: two pages of
// popular titles feed the prompt.
const defaultPages = 2

// RecommendHandler runs the fetch -> rank -> join pipeline per request.
type RecommendHandler struct {
	Catalog  catalog.Source
	LLM      provider.Provider
	Render   Renderer
	Tele     *telemetry.Telemetry
	Logger   *log.Logger
	MaxPages int
}

func (h *RecommendHandler) Register(g *echo.Group) {
	g.POST("/recommendations", h.recommend)
}

func (h *RecommendHandler) recommend(c echo.Context) error {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Mood = strings.TrimSpace(req.Mood)
	if req.Mood == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mood required")
	}
	genreID, ok := models.GenreID(req.Genre)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown genre: "+req.Genre)
	}
	pages := clampPages(req.Pages, h.MaxPages, defaultPages)

	ctx := c.Request().Context()
	actionID := uuid.NewString()
	h.Logger.Printf("[%s] recommend mood=%q genre=%s pages=%d", actionID, req.Mood, req.Genre, pages)

	movies, err := h.Catalog.DiscoverByGenre(ctx, genreID, pages)
	h.Tele.ObserveUpstream("discover", err)
	if err != nil {
		h.Tele.Actions.WithLabelValues("error").Inc()
		return echo.NewHTTPError(http.StatusBadGateway, "could not load movies from the catalog: "+err.Error())
	}
	if len(movies) == 0 {
		h.Tele.Actions.WithLabelValues("ok").Inc()
		return c.JSON(http.StatusOK, RecommendResponse{
			Mood: req.Mood, Genre: req.Genre, Cards: []Card{},
			Message: "No movies found. Try a different genre.",
		})
	}

	result, err := h.LLM.RankMovies(ctx, req.Mood, movies)
	h.Tele.ObserveUpstream("chat", err)
	if err != nil {
		h.Tele.Actions.WithLabelValues("error").Inc()
		return echo.NewHTTPError(http.StatusBadGateway, "could not rank movies: "+err.Error())
	}

	recs := reconcile.Join(result.Picks, movies)
	cards := make([]Card, 0, len(recs))
	for _, rec := range recs {
		card := Card{
			Title:     rec.Movie.Title,
			Year:      rec.Movie.Year(),
			PosterURL: h.Render.PosterURL(rec.Movie.PosterPath, PosterSizeCard),
			Rating:    rec.Movie.VoteAverage,
			Stars:     Stars(rec.Movie.VoteAverage),
			Reason:    rec.Reason,
			TMDBURL:   TMDBURL(rec.Movie.ID),
		}
		if rec.Movie.VoteCount != nil {
			card.Votes = *rec.Movie.VoteCount
		}
		if rec.Movie.ID != nil {
			key := h.Catalog.TrailerKey(ctx, *rec.Movie.ID)
			h.Tele.ObserveUpstream("videos", nil)
			card.TrailerURL = TrailerURL(key)
		}
		cards = append(cards, card)
	}

	h.Tele.Actions.WithLabelValues("ok").Inc()
	h.Logger.Printf("[%s] served %d cards (fallback=%t)", actionID, len(cards), result.Fallback)
	return c.JSON(http.StatusOK, RecommendResponse{
		Mood:     req.Mood,
		Genre:    req.Genre,
		Cards:    cards,
		Fallback: result.Fallback,
		Raw:      result.Raw,
	})
}

// clampPages bounds a requested page count to [1, max], using def when the
// request left it unset.
func clampPages(pages, max, def int) int {
	if pages <= 0 {
		pages = def
	}
	if pages < 1 {
		pages = 1
	}
	if max > 0 && pages > max {
		pages = max
	}
	return pages
}
