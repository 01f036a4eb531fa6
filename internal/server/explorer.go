package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/arash-karimi/moodreel/catalog"
	"github.com/arash-karimi/moodreel/internal/telemetry"
	"github.com/arash-karimi/moodreel/models"
)

// CatalogHandler serves the raw-data explorer view and the genre list.
type CatalogHandler struct {
	Catalog  catalog.Source
	Render   Renderer
	Tele     *telemetry.Telemetry
	MaxPages int
}

func (h *CatalogHandler) Register(g *echo.Group) {
	g.GET("/genres", h.genres)
	g.GET("/catalog", h.list)
}

func (h *CatalogHandler) genres(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Genres)
}

// list returns the raw TMDB fields for a genre, optionally with thumbnail
// poster URLs, for the explorer table.
func (h *CatalogHandler) list(c echo.Context) error {
	genre := c.QueryParam("genre")
	genreID, ok := models.GenreID(genre)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown genre: "+genre)
	}
	pages := 1
	if v := c.QueryParam("pages"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid pages: "+v)
		}
		pages = n
	}
	pages = clampPages(pages, h.MaxPages, 1)
	showPosters := c.QueryParam("posters") != "false"

	movies, err := h.Catalog.DiscoverByGenre(c.Request().Context(), genreID, pages)
	h.Tele.ObserveUpstream("discover", err)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not load movies from the catalog: "+err.Error())
	}

	rows := make([]CatalogRow, 0, len(movies))
	for _, m := range movies {
		row := CatalogRow{
			Title:       m.Title,
			ReleaseDate: m.ReleaseDate,
			VoteAverage: m.VoteAverage,
			VoteCount:   m.VoteCount,
			Popularity:  m.Popularity,
		}
		if showPosters {
			row.PosterURL = h.Render.PosterURL(m.PosterPath, PosterSizeThumb)
		}
		rows = append(rows, row)
	}
	return c.JSON(http.StatusOK, CatalogResponse{Genre: genre, Pages: pages, Rows: rows})
}
