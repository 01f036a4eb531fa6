package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AboutHandler serves the static documentation text for the About tab.
type AboutHandler struct{}

func (h *AboutHandler) Register(g *echo.Group) {
	g.GET("/about", h.about)
}

func (h *AboutHandler) about(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"title": "About This App",
		"body": "Describe your mood, pick a genre, and get 5 AI-curated picks with reasons, " +
			"posters, and quick trailer links.\n\n" +
			"How it works: TMDB returns popular movies for the selected genre, the model " +
			"ranks them by your mood and explains why, and the picks are matched back to " +
			"TMDB records for posters, ratings, and links.",
	})
}
