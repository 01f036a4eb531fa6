package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/arash-karimi/moodreel/catalog"
	"github.com/arash-karimi/moodreel/catalog/tmdb"
	"github.com/arash-karimi/moodreel/config"
	"github.com/arash-karimi/moodreel/internal/memo"
	"github.com/arash-karimi/moodreel/internal/telemetry"
	"github.com/arash-karimi/moodreel/provider"
)

// Run wires the pipeline together and serves the HTTP API.
func Run(cfg *config.Config, addr string) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	tele := telemetry.New()
	e.GET("/healthz", func(c echo.Context) error { return c.String(200, "ok") })
	e.GET("/metrics", echo.WrapHandler(tele.Handler()))

	// Memo backend: Redis when configured, in-process map otherwise.
	var cache memo.Cache
	if cfg.Storage.Redis.Enabled() {
		r := cfg.Storage.Redis
		rs, err := memo.NewRedisStore(context.Background(), r.Host, r.Port, r.Password, r.DB, r.Timeout)
		if err != nil {
			return err
		}
		defer rs.Close()
		cache = rs
	} else {
		cache = memo.NewStore()
	}

	src := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language, cfg.TMDB.Timeout, cfg.TMDB.TrailerTimeout)
	cat := &catalog.Cached{
		Src:      src,
		Cache:    cache,
		TTL:      cfg.TMDB.CacheTTL,
		Language: cfg.TMDB.Language,
		Logger:   log.New(log.Writer(), "[MEMO] ", log.LstdFlags),
		OnMemo:   tele.ObserveMemo,
	}

	llm, err := provider.NewProvider(provider.Client(cfg.LLM.Provider), cfg.LLM)
	if err != nil {
		return err
	}

	render := Renderer{ImageBaseURL: cfg.TMDB.ImageBaseURL}

	api := e.Group("/api")
	rh := &RecommendHandler{
		Catalog:  cat,
		LLM:      llm,
		Render:   render,
		Tele:     tele,
		Logger:   log.New(log.Writer(), "[RECS] ", log.LstdFlags),
		MaxPages: cfg.TMDB.MaxPages,
	}
	rh.Register(api)

	ch := &CatalogHandler{Catalog: cat, Render: render, Tele: tele, MaxPages: cfg.TMDB.MaxPages}
	ch.Register(api)

	ah := &AboutHandler{}
	ah.Register(api)

	if addr == "" {
		addr = cfg.General.Listen
	}
	log.Printf("listening on %s", addr)
	return e.Start(addr)
}
