package catalog

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/arash-karimi/moodreel/internal/memo"
	"github.com/arash-karimi/moodreel/models"
)

// Source is the movie catalog a pipeline reads from.
type Source interface {
	DiscoverByGenre(ctx context.Context, genreID, pages int) ([]models.Movie, error)
	TrailerKey(ctx context.Context, movieID int64) string
}

// Cached fronts a Source with a time-boxed memo so an identical
// (genre, pages, language) fetch within the TTL is served without network
// traffic. Memo failures are logged and fall through to the source.
type Cached struct {
	Src      Source
	Cache    memo.Cache
	TTL      time.Duration
	Language string
	Logger   *log.Logger
	// OnMemo, when set, observes every memo lookup outcome.
	OnMemo func(hit bool)
}

func (c *Cached) memoHit(hit bool) {
	if c.OnMemo != nil {
		c.OnMemo(hit)
	}
}

func (c *Cached) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

func (c *Cached) DiscoverByGenre(ctx context.Context, genreID, pages int) ([]models.Movie, error) {
	key := fmt.Sprintf("discover:%d:%d:%s", genreID, pages, c.Language)
	var cached []models.Movie
	hit, err := c.Cache.Get(ctx, key, &cached)
	if err != nil {
		c.logf("memo get %s: %v", key, err)
	}
	c.memoHit(hit)
	if hit {
		return cached, nil
	}

	movies, err := c.Src.DiscoverByGenre(ctx, genreID, pages)
	if err != nil {
		return nil, err
	}
	if err := c.Cache.Set(ctx, key, movies, c.TTL); err != nil {
		c.logf("memo set %s: %v", key, err)
	}
	return movies, nil
}

func (c *Cached) TrailerKey(ctx context.Context, movieID int64) string {
	key := fmt.Sprintf("trailer:%d:%s", movieID, c.Language)
	var cached string
	hit, err := c.Cache.Get(ctx, key, &cached)
	if err != nil {
		c.logf("memo get %s: %v", key, err)
	}
	c.memoHit(hit)
	if hit {
		return cached
	}

	// "" (no trailer) is memoized too; re-probing within the TTL would
	// just repeat the same failed lookup.
	trailer := c.Src.TrailerKey(ctx, movieID)
	if err := c.Cache.Set(ctx, key, trailer, c.TTL); err != nil {
		c.logf("memo set %s: %v", key, err)
	}
	return trailer
}
