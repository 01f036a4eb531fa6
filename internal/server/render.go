package server

import (
	"fmt"
	"math"
	"strings"
)

// Poster sizes understood by the TMDB image CDN.
const (
	PosterSizeThumb = "w92"
	PosterSizeCard  = "w342"
	PosterSizeLarge = "w500"
)

// Renderer builds display values (URLs, star strings) from catalog records.
type Renderer struct {
	ImageBaseURL string
}

// PosterURL returns the full image URL for a poster path fragment, or ""
// when the record has no poster.
func (r Renderer) PosterURL(path *string, size string) string {
	if path == nil || *path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", strings.TrimRight(r.ImageBaseURL, "/"), size, *path)
}

// Stars renders a 0-10 rating as a five-star string with an optional half
// star, or an em dash when the rating is unknown.
func Stars(vote *float64) string {
	if vote == nil {
		return "—"
	}
	stars := math.Round(*vote/2*10) / 10
	full := int(stars)
	half := stars-float64(full) >= 0.5
	var b strings.Builder
	b.WriteString(strings.Repeat("★", full))
	empty := 5 - full
	if half {
		b.WriteString("½")
		empty--
	}
	b.WriteString(strings.Repeat("☆", empty))
	return b.String()
}

// TMDBURL returns the public catalog page for a movie id, or "" for
// placeholder records.
func TMDBURL(id *int64) string {
	if id == nil {
		return ""
	}
	return fmt.Sprintf("https://www.themoviedb.org/movie/%d", *id)
}

// TrailerURL returns the YouTube watch URL for a video key, or "".
func TrailerURL(key string) string {
	if key == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + key
}
