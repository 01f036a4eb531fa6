package server

import "testing"

func fptr(v float64) *float64 { return &v }
func iptr(v int64) *int64     { return &v }
func sptr(v string) *string   { return &v }

func TestStars(t *testing.T) {
	cases := []struct {
		vote *float64
		want string
	}{
		{nil, "—"},
		{fptr(10), "★★★★★"},
		{fptr(9.0), "★★★★½"},
		{fptr(8.0), "★★★★☆"},
		{fptr(7.0), "★★★½☆"},
		{fptr(0), "☆☆☆☆☆"},
	}
	for _, c := range cases {
		if got := Stars(c.vote); got != c.want {
			t.Errorf("Stars(%v) = %q, want %q", c.vote, got, c.want)
		}
	}
}

func TestPosterURL(t *testing.T) {
	r := Renderer{ImageBaseURL: "https://image.tmdb.org/t/p"}
	if got := r.PosterURL(sptr("/abc.jpg"), PosterSizeCard); got != "https://image.tmdb.org/t/p/w342/abc.jpg" {
		t.Fatalf("unexpected poster url %q", got)
	}
	if got := r.PosterURL(nil, PosterSizeCard); got != "" {
		t.Fatalf("nil path must render empty, got %q", got)
	}
	if got := r.PosterURL(sptr(""), PosterSizeThumb); got != "" {
		t.Fatalf("empty path must render empty, got %q", got)
	}
}

func TestLinks(t *testing.T) {
	if got := TMDBURL(iptr(603)); got != "https://www.themoviedb.org/movie/603" {
		t.Fatalf("unexpected tmdb url %q", got)
	}
	if got := TMDBURL(nil); got != "" {
		t.Fatalf("placeholder record must have no tmdb url, got %q", got)
	}
	if got := TrailerURL("dQw4w9WgXcQ"); got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Fatalf("unexpected trailer url %q", got)
	}
	if got := TrailerURL(""); got != "" {
		t.Fatalf("missing key must render empty, got %q", got)
	}
}
