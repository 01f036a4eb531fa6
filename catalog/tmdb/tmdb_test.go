package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	c := New("test-key", ts.URL, "en-US", 5*time.Second, 5*time.Second)
	return c, ts
}

func TestDiscoverByGenreConcatenatesPages(t *testing.T) {
	var gotParams []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/discover/movie" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		gotParams = append(gotParams, q.Get("page"))
		if q.Get("sort_by") != "popularity.desc" || q.Get("include_adult") != "false" {
			t.Errorf("unexpected query: %v", q)
		}
		if q.Get("with_genres") != "35" || q.Get("api_key") != "test-key" {
			t.Errorf("unexpected query: %v", q)
		}
		page := q.Get("page")
		fmt.Fprintf(w, `{"page":%s,"results":[{"id":%s01,"title":"Movie %s-a"},{"id":%s02,"title":"Movie %s-b"}]}`,
			page, page, page, page, page)
	})

	movies, err := c.DiscoverByGenre(context.Background(), 35, 3)
	if err != nil {
		t.Fatalf("DiscoverByGenre: %v", err)
	}
	if len(movies) != 6 {
		t.Fatalf("expected 6 movies, got %d", len(movies))
	}
	if movies[0].Title != "Movie 1-a" || movies[5].Title != "Movie 3-b" {
		t.Fatalf("pages out of order: first=%q last=%q", movies[0].Title, movies[5].Title)
	}
	if len(gotParams) != 3 || gotParams[0] != "1" || gotParams[2] != "3" {
		t.Fatalf("unexpected page requests: %v", gotParams)
	}
}

func TestDiscoverByGenreFailsWholeCallOnPageError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"page":1,"results":[{"id":1,"title":"Only"}]}`)
	})

	movies, err := c.DiscoverByGenre(context.Background(), 18, 3)
	if err == nil {
		t.Fatalf("expected error, got %d movies", len(movies))
	}
	if movies != nil {
		t.Fatalf("partial pages must be discarded, got %v", movies)
	}
}

func TestTrailerKeyPrefersTrailerType(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/42/videos" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"results":[
			{"site":"Vimeo","type":"Trailer","key":"vim1"},
			{"site":"YouTube","type":"Featurette","key":"feat1"},
			{"site":"YouTube","type":"Official Trailer","key":"tr1"}
		]}`)
	})

	if got := c.TrailerKey(context.Background(), 42); got != "tr1" {
		t.Fatalf("expected tr1, got %q", got)
	}
}

func TestTrailerKeyFallsBackToAnyYouTube(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[
			{"site":"Vimeo","type":"Trailer","key":"vim1"},
			{"site":"YouTube","type":"Clip","key":"clip1"}
		]}`)
	})

	if got := c.TrailerKey(context.Background(), 7); got != "clip1" {
		t.Fatalf("expected clip1, got %q", got)
	}
}

func TestTrailerKeySwallowsFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
		"malformed payload": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `not json at all`)
		},
		"no youtube entries": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"results":[{"site":"Vimeo","type":"Trailer","key":"v1"}]}`)
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestClient(t, handler)
			if got := c.TrailerKey(context.Background(), 1); got != "" {
				t.Fatalf("expected empty key, got %q", got)
			}
		})
	}
}
