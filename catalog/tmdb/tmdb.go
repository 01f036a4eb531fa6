package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/arash-karimi/moodreel/models"
)

// Client talks to the TMDB v3 API. Discovery failures propagate; trailer
// lookups degrade to "no trailer" and never fail the surrounding flow.
type Client struct {
	apiKey        string
	baseURL       string
	language      string
	httpClient    *http.Client
	trailerClient *http.Client
}

type discoverResponse struct {
	Page    int            `json:"page"`
	Results []models.Movie `json:"results"`
}

type video struct {
	Site string `json:"site"`
	Type string `json:"type"`
	Key  string `json:"key"`
}

type videosResponse struct {
	Results []video `json:"results"`
}

// New creates a TMDB client. timeout guards discovery calls,
// trailerTimeout the per-title video listing calls.
func New(apiKey, baseURL, language string, timeout, trailerTimeout time.Duration) *Client {
	return &Client{
		apiKey:        apiKey,
		baseURL:       strings.TrimRight(baseURL, "/"),
		language:      language,
		httpClient:    &http.Client{Timeout: timeout},
		trailerClient: &http.Client{Timeout: trailerTimeout},
	}
}

// DiscoverByGenre fetches pages 1..pages of the discovery endpoint for one
// genre, sorted by popularity, and concatenates the results in page order.
// Titles are not de-duplicated across pages. Any page failure fails the
// whole call; already-fetched pages are discarded.
func (c *Client) DiscoverByGenre(ctx context.Context, genreID, pages int) ([]models.Movie, error) {
	var out []models.Movie
	for page := 1; page <= pages; page++ {
		params := url.Values{}
		params.Add("api_key", c.apiKey)
		params.Add("language", c.language)
		params.Add("sort_by", "popularity.desc")
		params.Add("include_adult", "false")
		params.Add("with_genres", strconv.Itoa(genreID))
		params.Add("page", strconv.Itoa(page))

		reqURL := fmt.Sprintf("%s/discover/movie?%s", c.baseURL, params.Encode())
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch movies: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("tmdb error: %s", resp.Status)
		}
		var result discoverResponse
		err = json.NewDecoder(resp.Body).Decode(&result)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		out = append(out, result.Results...)
	}
	return out, nil
}

// TrailerKey returns a YouTube video key for the given movie: the first
// entry whose type contains "Trailer", else the first YouTube entry of any
// type, else "". Every failure is swallowed into "".
func (c *Client) TrailerKey(ctx context.Context, movieID int64) string {
	params := url.Values{}
	params.Add("api_key", c.apiKey)
	params.Add("language", c.language)

	reqURL := fmt.Sprintf("%s/movie/%d/videos?%s", c.baseURL, movieID, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return ""
	}
	resp, err := c.trailerClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}
	var result videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ""
	}
	for _, v := range result.Results {
		if v.Site == "YouTube" && strings.Contains(v.Type, "Trailer") {
			return v.Key
		}
	}
	for _, v := range result.Results {
		if v.Site == "YouTube" {
			return v.Key
		}
	}
	return ""
}
