package server

// Card is one render-ready recommendation.
type Card struct {
	Title      string   `json:"title"`
	Year       string   `json:"year,omitempty"`
	PosterURL  string   `json:"poster_url,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Stars      string   `json:"stars"`
	Votes      int64    `json:"votes"`
	Reason     string   `json:"reason,omitempty"`
	TMDBURL    string   `json:"tmdb_url,omitempty"`
	TrailerURL string   `json:"trailer_url,omitempty"`
}

// RecommendRequest is the body of POST /api/recommendations.
type RecommendRequest struct {
	Mood  string `json:"mood"`
	Genre string `json:"genre"`
	Pages int    `json:"pages"`
}

// RecommendResponse carries the ranked cards in the model's preference
// order. When the model reply could not be parsed, Fallback is true and Raw
// holds the verbatim reply (the single card then echoes it as its reason).
type RecommendResponse struct {
	Mood     string `json:"mood"`
	Genre    string `json:"genre"`
	Cards    []Card `json:"cards"`
	Fallback bool   `json:"fallback"`
	Raw      string `json:"raw,omitempty"`
	Message  string `json:"message,omitempty"`
}

// CatalogRow is one raw catalog record for the explorer view.
type CatalogRow struct {
	PosterURL   string   `json:"poster_url,omitempty"`
	Title       string   `json:"title"`
	ReleaseDate string   `json:"release_date"`
	VoteAverage *float64 `json:"vote_average"`
	VoteCount   *int64   `json:"vote_count"`
	Popularity  float64  `json:"popularity"`
}

// CatalogResponse is the explorer payload.
type CatalogResponse struct {
	Genre string       `json:"genre"`
	Pages int          `json:"pages"`
	Rows  []CatalogRow `json:"rows"`
}
