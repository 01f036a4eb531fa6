package models

// Movie is one catalog record as returned by the TMDB discovery endpoint.
// Optional fields are pointers so a synthesized placeholder (a model pick
// that matched nothing in the catalog) is distinguishable from real data.
type Movie struct {
	ID          *int64   `json:"id"`
	Title       string   `json:"title"`
	ReleaseDate string   `json:"release_date"`
	PosterPath  *string  `json:"poster_path"`
	VoteAverage *float64 `json:"vote_average"`
	VoteCount   *int64   `json:"vote_count"`
	Popularity  float64  `json:"popularity"`
}

// Year returns the release year portion of ReleaseDate, or "" when unknown.
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// Pick is one title+reason pair suggested by the ranking model. The title is
// whatever the model wrote and may not exactly equal any catalog title.
type Pick struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// Recommendation pairs a catalog record (real or placeholder) with the
// model's reason. Order of a recommendation list is the model's preference
// order and is never re-sorted.
type Recommendation struct {
	Movie  Movie  `json:"movie"`
	Reason string `json:"reason"`
}
