package models

// Genre maps a display name to its TMDB numeric genre id.
type Genre struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// Genres is the fixed set offered by the genre selector, in display order.
var Genres = []Genre{
	{Name: "Comedy", ID: 35},
	{Name: "Drama", ID: 18},
	{Name: "Action", ID: 28},
	{Name: "Romance", ID: 10749},
	{Name: "Horror", ID: 27},
	{Name: "Sci-Fi", ID: 878},
	{Name: "Animation", ID: 16},
	{Name: "Thriller", ID: 53},
}

// GenreID resolves a genre name (case-sensitive, as served by /api/genres)
// to its TMDB id.
func GenreID(name string) (int, bool) {
	for _, g := range Genres {
		if g.Name == name {
			return g.ID, true
		}
	}
	return 0, false
}
