// Package reconcile joins model-suggested titles back to full catalog
// records. The join is best-effort and non-unique: matching is exact
// (lower-cased) first, then normalized, and a pick that matches nothing
// gets a placeholder record instead of an error.
package reconcile

import (
	"strings"

	"github.com/arash-karimi/moodreel/models"
)

// placeholderTitle stands in for a pick whose title came back empty.
const placeholderTitle = "Model Pick"

// Normalize lower-cases s and strips every character outside [a-z0-9 ].
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Join pairs each pick with its catalog record, preserving pick order. Two
// picks may resolve to the same record; duplicate catalog titles resolve
// last-seen-wins. Join carries no state between calls.
func Join(picks []models.Pick, catalog []models.Movie) []models.Recommendation {
	byLower := make(map[string]models.Movie, len(catalog))
	byNorm := make(map[string]models.Movie, len(catalog))
	for _, m := range catalog {
		byLower[strings.ToLower(m.Title)] = m
		byNorm[Normalize(m.Title)] = m
	}

	out := make([]models.Recommendation, 0, len(picks))
	for _, p := range picks {
		title := strings.TrimSpace(p.Title)
		movie, ok := byLower[strings.ToLower(title)]
		if !ok {
			movie, ok = byNorm[Normalize(title)]
		}
		if !ok {
			if title == "" {
				title = placeholderTitle
			}
			movie = models.Movie{Title: title}
		}
		out = append(out, models.Recommendation{Movie: movie, Reason: p.Reason})
	}
	return out
}
