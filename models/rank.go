package models

// RankResult is the outcome of one ranking call. It is a two-variant
// result: either the reply parsed into structured picks, or parsing failed
// and the raw reply is surfaced as a single synthetic pick. Callers render
// Picks either way; Fallback tells them which variant they got.
type RankResult struct {
	Picks    []Pick `json:"picks"`
	Raw      string `json:"raw,omitempty"`
	Fallback bool   `json:"fallback"`
}

// RawFallbackTitle is the title of the synthetic pick carrying an
// unparseable model reply.
const RawFallbackTitle = "Model Output"

// RawFallback builds the degraded variant from a verbatim reply.
func RawFallback(raw string) RankResult {
	return RankResult{
		Picks:    []Pick{{Title: RawFallbackTitle, Reason: raw}},
		Raw:      raw,
		Fallback: true,
	}
}
