// Package api defines the stable v1 wire structures emitted by the
// json and jsonl output formats.
package api

// FeatureV1 is one emitted feature plus the quality metrics that
// admitted it through the filter. Start, end, and score carry the
// report's original text, never reformatted.
type FeatureV1 struct {
	SeqID      string `json:"seqid"`
	Source     string `json:"source"`
	Type       string `json:"type"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Score      string `json:"score"`
	Strand     string `json:"strand"`
	Phase      string `json:"phase"`
	Attributes string `json:"attributes"`

	NumHSPs           int     `json:"num_hsps"`
	AvgPercIdentity   float64 `json:"avg_perc_identity"`
	QueryCoveragePerc float64 `json:"query_coverage_perc"`
	MatchLength       int     `json:"match_length"`
}
