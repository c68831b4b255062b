// internal/gff/gff.go
package gff

import (
	"fmt"
	"strings"

	"genblast2gff/internal/genblast"
	"genblast2gff/internal/logging"
)

// Header is the literal first line of every GFF3 stream.
const Header = "##gff-version 3"

const (
	source      = "BLAST"
	featureType = "match"
)

// Thresholds are the inclusive lower bounds a record must meet to be
// emitted.
type Thresholds struct {
	MinPercIdentity float64
	MinPercCoverage float64
	MinMatchLength  int
}

// DefaultThresholds are the stock CLI defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{MinPercIdentity: 80.0, MinPercCoverage: 80.0, MinMatchLength: 100}
}

// Feature is one GFF3 feature line plus the derived quality metrics.
// Start, End, and Score hold the report's original text.
type Feature struct {
	SeqID      string
	Source     string
	Type       string
	Start      string
	End        string
	Score      string
	Strand     string
	Phase      string
	Attributes string

	NumHSPs           int
	AvgPercIdentity   float64
	QueryCoveragePerc float64
	MatchLength       int
}

// FromRecord derives quality metrics for rec and renders it as a
// Feature if it passes thr. A record with no HSPs has no percent
// identity to average and is skipped with a warning.
func FromRecord(rec genblast.Record, thr Thresholds, logger logging.Logger) (Feature, bool) {
	numHSPs := len(rec.HSPs)
	if numHSPs == 0 {
		logger.Warn("skipping match with no HSPs",
			"query", rec.QueryName, "target", rec.Match.Name, "rank", rec.Match.Rank)
		return Feature{}, false
	}

	matchLength := rec.Match.End - rec.Match.Start
	if matchLength < 0 {
		matchLength = -matchLength
	}
	sum := 0.0
	for _, h := range rec.HSPs {
		sum += h.PercID
	}
	avgPercIdentity := sum / float64(numHSPs)

	if avgPercIdentity < thr.MinPercIdentity ||
		rec.Match.CoveragePercent < thr.MinPercCoverage ||
		matchLength < thr.MinMatchLength {
		return Feature{}, false
	}

	return Feature{
		SeqID:      rec.Match.Name,
		Source:     source,
		Type:       featureType,
		Start:      rec.Match.StartText,
		End:        rec.Match.EndText,
		Score:      rec.Match.ScoreText,
		Strand:     rec.Match.Strand,
		Phase:      ".",
		Attributes: fmt.Sprintf("ID=%s_%d", rec.QueryName, rec.Match.Rank),

		NumHSPs:           numHSPs,
		AvgPercIdentity:   avgPercIdentity,
		QueryCoveragePerc: rec.Match.CoveragePercent,
		MatchLength:       matchLength,
	}, true
}

// Line renders the nine tab-separated GFF3 columns (no trailing newline).
func (f Feature) Line() string {
	return strings.Join([]string{
		f.SeqID, f.Source, f.Type,
		f.Start, f.End,
		f.Score, f.Strand, f.Phase,
		f.Attributes,
	}, "\t")
}
