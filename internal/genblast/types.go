// internal/genblast/types.go
package genblast

// HSP is one high-scoring sub-alignment pair within a genomic match.
type HSP struct {
	MatchStart int
	MatchEnd   int
	QueryStart int
	QueryEnd   int
	PercID     float64
}

// Match is one alignment between a query sequence and a genomic region.
// Start, End, and Score keep the report's original text alongside the
// parsed values so output never reformats what the aligner wrote.
// Coordinate order is not guaranteed; End may be less than Start.
type Match struct {
	Name            string
	Start           int
	End             int
	StartText       string
	EndText         string
	Strand          string // "+" or "-"
	CoverageCount   int
	CoveragePercent float64
	Score           float64
	ScoreText       string
	Rank            int
}

// Record is one finalized genomic match together with its HSPs (keyed
// by HSP id) and the query name in effect when the match was parsed.
type Record struct {
	QueryName string
	Match     Match
	HSPs      map[int]HSP
}
