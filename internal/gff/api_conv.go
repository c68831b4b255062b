// internal/gff/api_conv.go
package gff

import "genblast2gff/pkg/api"

// ToAPI converts a Feature into the stable v1 wire shape.
func ToAPI(f Feature) api.FeatureV1 {
	return api.FeatureV1{
		SeqID:      f.SeqID,
		Source:     f.Source,
		Type:       f.Type,
		Start:      f.Start,
		End:        f.End,
		Score:      f.Score,
		Strand:     f.Strand,
		Phase:      f.Phase,
		Attributes: f.Attributes,

		NumHSPs:           f.NumHSPs,
		AvgPercIdentity:   f.AvgPercIdentity,
		QueryCoveragePerc: f.QueryCoveragePerc,
		MatchLength:       f.MatchLength,
	}
}
