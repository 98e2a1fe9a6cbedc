package recommendations

import (
	"sort"

	"readiness-backend/internal/scoring"
)

// priorityThreshold is the pillar average at or below which a priority
// recommendation is emitted ("Emerging" or below). A weakest pillar already
// above this needs no alarm message.
const priorityThreshold = 50

// unknownLevelRank sorts entries without a recognized maturity level after
// all recognized ones.
const unknownLevelRank = 999

// Generate builds the ordered recommendation list for a score result: an
// optional priority entry for the weakest pillar, then one entry per focus
// area sorted ascending by maturity severity. Unknown focus areas or levels
// are silently skipped. The input is not mutated.
func Generate(result scoring.ScoreResult) []Recommendation {
	out := make([]Recommendation, 0, len(result.FocusAreaScores)+1)

	if priority, ok := priorityRecommendation(result); ok {
		out = append(out, priority)
	}

	areas := make([]Recommendation, 0, len(result.FocusAreaScores))
	for _, fa := range result.FocusAreaScores {
		levels, ok := focusAreaTexts[fa.FocusArea]
		if !ok {
			continue
		}
		text, ok := levels[fa.MaturityLevel]
		if !ok {
			continue
		}
		areas = append(areas, Recommendation{
			Text:          text,
			Pillar:        fa.Pillar,
			MaturityLevel: fa.MaturityLevel,
			FocusArea:     fa.FocusArea,
			IsPriority:    false,
		})
	}

	// Stable: equal-severity entries keep catalog order.
	sort.SliceStable(areas, func(i, j int) bool {
		return levelRank(areas[i].MaturityLevel) < levelRank(areas[j].MaturityLevel)
	})

	return append(out, areas...)
}

func priorityRecommendation(result scoring.ScoreResult) (Recommendation, bool) {
	pillar := result.LowestScoringPillar
	if pillar == "" {
		return Recommendation{}, false
	}
	for _, ps := range result.PillarScores {
		if ps.Pillar != pillar {
			continue
		}
		if ps.Score > priorityThreshold {
			return Recommendation{}, false
		}
		text, ok := priorityTexts[pillar]
		if !ok {
			return Recommendation{}, false
		}
		return Recommendation{
			Text:       text,
			Pillar:     pillar,
			IsPriority: true,
		}, true
	}
	return Recommendation{}, false
}

func levelRank(level string) int {
	switch level {
	case scoring.TokenBasic:
		return 0
	case scoring.TokenEmerging:
		return 1
	case scoring.TokenEstablished:
		return 2
	case scoring.TokenWorldClass:
		return 3
	default:
		return unknownLevelRank
	}
}
