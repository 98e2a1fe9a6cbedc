package scoring

import (
	"math"
	"strings"

	"readiness-backend/internal/shared/telemetry"
)

// Maturity level tokens accepted in a response set.
const (
	TokenBasic       = "BASIC"
	TokenEmerging    = "EMERGING"
	TokenEstablished = "ESTABLISHED"
	TokenWorldClass  = "WORLD_CLASS"
)

// Pillar identifiers.
const (
	PillarDigitalization = "DIGITALIZATION"
	PillarTransformation = "TRANSFORMATION"
	PillarValueScaling   = "VALUE_SCALING"
)

// Maturity labels derived from the overall score.
const (
	LevelBasic       = "Basic"
	LevelEmerging    = "Emerging"
	LevelEstablished = "Established"
	LevelWorldClass  = "World Class"
)

var tokenValues = map[string]int{
	TokenBasic:       25,
	TokenEmerging:    50,
	TokenEstablished: 75,
	TokenWorldClass:  100,
}

// ScoreBreakdown counts responses at each maturity level. Unrecognized
// tokens are not counted in any bucket, so the buckets sum to the number of
// recognized responses.
type ScoreBreakdown struct {
	Basic       int `json:"basic"`
	Emerging    int `json:"emerging"`
	Established int `json:"established"`
	WorldClass  int `json:"worldClass"`
}

// PillarScore is the average score over a pillar's answered questions.
type PillarScore struct {
	Pillar    string `json:"pillar"`
	Score     int    `json:"score"`
	Questions int    `json:"questions"`
}

// FocusAreaScore carries one answered question's focus-area placement.
type FocusAreaScore struct {
	FocusArea     string `json:"focusArea"`
	Pillar        string `json:"pillar"`
	MaturityLevel string `json:"maturityLevel"`
	Score         int    `json:"score"`
}

// ScoreResult is the computed outcome of one response set. Immutable once
// computed; the pillar and focus-area fields are only populated by
// CalculateDetailedScore.
type ScoreResult struct {
	OverallScore        int              `json:"overallScore"`
	TotalQuestions      int              `json:"totalQuestions"`
	ScoreBreakdown      ScoreBreakdown   `json:"scoreBreakdown"`
	MaturityLevel       string           `json:"maturityLevel"`
	PillarScores        []PillarScore    `json:"pillarScores,omitempty"`
	LowestScoringPillar string           `json:"lowestScoringPillar,omitempty"`
	FocusAreaScores     []FocusAreaScore `json:"focusAreaScores,omitempty"`
}

// CalculateScore aggregates a response set into an overall maturity score.
// It is total over any input: an empty map yields the zero result and
// unrecognized tokens contribute zero without incrementing any breakdown
// bucket. The gap is logged so typo'd tokens are visible without changing
// historical scores.
func CalculateScore(responses map[string]string) ScoreResult {
	result := ScoreResult{MaturityLevel: LevelBasic}
	if len(responses) == 0 {
		return result
	}

	sum := 0
	for questionID, token := range responses {
		value, ok := tokenValues[normalizeToken(token)]
		if !ok {
			telemetry.Warn("scoring.unrecognized_token", map[string]any{
				"question_id": questionID,
				"token":       token,
			})
			continue
		}
		sum += value
		switch normalizeToken(token) {
		case TokenBasic:
			result.ScoreBreakdown.Basic++
		case TokenEmerging:
			result.ScoreBreakdown.Emerging++
		case TokenEstablished:
			result.ScoreBreakdown.Established++
		case TokenWorldClass:
			result.ScoreBreakdown.WorldClass++
		}
	}

	result.TotalQuestions = len(responses)
	result.OverallScore = roundMean(sum, len(responses))
	result.MaturityLevel = MaturityLevelFor(result.OverallScore)
	return result
}

// CalculateDetailedScore extends CalculateScore with per-pillar averages,
// the lowest-scoring pillar, and per-focus-area entries resolved through the
// question catalog. Questions absent from the catalog contribute to the
// overall score only.
func CalculateDetailedScore(responses map[string]string, catalog Catalog) ScoreResult {
	result := CalculateScore(responses)

	type pillarAgg struct {
		sum   int
		count int
	}
	aggregates := make(map[string]*pillarAgg, 3)

	for _, question := range catalog {
		token, answered := responses[question.ID]
		if !answered {
			continue
		}
		normalized := normalizeToken(token)
		value := tokenValues[normalized] // zero for unrecognized tokens

		agg, ok := aggregates[question.Pillar]
		if !ok {
			agg = &pillarAgg{}
			aggregates[question.Pillar] = agg
		}
		agg.sum += value
		agg.count++

		result.FocusAreaScores = append(result.FocusAreaScores, FocusAreaScore{
			FocusArea:     question.FocusArea,
			Pillar:        question.Pillar,
			MaturityLevel: normalized,
			Score:         value,
		})
	}

	lowest := ""
	lowestScore := 0
	for _, pillar := range Pillars() {
		agg, ok := aggregates[pillar]
		if !ok {
			continue
		}
		score := roundMean(agg.sum, agg.count)
		result.PillarScores = append(result.PillarScores, PillarScore{
			Pillar:    pillar,
			Score:     score,
			Questions: agg.count,
		})
		if lowest == "" || score < lowestScore {
			lowest = pillar
			lowestScore = score
		}
	}
	result.LowestScoringPillar = lowest
	return result
}

// MaturityLevelFor classifies an overall score into a maturity label. The
// thresholds intentionally do not align with the per-question anchor values
// (25/50/75/100); they separate the narrative label from the raw option mix.
func MaturityLevelFor(score int) string {
	switch {
	case score >= 85:
		return LevelWorldClass
	case score >= 70:
		return LevelEstablished
	case score >= 50:
		return LevelEmerging
	default:
		return LevelBasic
	}
}

// TokenValue returns the numeric value for a maturity token, zero when the
// token is unrecognized.
func TokenValue(token string) int {
	return tokenValues[normalizeToken(token)]
}

// Pillars returns the pillar identifiers in canonical order.
func Pillars() []string {
	return []string{PillarDigitalization, PillarTransformation, PillarValueScaling}
}

// roundMean rounds half away from zero.
func roundMean(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}

func normalizeToken(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}
