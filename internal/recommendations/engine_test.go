package recommendations

import (
	"reflect"
	"testing"

	"readiness-backend/internal/scoring"
)

func TestGenerateOrdersByMaturityAscending(t *testing.T) {
	result := scoring.ScoreResult{
		FocusAreaScores: []scoring.FocusAreaScore{
			{FocusArea: scoring.FocusDigitalStrategy, Pillar: scoring.PillarDigitalization, MaturityLevel: "ESTABLISHED", Score: 75},
			{FocusArea: scoring.FocusLeadershipCulture, Pillar: scoring.PillarTransformation, MaturityLevel: "BASIC", Score: 25},
			{FocusArea: scoring.FocusCustomerExperience, Pillar: scoring.PillarValueScaling, MaturityLevel: "WORLD_CLASS", Score: 100},
			{FocusArea: scoring.FocusTalentSkills, Pillar: scoring.PillarTransformation, MaturityLevel: "EMERGING", Score: 50},
		},
	}

	recs := Generate(result)

	if len(recs) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(recs))
	}
	expected := []string{"BASIC", "EMERGING", "ESTABLISHED", "WORLD_CLASS"}
	for i, level := range expected {
		if recs[i].MaturityLevel != level {
			t.Fatalf("position %d: expected level %q, got %q", i, level, recs[i].MaturityLevel)
		}
		if recs[i].IsPriority {
			t.Fatalf("position %d: unexpected priority entry", i)
		}
	}
}

func TestGeneratePrioritySuppressedAboveThreshold(t *testing.T) {
	result := scoring.ScoreResult{
		PillarScores: []scoring.PillarScore{
			{Pillar: scoring.PillarDigitalization, Score: 60, Questions: 4},
			{Pillar: scoring.PillarTransformation, Score: 80, Questions: 3},
		},
		LowestScoringPillar: scoring.PillarDigitalization,
	}

	for _, rec := range Generate(result) {
		if rec.IsPriority {
			t.Fatalf("expected no priority recommendation for weakest pillar at 60")
		}
	}
}

func TestGeneratePriorityEmittedAtThreshold(t *testing.T) {
	result := scoring.ScoreResult{
		PillarScores: []scoring.PillarScore{
			{Pillar: scoring.PillarTransformation, Score: 50, Questions: 3},
			{Pillar: scoring.PillarValueScaling, Score: 90, Questions: 3},
		},
		LowestScoringPillar: scoring.PillarTransformation,
		FocusAreaScores: []scoring.FocusAreaScore{
			{FocusArea: scoring.FocusAgileWays, Pillar: scoring.PillarTransformation, MaturityLevel: "EMERGING", Score: 50},
		},
	}

	recs := Generate(result)

	if len(recs) != 2 {
		t.Fatalf("expected priority + 1 focus area, got %d entries", len(recs))
	}
	if !recs[0].IsPriority {
		t.Fatalf("expected priority entry first")
	}
	if recs[0].Pillar != scoring.PillarTransformation {
		t.Fatalf("expected priority pillar %q, got %q", scoring.PillarTransformation, recs[0].Pillar)
	}
	if recs[0].Text == "" {
		t.Fatalf("expected authored priority text")
	}
	priorityCount := 0
	for _, rec := range recs {
		if rec.IsPriority {
			priorityCount++
		}
	}
	if priorityCount != 1 {
		t.Fatalf("expected exactly one priority entry, got %d", priorityCount)
	}
}

func TestGenerateSkipsUnknownAreasAndLevels(t *testing.T) {
	result := scoring.ScoreResult{
		FocusAreaScores: []scoring.FocusAreaScore{
			{FocusArea: "Quantum Readiness", Pillar: scoring.PillarDigitalization, MaturityLevel: "BASIC", Score: 25},
			{FocusArea: scoring.FocusDataArchitecture, Pillar: scoring.PillarDigitalization, MaturityLevel: "LEGACY", Score: 0},
			{FocusArea: scoring.FocusDataArchitecture, Pillar: scoring.PillarDigitalization, MaturityLevel: "BASIC", Score: 25},
		},
	}

	recs := Generate(result)

	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].FocusArea != scoring.FocusDataArchitecture {
		t.Fatalf("expected %q, got %q", scoring.FocusDataArchitecture, recs[0].FocusArea)
	}
}

func TestGenerateEmptyResult(t *testing.T) {
	if recs := Generate(scoring.ScoreResult{}); len(recs) != 0 {
		t.Fatalf("expected empty output, got %d entries", len(recs))
	}
}

func TestGenerateStableForEqualLevels(t *testing.T) {
	result := scoring.ScoreResult{
		FocusAreaScores: []scoring.FocusAreaScore{
			{FocusArea: scoring.FocusDigitalStrategy, Pillar: scoring.PillarDigitalization, MaturityLevel: "EMERGING", Score: 50},
			{FocusArea: scoring.FocusTalentSkills, Pillar: scoring.PillarTransformation, MaturityLevel: "EMERGING", Score: 50},
		},
	}

	recs := Generate(result)

	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].FocusArea != scoring.FocusDigitalStrategy || recs[1].FocusArea != scoring.FocusTalentSkills {
		t.Fatalf("expected input order preserved for equal levels, got %q then %q", recs[0].FocusArea, recs[1].FocusArea)
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	result := scoring.ScoreResult{
		FocusAreaScores: []scoring.FocusAreaScore{
			{FocusArea: scoring.FocusCustomerExperience, Pillar: scoring.PillarValueScaling, MaturityLevel: "ESTABLISHED", Score: 75},
			{FocusArea: scoring.FocusDigitalStrategy, Pillar: scoring.PillarDigitalization, MaturityLevel: "BASIC", Score: 25},
		},
	}
	snapshot := append([]scoring.FocusAreaScore(nil), result.FocusAreaScores...)

	Generate(result)

	if !reflect.DeepEqual(result.FocusAreaScores, snapshot) {
		t.Fatalf("expected input untouched, got %+v", result.FocusAreaScores)
	}
}

func TestLookupFallbacks(t *testing.T) {
	if got := PillarColor("UNKNOWN"); got != "#6b7280" {
		t.Fatalf("expected gray fallback, got %q", got)
	}
	if got := MaturityColor("UNKNOWN"); got != "#6b7280" {
		t.Fatalf("expected gray fallback, got %q", got)
	}
	if got := PillarDisplayName("UNKNOWN"); got != "UNKNOWN" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := PillarDisplayName(scoring.PillarValueScaling); got != "Value Scaling" {
		t.Fatalf("expected display name, got %q", got)
	}
}

func TestFocusAreaTablesComplete(t *testing.T) {
	levels := []string{"BASIC", "EMERGING", "ESTABLISHED", "WORLD_CLASS"}
	if len(focusAreaTexts) != 10 {
		t.Fatalf("expected 10 focus areas, got %d", len(focusAreaTexts))
	}
	for area, byLevel := range focusAreaTexts {
		for _, level := range levels {
			if byLevel[level] == "" {
				t.Fatalf("missing text for %q at %q", area, level)
			}
		}
	}
	for _, pillar := range scoring.Pillars() {
		if priorityTexts[pillar] == "" {
			t.Fatalf("missing priority text for %q", pillar)
		}
	}
}
