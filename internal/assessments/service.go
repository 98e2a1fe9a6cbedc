package assessments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"readiness-backend/internal/fingerprint"
	"readiness-backend/internal/recommendations"
	"readiness-backend/internal/scoring"
	"readiness-backend/internal/shared/metrics"
	"readiness-backend/internal/shared/telemetry"
	"readiness-backend/internal/tracking"
)

// SubmitInput carries one questionnaire submission.
type SubmitInput struct {
	Tier      string
	Responses map[string]string
	UserID    string
	CompanyID string
	Anonymous bool
	Probe     fingerprint.Probe
}

// Service contains business logic for assessments.
type Service struct {
	Repo     Repo
	Tracking *tracking.Service
}

// NewService constructs a Service. The tracking service is attached by the
// bootstrap layer after construction to break the mutual dependency.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Submit scores and persists a questionnaire submission. Persisting the
// assessment itself is the one fatal path; tagging an anonymous submission
// for later linking is best-effort and never fails the submission.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (Assessment, error) {
	start := time.Now()

	tier := normalizeTier(input.Tier)
	if tier == "" {
		return Assessment{}, errors.New("tier must be tier1 or tier2")
	}
	responses := input.Responses
	if responses == nil {
		responses = map[string]string{}
	}

	result := scoring.CalculateDetailedScore(responses, scoring.CatalogForTier(tier))

	assessment := Assessment{
		ID:        uuid.NewString(),
		Tier:      tier,
		Responses: responses,
		Result:    result,
		Anonymous: input.Anonymous,
		CreatedAt: time.Now().UTC(),
	}
	if !input.Anonymous {
		assessment.UserID = input.UserID
		assessment.CompanyID = input.CompanyID
	}

	if err := s.Repo.Create(ctx, assessment); err != nil {
		return Assessment{}, err
	}

	metrics.IncAssessmentSubmitted()
	metrics.ObserveSubmitDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("assessment.submitted", map[string]any{
		"assessment_id": assessment.ID,
		"tier":          tier,
		"anonymous":     assessment.Anonymous,
		"overall_score": result.OverallScore,
		"maturity":      result.MaturityLevel,
	})

	if assessment.Anonymous && s.Tracking != nil {
		s.Tracking.Tag(ctx, assessment.ID, input.Probe)
	}

	return assessment, nil
}

// Get returns an assessment by ID.
func (s *Service) Get(ctx context.Context, assessmentID string) (Assessment, error) {
	if strings.TrimSpace(assessmentID) == "" {
		return Assessment{}, errors.New("assessmentID is required")
	}
	return s.Repo.GetByID(ctx, assessmentID)
}

// List returns a user's assessments ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Assessment, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("userID is required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Recommendations returns the ordered recommendation list for a stored
// assessment. Re-callable; the result is recomputed from the stored score.
func (s *Service) Recommendations(ctx context.Context, assessmentID string) ([]recommendations.Recommendation, error) {
	assessment, err := s.Get(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	return recommendations.Generate(assessment.Result), nil
}

// LinkOwner implements tracking.ContentLinker: it re-associates an
// assessment with its identified owner. Safe to re-apply with the same
// identity.
func (s *Service) LinkOwner(ctx context.Context, assessmentID, userID, companyID, deviceID string, linkedAt time.Time) error {
	return s.Repo.UpdateOwner(ctx, assessmentID, userID, companyID, deviceID, linkedAt)
}

func normalizeTier(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "tier1", "1":
		return TierOne
	case "tier2", "2":
		return TierTwo
	default:
		return ""
	}
}
