package users

import (
	"context"
	"errors"
	"strings"

	"readiness-backend/internal/assessments"
	"readiness-backend/internal/fingerprint"
	"readiness-backend/internal/tracking"
)

// Service upserts identified users and runs the post-identification
// anonymous-assessment linking pass.
type Service struct {
	Repo        Repo
	Tracking    *tracking.Service
	Assessments *assessments.Service
}

// NewService constructs a Service.
func NewService(repo Repo, trackingSvc *tracking.Service, assessmentsSvc *assessments.Service) *Service {
	return &Service{Repo: repo, Tracking: trackingSvc, Assessments: assessmentsSvc}
}

// Identify persists the user identity received from the identity provider
// and links any anonymous assessments submitted from the same device. The
// upsert is the fatal path; linking is best-effort and returns whatever was
// successfully re-associated (an empty list when there is nothing to link).
func (s *Service) Identify(ctx context.Context, user User, probe fingerprint.Probe) (User, []assessments.Assessment, error) {
	if s == nil || s.Repo == nil {
		return User{}, nil, errors.New("users service not configured")
	}
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return User{}, nil, errors.New("user id and email are required")
	}
	if user.Role == "" {
		user.Role = RoleMember
	}
	if err := s.Repo.Upsert(ctx, user); err != nil {
		return User{}, nil, err
	}
	stored, err := s.Repo.GetByID(ctx, user.ID)
	if err != nil {
		stored = user
	}

	var linked []assessments.Assessment
	if s.Tracking != nil {
		for _, record := range s.Tracking.FindAndLink(ctx, user.ID, user.CompanyID, probe) {
			if s.Assessments == nil {
				continue
			}
			assessment, err := s.Assessments.Get(ctx, record.AssessmentInstanceID)
			if err != nil {
				continue
			}
			linked = append(linked, assessment)
		}
	}
	if linked == nil {
		linked = []assessments.Assessment{}
	}
	return stored, linked, nil
}

// GetByID returns a user by id.
func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}
