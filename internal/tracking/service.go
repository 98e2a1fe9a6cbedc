package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"readiness-backend/internal/fingerprint"
	"readiness-backend/internal/shared/metrics"
	"readiness-backend/internal/shared/telemetry"
)

// ContentLinker re-associates an assessment content record with its
// identified owner. Re-owning the same assessment with the same identity is
// idempotent; the linking protocol relies on that for crash recovery.
type ContentLinker interface {
	LinkOwner(ctx context.Context, assessmentID, userID, companyID, deviceID string, linkedAt time.Time) error
}

// Service coordinates anonymous-assessment tracking and later linking. It
// never caches record state between calls; the repo is the source of truth.
type Service struct {
	Repo   Repo
	Linker ContentLinker

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo, linker ContentLinker) *Service {
	return &Service{Repo: repo, Linker: linker}
}

// Tag records an anonymous submission against the current device. It is
// best-effort: a store failure is logged and swallowed so a failed tracking
// record can never block the submission that triggered it. The zero Record
// signals the submission was not tracked.
func (s *Service) Tag(ctx context.Context, assessmentID string, probe fingerprint.Probe) Record {
	fp := fingerprint.Compute(probe)
	record := Record{
		ID:                   uuid.NewString(),
		DeviceID:             fp.ID,
		AssessmentInstanceID: assessmentID,
		DeviceFingerprint:    fp,
		IsLinked:             false,
		CreatedAt:            s.now(),
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		metrics.IncTrackingDropped()
		telemetry.Error("tracking.tag_failed", map[string]any{
			"assessment_id": assessmentID,
			"device_id":     fp.ID,
			"error":         err.Error(),
		})
		return Record{}
	}

	telemetry.Info("tracking.tagged", map[string]any{
		"record_id":     record.ID,
		"assessment_id": assessmentID,
		"device_id":     fp.ID,
	})
	return record
}

// FindAndLink re-associates every unlinked record for the current device
// with the identified user and company. Records are processed sequentially
// and independently: a failure on one is logged and skipped, and the
// assessment content is re-owned before the tracking record flips to linked,
// so a crash between the two updates heals on the next call. Calling twice
// for the same device and user links each record at most once; the second
// call finds nothing and returns an empty list.
func (s *Service) FindAndLink(ctx context.Context, userID, companyID string, probe fingerprint.Probe) []Record {
	fp := fingerprint.Compute(probe)
	records, err := s.Repo.ListUnlinkedByDevice(ctx, fp.ID)
	if err != nil {
		telemetry.Error("tracking.list_failed", map[string]any{
			"device_id": fp.ID,
			"user_id":   userID,
			"error":     err.Error(),
		})
		return nil
	}

	linked := make([]Record, 0, len(records))
	for _, record := range records {
		metrics.IncLinkingAttempted()
		linkedAt := s.now()

		if err := s.Linker.LinkOwner(ctx, record.AssessmentInstanceID, userID, companyID, record.DeviceID, linkedAt); err != nil {
			metrics.IncLinkingFailed()
			telemetry.Error("tracking.link_content_failed", map[string]any{
				"record_id":     record.ID,
				"assessment_id": record.AssessmentInstanceID,
				"user_id":       userID,
				"error":         err.Error(),
			})
			continue
		}
		if err := s.Repo.MarkLinked(ctx, record.ID, userID, companyID, linkedAt); err != nil {
			// Content is already re-owned; the record stays unlinked and the
			// next call retries both updates.
			metrics.IncLinkingFailed()
			telemetry.Error("tracking.mark_linked_failed", map[string]any{
				"record_id":     record.ID,
				"assessment_id": record.AssessmentInstanceID,
				"user_id":       userID,
				"error":         err.Error(),
			})
			continue
		}

		record.IsLinked = true
		record.LinkedUserID = userID
		record.LinkedCompanyID = companyID
		record.LinkedAt = &linkedAt
		linked = append(linked, record)
		metrics.IncLinkingCompleted()
	}

	telemetry.Info("tracking.link_complete", map[string]any{
		"device_id": fp.ID,
		"user_id":   userID,
		"found":     len(records),
		"linked":    len(linked),
	})
	return linked
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
