package assessments

import (
	"context"
	"time"
)

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "assessment not found" }

type Repo interface {
	Create(ctx context.Context, assessment Assessment) error
	GetByID(ctx context.Context, assessmentID string) (Assessment, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Assessment, error)
	// UpdateOwner re-associates an assessment with an identified user and
	// company and stamps the linking metadata. Re-applying the same owner is
	// idempotent.
	UpdateOwner(ctx context.Context, assessmentID, userID, companyID, deviceID string, linkedAt time.Time) error
}
