package tracking

import (
	"context"
	"time"
)

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "tracking record not found" }

// Repo persists anonymous-assessment tracking records. ListUnlinkedByDevice
// filtering on is_linked=false is what makes linking at-most-once per
// record; MarkLinked is the per-record serialization point.
type Repo interface {
	Create(ctx context.Context, record Record) error
	ListUnlinkedByDevice(ctx context.Context, deviceID string) ([]Record, error)
	MarkLinked(ctx context.Context, recordID, userID, companyID string, linkedAt time.Time) error
}
