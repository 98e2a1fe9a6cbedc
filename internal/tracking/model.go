package tracking

import (
	"time"

	"readiness-backend/internal/fingerprint"
)

// Record tracks one anonymous assessment submission by device. A record is
// created unlinked and transitions to linked exactly once, when the visitor
// later identifies themselves on the same device.
type Record struct {
	ID                   string                  `json:"id"`
	DeviceID             string                  `json:"deviceId"`
	AssessmentInstanceID string                  `json:"assessmentInstanceId"`
	DeviceFingerprint    fingerprint.Fingerprint `json:"deviceFingerprint"`
	IsLinked             bool                    `json:"isLinked"`
	LinkedUserID         string                  `json:"linkedUserId,omitempty"`
	LinkedCompanyID      string                  `json:"linkedCompanyId,omitempty"`
	LinkedAt             *time.Time              `json:"linkedAt,omitempty"`
	CreatedAt            time.Time               `json:"createdAt"`
}
