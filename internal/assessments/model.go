package assessments

import (
	"time"

	"readiness-backend/internal/scoring"
)

// Questionnaire tiers.
const (
	TierOne = "tier1"
	TierTwo = "tier2"
)

// Assessment is one submitted questionnaire with its computed score. An
// anonymous submission has no owner until the linking flow re-associates it;
// WasAnonymous and OriginalDeviceID preserve where it came from.
type Assessment struct {
	ID               string              `json:"id"`
	Tier             string              `json:"tier"`
	Responses        map[string]string   `json:"responses"`
	Result           scoring.ScoreResult `json:"result"`
	UserID           string              `json:"userId,omitempty"`
	CompanyID        string              `json:"companyId,omitempty"`
	Anonymous        bool                `json:"anonymous"`
	WasAnonymous     bool                `json:"wasAnonymous"`
	OriginalDeviceID string              `json:"originalDeviceId,omitempty"`
	LinkedAt         *time.Time          `json:"linkedAt,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}
