package recommendations

// Recommendation is one guidance entry derived from a score result. The
// optional priority entry addresses the weakest pillar; the rest address
// individual focus areas.
type Recommendation struct {
	Text          string `json:"text"`
	Pillar        string `json:"pillar,omitempty"`
	MaturityLevel string `json:"maturityLevel,omitempty"`
	FocusArea     string `json:"focusArea,omitempty"`
	IsPriority    bool   `json:"isPriority"`
}
