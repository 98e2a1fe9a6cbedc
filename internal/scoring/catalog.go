package scoring

// Question maps a question identifier to its pillar and focus area.
type Question struct {
	ID        string `json:"id"`
	Pillar    string `json:"pillar"`
	FocusArea string `json:"focusArea"`
}

// Catalog is an ordered question list; focus-area scores follow its order.
type Catalog []Question

// Focus areas scored by the tier 1 questionnaire.
const (
	FocusDigitalStrategy    = "Digital Strategy and Vision"
	FocusDataArchitecture   = "Data Architecture and Integration"
	FocusTechInfrastructure = "Technology Infrastructure"
	FocusProcessDigital     = "Process Digitalization"
	FocusLeadershipCulture  = "Leadership and Digital Culture"
	FocusTalentSkills       = "Talent and Skills"
	FocusAgileWays          = "Agile Ways of Working"
	FocusCustomerExperience = "Customer Experience"
	FocusBusinessModels     = "Digital Business Models"
	FocusInnovationEco      = "Innovation and Ecosystem Partnerships"
)

var tier1Catalog = Catalog{
	{ID: "t1_strategy", Pillar: PillarDigitalization, FocusArea: FocusDigitalStrategy},
	{ID: "t1_data", Pillar: PillarDigitalization, FocusArea: FocusDataArchitecture},
	{ID: "t1_infrastructure", Pillar: PillarDigitalization, FocusArea: FocusTechInfrastructure},
	{ID: "t1_process", Pillar: PillarDigitalization, FocusArea: FocusProcessDigital},
	{ID: "t1_leadership", Pillar: PillarTransformation, FocusArea: FocusLeadershipCulture},
	{ID: "t1_talent", Pillar: PillarTransformation, FocusArea: FocusTalentSkills},
	{ID: "t1_agile", Pillar: PillarTransformation, FocusArea: FocusAgileWays},
	{ID: "t1_customer", Pillar: PillarValueScaling, FocusArea: FocusCustomerExperience},
	{ID: "t1_business_models", Pillar: PillarValueScaling, FocusArea: FocusBusinessModels},
	{ID: "t1_innovation", Pillar: PillarValueScaling, FocusArea: FocusInnovationEco},
}

// Tier1Catalog returns the high-level questionnaire catalog, one question
// per focus area.
func Tier1Catalog() Catalog {
	return append(Catalog(nil), tier1Catalog...)
}

// CatalogForTier resolves a questionnaire tier to its catalog. The detailed
// tier 2 questionnaire reuses the same focus areas with two probes each.
func CatalogForTier(tier string) Catalog {
	if tier == "tier2" {
		return Tier2Catalog()
	}
	return Tier1Catalog()
}

// Tier2Catalog returns the detailed questionnaire catalog: two questions
// per focus area, suffixed _a and _b.
func Tier2Catalog() Catalog {
	out := make(Catalog, 0, len(tier1Catalog)*2)
	for _, q := range tier1Catalog {
		base := "t2" + q.ID[len("t1"):]
		out = append(out,
			Question{ID: base + "_a", Pillar: q.Pillar, FocusArea: q.FocusArea},
			Question{ID: base + "_b", Pillar: q.Pillar, FocusArea: q.FocusArea},
		)
	}
	return out
}
