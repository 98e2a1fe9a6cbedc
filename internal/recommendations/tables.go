package recommendations

import "readiness-backend/internal/scoring"

// priorityTexts is keyed by pillar and addresses an organization whose
// weakest pillar sits at Emerging or below.
var priorityTexts = map[string]string{
	scoring.PillarDigitalization: "Your digitalization foundation needs the most attention. Prioritize a clear data architecture, consolidate core systems, and digitize the manual processes that slow every other initiative down. Without this base, transformation and scaling efforts will keep stalling on unreliable data and disconnected tools.",
	scoring.PillarTransformation: "Your transformation capability is the biggest constraint right now. Invest in leadership alignment around the digital agenda, build the skills your teams are missing, and introduce iterative ways of working so change sticks beyond individual projects. Technology spend will not pay off until the organization can absorb it.",
	scoring.PillarValueScaling:   "Value scaling is where you are leaving the most on the table. Turn the digital capabilities you already have toward customer-facing improvements, test new revenue models in small increments, and look outside the company for partners who can accelerate reach. Internal maturity only matters once it shows up in the market.",
}

// focusAreaTexts is keyed first by focus area, then by the maturity token
// the organization selected for that area.
var focusAreaTexts = map[string]map[string]string{
	scoring.FocusDigitalStrategy: {
		scoring.TokenBasic:       "Write down a digital strategy, even a one-page one. Name the three business outcomes digital should serve and review them quarterly with leadership.",
		scoring.TokenEmerging:    "Connect your digital strategy to budgets and roadmaps. Every funded initiative should trace to a named strategic outcome.",
		scoring.TokenEstablished: "Pressure-test the strategy against market shifts annually and retire initiatives that no longer earn their place.",
		scoring.TokenWorldClass:  "Use your strategy discipline to explore adjacent markets; share the playbook across business units so nothing depends on a single team.",
	},
	scoring.FocusDataArchitecture: {
		scoring.TokenBasic:       "Start with an inventory of where your critical data lives. Pick one system of record per domain and stop copying data by hand.",
		scoring.TokenEmerging:    "Invest in integration between your core systems so reports stop depending on manual exports and reconciliation.",
		scoring.TokenEstablished: "Introduce data ownership and quality metrics per domain; make integration self-service for product teams.",
		scoring.TokenWorldClass:  "Treat data products as first-class offerings with SLAs, and open selected datasets to partners where it creates leverage.",
	},
	scoring.FocusTechInfrastructure: {
		scoring.TokenBasic:       "Reduce dependence on unsupported hardware and single-person knowledge. Move commodity workloads to managed services first.",
		scoring.TokenEmerging:    "Standardize your environments and automate provisioning so new capacity takes hours, not weeks.",
		scoring.TokenEstablished: "Adopt infrastructure-as-code everywhere and measure recovery objectives with regular failure drills.",
		scoring.TokenWorldClass:  "Optimize for cost and sustainability; let teams benchmark and choose platforms within clear guardrails.",
	},
	scoring.FocusProcessDigital: {
		scoring.TokenBasic:       "Map your three most frequent manual processes and digitize the one with the most handoffs first.",
		scoring.TokenEmerging:    "Connect digitized processes end to end; a form that feeds a spreadsheet is not yet a digital process.",
		scoring.TokenEstablished: "Instrument processes with cycle-time metrics and automate the exception handling that still lands in inboxes.",
		scoring.TokenWorldClass:  "Continuously mine process data for friction and let teams redesign flows without central approval.",
	},
	scoring.FocusLeadershipCulture: {
		scoring.TokenBasic:       "Get the leadership team fluent in the basics: run a working session on what digital maturity means for your business, not a generic training.",
		scoring.TokenEmerging:    "Make one senior leader visibly accountable for the digital agenda and report progress in the same forum as financial results.",
		scoring.TokenEstablished: "Push decision authority down: teams close to the customer should be able to act on data without escalation.",
		scoring.TokenWorldClass:  "Develop digital leadership as an export: rotate leaders through digital initiatives and mentor your ecosystem.",
	},
	scoring.FocusTalentSkills: {
		scoring.TokenBasic:       "Identify the two digital skills your teams most lack and close the gap with targeted hiring or training, not a broad program.",
		scoring.TokenEmerging:    "Build learning paths tied to real initiatives so new skills are applied within weeks of being acquired.",
		scoring.TokenEstablished: "Create internal mobility toward digital roles and measure retention of your key technical people.",
		scoring.TokenWorldClass:  "Grow talent beyond your own needs; alumni and community presence become a recruiting advantage.",
	},
	scoring.FocusAgileWays: {
		scoring.TokenBasic:       "Pick one team and one initiative to work iteratively with short feedback cycles, then inspect the results honestly.",
		scoring.TokenEmerging:    "Spread iterative delivery beyond IT; planning, budgeting, and marketing cycles should shorten too.",
		scoring.TokenEstablished: "Fund stable products instead of projects and let quarterly outcomes, not output, drive priorities.",
		scoring.TokenWorldClass:  "Keep the system honest: regularly prune ceremonies and governance that no longer earn their cost.",
	},
	scoring.FocusCustomerExperience: {
		scoring.TokenBasic:       "Start measuring the customer journey at its two or three most painful points before investing in new channels.",
		scoring.TokenEmerging:    "Join up your channels so customers never have to repeat themselves between web, phone, and in person.",
		scoring.TokenEstablished: "Personalize proactively using the data customers already give you, and close the loop on every piece of feedback.",
		scoring.TokenWorldClass:  "Co-create with customers: give your best customers early access and a direct line into product decisions.",
	},
	scoring.FocusBusinessModels: {
		scoring.TokenBasic:       "List the parts of your offering that could be sold, priced, or delivered differently with digital means; pick one to test this quarter.",
		scoring.TokenEmerging:    "Run small paid pilots of new digital offerings with real customers instead of internal business cases.",
		scoring.TokenEstablished: "Scale the models that proved themselves and give them separate targets so the core business cannot starve them.",
		scoring.TokenWorldClass:  "Manage a portfolio of business models with explicit sunset criteria; yesterday's disruption becomes today's legacy too.",
	},
	scoring.FocusInnovationEco: {
		scoring.TokenBasic:       "Nominate a single owner for external innovation contacts so opportunities stop dying in inboxes.",
		scoring.TokenEmerging:    "Formalize two or three partnerships with clear mutual value instead of collecting memorandums of understanding.",
		scoring.TokenEstablished: "Open selected APIs and data to partners and measure the revenue that flows through the ecosystem.",
		scoring.TokenWorldClass:  "Position yourself as the platform in your niche: let partners build on you, and curate rather than control.",
	},
}

var pillarDisplayNames = map[string]string{
	scoring.PillarDigitalization: "Digitalization",
	scoring.PillarTransformation: "Transformation",
	scoring.PillarValueScaling:   "Value Scaling",
}

var pillarColors = map[string]string{
	scoring.PillarDigitalization: "#3b82f6",
	scoring.PillarTransformation: "#8b5cf6",
	scoring.PillarValueScaling:   "#10b981",
}

var maturityColors = map[string]string{
	scoring.TokenBasic:       "#ef4444",
	scoring.TokenEmerging:    "#f59e0b",
	scoring.TokenEstablished: "#3b82f6",
	scoring.TokenWorldClass:  "#10b981",
}

const fallbackColor = "#6b7280"

// PillarDisplayName resolves a pillar token to its display name, passing
// unrecognized tokens through unchanged.
func PillarDisplayName(pillar string) string {
	if name, ok := pillarDisplayNames[pillar]; ok {
		return name
	}
	return pillar
}

// PillarColor resolves a pillar token to its chart color, gray fallback.
func PillarColor(pillar string) string {
	if color, ok := pillarColors[pillar]; ok {
		return color
	}
	return fallbackColor
}

// MaturityColor resolves a maturity token to its chart color, gray fallback.
func MaturityColor(level string) string {
	if color, ok := maturityColors[level]; ok {
		return color
	}
	return fallbackColor
}
