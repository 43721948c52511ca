package scoring

import "fmt"

// ProcessingLevel is the NOVA-derived label attached to every result.
type ProcessingLevel string

const (
	ProcessingMinimal ProcessingLevel = "minimal"
	ProcessingLow     ProcessingLevel = "low"
	ProcessingMedium  ProcessingLevel = "medium"
	ProcessingUltra   ProcessingLevel = "ultra"
)

// ScoreInput carries one product's data into the engine. NovaGroup 0 means
// the upstream source supplied no category; nil and empty tag slices are
// treated identically.
type ScoreInput struct {
	Ingredients  []string
	NovaGroup    int
	AdditiveTags []string
	AllergenTags []string
}

// PenaltyConfig exposes the additive penalty caps, which have drifted across
// versions of the algorithm and are deliberately not hard-coded.
type PenaltyConfig struct {
	// TagAdditiveCap bounds the total penalty from upstream additive tags.
	TagAdditiveCap int
	// TextAdditiveCap bounds the total penalty from text-derived generic
	// additive hits (legacy deployments used 25).
	TextAdditiveCap int
}

// DefaultPenaltyConfig returns the current production caps.
func DefaultPenaltyConfig() PenaltyConfig {
	return PenaltyConfig{TagAdditiveCap: 40, TextAdditiveCap: 30}
}

// Breakdown records the contribution of every rule. Penalties and bonuses are
// stored as non-negative magnitudes; the field name carries the sign.
type Breakdown struct {
	BaseScore           int `json:"base_score"`
	SeedOilsPenalty     int `json:"seed_oils_penalty"`
	PalmOilPenalty      int `json:"palm_oil_penalty"`
	AdditivesPenalty    int `json:"additives_penalty"`
	AllergenPenalty     int `json:"allergen_penalty"`
	ArtificialPenalty   int `json:"artificial_penalty"`
	SugarPenalty        int `json:"sugar_penalty"`
	PesticidePenalty    int `json:"pesticide_penalty"`
	MicroplasticPenalty int `json:"microplastic_penalty"`
	HeavyMetalPenalty   int `json:"heavy_metal_penalty"`
	CarcinogenPenalty   int `json:"carcinogen_penalty"`
	NovaPenalty         int `json:"nova_penalty"`
	CleanBonus          int `json:"clean_bonus"`
	OrganicBonus        int `json:"organic_bonus"`
}

// RiskSummary holds the human-readable findings per risk category.
type RiskSummary struct {
	SeedOils             []string         `json:"seed_oils"`
	PalmOil              bool             `json:"palm_oil"`
	Additives            []string         `json:"additives"`
	AdditiveDetails      []AdditiveDetail `json:"additive_details"`
	Artificial           []string         `json:"artificial"`
	Pesticides           []string         `json:"pesticides"`
	Microplastics        []string         `json:"microplastics"`
	HeavyMetals          []string         `json:"heavy_metals"`
	HeavyMetalsBreakdown []HeavyMetalInfo `json:"heavy_metals_breakdown"`
	Carcinogens          []string         `json:"carcinogens"`
	Allergens            []string         `json:"allergens"`
}

// ENumberEntry is one resolved additive prepared for display.
type ENumberEntry struct {
	Name    string   `json:"name"`
	ENumber string   `json:"e_number"`
	Safety  Safety   `json:"safety"`
	Effects []string `json:"effects"`
}

// ScoreResult is the engine output: clamped 0-100 score, processing level,
// rule breakdown, categorized findings, narrative and resolved E-numbers.
type ScoreResult struct {
	Score           int             `json:"score"`
	ProcessingLevel ProcessingLevel `json:"processing_level"`
	Breakdown       Breakdown       `json:"breakdown"`
	Risks           RiskSummary     `json:"risks"`
	Narrative       Narrative       `json:"narrative"`
	ENumbers        []ENumberEntry  `json:"e_numbers"`
}

// CalculatePurityScore runs the engine with the production penalty caps.
func CalculatePurityScore(in ScoreInput) ScoreResult {
	return DefaultPenaltyConfig().Calculate(in)
}

// Calculate applies the penalty/bonus model over the classifier output. The
// function is pure: no I/O, no shared state, identical inputs give identical
// results.
func (cfg PenaltyConfig) Calculate(in ScoreInput) ScoreResult {
	score := 100
	breakdown := Breakdown{BaseScore: 100}
	risks := RiskSummary{}

	analysis := AnalyzeIngredients(in.Ingredients)
	risks.AdditiveDetails = analysis.AdditiveDetails
	risks.HeavyMetalsBreakdown = analysis.HeavyMetalsBreakdown

	// Upstream additive tags take precedence over text-derived generic hits
	// so the same additive is never penalized twice.
	hasAdditiveTags := len(in.AdditiveTags) > 0
	if hasAdditiveTags {
		breakdown.AdditivesPenalty = capInt(len(in.AdditiveTags)*5, cfg.TagAdditiveCap)
		score -= breakdown.AdditivesPenalty
		for _, tag := range in.AdditiveTags {
			risks.Additives = append(risks.Additives, "Additive: "+tag)
		}
	}

	if len(in.AllergenTags) > 0 {
		breakdown.AllergenPenalty = len(in.AllergenTags) * 3
		score -= breakdown.AllergenPenalty
		for _, tag := range in.AllergenTags {
			risks.Additives = append(risks.Additives, "Allergen: "+tag)
		}
	}

	if len(analysis.SeedOils) > 0 {
		breakdown.SeedOilsPenalty = len(analysis.SeedOils) * 15
		score -= breakdown.SeedOilsPenalty
		for _, oil := range analysis.SeedOils {
			risks.SeedOils = append(risks.SeedOils, "Contains "+oil)
		}
	}

	if analysis.PalmOil {
		breakdown.PalmOilPenalty = 10
		score -= breakdown.PalmOilPenalty
		risks.PalmOil = true
	}

	if len(analysis.Additives) > 0 && !hasAdditiveTags {
		breakdown.AdditivesPenalty = capInt(len(analysis.Additives)*5, cfg.TextAdditiveCap)
		score -= breakdown.AdditivesPenalty
		for _, a := range analysis.Additives {
			risks.Additives = append(risks.Additives, "Additive: "+a)
		}
	}

	if len(analysis.Artificial) > 0 {
		breakdown.ArtificialPenalty = len(analysis.Artificial) * 10
		score -= breakdown.ArtificialPenalty
		for _, a := range analysis.Artificial {
			risks.Artificial = append(risks.Artificial, "Contains "+a)
		}
	}

	// Added sugar is a flat penalty regardless of how many sugar keywords hit.
	if len(analysis.AddedSugars) > 0 {
		breakdown.SugarPenalty = 10
		score -= breakdown.SugarPenalty
		risks.Artificial = append(risks.Artificial, "Added sugars detected")
	}

	if len(analysis.Pesticides) > 0 {
		breakdown.PesticidePenalty = len(analysis.Pesticides) * 20
		score -= breakdown.PesticidePenalty
		for _, p := range analysis.Pesticides {
			risks.Pesticides = append(risks.Pesticides, "Potential pesticide: "+p)
		}
	}

	if len(analysis.Microplastics) > 0 {
		breakdown.MicroplasticPenalty = len(analysis.Microplastics) * 15
		score -= breakdown.MicroplasticPenalty
		for _, m := range analysis.Microplastics {
			risks.Microplastics = append(risks.Microplastics, "Microplastic risk: "+m)
		}
	}

	if len(analysis.HeavyMetals) > 0 {
		breakdown.HeavyMetalPenalty = len(analysis.HeavyMetals) * 25
		score -= breakdown.HeavyMetalPenalty
		for _, m := range analysis.HeavyMetals {
			risks.HeavyMetals = append(risks.HeavyMetals, "Heavy metal risk: "+m)
		}
	}

	if len(analysis.Carcinogens) > 0 {
		breakdown.CarcinogenPenalty = len(analysis.Carcinogens) * 25
		score -= breakdown.CarcinogenPenalty
		for _, c := range analysis.Carcinogens {
			risks.Carcinogens = append(risks.Carcinogens, "Potential carcinogen: "+c)
		}
	}

	for _, a := range analysis.Allergens {
		risks.Allergens = append(risks.Allergens, fmt.Sprintf("May contain %s", a))
	}

	if len(in.Ingredients) <= 5 {
		breakdown.CleanBonus = 10
		score += breakdown.CleanBonus
	}

	level := ProcessingMinimal
	switch in.NovaGroup {
	case 2:
		breakdown.NovaPenalty = 10
		level = ProcessingLow
	case 3:
		breakdown.NovaPenalty = 25
		level = ProcessingMedium
	case 4:
		breakdown.NovaPenalty = 40
		level = ProcessingUltra
	}
	score -= breakdown.NovaPenalty

	score = clamp(score, 0, 100)

	if analysis.Organic {
		breakdown.OrganicBonus = 5
		score = capInt(score+breakdown.OrganicBonus, 100)
	}

	result := ScoreResult{
		Score:           score,
		ProcessingLevel: level,
		Breakdown:       breakdown,
		Risks:           risks,
	}
	result.Narrative = buildNarrative(level, len(in.Ingredients), risks, score)

	for _, d := range analysis.AdditiveDetails {
		if d.Info == nil {
			continue
		}
		result.ENumbers = append(result.ENumbers, ENumberEntry{
			Name:    d.Info.Name,
			ENumber: d.Info.ENumber,
			Safety:  d.Info.Safety,
			Effects: d.Info.Effects,
		})
	}

	return result
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func capInt(v, max int) int {
	if v > max {
		return max
	}
	return v
}
