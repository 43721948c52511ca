package scoring

// Narrative is the four-sentence summary derived from the final score and the
// risk counts. It never feeds back into the score.
type Narrative struct {
	Processing  string `json:"processing"`
	Ingredients string `json:"ingredients"`
	HealthRisks string `json:"health_risks"`
	Overall     string `json:"overall"`
}

func buildNarrative(level ProcessingLevel, ingredientCount int, risks RiskSummary, score int) Narrative {
	return Narrative{
		Processing:  processingDescription(level),
		Ingredients: ingredientDescription(ingredientCount),
		HealthRisks: healthRiskDescription(risks),
		Overall:     overallDescription(score),
	}
}

func processingDescription(level ProcessingLevel) string {
	switch level {
	case ProcessingMinimal:
		return "Minimally processed - whole food"
	case ProcessingLow:
		return "Lightly processed - some processing"
	case ProcessingMedium:
		return "Moderately processed - many additives"
	default:
		return "Highly processed - avoid if possible"
	}
}

func ingredientDescription(count int) string {
	switch {
	case count <= 5:
		return "Short ingredient list - clean label"
	case count <= 10:
		return "Moderate ingredient count"
	case count > 20:
		return "Long ingredient list - highly processed"
	default:
		return "Extended ingredient list"
	}
}

// healthRiskDescription bands on the combined count of the four serious risk
// categories: 0, 1-2, 3+.
func healthRiskDescription(risks RiskSummary) string {
	count := len(risks.Carcinogens) + len(risks.HeavyMetals) +
		len(risks.Pesticides) + len(risks.Microplastics)
	switch {
	case count == 0:
		return "No major health risks detected"
	case count <= 2:
		return "Some concerns - review details"
	default:
		return "Multiple health risks detected"
	}
}

// overallDescription bands the final score at 80/60/40/20.
func overallDescription(score int) string {
	switch {
	case score >= 80:
		return "Excellent choice - clean & healthy"
	case score >= 60:
		return "Good option - mostly clean"
	case score >= 40:
		return "Moderate - use occasionally"
	case score >= 20:
		return "Poor choice - many concerns"
	default:
		return "Avoid if possible - significant health risks"
	}
}

// ScoreLabel is the coarse three-band label used by list views.
func ScoreLabel(score int) string {
	switch {
	case score >= 70:
		return "Good"
	case score >= 40:
		return "Moderate"
	default:
		return "Poor"
	}
}

// ProcessingLevelLabel expands a level into its display form.
func ProcessingLevelLabel(level ProcessingLevel) string {
	switch level {
	case ProcessingMinimal:
		return "Minimally Processed"
	case ProcessingLow:
		return "Low Processed"
	case ProcessingMedium:
		return "Medium Processed"
	case ProcessingUltra:
		return "Ultra Processed"
	default:
		return string(level)
	}
}
