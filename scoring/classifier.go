package scoring

import "strings"

// AdditiveDetail pairs the original ingredient text with the record it
// resolved to.
type AdditiveDetail struct {
	Name string        `json:"name"`
	Info *AdditiveInfo `json:"info"`
}

// HeavyMetalInfo is one row of the heavy-metal explainer shown to users.
type HeavyMetalInfo struct {
	Metal       string `json:"metal"`
	Risk        string `json:"risk"`
	Description string `json:"description"`
}

// IngredientAnalysis is the classifier output: for every risk dictionary the
// subset of matched keywords, plus the palm-oil and organic flags.
type IngredientAnalysis struct {
	SeedOils             []string
	PalmOil              bool
	Additives            []string // ingredient strings hit by generic markers
	AdditiveDetails      []AdditiveDetail
	Artificial           []string
	AddedSugars          []string
	Pesticides           []string
	Microplastics        []string
	HeavyMetals          []string
	HeavyMetalsBreakdown []HeavyMetalInfo
	Carcinogens          []string
	Allergens            []string
	Organic              bool
}

// AnalyzeIngredients scans an ingredient list against every risk dictionary.
// Matching is a case-insensitive substring test, deliberately permissive so
// compound descriptions still hit. An empty list yields an empty analysis.
func AnalyzeIngredients(ingredients []string) IngredientAnalysis {
	lowered := make([]string, len(ingredients))
	for i, ing := range ingredients {
		lowered[i] = strings.ToLower(ing)
	}
	fullText := strings.Join(lowered, " ")

	var details []AdditiveDetail
	for _, ing := range lowered {
		if info := ResolveAdditive(ing); info != nil {
			details = append(details, AdditiveDetail{Name: ing, Info: info})
		}
	}

	var generic []string
	for _, ing := range lowered {
		if containsAny(ing, genericAdditiveMarkers...) {
			generic = append(generic, ing)
		}
	}

	analysis := IngredientAnalysis{
		SeedOils:        matchKeywords(lowered, seedOils),
		PalmOil:         anyContainsAny(lowered, palmOilMarkers),
		Additives:       generic,
		AdditiveDetails: details,
		Artificial:      matchKeywords(lowered, artificialIngredients),
		AddedSugars:     matchKeywords(lowered, addedSugars),
		Pesticides:      matchKeywords(lowered, pesticides),
		Microplastics:   matchKeywords(lowered, microplastics),
		HeavyMetals:     matchKeywords(lowered, heavyMetals),
		Carcinogens:     matchKeywords(lowered, carcinogens),
		Allergens:       matchKeywords(lowered, commonAllergens),
		Organic:         containsAny(fullText, organicMarkers...),
	}

	// Any heavy-metal hit gets the fixed four-metal explainer; the breakdown
	// is public-health boilerplate, not a per-metal match.
	if containsAny(fullText, "cadmium", "lead", "mercury", "arsenic") {
		analysis.HeavyMetalsBreakdown = heavyMetalExplainer()
	}

	return analysis
}

func heavyMetalExplainer() []HeavyMetalInfo {
	return []HeavyMetalInfo{
		{Metal: "Cadmium", Risk: "medium", Description: "Can accumulate in body, especially from rice and leafy greens"},
		{Metal: "Lead", Risk: "low", Description: "Common contaminant, regulated in most countries"},
		{Metal: "Mercury", Risk: "low", Description: "Main concern is seafood contamination"},
		{Metal: "Arsenic", Risk: "medium", Description: "Present in rice and grains, organic rice has lower levels"},
	}
}

// matchKeywords returns every dictionary keyword appearing as a substring of
// any ingredient, in dictionary order.
func matchKeywords(lowered []string, dict []string) []string {
	var matched []string
	for _, kw := range dict {
		for _, ing := range lowered {
			if strings.Contains(ing, kw) {
				matched = append(matched, kw)
				break
			}
		}
	}
	return matched
}

func anyContainsAny(lowered []string, subs []string) bool {
	for _, ing := range lowered {
		if containsAny(ing, subs...) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
