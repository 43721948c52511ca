package scoring

import (
	"fmt"
	"math"
	"strings"
)

// WarningSeverity categorizes how serious a nutrient finding is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured nutrient finding shown alongside the purity score.
// It is advisory only and never changes the score.
type Warning struct {
	Code      string          `json:"code"`
	Severity  WarningSeverity `json:"severity"`
	Message   string          `json:"message"`
	Metric    string          `json:"metric,omitempty"`
	Value     float64         `json:"value,omitempty"`
	Limit     float64         `json:"limit,omitempty"`
	Reference string          `json:"reference,omitempty"`
}

// Per-100g thresholds from the UK FSA front-of-pack traffic light scheme.
const (
	sugarsHighPer100g  = 22.5
	sugarsMedPer100g   = 5.0
	satFatHighPer100g  = 5.0
	satFatMedPer100g   = 1.5
	saltHighPer100g    = 1.5
	saltMedPer100g     = 0.3
	fiberGoodPer100g   = 6.0
	kcalDensePer100g   = 275.0
	sodiumToSaltFactor = 2.5
)

// AssessNutrition runs threshold checks over a per-100g nutrient map as
// supplied by the product source. Only emits findings when inputs are present.
func AssessNutrition(productName string, per100g map[string]float64) []Warning {
	warnings := []Warning{}

	kcal := pick(per100g, "energy-kcal_100g", "energy-kcal", "kcal")
	sugars := pick(per100g, "sugars_100g", "sugars")
	satFat := pick(per100g, "saturated-fat_100g", "saturated-fat")
	salt := pick(per100g, "salt_100g", "salt")
	sodium := pick(per100g, "sodium_100g", "sodium")
	fiber := pick(per100g, "fiber_100g", "fiber")

	// OFF reports salt or sodium depending on the market; normalize to salt.
	if salt <= 0 && sodium > 0 {
		salt = sodium * sodiumToSaltFactor
	}

	if sugars >= sugarsHighPer100g {
		warnings = append(warnings, Warning{
			Code:      "sugars_high",
			Severity:  High,
			Message:   fmt.Sprintf("High in sugars (%.1fg per 100g).", sugars),
			Metric:    "sugars_g_per_100g",
			Value:     round2(sugars),
			Limit:     sugarsHighPer100g,
			Reference: fsaRef("Sugars >22.5g/100g is high"),
		})
	} else if sugars >= sugarsMedPer100g {
		warnings = append(warnings, Warning{
			Code:      "sugars_medium",
			Severity:  Caution,
			Message:   fmt.Sprintf("Moderate sugars (%.1fg per 100g).", sugars),
			Metric:    "sugars_g_per_100g",
			Value:     round2(sugars),
			Limit:     sugarsHighPer100g,
			Reference: fsaRef("Sugars 5-22.5g/100g is medium"),
		})
	}

	if satFat >= satFatHighPer100g {
		warnings = append(warnings, Warning{
			Code:      "sat_fat_high",
			Severity:  High,
			Message:   fmt.Sprintf("High in saturated fat (%.1fg per 100g).", satFat),
			Metric:    "sat_fat_g_per_100g",
			Value:     round2(satFat),
			Limit:     satFatHighPer100g,
			Reference: fsaRef("Saturates >5g/100g is high"),
		})
	} else if satFat >= satFatMedPer100g {
		warnings = append(warnings, Warning{
			Code:      "sat_fat_medium",
			Severity:  Caution,
			Message:   fmt.Sprintf("Moderate saturated fat (%.1fg per 100g).", satFat),
			Metric:    "sat_fat_g_per_100g",
			Value:     round2(satFat),
			Limit:     satFatHighPer100g,
			Reference: fsaRef("Saturates 1.5-5g/100g is medium"),
		})
	}

	if salt >= saltHighPer100g {
		warnings = append(warnings, Warning{
			Code:      "salt_high",
			Severity:  High,
			Message:   fmt.Sprintf("High in salt (%.2fg per 100g).", salt),
			Metric:    "salt_g_per_100g",
			Value:     round2(salt),
			Limit:     saltHighPer100g,
			Reference: fsaRef("Salt >1.5g/100g is high"),
		})
	} else if salt >= saltMedPer100g {
		warnings = append(warnings, Warning{
			Code:      "salt_medium",
			Severity:  Caution,
			Message:   fmt.Sprintf("Moderate salt (%.2fg per 100g).", salt),
			Metric:    "salt_g_per_100g",
			Value:     round2(salt),
			Limit:     saltHighPer100g,
			Reference: fsaRef("Salt 0.3-1.5g/100g is medium"),
		})
	}

	if kcal >= kcalDensePer100g {
		warnings = append(warnings, Warning{
			Code:      "energy_dense",
			Severity:  Info,
			Message:   "Energy-dense food - mindful portions help fit it into a healthy pattern.",
			Metric:    "kcal_per_100g",
			Value:     round2(kcal),
			Reference: "Dietary Guidelines for Americans, 2020-2025 - moderate high-energy-density foods",
		})
	}

	if fiber >= fiberGoodPer100g {
		warnings = append(warnings, Warning{
			Code:      "fiber_high_positive",
			Severity:  Info,
			Message:   "Good fiber content - supports a healthy dietary pattern.",
			Metric:    "fiber_g_per_100g",
			Value:     round2(fiber),
			Reference: "Dietary Guidelines for Americans, 2020-2025 - emphasize fiber-rich foods",
		})
	}

	// Name heuristic when saturated fat is unreported.
	if satFat <= 0 && looksHighSatSource(strings.ToLower(productName)) {
		warnings = append(warnings, Warning{
			Code:      "satfat_source_heuristic",
			Severity:  Info,
			Message:   "Likely high in saturated fat (e.g., butter/cream/fatty meats).",
			Reference: "Dietary Guidelines for Americans, 2020-2025 - shift from saturated to unsaturated fats",
		})
	}

	return warnings
}

func pick(n map[string]float64, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := n[k]; ok {
			return v
		}
		for nk, v := range n {
			if strings.EqualFold(nk, k) {
				return v
			}
		}
	}
	return 0
}

func looksHighSatSource(name string) bool {
	return containsAny(name,
		"butter", "ghee", "cream", "cheese", "bacon", "sausage", "shortening",
		"palm oil", "palm kernel", "coconut oil", "lard")
}

func fsaRef(where string) string {
	return "FSA front-of-pack traffic lights - " + where
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
