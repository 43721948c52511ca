package scoring_test

import (
	"testing"

	"github.com/mark-blue-evans/purescan/scoring"
)

func findWarning(ws []scoring.Warning, code string) *scoring.Warning {
	for i := range ws {
		if ws[i].Code == code {
			return &ws[i]
		}
	}
	return nil
}

func TestAssessNutritionHighSugar(t *testing.T) {
	ws := scoring.AssessNutrition("Cola", map[string]float64{"sugars_100g": 23})

	w := findWarning(ws, "sugars_high")
	if w == nil {
		t.Fatalf("expected sugars_high warning, got %+v", ws)
	}
	if w.Severity != scoring.High || w.Value != 23 || w.Limit != 22.5 {
		t.Errorf("unexpected warning fields: %+v", w)
	}
}

func TestAssessNutritionMediumBand(t *testing.T) {
	ws := scoring.AssessNutrition("Yogurt", map[string]float64{
		"sugars_100g":        9.4,
		"saturated-fat_100g": 2.0,
	})
	if findWarning(ws, "sugars_medium") == nil {
		t.Errorf("expected sugars_medium, got %+v", ws)
	}
	if findWarning(ws, "sat_fat_medium") == nil {
		t.Errorf("expected sat_fat_medium, got %+v", ws)
	}
}

func TestAssessNutritionSodiumConvertsToSalt(t *testing.T) {
	// 0.8g sodium * 2.5 = 2.0g salt, above the 1.5g high threshold.
	ws := scoring.AssessNutrition("Soup", map[string]float64{"sodium_100g": 0.8})

	w := findWarning(ws, "salt_high")
	if w == nil {
		t.Fatalf("expected salt_high via sodium conversion, got %+v", ws)
	}
	if w.Value != 2.0 {
		t.Errorf("expected converted salt 2.0, got %v", w.Value)
	}
}

func TestAssessNutritionEmptyInput(t *testing.T) {
	if ws := scoring.AssessNutrition("Mystery", nil); len(ws) != 0 {
		t.Errorf("expected no warnings on empty nutriments, got %+v", ws)
	}
}

func TestAssessNutritionPositiveFindings(t *testing.T) {
	ws := scoring.AssessNutrition("Lentils", map[string]float64{
		"fiber_100g":       8,
		"energy-kcal_100g": 320,
	})
	if findWarning(ws, "fiber_high_positive") == nil {
		t.Errorf("expected fiber_high_positive, got %+v", ws)
	}
	if findWarning(ws, "energy_dense") == nil {
		t.Errorf("expected energy_dense, got %+v", ws)
	}
}

func TestAssessNutritionSatFatNameHeuristic(t *testing.T) {
	ws := scoring.AssessNutrition("Salted Butter", nil)
	if findWarning(ws, "satfat_source_heuristic") == nil {
		t.Errorf("expected heuristic warning for butter, got %+v", ws)
	}

	// Reported saturated fat suppresses the heuristic.
	ws = scoring.AssessNutrition("Salted Butter", map[string]float64{"saturated-fat_100g": 51})
	if findWarning(ws, "satfat_source_heuristic") != nil {
		t.Errorf("heuristic must not fire when saturated fat is reported")
	}
	if findWarning(ws, "sat_fat_high") == nil {
		t.Errorf("expected sat_fat_high, got %+v", ws)
	}
}
