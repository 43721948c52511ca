package scoring_test

import (
	"reflect"
	"testing"

	"github.com/mark-blue-evans/purescan/scoring"
)

func TestCuredMeatExample(t *testing.T) {
	result := scoring.CalculatePurityScore(scoring.ScoreInput{
		Ingredients: []string{"sodium nitrite", "sugar", "water"},
	})

	// 100 - 25 (carcinogen) - 10 (added sugar, flat) + 10 (clean bonus) = 75
	if result.Score != 75 {
		t.Errorf("expected score 75, got %d", result.Score)
	}
	if result.ProcessingLevel != scoring.ProcessingMinimal {
		t.Errorf("expected minimal processing, got %s", result.ProcessingLevel)
	}
	if result.Breakdown.CarcinogenPenalty != 25 {
		t.Errorf("expected carcinogen penalty 25, got %d", result.Breakdown.CarcinogenPenalty)
	}
	if result.Breakdown.SugarPenalty != 10 {
		t.Errorf("expected sugar penalty 10, got %d", result.Breakdown.SugarPenalty)
	}
	if result.Breakdown.ArtificialPenalty != 0 {
		t.Errorf("sodium nitrite must not be double-counted as artificial, got penalty %d", result.Breakdown.ArtificialPenalty)
	}
	if len(result.Risks.Carcinogens) != 1 || result.Risks.Carcinogens[0] != "Potential carcinogen: sodium nitrite" {
		t.Errorf("unexpected carcinogen findings: %v", result.Risks.Carcinogens)
	}
}

func TestSeedOilPalmMsgUltraProcessed(t *testing.T) {
	result := scoring.CalculatePurityScore(scoring.ScoreInput{
		Ingredients: []string{"canola oil", "palm oil", "MSG"},
		NovaGroup:   4,
	})

	// 100 - 15 (canola) - 10 (palm flat) - 10 (msg artificial) - 40 (nova 4) + 10 (clean) = 35
	if result.Score != 35 {
		t.Errorf("expected score 35, got %d", result.Score)
	}
	if result.ProcessingLevel != scoring.ProcessingUltra {
		t.Errorf("expected ultra processing, got %s", result.ProcessingLevel)
	}
	if result.Breakdown.SeedOilsPenalty != 15 {
		t.Errorf("palm oil must not count as a generic seed oil: penalty %d", result.Breakdown.SeedOilsPenalty)
	}
	if result.Breakdown.PalmOilPenalty != 10 {
		t.Errorf("expected palm oil penalty 10, got %d", result.Breakdown.PalmOilPenalty)
	}
	if !result.Risks.PalmOil {
		t.Error("expected palm oil flag set")
	}
}

func TestEmptyIngredients(t *testing.T) {
	result := scoring.CalculatePurityScore(scoring.ScoreInput{})

	if result.Score != 100 {
		t.Errorf("expected score 100, got %d", result.Score)
	}
	if result.ProcessingLevel != scoring.ProcessingMinimal {
		t.Errorf("expected minimal processing, got %s", result.ProcessingLevel)
	}
	if len(result.Risks.SeedOils) != 0 || len(result.Risks.Carcinogens) != 0 ||
		len(result.Risks.Additives) != 0 || len(result.Risks.HeavyMetals) != 0 {
		t.Errorf("expected empty risk sets, got %+v", result.Risks)
	}
	if result.Breakdown.CleanBonus != 10 {
		t.Errorf("expected clean bonus 10, got %d", result.Breakdown.CleanBonus)
	}
}

func TestCleanShortListClampsAt100(t *testing.T) {
	result := scoring.CalculatePurityScore(scoring.ScoreInput{
		Ingredients: []string{"water", "salt"},
	})
	// 100 + 10 clean bonus clamps back to 100
	if result.Score != 100 {
		t.Errorf("expected score 100, got %d", result.Score)
	}
}

func TestScoreNeverLeavesRange(t *testing.T) {
	result := scoring.CalculatePurityScore(scoring.ScoreInput{
		Ingredients: []string{
			"canola oil", "sunflower oil", "corn oil", "soybean oil",
			"glyphosate", "chlorpyrifos", "lead", "mercury", "cadmium",
			"sodium nitrite", "bha", "bht", "polyethylene", "sugar",
		},
		NovaGroup:    4,
		AdditiveTags: []string{"e102", "e110", "e122", "e124"},
		AllergenTags: []string{"milk", "soy", "gluten"},
	})
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("score %d out of [0,100]", result.Score)
	}
	if result.Score != 0 {
		t.Errorf("expected heavily penalized product to clamp to 0, got %d", result.Score)
	}
}

func TestNovaMonotonic(t *testing.T) {
	ingredients := []string{"oats", "honey"}
	prev := 101
	for nova := 1; nova <= 4; nova++ {
		result := scoring.CalculatePurityScore(scoring.ScoreInput{
			Ingredients: ingredients,
			NovaGroup:   nova,
		})
		if result.Score > prev {
			t.Errorf("nova %d score %d exceeds nova %d score %d", nova, result.Score, nova-1, prev)
		}
		prev = result.Score
	}
}

func TestIdempotent(t *testing.T) {
	in := scoring.ScoreInput{
		Ingredients:  []string{"canola oil", "MSG", "organic sugar", "emulsifier (soy lecithin)"},
		NovaGroup:    3,
		AllergenTags: []string{"soy"},
	}
	a := scoring.CalculatePurityScore(in)
	b := scoring.CalculatePurityScore(in)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", a, b)
	}
}

func TestAdditiveTagsSuppressTextPenalty(t *testing.T) {
	withTags := scoring.CalculatePurityScore(scoring.ScoreInput{
		Ingredients:  []string{"emulsifier (soy lecithin)", "stabilizer"},
		AdditiveTags: []string{"e322"},
	})
	if withTags.Breakdown.AdditivesPenalty != 5 {
		t.Errorf("expected tag-only additive penalty 5, got %d", withTags.Breakdown.AdditivesPenalty)
	}

	withoutTags := scoring.CalculatePurityScore(scoring.ScoreInput{
		Ingredients: []string{"emulsifier (soy lecithin)", "stabilizer"},
	})
	if withoutTags.Breakdown.AdditivesPenalty != 10 {
		t.Errorf("expected text additive penalty 10, got %d", withoutTags.Breakdown.AdditivesPenalty)
	}
}

func TestAdditiveTagPenaltyCapped(t *testing.T) {
	tags := make([]string, 12)
	for i := range tags {
		tags[i] = "e100"
	}
	result := scoring.CalculatePurityScore(scoring.ScoreInput{
		Ingredients:  []string{"water"},
		AdditiveTags: tags,
	})
	if result.Breakdown.AdditivesPenalty != 40 {
		t.Errorf("expected tag penalty capped at 40, got %d", result.Breakdown.AdditivesPenalty)
	}
}

func TestTextAdditiveCapConfigurable(t *testing.T) {
	ingredients := []string{
		"emulsifier a", "emulsifier b", "stabilizer c", "thickener d",
		"preservative e", "antioxidant f", "sweetener g",
	}

	def := scoring.CalculatePurityScore(scoring.ScoreInput{Ingredients: ingredients})
	if def.Breakdown.AdditivesPenalty != 30 {
		t.Errorf("expected default text cap 30, got %d", def.Breakdown.AdditivesPenalty)
	}

	legacy := scoring.PenaltyConfig{TagAdditiveCap: 40, TextAdditiveCap: 25}
	res := legacy.Calculate(scoring.ScoreInput{Ingredients: ingredients})
	if res.Breakdown.AdditivesPenalty != 25 {
		t.Errorf("expected legacy text cap 25, got %d", res.Breakdown.AdditivesPenalty)
	}
}

func TestAllergenTagsUncapped(t *testing.T) {
	tags := make([]string, 20)
	for i := range tags {
		tags[i] = "milk"
	}
	result := scoring.CalculatePurityScore(scoring.ScoreInput{
		Ingredients:  []string{"water"},
		AllergenTags: tags,
	})
	if result.Breakdown.AllergenPenalty != 60 {
		t.Errorf("expected allergen penalty 60 (3 per tag, uncapped), got %d", result.Breakdown.AllergenPenalty)
	}
}

func TestOrganicBonusAppliedLast(t *testing.T) {
	result := scoring.CalculatePurityScore(scoring.ScoreInput{
		Ingredients: []string{"organic canola oil"},
		NovaGroup:   3,
	})
	// 100 - 15 (seed oil) - 25 (nova 3) + 10 (clean) = 70, then +5 organic = 75
	if result.Score != 75 {
		t.Errorf("expected score 75, got %d", result.Score)
	}
	if result.Breakdown.OrganicBonus != 5 {
		t.Errorf("expected organic bonus 5, got %d", result.Breakdown.OrganicBonus)
	}
}

func TestOrganicBonusCanLiftAFlooredScore(t *testing.T) {
	result := scoring.CalculatePurityScore(scoring.ScoreInput{
		Ingredients: []string{
			"glyphosate", "chlorpyrifos", "malathion", "carbaryl",
			"atrazine", "organic filler",
		},
	})
	// Pesticides floor the score to 0 before the organic bonus lands.
	if result.Score != 5 {
		t.Errorf("expected score 5, got %d", result.Score)
	}
}

func TestENumbersResolvedForDisplay(t *testing.T) {
	result := scoring.CalculatePurityScore(scoring.ScoreInput{
		Ingredients: []string{"monosodium glutamate", "water"},
	})
	if len(result.ENumbers) != 1 {
		t.Fatalf("expected 1 resolved E-number, got %d", len(result.ENumbers))
	}
	e := result.ENumbers[0]
	if e.ENumber != "E621" || e.Safety != scoring.SafetyCaution {
		t.Errorf("unexpected E-number entry: %+v", e)
	}
}
