package services

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

const productFixture = `{
	"status": 1,
	"product": {
		"code": "737628064502",
		"product_name": "Instant Noodles",
		"brands": "TestBrand",
		"image_url": "https://images.example/front.jpg",
		"ingredients_text": "Water, Organic Palm Oil; Sugar",
		"nova_group": "4",
		"nutriments": {"sugars_100g": 23, "sugars_unit": "g", "salt_100g": 0.2},
		"additives_tags": ["en:e621"],
		"allergens_tags": ["en:milk"],
		"countries_tags": ["en:united-states"],
		"manufacturing_places": "Bangkok",
		"origins": "Thailand",
		"categories_tags": ["en:noodles", "en:instant-noodles"],
		"labels": "Vegan"
	}
}`

func newOFFTestService(t *testing.T, handler http.HandlerFunc) *OpenFoodFactsService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("OFF_BASE_URL", srv.URL)
	return NewOpenFoodFactsService()
}

func TestLookupProductParsesResponse(t *testing.T) {
	svc := newOFFTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/v2/product/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(productFixture))
	})

	p, err := svc.LookupProduct("737628064502")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if p == nil {
		t.Fatal("expected a product")
	}

	if p.Barcode != "737628064502" || p.Name != "Instant Noodles" || p.Brand != "TestBrand" {
		t.Errorf("unexpected identity fields: %+v", p)
	}
	wantIngredients := []string{"Water", "Organic Palm Oil", "Sugar"}
	if !reflect.DeepEqual(p.Ingredients, wantIngredients) {
		t.Errorf("ingredients = %v, want %v", p.Ingredients, wantIngredients)
	}
	if p.NovaGroup != 4 {
		t.Errorf("nova_group string should coerce to 4, got %d", p.NovaGroup)
	}
	if !reflect.DeepEqual(p.AdditiveTags, []string{"e621"}) {
		t.Errorf("additive tags = %v", p.AdditiveTags)
	}
	if !reflect.DeepEqual(p.AllergenTags, []string{"milk"}) {
		t.Errorf("allergen tags = %v", p.AllergenTags)
	}
	// Unit strings must be filtered out of the nutriment map.
	want := map[string]float64{"sugars_100g": 23, "salt_100g": 0.2}
	if !reflect.DeepEqual(p.Nutriments, want) {
		t.Errorf("nutriments = %v, want %v", p.Nutriments, want)
	}
	if p.CountryOfOrigin != "united-states" {
		t.Errorf("country = %q", p.CountryOfOrigin)
	}
	if p.Categories != "noodles, instant-noodles" {
		t.Errorf("categories = %q", p.Categories)
	}
	if p.Labels != "Vegan" {
		t.Errorf("labels = %q", p.Labels)
	}
}

func TestLookupProductUnknownBarcode(t *testing.T) {
	svc := newOFFTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0}`))
	})

	p, err := svc.LookupProduct("000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil product for status 0, got %+v", p)
	}
}

func TestLookupProduct404(t *testing.T) {
	svc := newOFFTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	p, err := svc.LookupProduct("000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil product on 404, got %+v", p)
	}
}

func TestLookupProductServerError(t *testing.T) {
	svc := newOFFTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := svc.LookupProduct("000"); err == nil {
		t.Error("expected an error on 500")
	}
}

func TestSearchProductsSkipsNameless(t *testing.T) {
	svc := newOFFTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search_terms"); got != "oat milk" {
			t.Errorf("search_terms = %q", got)
		}
		w.Write([]byte(`{"products": [
			{"code": "1", "product_name": "Oat Drink", "brands": "A", "image_small_url": "https://img/1.jpg"},
			{"code": "2", "product_name": ""},
			{"code": "3", "product_name_en": "Oat Milk Barista"}
		]}`))
	})

	results, err := svc.SearchProducts("oat milk")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %+v", len(results), results)
	}
	if results[0].Name != "Oat Drink" || results[1].Name != "Oat Milk Barista" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestSplitIngredientsText(t *testing.T) {
	got := splitIngredientsText("water,  salt ;; yeast, ")
	want := []string{"water", "salt", "yeast"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("split = %v, want %v", got, want)
	}
	if splitIngredientsText("") != nil {
		t.Error("empty text must yield nil")
	}
}

func TestCoerceInt(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{float64(4), 4},
		{"3", 3},
		{" 2 ", 2},
		{"not a number", 0},
		{nil, 0},
	}
	for _, c := range cases {
		if got := coerceInt(c.in); got != c.want {
			t.Errorf("coerceInt(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestStripLangPrefix(t *testing.T) {
	if got := stripLangPrefix("en:e621"); got != "e621" {
		t.Errorf("stripLangPrefix = %q", got)
	}
	if got := stripLangPrefix("plain"); got != "plain" {
		t.Errorf("no-prefix passthrough = %q", got)
	}
}
