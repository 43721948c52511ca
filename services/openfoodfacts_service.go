package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultOFFBaseURL = "https://world.openfoodfacts.org"

// OpenFoodFactsService talks to the public OpenFoodFacts product database.
type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

// NewOpenFoodFactsService initializes the client. OFF_BASE_URL overrides the
// public endpoint (used by tests).
func NewOpenFoodFactsService() *OpenFoodFactsService {
	base := os.Getenv("OFF_BASE_URL")
	if base == "" {
		base = defaultOFFBaseURL
	}
	return &OpenFoodFactsService{
		baseURL: base,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Product is the upstream product snapshot the scan flow consumes.
type Product struct {
	Barcode             string             `json:"barcode"`
	Name                string             `json:"name"`
	Brand               string             `json:"brand,omitempty"`
	ImageURL            string             `json:"image,omitempty"`
	Ingredients         []string           `json:"ingredients"`
	NovaGroup           int                `json:"nova_group,omitempty"`
	Nutriments          map[string]float64 `json:"nutriments,omitempty"`
	AdditiveTags        []string           `json:"additive_tags,omitempty"`
	AllergenTags        []string           `json:"allergen_tags,omitempty"`
	CountryOfOrigin     string             `json:"country_of_origin,omitempty"`
	ManufacturingPlaces string             `json:"manufacturing_places,omitempty"`
	Origins             string             `json:"origins,omitempty"`
	Categories          string             `json:"categories,omitempty"`
	Labels              string             `json:"labels,omitempty"`
}

type offProductResponse struct {
	Status  int `json:"status"`
	Product struct {
		Code            string `json:"code"`
		ProductName     string `json:"product_name"`
		ProductNameEN   string `json:"product_name_en"`
		Brands          string `json:"brands"`
		ImageURL        string `json:"image_url"`
		ImageFrontURL   string `json:"image_front_url"`
		IngredientsText string `json:"ingredients_text"`
		Ingredients     []struct {
			Text string `json:"text"`
			Name string `json:"name"`
		} `json:"ingredients"`
		NovaGroup           any            `json:"nova_group"`
		Nutriments          map[string]any `json:"nutriments"`
		AdditivesTags       []string       `json:"additives_tags"`
		AllergensTags       []string       `json:"allergens_tags"`
		CountriesTags       []string       `json:"countries_tags"`
		Origin              string         `json:"origin"`
		Origins             string         `json:"origins"`
		OriginsTags         []string       `json:"origins_tags"`
		ManufacturingPlaces string         `json:"manufacturing_places"`
		CategoriesTags      []string       `json:"categories_tags"`
		Categories          string         `json:"categories"`
		LabelsTags          []string       `json:"labels_tags"`
		Labels              string         `json:"labels"`
	} `json:"product"`
}

// LookupProduct fetches one product by barcode. Returns (nil, nil) when the
// barcode is unknown to OpenFoodFacts.
func (s *OpenFoodFactsService) LookupProduct(barcode string) (*Product, error) {
	u := fmt.Sprintf("%s/api/v2/product/%s.json", s.baseURL, url.PathEscape(barcode))

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenFoodFacts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenFoodFacts response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts API error %d: %s", resp.StatusCode, string(body))
	}

	var pr offProductResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse OpenFoodFacts JSON: %w", err)
	}
	if pr.Status != 1 {
		return nil, nil
	}

	p := pr.Product

	name := p.ProductName
	if name == "" {
		name = p.ProductNameEN
	}
	if name == "" {
		name = "Unknown Product"
	}

	image := p.ImageURL
	if image == "" {
		image = p.ImageFrontURL
	}

	ingredients := splitIngredientsText(p.IngredientsText)
	if len(ingredients) == 0 {
		for _, ing := range p.Ingredients {
			if ing.Text != "" {
				ingredients = append(ingredients, ing.Text)
			} else if ing.Name != "" {
				ingredients = append(ingredients, ing.Name)
			}
		}
	}

	code := p.Code
	if code == "" {
		code = barcode
	}

	country := ""
	if len(p.CountriesTags) > 0 {
		country = stripLangPrefix(p.CountriesTags[0])
	} else if p.Origin != "" {
		country = p.Origin
	}

	origins := p.Origins
	if origins == "" && len(p.OriginsTags) > 0 {
		origins = stripLangPrefix(p.OriginsTags[0])
	}

	return &Product{
		Barcode:             code,
		Name:                name,
		Brand:               p.Brands,
		ImageURL:            image,
		Ingredients:         ingredients,
		NovaGroup:           coerceInt(p.NovaGroup),
		Nutriments:          numericValues(p.Nutriments),
		AdditiveTags:        stripLangPrefixes(p.AdditivesTags),
		AllergenTags:        stripLangPrefixes(p.AllergensTags),
		CountryOfOrigin:     country,
		ManufacturingPlaces: p.ManufacturingPlaces,
		Origins:             origins,
		Categories:          joinTags(p.CategoriesTags, p.Categories),
		Labels:              joinTags(p.LabelsTags, p.Labels),
	}, nil
}

type offSearchResponse struct {
	Products []struct {
		Code               string `json:"code"`
		ProductName        string `json:"product_name"`
		ProductNameEN      string `json:"product_name_en"`
		Brands             string `json:"brands"`
		ImageSmallURL      string `json:"image_small_url"`
		ImageFrontSmallURL string `json:"image_front_small_url"`
	} `json:"products"`
}

// SearchProducts runs a free-text product search, returning up to 10
// lightweight results.
func (s *OpenFoodFactsService) SearchProducts(query string) ([]Product, error) {
	u := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=10",
		s.baseURL, url.QueryEscape(query),
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenFoodFacts search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts search API error %d: %s", resp.StatusCode, string(body))
	}

	var sr offSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse search JSON: %w", err)
	}

	results := make([]Product, 0, len(sr.Products))
	for _, p := range sr.Products {
		name := p.ProductName
		if name == "" {
			name = p.ProductNameEN
		}
		if name == "" {
			continue
		}
		image := p.ImageSmallURL
		if image == "" {
			image = p.ImageFrontSmallURL
		}
		results = append(results, Product{
			Barcode:  p.Code,
			Name:     name,
			Brand:    p.Brands,
			ImageURL: image,
		})
	}
	return results, nil
}

// splitIngredientsText breaks the free-text declaration on commas and
// semicolons, trimming empties.
func splitIngredientsText(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// coerceInt handles nova_group arriving as a JSON number or string.
func coerceInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}

// numericValues keeps only float entries; OFF nutriment maps mix numbers
// with unit strings.
func numericValues(m map[string]any) map[string]float64 {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		if f, ok := v.(float64); ok {
			out[k] = f
		}
	}
	return out
}

func stripLangPrefix(tag string) string {
	if i := strings.Index(tag, ":"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

func stripLangPrefixes(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, stripLangPrefix(t))
	}
	return out
}

func joinTags(tags []string, fallback string) string {
	if len(tags) == 0 {
		return fallback
	}
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		clean = append(clean, stripLangPrefix(t))
	}
	return strings.Join(clean, ", ")
}
