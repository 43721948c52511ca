package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/mark-blue-evans/purescan/config"
	"github.com/mark-blue-evans/purescan/models"
	"github.com/mark-blue-evans/purescan/scoring"
)

// ErrProductNotFound maps to a 404 at the API layer.
var ErrProductNotFound = errors.New("product not found")

const defaultAlertThreshold = 40

type ScanService struct {
	off *OpenFoodFactsService
}

func NewScanService(off *OpenFoodFactsService) *ScanService {
	return &ScanService{off: off}
}

// OriginInfo groups the provenance fields of the scanned product.
type OriginInfo struct {
	Country       string `json:"country,omitempty"`
	Manufacturing string `json:"manufacturing,omitempty"`
	Origins       string `json:"origins,omitempty"`
	Categories    string `json:"categories,omitempty"`
	Labels        string `json:"labels,omitempty"`
}

// ScanResponse is the full scan payload returned to the client.
type ScanResponse struct {
	Barcode           string                  `json:"barcode"`
	Name              string                  `json:"name"`
	Brand             string                  `json:"brand,omitempty"`
	Image             string                  `json:"image,omitempty"`
	Ingredients       []string                `json:"ingredients"`
	Nutriments        map[string]float64      `json:"nutriments,omitempty"`
	Score             int                     `json:"score"`
	ScoreLabel        string                  `json:"score_label"`
	ProcessingLevel   scoring.ProcessingLevel `json:"processing_level"`
	Breakdown         scoring.Breakdown       `json:"breakdown"`
	Risks             scoring.RiskSummary     `json:"risks"`
	ScoreFactors      scoring.Narrative       `json:"score_factors"`
	ENumbers          []scoring.ENumberEntry  `json:"e_numbers"`
	NutritionWarnings []scoring.Warning       `json:"nutrition_warnings"`
	Origin            OriginInfo              `json:"origin"`
}

// ScanBarcode looks the product up, scores it, records the scan in the
// user's history and fires a low-score alert when warranted. History and
// alert writes never fail the scan itself.
func (s *ScanService) ScanBarcode(userID uint, barcode string) (*ScanResponse, error) {
	product, err := s.off.LookupProduct(barcode)
	if err != nil {
		return nil, fmt.Errorf("product lookup failed: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	result := scoring.CalculatePurityScore(scoring.ScoreInput{
		Ingredients:  product.Ingredients,
		NovaGroup:    product.NovaGroup,
		AdditiveTags: product.AdditiveTags,
		AllergenTags: product.AllergenTags,
	})

	s.recordScan(userID, product, result)
	BroadcastEvent(userID, "scan.created", map[string]any{
		"barcode":          product.Barcode,
		"name":             product.Name,
		"score":            result.Score,
		"processing_level": result.ProcessingLevel,
	})
	s.maybeAlert(userID, product, result)

	return &ScanResponse{
		Barcode:           product.Barcode,
		Name:              product.Name,
		Brand:             product.Brand,
		Image:             product.ImageURL,
		Ingredients:       product.Ingredients,
		Nutriments:        product.Nutriments,
		Score:             result.Score,
		ScoreLabel:        scoring.ScoreLabel(result.Score),
		ProcessingLevel:   result.ProcessingLevel,
		Breakdown:         result.Breakdown,
		Risks:             result.Risks,
		ScoreFactors:      result.Narrative,
		ENumbers:          result.ENumbers,
		NutritionWarnings: scoring.AssessNutrition(product.Name, product.Nutriments),
		Origin: OriginInfo{
			Country:       product.CountryOfOrigin,
			Manufacturing: product.ManufacturingPlaces,
			Origins:       product.Origins,
			Categories:    product.Categories,
			Labels:        product.Labels,
		},
	}, nil
}

func (s *ScanService) recordScan(userID uint, product *Product, result scoring.ScoreResult) {
	if config.DB == nil {
		return
	}
	raw, _ := json.Marshal(product.Ingredients)
	rec := models.ScanRecord{
		UserID:          userID,
		Barcode:         product.Barcode,
		ProductName:     product.Name,
		PurityScore:     result.Score,
		ProcessingLevel: string(result.ProcessingLevel),
		Ingredients:     string(raw),
		ImageURL:        product.ImageURL,
	}
	if err := config.DB.Create(&rec).Error; err != nil {
		log.Printf("failed to save scan for user %d: %v", userID, err)
	}
}

func (s *ScanService) maybeAlert(userID uint, product *Product, result scoring.ScoreResult) {
	if config.DB == nil {
		return
	}
	threshold := defaultAlertThreshold
	var user models.User
	if err := config.DB.First(&user, userID).Error; err == nil && user.AlertThreshold > 0 {
		threshold = user.AlertThreshold
	}
	if result.Score >= threshold {
		return
	}
	EmitAlert(userID, "warning", fmt.Sprintf(
		"%s scored %d/100 (%s) - below your alert threshold of %d",
		product.Name, result.Score, scoring.ProcessingLevelLabel(result.ProcessingLevel), threshold,
	))
}
