package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"backend/models"
)

// OpenFoodFactsService resolves food names and barcodes to per-100g
// nutrient profiles, which is exactly the shape the entry form (and the
// totals calculator behind it) wants.
type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

func NewOpenFoodFactsService() *OpenFoodFactsService {
	return &OpenFoodFactsService{
		baseURL: "https://world.openfoodfacts.org",
		client:  &http.Client{Timeout: 12 * time.Second},
	}
}

// FoodLookup is one catalog hit with its per-100 profile prefilled.
type FoodLookup struct {
	Name    string                 `json:"name"`
	Brand   string                 `json:"brand,omitempty"`
	Barcode string                 `json:"barcode,omitempty"`
	Profile models.NutrientProfile `json:"nutrient_profile"`
}

// Pointer fields so a label that omits a nutrient stays distinguishable
// from a reported zero.
type offNutriments struct {
	EnergyKcal100g *float64 `json:"energy-kcal_100g"`
	Proteins100g   *float64 `json:"proteins_100g"`
	Fat100g        *float64 `json:"fat_100g"`
	Carbs100g      *float64 `json:"carbohydrates_100g"`
	Fiber100g      *float64 `json:"fiber_100g"`
	Sugars100g     *float64 `json:"sugars_100g"`
	Sodium100g     *float64 `json:"sodium_100g"` // grams; converted to mg below
}

type offProduct struct {
	Code        string        `json:"code"`
	ProductName string        `json:"product_name"`
	Brands      string        `json:"brands"`
	Nutriments  offNutriments `json:"nutriments"`
}

func (n offNutriments) toProfile() models.NutrientProfile {
	val := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}
	p := models.NutrientProfile{
		CaloriesPer100: val(n.EnergyKcal100g),
		ProteinPer100:  val(n.Proteins100g),
		FatPer100:      val(n.Fat100g),
		CarbsPer100:    val(n.Carbs100g),
		FiberPer100:    n.Fiber100g,
		SugarPer100:    n.Sugars100g,
	}
	if n.Sodium100g != nil {
		mg := *n.Sodium100g * 1000
		p.SodiumPer100 = &mg
	}
	return p
}

// SearchFoods calls the Open Food Facts text search endpoint.
func (s *OpenFoodFactsService) SearchFoods(query string) ([]FoodLookup, error) {
	u := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=10",
		s.baseURL, url.QueryEscape(query),
	)

	body, err := s.get(u)
	if err != nil {
		return nil, err
	}

	var sr struct {
		Products []offProduct `json:"products"`
	}
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse search JSON: %w", err)
	}

	results := make([]FoodLookup, 0, len(sr.Products))
	for _, p := range sr.Products {
		if strings.TrimSpace(p.ProductName) == "" {
			continue
		}
		results = append(results, FoodLookup{
			Name:    strings.TrimSpace(p.ProductName),
			Brand:   strings.TrimSpace(p.Brands),
			Barcode: p.Code,
			Profile: p.Nutriments.toProfile(),
		})
	}
	return results, nil
}

// LookupBarcode fetches one product by barcode.
func (s *OpenFoodFactsService) LookupBarcode(code string) (*FoodLookup, error) {
	u := fmt.Sprintf("%s/api/v2/product/%s.json", s.baseURL, url.PathEscape(code))

	body, err := s.get(u)
	if err != nil {
		return nil, err
	}

	var pr struct {
		Status  int        `json:"status"`
		Product offProduct `json:"product"`
	}
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse product JSON: %w", err)
	}
	if pr.Status != 1 || strings.TrimSpace(pr.Product.ProductName) == "" {
		// OFF reports unknown barcodes with status 0, not an HTTP error
		return nil, nil
	}

	return &FoodLookup{
		Name:    strings.TrimSpace(pr.Product.ProductName),
		Brand:   strings.TrimSpace(pr.Product.Brands),
		Barcode: pr.Product.Code,
		Profile: pr.Product.Nutriments.toProfile(),
	}, nil
}

func (s *OpenFoodFactsService) get(u string) ([]byte, error) {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "dailyfoodtracker-backend/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Open Food Facts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Open Food Facts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open food facts API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
