package services

import "fmt"

// FoodService glues the image recognizer to the catalog lookup so the
// mobile entry form can turn a photo into a name suggestion with a
// per-100 profile attached.
type FoodService struct {
    off *OpenFoodFactsService
    rek *RekognitionService
}

func NewFoodService(off *OpenFoodFactsService, rek *RekognitionService) *FoodService {
    return &FoodService{off: off, rek: rek}
}

// Search manually
func (s *FoodService) Search(query string) ([]FoodLookup, error) {
    return s.off.SearchFoods(query)
}

// Barcode scan
func (s *FoodService) Barcode(code string) (*FoodLookup, error) {
    return s.off.LookupBarcode(code)
}

// Recognize labels the image and searches the catalog with the top label.
func (s *FoodService) Recognize(base64Img string) ([]FoodLookup, error) {
    labels, err := s.rek.RecognizeLabels(base64Img)
    if err != nil {
        return nil, err
    }
    if len(labels) == 0 {
        return nil, fmt.Errorf("no labels detected")
    }
    return s.off.SearchFoods(labels[0])
}
