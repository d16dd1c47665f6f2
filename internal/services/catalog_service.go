package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"smarttrip/internal/models/response_models"
	"smarttrip/pkg/utils"
)

var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

type CatalogServiceInterface interface {
	ListCountries() ([]response_models.CatalogCountry, error)
	ListCities(countryCode string) ([]response_models.CatalogCity, error)
}

// catalogService serves the country and city pickers from JSON files under
// DATA_DIR. Files are read once and cached for the process lifetime; the
// dataset only changes on deploy.
type catalogService struct {
	dataDir string

	mu        sync.Mutex
	countries []response_models.CatalogCountry
	cities    map[string][]response_models.CatalogCity
}

func NewCatalogService() CatalogServiceInterface {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	return &catalogService{
		dataDir: dir,
		cities:  make(map[string][]response_models.CatalogCity),
	}
}

func (s *catalogService) ListCountries() ([]response_models.CatalogCountry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.countries != nil {
		return s.countries, nil
	}

	raw, err := os.ReadFile(filepath.Join(s.dataDir, "countries.json"))
	if err != nil {
		return nil, fmt.Errorf("%w: reading countries: %v", utils.ErrDatabaseError, err)
	}
	var countries []response_models.CatalogCountry
	if err := json.Unmarshal(raw, &countries); err != nil {
		return nil, fmt.Errorf("%w: parsing countries: %v", utils.ErrDatabaseError, err)
	}

	s.countries = countries
	return countries, nil
}

// ListCities returns an empty list for unknown countries rather than an
// error; an empty picker is the desired UI outcome.
func (s *catalogService) ListCities(countryCode string) ([]response_models.CatalogCity, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if !countryCodeRe.MatchString(code) {
		return nil, fmt.Errorf("%w: country code must be two letters", utils.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cities[code]; ok {
		return cached, nil
	}

	raw, err := os.ReadFile(filepath.Join(s.dataDir, "cities", code+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			s.cities[code] = []response_models.CatalogCity{}
			return s.cities[code], nil
		}
		return nil, fmt.Errorf("%w: reading cities: %v", utils.ErrDatabaseError, err)
	}
	var cities []response_models.CatalogCity
	if err := json.Unmarshal(raw, &cities); err != nil {
		return nil, fmt.Errorf("%w: parsing cities: %v", utils.ErrDatabaseError, err)
	}

	s.cities[code] = cities
	return cities, nil
}
