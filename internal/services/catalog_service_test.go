package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"smarttrip/pkg/utils"
)

func writeCatalogFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	countries := `[{"code":"JP","name":"Japan","nameKo":"일본"},{"code":"FR","name":"France","nameKo":"프랑스"}]`
	if err := os.WriteFile(filepath.Join(dir, "countries.json"), []byte(countries), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "cities"), 0o755); err != nil {
		t.Fatal(err)
	}
	cities := `[{"name":"Osaka","nameKo":"오사카","lat":34.6937,"lon":135.5023}]`
	if err := os.WriteFile(filepath.Join(dir, "cities", "JP.json"), []byte(cities), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestCatalogListCountries(t *testing.T) {
	t.Setenv("DATA_DIR", writeCatalogFixture(t))
	svc := NewCatalogService()

	countries, err := svc.ListCountries()
	if err != nil {
		t.Fatalf("ListCountries: %v", err)
	}
	if len(countries) != 2 || countries[0].Code != "JP" || countries[0].NameKo != "일본" {
		t.Errorf("countries = %+v", countries)
	}
}

func TestCatalogListCities(t *testing.T) {
	t.Setenv("DATA_DIR", writeCatalogFixture(t))
	svc := NewCatalogService()

	cities, err := svc.ListCities("jp")
	if err != nil {
		t.Fatalf("ListCities: %v", err)
	}
	if len(cities) != 1 || cities[0].NameKo != "오사카" || cities[0].Lat != 34.6937 {
		t.Errorf("cities = %+v", cities)
	}

	// Unknown country yields an empty list, not an error.
	empty, err := svc.ListCities("FR")
	if err != nil {
		t.Fatalf("ListCities(FR): %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("cities for country without a file = %+v", empty)
	}
}

func TestCatalogListCitiesBadCode(t *testing.T) {
	t.Setenv("DATA_DIR", writeCatalogFixture(t))
	svc := NewCatalogService()

	for _, code := range []string{"", "J", "JPN", "12"} {
		if _, err := svc.ListCities(code); !errors.Is(err, utils.ErrInvalidInput) {
			t.Errorf("ListCities(%q) err = %v, want ErrInvalidInput", code, err)
		}
	}
}
