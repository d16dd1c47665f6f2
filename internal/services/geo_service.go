package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"smarttrip/internal/itinerary"
	"smarttrip/internal/models/request_models"
	"smarttrip/internal/models/response_models"
	"smarttrip/pkg/memcache"
	"smarttrip/pkg/utils"
)

const (
	googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"
	nominatimURL     = "https://nominatim.openstreetmap.org/search"
	geoUserAgent     = "smarttrip/1.0"

	maxLookupsPerRequest = 20
	geoCacheTTL          = 24 * time.Hour
	geoCacheMaxEntries   = 10_000
)

type GeoServiceInterface interface {
	LookupPlaces(ctx context.Context, req request_models.GeoLookupRequest) (*response_models.GeoLookupResult, error)
}

type geoService struct {
	httpClient *http.Client
	cache      *memcache.LookupCache[response_models.GeoResult]
	googleKey  string
}

func NewGeoService() GeoServiceInterface {
	return &geoService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      memcache.NewLookupCache[response_models.GeoResult](geoCacheTTL, geoCacheMaxEntries),
		googleKey:  strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY")),
	}
}

func buildGeoQuery(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func (g *geoService) tryGoogle(ctx context.Context, q string) *response_models.GeoResult {
	if g.googleKey == "" {
		return nil
	}
	u, _ := url.Parse(googleGeocodeURL)
	params := u.Query()
	params.Set("address", q)
	params.Set("key", g.googleKey)
	params.Set("language", "ko")
	params.Set("region", "kr")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
			Geometry         struct {
				Location struct {
					Lat *float64 `json:"lat"`
					Lng *float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}
	if payload.Status != "OK" || len(payload.Results) == 0 {
		return nil
	}
	loc := payload.Results[0].Geometry.Location
	if loc.Lat == nil || loc.Lng == nil {
		return nil
	}
	return &response_models.GeoResult{
		Query:   q,
		Found:   true,
		Lat:     loc.Lat,
		Lon:     loc.Lng,
		Address: payload.Results[0].FormattedAddress,
	}
}

func (g *geoService) tryNominatim(ctx context.Context, q string) *response_models.GeoResult {
	u, _ := url.Parse(nominatimURL)
	params := u.Query()
	params.Set("q", q)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	params.Set("addressdetails", "0")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", geoUserAgent)
	req.Header.Set("Accept-Language", "ko,en")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var payload []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || len(payload) == 0 {
		return nil
	}

	lat, latErr := strconv.ParseFloat(payload[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(payload[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return nil
	}
	return &response_models.GeoResult{
		Query:   q,
		Found:   true,
		Lat:     &lat,
		Lon:     &lon,
		Address: payload[0].DisplayName,
	}
}

// resolve walks the provider chain: Google with the full query, Google with
// the bare name, then Nominatim the same way.
func (g *geoService) resolve(ctx context.Context, query, name string) *response_models.GeoResult {
	if r := g.tryGoogle(ctx, query); r != nil {
		return r
	}
	if name != query {
		if r := g.tryGoogle(ctx, name); r != nil {
			return r
		}
	}
	if r := g.tryNominatim(ctx, query); r != nil {
		return r
	}
	if name != query {
		if r := g.tryNominatim(ctx, name); r != nil {
			return r
		}
	}
	return nil
}

func (g *geoService) provider() string {
	if g.googleKey != "" {
		return "google"
	}
	return "nominatim"
}

func (g *geoService) LookupPlaces(ctx context.Context, req request_models.GeoLookupRequest) (*response_models.GeoLookupResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	candidates := itinerary.ExtractPlaceCandidatesWithMeta(req.Markdown)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no place names in document", utils.ErrInvalidInput)
	}
	if len(candidates) > maxLookupsPerRequest {
		candidates = candidates[:maxLookupsPerRequest]
	}

	city := strings.TrimSpace(req.City)
	country := strings.TrimSpace(req.Country)

	out := &response_models.GeoLookupResult{Provider: g.provider()}
	for _, c := range candidates {
		query := buildGeoQuery(c.Name, city, country)
		cacheKey := strings.ToLower(query)

		var result response_models.GeoResult
		if cached, ok := g.cache.Get(cacheKey); ok {
			result = cached
		} else {
			if r := g.resolve(ctx, query, c.Name); r != nil {
				result = *r
			} else {
				result = response_models.GeoResult{Query: c.Name, Found: false}
			}
			g.cache.Set(cacheKey, result)
		}

		result.Name = c.Name
		result.DayNum = c.DayNum
		result.Order = c.Order
		result.Section = c.Section
		out.Results = append(out.Results, result)
		if !result.Found {
			out.NotFound++
		}
	}
	out.Checked = len(out.Results)

	// When nothing resolved, fall back to the city centroid so the map can
	// at least open in the right place.
	if out.NotFound == out.Checked {
		if req.CityLat != nil && req.CityLon != nil {
			out.Fallback = &response_models.GeoResult{
				Query: city, Found: true,
				Lat: req.CityLat, Lon: req.CityLon,
			}
		} else if cityQuery := buildGeoQuery(city, country); cityQuery != "" {
			if r := g.resolve(ctx, cityQuery, cityQuery); r != nil {
				r.Query = cityQuery
				out.Fallback = r
			}
		}
	}

	return out, nil
}
