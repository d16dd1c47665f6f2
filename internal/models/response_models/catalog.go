package response_models

// CatalogCountry is one selectable destination country.
type CatalogCountry struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	NameKo string `json:"nameKo,omitempty"`
}

// CatalogCity is one selectable city with its centroid, used both for the
// picker UI and as the geocoding fallback coordinate.
type CatalogCity struct {
	Name   string  `json:"name"`
	NameKo string  `json:"nameKo,omitempty"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}
