package response_models

// GeoResult is one geocoded place. Found=false entries keep their query so
// the client can show what did not resolve.
type GeoResult struct {
	Query   string   `json:"query"`
	Found   bool     `json:"found"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
	Address string   `json:"address,omitempty"`
	Name    string   `json:"name,omitempty"`
	DayNum  int      `json:"dayNum,omitempty"`
	Order   int      `json:"order,omitempty"`
	Section string   `json:"section,omitempty"`
}

// GeoLookupResult mirrors what the map view consumes: per-place results and
// a city-centroid fallback when nothing resolved at all.
type GeoLookupResult struct {
	Provider string      `json:"provider"`
	Checked  int         `json:"checked"`
	NotFound int         `json:"notFound"`
	Results  []GeoResult `json:"results"`
	Fallback *GeoResult  `json:"fallback,omitempty"`
}
