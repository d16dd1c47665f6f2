package geo_fx

import (
	"go.uber.org/fx"

	"smarttrip/internal/services"
)

var Module = fx.Provide(
	provideGeoService)

func provideGeoService() services.GeoServiceInterface {
	return services.NewGeoService()
}
