package catalog_fx

import (
	"go.uber.org/fx"

	"smarttrip/internal/services"
)

var Module = fx.Provide(
	provideCatalogService)

func provideCatalogService() services.CatalogServiceInterface {
	return services.NewCatalogService()
}
