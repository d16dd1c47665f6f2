package controllers_fx

import (
	"go.uber.org/fx"

	"smarttrip/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewShareController),
	fx.Provide(controllers.NewGeoController),
	fx.Provide(controllers.NewCatalogController))
