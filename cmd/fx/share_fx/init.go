package share_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"smarttrip/internal/repositories"
	"smarttrip/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideShareService)

func provideItineraryRepo(db *gorm.DB) repositories.IItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideShareService(repo repositories.IItineraryRepository) services.ShareServiceInterface {
	return services.NewShareService(repo)
}
