package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"smarttrip/cmd/fx/catalog_fx"
	"smarttrip/cmd/fx/controllers_fx"
	"smarttrip/cmd/fx/db_fx"
	"smarttrip/cmd/fx/geo_fx"
	"smarttrip/cmd/fx/planner_fx"
	"smarttrip/cmd/fx/share_fx"
	"smarttrip/internal/api/controllers"
	"smarttrip/internal/services"
	"smarttrip/pkg/middleware"
	"smarttrip/pkg/ratelimit"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		planner_fx.Module,
		share_fx.Module,
		geo_fx.Module,
		catalog_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(StartSharePurge),
		fx.Invoke(StartLimiterSweep),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

// StartSharePurge hard-deletes expired shares hourly.
func StartSharePurge(lc fx.Lifecycle, shareService services.ShareServiceInterface) {
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(time.Hour)
				defer ticker.Stop()
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						n, err := shareService.PurgeExpired(context.Background())
						if err != nil {
							log.Printf("Share purge failed: %v", err)
						} else if n > 0 {
							log.Printf("Purged %d expired shares", n)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}

// StartLimiterSweep drops idle rate-limit buckets hourly.
func StartLimiterSweep(lc fx.Lifecycle, limiters []*ratelimit.Limiter) {
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(time.Hour)
				defer ticker.Stop()
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						for _, l := range limiters {
							l.Sweep()
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	shareController *controllers.ShareController,
	geoController *controllers.GeoController,
	catalogController *controllers.CatalogController) (*gin.Engine, []*ratelimit.Limiter) {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	limiters := RegisterRoutes(r, planController, shareController, geoController, catalogController)

	return r, limiters
}

// RegisterRoutes wires the API surface and returns the per-route limiters
// for the periodic sweep.
func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	shareController *controllers.ShareController,
	geoController *controllers.GeoController,
	catalogController *controllers.CatalogController) []*ratelimit.Limiter {

	api := r.Group("/api")

	var limiters []*ratelimit.Limiter
	perMinute := func(limit int) gin.HandlerFunc {
		l := ratelimit.NewLimiter(limit, time.Minute)
		limiters = append(limiters, l)
		return middleware.RateLimit(l)
	}

	regenerateLimit := perMinute(8)

	api.POST("/generate", perMinute(5), planController.GenerateItinerary)
	api.POST("/generate-structured", perMinute(5), planController.GenerateStructured)
	api.POST("/regenerate-day", regenerateLimit, planController.RegenerateDay)
	api.POST("/regenerate-section", regenerateLimit, planController.RegenerateSection)

	api.POST("/share", perMinute(10), shareController.CreateShare)
	api.GET("/share/:id", perMinute(60), shareController.GetShare)
	api.DELETE("/share/:id", perMinute(20), shareController.DeleteShare)

	api.POST("/geo/lookup", perMinute(30), geoController.LookupPlaces)

	api.GET("/countries", catalogController.ListCountries)
	api.GET("/cities", catalogController.ListCities)

	return limiters
}
