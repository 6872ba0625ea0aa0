package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"masalog-backend/config"
	_ "masalog-backend/docs" // Generated by swag
	"masalog-backend/internal/client"
	"masalog-backend/internal/controller"
	"masalog-backend/internal/middleware"
	"masalog-backend/internal/parser"
	"masalog-backend/internal/scheduler"
	"masalog-backend/internal/service"
	"masalog-backend/internal/store"
)

// @title           Masalog Viewer API
// @version         1.0
// @description     Backend for inspecting remote "POST Request Details" logs: one-shot fetch, structured extraction, per-field filtering, time bounds, sorting, pagination and Excel export.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @tag.name         logs
// @tag.description  Fetching and paging through extracted log records

// @tag.name         filters
// @tag.description  Per-field filter conditions

// @tag.name         view
// @tag.description  Sort order and time bounds of the current view

// @tag.name         export
// @tag.description  Excel export of the filtered records

func main() {
	app := fx.New(
		// Core Dependencies
		fx.Provide(
			NewConfig,
			NewGinEngine,
			NewLocation,
			NewRecordExtractor,
		),
		// Infrastructure Dependencies
		fx.Provide(
			store.NewResultStore,
			client.NewLogAPIClient,
			service.NewFetchService,
			service.NewLogViewService,
			service.NewExportService,
			controller.NewLogController,
			controller.NewFilterController,
			controller.NewExportController,
		),
		fx.Invoke(
			RegisterAPIRoutes,
			RegisterScheduler,
		),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second) // Timeout for startup
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
	<-app.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second) // Timeout for graceful shutdown
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
	}
}

func NewConfig() (*config.Config, error) {
	return config.NewConfig()
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewLocation loads the viewer timezone; canonical timestamps are rendered
// in it. Falls back to fixed UTC+8 when the zone database is unavailable.
func NewLocation(cfg *config.Config) *time.Location {
	loc, err := time.LoadLocation(cfg.Viewer.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.Viewer.Timezone).Msg("Failed to load timezone, falling back to fixed UTC+8")
		return time.FixedZone("UTC+8", 8*60*60)
	}
	return loc
}

func NewRecordExtractor(loc *time.Location) *parser.Extractor {
	return parser.NewExtractor(loc, parser.WithRawOTD(true))
}

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	logController *controller.LogController,
	filterController *controller.FilterController,
	exportController *controller.ExportController,
) {
	controller.RegisterLogRoutes(router, logController)
	controller.RegisterFilterRoutes(router, filterController)
	controller.RegisterExportRoutes(router, exportController)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Starting HTTP server on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}

func RegisterScheduler(lc fx.Lifecycle, cfg *config.Config) {
	scheduler.NewScheduler(lc, cfg)
}
