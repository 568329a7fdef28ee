package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mrsetia1/flowmint/internal/application/auth"
	"github.com/mrsetia1/flowmint/internal/application/usecase"
	"github.com/mrsetia1/flowmint/internal/infrastructure/postgres"
	"github.com/mrsetia1/flowmint/internal/infrastructure/storage"
	httpRouter "github.com/mrsetia1/flowmint/internal/interfaces/http"
	"github.com/mrsetia1/flowmint/pkg/config"
	"github.com/mrsetia1/flowmint/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)

	var store usecase.ObjectStore
	switch cfg.Storage.Driver {
	case "s3":
		store, err = storage.NewS3Store(ctx, cfg.Storage)
	default:
		store, err = storage.NewLocalStore(cfg.Storage.UploadDir)
	}
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("upload storage")
	}
	log.Info().Str("driver", cfg.Storage.Driver).Msg("upload storage ready")

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL,
		Issuer: cfg.JWT.Issuer,
	})
	articleUC := usecase.NewArticleUseCase(articleRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	uploadUC := usecase.NewUploadUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FlowMint API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// With the local driver, uploads are served straight from disk.
	if cfg.Storage.Driver == "local" {
		app.Static("/uploads", cfg.Storage.UploadDir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ArticleUC:  articleUC,
		CategoryUC: categoryUC,
		UploadUC:   uploadUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
