package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/internal/application/usecase"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/kvstore"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/notify"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/postgres"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/seed"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/tracing"
	httpRouter "github.com/jhoicas/rocketshoes-cart/internal/interfaces/http"
	"github.com/jhoicas/rocketshoes-cart/pkg/config"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("catalog", cfg.Catalog.Source).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	shutdownTracing, err := tracing.Init(cfg.Trace.Enabled, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar trazas")
	}

	ctx := context.Background()

	// Catálogo: db.json en memoria o PostgreSQL sembrado desde el mismo db.json.
	catalog, seedErr := seed.LoadFile(cfg.Catalog.SeedPath)
	if seedErr != nil && cfg.Catalog.Source == "seed" {
		log.Fatal().Err(seedErr).Msg("cargar catálogo")
	}

	var (
		pool     *pgxpool.Pool
		products repository.ProductRepository = catalog
		stock    repository.StockRepository   = catalog
	)
	if cfg.Catalog.Source == "postgres" || cfg.Storage.Driver == "postgres" {
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
	}
	if cfg.Catalog.Source == "postgres" {
		if seedErr == nil {
			list, stockRows, err := seedRows(ctx, catalog)
			if err != nil {
				log.Fatal().Err(err).Msg("leer catálogo seed")
			}
			if err := postgres.SeedCatalog(ctx, pool, list, stockRows); err != nil {
				log.Fatal().Err(err).Msg("sembrar catálogo")
			}
			log.Info().Int("products", len(list)).Msg("catálogo sembrado")
		} else {
			log.Warn().Err(seedErr).Msg("sin db.json; se usa el catálogo existente en PostgreSQL")
		}
		products = postgres.NewProductRepository(pool)
		stock = postgres.NewStockRepository(pool)
	}

	kv, closeKV, err := kvstore.Open(ctx, cfg, pool, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir storage del carrito")
	}
	defer closeKV()

	store := cart.NewStore(cart.Deps{
		Products: products,
		Stock:    stock,
		Storage:  kv,
		Notifier: notify.New(log),
		Logger:   log,
		Key:      cfg.Storage.Key,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RocketShoes Cart API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: usecase.NewCatalogUseCase(products, stock),
		Cart:      store,
		Logger:    log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cerrar trazas")
	}

	log.Info().Msg("aplicación detenida")
}

// seedSource catálogo en memoria que se copia a PostgreSQL.
type seedSource interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Stock() []*entity.Stock
}

func seedRows(ctx context.Context, src seedSource) ([]*entity.Product, []*entity.Stock, error) {
	list, err := src.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listar productos: %w", err)
	}
	return list, src.Stock(), nil
}
