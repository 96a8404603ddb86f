package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/panaderia-api/docs"
	"github.com/jhoicas/panaderia-api/internal/application/inventory"
	"github.com/jhoicas/panaderia-api/internal/application/production"
	"github.com/jhoicas/panaderia-api/internal/application/sales"
	"github.com/jhoicas/panaderia-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/panaderia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/panaderia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/panaderia-api/internal/interfaces/http"
	"github.com/jhoicas/panaderia-api/pkg/config"
	"github.com/jhoicas/panaderia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repos := postgres.NewRepos(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de trazabilidad: opcional, sin REDIS_ADDR se consulta siempre la base.
	var traceCache production.TraceCache
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, trazas sin caché")
		} else {
			traceCache = cache.NewTraceCache(rdb, time.Duration(cfg.Redis.TraceTTLMinutes)*time.Minute)
		}
	}

	ledger := inventory.NewMovementLedger()
	registry := inventory.NewLotRegistry(ledger)

	productionEngine := production.NewEngine(repos, txRunner, ledger, registry, traceCache, log.Component("produccion"))
	salesEngine := sales.NewEngine(repos, txRunner, ledger, infrapdf.NewMarotoPDFGenerator(cfg.App.Name), log.Component("ventas"))
	receiptUC := inventory.NewReceiptUseCase(txRunner, registry, log.Component("ingresos"))
	kardexUC := inventory.NewKardexUseCase(repos, registry)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Panadería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Production: productionEngine,
		Sales:      salesEngine,
		Receipts:   receiptUC,
		Kardex:     kardexUC,
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

	log.Info().Msg("aplicación detenida")
}
