package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reminder-metrics-service/config"

	metricsHttp "reminder-metrics-service/internal/metrics/adapters/http/fiber"
	metricsUsecase "reminder-metrics-service/internal/metrics/core/usecase"

	remindersMongo "reminder-metrics-service/internal/reminders/adapters/mongo"
	remindersPg "reminder-metrics-service/internal/reminders/adapters/postgres"
	remindersSQLite "reminder-metrics-service/internal/reminders/adapters/sqlite"
	"reminder-metrics-service/internal/reminders/core/ports"
	remindersUsecase "reminder-metrics-service/internal/reminders/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "reminder-metrics-service/docs"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Reminder store, shared read-only across requests
	source, closeSource, err := openSource(cfg)
	if err != nil {
		log.Fatalf("failed to open %s reminder source: %v", cfg.Source, err)
	}
	defer closeSource()

	// Usecases
	fetchRemindersUC := remindersUsecase.NewFetchRemindersUseCase(source, cfg.SourceZone, cfg.QueryTimeout)
	getMetricsUC := metricsUsecase.NewGetMetricsUseCase(fetchRemindersUC, cfg.SourceZone)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          cfg.QueryTimeout + 5*time.Second,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n"}))
	app.Use(cors.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// metrics endpoints
	metricsHandler := metricsHttp.NewMetricsHandler(getMetricsUC)
	app.Get("/metrics", metricsHandler.GetMetrics)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s (source=%s)", cfg.HTTPAddr, cfg.Source)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}

func openSource(cfg *config.Config) (ports.ReminderSourcePort, func(), error) {
	switch cfg.Source {
	case config.SourceMongo:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.QueryTimeout)
		defer cancel()

		client, err := remindersMongo.Connect(ctx, cfg.MongoURI, cfg.QueryTimeout)
		if err != nil {
			return nil, nil, err
		}
		coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.Printf("mongo disconnect error: %v", err)
			}
		}
		return remindersMongo.NewReminderRepository(remindersMongo.NewCollection(coll)), closeFn, nil

	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}

		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return remindersPg.NewReminderRepository(remindersPg.NewSQLDB(db)), func() { _ = db.Close() }, nil

	case config.SourceSQLite:
		db, err := remindersSQLite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return remindersSQLite.NewReminderRepository(db), func() { _ = db.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unsupported source %q", cfg.Source)
}
