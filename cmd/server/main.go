package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aerozone/config"
	"aerozone/db"
	"aerozone/db/mongo"
	"aerozone/db/postgres"
	"aerozone/handlers"
	"aerozone/ingest"
	"aerozone/logger"
	"aerozone/repository"
	"aerozone/routes"
	"aerozone/utils"
	"aerozone/views"
)

func main() {
	// Load config from .env or environment
	cfg := config.LoadConfig()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", "error", err)
	}

	var (
		store      db.DB
		orderRepo  repository.OrderLineRepository
		indentRepo repository.IndentLineRepository
	)

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			log.Fatal("postgres connect failed", "error", err)
		}
		defer pg.Disconnect()

		if err := db.RunMigrations(pg.Conn); err != nil {
			log.Fatal("migrations failed", "error", err)
		}

		store = pg
		orderRepo = repository.NewPostgresOrderRepo(pg.Conn)
		indentRepo = repository.NewPostgresIndentRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL, cfg.MongoDatabase)
		if err := mg.Connect(); err != nil {
			log.Fatal("mongo connect failed", "error", err)
		}
		defer mg.Disconnect()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := repository.EnsureMongoIndexes(ctx, mg.DB()); err != nil {
			log.Warn("index bootstrap failed", "error", err)
		}
		cancel()

		store = mg
		orderRepo = repository.NewMongoOrderRepo(mg.DB())
		indentRepo = repository.NewMongoIndentRepo(mg.DB())

	case db.Memory:
		log.Warn("using in-memory store, data is lost on restart")
		orderRepo = repository.NewMemoryOrderRepo()
		indentRepo = repository.NewMemoryIndentRepo()
	}

	ingestor := ingest.New(orderRepo, log.With("component", "ingest"))
	if cfg.R2.Enabled() {
		archive, err := utils.NewR2Archive(context.Background(), cfg.R2)
		if err != nil {
			log.Warn("upload archive disabled", "error", err)
		} else {
			ingestor.Archive = archive
		}
	}

	builder := views.NewBuilder(orderRepo, indentRepo, log.With("component", "views"))

	// Handlers
	h := routes.Handlers{
		Upload: &handlers.UploadHandler{
			Ingestor:       ingestor,
			MaxUploadBytes: int64(cfg.MaxUploadMB) << 20,
			Log:            log,
		},
		Views: &handlers.ViewHandler{Views: builder, Log: log},
		Report: &handlers.ReportHandler{
			Views:   builder,
			Render:  utils.GenerateRollupPDF,
			Timeout: time.Minute,
			Log:     log,
		},
		Health: &handlers.HealthHandler{DB: store, Log: log},
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(h, cfg.AllowedOrigins, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server running", "port", cfg.Port, "db", cfg.DBType)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
