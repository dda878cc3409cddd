package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mdanilova/boutique/internal/config"
	"github.com/mdanilova/boutique/internal/es"
	"github.com/mdanilova/boutique/internal/events"
	"github.com/mdanilova/boutique/internal/handlers"
	"github.com/mdanilova/boutique/internal/logging"
	loggingmw "github.com/mdanilova/boutique/internal/middleware/logging"
	"github.com/mdanilova/boutique/internal/repo"
	"github.com/mdanilova/boutique/internal/service/cart"
	"github.com/mdanilova/boutique/internal/service/catalog"
	"github.com/mdanilova/boutique/internal/service/identity"
	"github.com/mdanilova/boutique/internal/session"
	httpserver "github.com/mdanilova/boutique/internal/transport/http"
	"github.com/mdanilova/boutique/internal/web"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, configuration)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var producer *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = events.NewProducer(configuration.KAFKA_ADDRESS)
	}

	var esClient *elasticsearch.Client
	if configuration.ES_URL != "" {
		esClient, err = es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal(err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	gormRepo := &repo.GormRepo{DB: db}
	sessions := &session.Manager{Secret: []byte(configuration.SESSION_SECRET)}

	deps := httpserver.Deps{
		Sessions: sessions,
		AuthHandler: &handlers.AuthHandler{
			Identity: &identity.Service{Repo: gormRepo},
			Sessions: sessions,
			Producer: producer,
		},
		CatalogHandler: &handlers.CatalogHandler{
			Catalog: &catalog.Service{Repo: gormRepo},
			ES:      esClient,
			Index:   "product",
		},
		CartHandler: &handlers.CartHandler{
			Cart:     &cart.Service{Repo: gormRepo},
			Producer: producer,
		},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.SERVER_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
