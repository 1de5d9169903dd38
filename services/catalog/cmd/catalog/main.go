package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dmarkin/webshop/internal/models"
	pkgdb "github.com/dmarkin/webshop/pkg/db"
	"github.com/dmarkin/webshop/pkg/events"
	"github.com/dmarkin/webshop/pkg/logging"
	loggingmw "github.com/dmarkin/webshop/pkg/middleware/logging"

	catalogcfg "github.com/dmarkin/webshop/services/catalog/internal/config"
	"github.com/dmarkin/webshop/services/catalog/internal/httpserver"
	"github.com/dmarkin/webshop/services/catalog/internal/repo"
	"github.com/dmarkin/webshop/services/catalog/internal/search"
	"github.com/dmarkin/webshop/services/catalog/internal/service"
)

func main() {
	if err := godotenv.Load("services/catalog/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := catalogcfg.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	svc := &service.CatalogService{
		Repo:    &repo.GormRepo{DB: db},
		ESIndex: cfg.ESIndex,
	}
	if cfg.ESURL != "" {
		es, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("es connect: %v", err)
		}
		svc.ES = es
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	handler := &httpserver.CatalogHTTP{Svc: svc, Producer: producer}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler: handler,
		JWTSecret:      cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("catalog listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("catalog stopped")
}
