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

	cartcfg "github.com/dmarkin/webshop/services/cart/internal/config"
	"github.com/dmarkin/webshop/services/cart/internal/httpserver"
	"github.com/dmarkin/webshop/services/cart/internal/repo"
	"github.com/dmarkin/webshop/services/cart/internal/service"
)

func main() {
	if err := godotenv.Load("services/cart/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := cartcfg.Load()

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

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	handler := &httpserver.CartHTTP{
		Svc:      &service.CartService{Repo: &repo.GormRepo{DB: db}},
		Producer: producer,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{CartHandler: handler})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("cart listening on %s", srv.Addr)
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

	log.Println("cart stopped")
}
