package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/PrinceMakavana/restaurant-order-management-system/broadcast"
	"github.com/PrinceMakavana/restaurant-order-management-system/catalog"
	"github.com/PrinceMakavana/restaurant-order-management-system/config"
	"github.com/PrinceMakavana/restaurant-order-management-system/database"
	"github.com/PrinceMakavana/restaurant-order-management-system/handlers"
	"github.com/PrinceMakavana/restaurant-order-management-system/server"
	"github.com/PrinceMakavana/restaurant-order-management-system/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Panicf("failed to load configuration, error: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	if err := database.ConnectAndMigrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := catalog.NewStore(cfg.DatabaseURL)
	go func() {
		if err := store.Run(ctx); err != nil {
			logrus.WithError(err).Error("catalog listener stopped")
		}
	}()

	hub := broadcast.NewHub()
	go hub.Run(ctx)

	objects, err := storage.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		logrus.Panicf("failed to initialize object storage, error: %v", err)
	}

	h := &handlers.Handler{
		Catalog: store,
		Objects: objects,
		Log:     logrus.WithField("component", "handlers"),
	}
	svr := server.SetupRoutes(h, hub, objects.Dir())

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.WithField("port", cfg.Port).Info("server listening")
		if err := svr.Run(cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Panic("server stopped unexpectedly")
		}
	}()

	<-done

	logrus.Info("shutting down...")
	cancel()
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("failed to shut down server cleanly")
	}
	if err := database.Shutdown(); err != nil {
		logrus.WithError(err).Error("failed to close database connection")
	}
	logrus.Info("system is shut ..zzz")
}
