package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appredirect/internal/app"
	"appredirect/internal/config"
	"appredirect/internal/handlers"
	"appredirect/internal/logger"
	"appredirect/internal/qr"
)

func main() {
	sugar, err := logger.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	c := config.NewConfig()
	if err := config.Init(c); err != nil {
		sugar.Fatalf("Failed to load config: %v", err)
	}

	// the QR job must never keep the service from starting
	if opts, err := app.QROptions(c); err != nil {
		sugar.Errorw("Failed to generate QR code with logo", "output", c.QR.OutputPath, "error", err)
	} else {
		app.StartQRJob(qr.NewGenerator(opts), app.QRJob(c), sugar)
	}

	controller := handlers.NewController(c.Destinations, sugar)
	server := app.CreateServer(c, app.NewRouter(controller), sugar)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(c.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorf("Server shutdown error: %v", err)
	}
}
