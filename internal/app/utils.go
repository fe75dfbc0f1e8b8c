package app

import (
	"fmt"
	"net/http"
	"time"

	"appredirect/internal/config"
	"appredirect/internal/qr"

	"go.uber.org/zap"
)

// QRGenerator renders a QR code job to disk.
type QRGenerator interface {
	Generate(job qr.Job) error
}

// CreateServer creates and configures an HTTP server.
func CreateServer(c *config.Config, handler http.Handler, logger *zap.SugaredLogger) *http.Server {
	logger.Infof("Redirect service at %s", c.Addr())

	return &http.Server{
		Addr:              c.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 20 * time.Second,
	}
}

// StartQRJob runs gen.Generate(job) in its own goroutine and returns at once.
// Errors and panics are logged and swallowed; the job is never retried.
// The returned channel is closed when the job has finished.
func StartQRJob(gen QRGenerator, job qr.Job, logger *zap.SugaredLogger) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		if err := runQRJob(gen, job); err != nil {
			logger.Errorw("Failed to generate QR code with logo", "output", job.OutputPath, "error", err)
			return
		}
		logger.Infow("QR code with logo saved", "output", job.OutputPath)
	}()

	return done
}

// runQRJob turns a panic inside the generator into an error.
func runQRJob(gen QRGenerator, job qr.Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("qr job panic: %v", r)
		}
	}()
	return gen.Generate(job)
}

// QROptions builds generator options from the configured colours on top of qr.DefaultOptions.
func QROptions(c *config.Config) (qr.Options, error) {
	opts := qr.DefaultOptions()

	dark, err := qr.ParseHexColor(c.QR.DarkColor)
	if err != nil {
		return qr.Options{}, fmt.Errorf("dark colour: %w", err)
	}
	light, err := qr.ParseHexColor(c.QR.LightColor)
	if err != nil {
		return qr.Options{}, fmt.Errorf("light colour: %w", err)
	}

	opts.Dark, opts.Light = dark, light
	return opts, nil
}

// QRJob returns the startup job described by the configuration.
func QRJob(c *config.Config) qr.Job {
	return qr.Job{
		Target:     c.QR.Target,
		LogoPath:   c.QR.LogoPath,
		OutputPath: c.QR.OutputPath,
	}
}
