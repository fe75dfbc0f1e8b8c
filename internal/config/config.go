// Package config is used to configure the application settings.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"appredirect/internal/redirect"

	"github.com/goccy/go-json"
)

// QRConfig - inputs of the startup QR code job.
type QRConfig struct {
	// Target: text encoded into the QR code, normally the public redirect endpoint.
	Target string `json:"target"`
	// LogoPath: image placed in the centre of the code.
	LogoPath string `json:"logo_path"`
	// OutputPath: where the composited PNG is written.
	OutputPath string `json:"output_path"`
	// DarkColor: module colour, #rrggbb.
	DarkColor string `json:"dark_color"`
	// LightColor: background colour, #rrggbb.
	LightColor string `json:"light_color"`
}

// Config - application configuration structure.
type Config struct {
	// Port: TCP port the HTTP server listens on.
	Port string `json:"port"`
	// Destinations: store links per platform.
	Destinations redirect.Destinations `json:"destinations"`
	// QR: startup QR code job.
	QR QRConfig `json:"qr"`
	// ShutdownTimeout: seconds given to in-flight requests on shutdown.
	ShutdownTimeout int `json:"shutdown_timeout"`
	// ConfigPath: path to configuration file.
	ConfigPath string `json:"-"`
}

// NewConfig creates and returns a new instance of the Config structure with predefined values.
func NewConfig() *Config {
	return &Config{
		Port: "3000",
		Destinations: redirect.Destinations{
			IOS:     "https://apps.apple.com/app/idXXXXXXXXX",
			Android: "https://play.google.com/store/apps/details?id=com.example",
			Web:     "https://limoaffiliatesworldwide.com",
		},
		QR: QRConfig{
			Target:     "https://api.limoaffiliatesworldwide.com/app-store-redirect",
			LogoPath:   "./logo.png",
			OutputPath: "./qrcodes/rider_with_logo.png",
			DarkColor:  "#083344",
			LightColor: "#ffffff",
		},
		ShutdownTimeout: 10,
	}
}

// ErrReadConfig - error reading json config.
var ErrReadConfig = errors.New("reading json config")

// ErrParseConfig - error parsing json config.
var ErrParseConfig = errors.New("parse json config")

// ErrInvalidPort - port is not a number in 1..65535.
var ErrInvalidPort = errors.New("invalid port")

// Init initializes the application configuration using environment variables, command-line flags
// and an optional JSON file. Flags override the environment, the file fills everything else.
func Init(c *Config) error {
	if val, exist := os.LookupEnv("PORT"); exist && val != "" {
		c.Port = val
	}
	if val, exist := os.LookupEnv("CONFIG"); exist {
		c.ConfigPath = val
	}

	var flagCfg Config
	flag.StringVar(&flagCfg.Port, "p", "", "HTTP-server port")
	flag.StringVar(&flagCfg.ConfigPath, "c", "", "path to config file (json)")

	flag.Parse()

	if flagCfg.ConfigPath != "" {
		c.ConfigPath = flagCfg.ConfigPath
	}

	if c.ConfigPath != "" {
		file, err := os.ReadFile(c.ConfigPath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadConfig, err)
		}
		if err := json.Unmarshal(file, c); err != nil {
			return fmt.Errorf("%w: %v", ErrParseConfig, err)
		}
	}

	// override
	if flagCfg.Port != "" {
		c.Port = flagCfg.Port
	}

	return c.Validate()
}

// Validate checks the port and the destination URLs.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", ErrInvalidPort, c.Port)
	}
	if err := c.Destinations.Validate(); err != nil {
		return err
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + c.Port
}
