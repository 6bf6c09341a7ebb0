// Package web implements the web command entrypoint.
package web

import (
	"context"
	"flag"
	"fmt"

	"github.com/rjreducation/vsdcentre/internal/platform/config"
	"github.com/rjreducation/vsdcentre/internal/platform/otel"
	"github.com/rjreducation/vsdcentre/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"RJR_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath   string `env:"RJR_WEB_DB_PATH" envDefault:"vsdcentre.db"`
}

// ParseConfig parses environment values and flags into a Config.
// Flags take precedence over environment values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "vsdcentre-web")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		_ = shutdownTracing(context.Background())
	}()

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		DBPath:   cfg.DBPath,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer func() {
		_ = server.Close()
	}()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
