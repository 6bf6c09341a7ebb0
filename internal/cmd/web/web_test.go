package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("RJR_WEB_HTTP_ADDR", "")
	t.Setenv("RJR_WEB_DB_PATH", "")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "vsdcentre.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
}

func TestParseConfigEnvOverridesDefault(t *testing.T) {
	t.Setenv("RJR_WEB_HTTP_ADDR", "localhost:9000")
	t.Setenv("RJR_WEB_DB_PATH", "/data/contact.db")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:9000" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "/data/contact.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
}

func TestParseConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv("RJR_WEB_HTTP_ADDR", "localhost:9000")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "localhost:9100"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:9100" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-no-such-flag"}); err == nil {
		t.Fatal("expected flag parse error")
	}
}
