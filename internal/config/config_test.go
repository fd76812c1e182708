package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8001 {
		t.Fatalf("port = %d, want 8001", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Fatal("default env should be development")
	}
	if !strings.Contains(cfg.Database.DSNValue(), "findelmundo") {
		t.Fatalf("dsn missing default db name: %s", cfg.Database.DSNValue())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"port: 9000",
		"env: production",
		"jwt_secret: s3cret",
		"database:",
		"  host: db.internal",
		"  name: fdm",
		"redis:",
		"  host: cache.internal",
		"  db: 2",
	}, "\n"))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9000 || cfg.IsDev() {
		t.Fatalf("unexpected cfg: port=%d env=%s", cfg.Port, cfg.Env)
	}
	if !strings.Contains(cfg.Database.DSNValue(), "tcp(db.internal:3306)/fdm") {
		t.Fatalf("dsn = %s", cfg.Database.DSNValue())
	}
	if got := cfg.Redis.URLValue(); got != "redis://cache.internal:6379/2" {
		t.Fatalf("redis url = %s", got)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "bogus_key: 1\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	path := writeConfig(t, "port: 70000\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FDM_JWT_SECRET", "from-env")
	t.Setenv("FDM_REDIS_URL", "redis://override:6379/0")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWTSecret != "from-env" {
		t.Fatalf("jwt secret = %q", cfg.JWTSecret)
	}
	if cfg.Redis.URLValue() != "redis://override:6379/0" {
		t.Fatalf("redis url = %q", cfg.Redis.URLValue())
	}
}
