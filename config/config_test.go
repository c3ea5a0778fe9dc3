package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("expected default redis addr, got %s", cfg.RedisAddr)
	}
	if cfg.AllowedOrigins != "*" {
		t.Fatalf("expected default origins *, got %s", cfg.AllowedOrigins)
	}
	if cfg.DatabaseURL == "" {
		t.Fatal("expected a default database url")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "host=db user=u password=p dbname=x port=5432 sslmode=disable")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("expected redis:6379, got %s", cfg.RedisAddr)
	}
	if cfg.DatabaseURL != "host=db user=u password=p dbname=x port=5432 sslmode=disable" {
		t.Fatalf("unexpected database url: %s", cfg.DatabaseURL)
	}
}
