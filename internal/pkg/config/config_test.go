package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

var testSecret = strings.Repeat("s", MinSecretLength)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": testSecret,
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m token ttl, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.PasswordAlgorithm != "bcrypt" || cfg.Auth.BcryptCost != 12 {
		t.Fatalf("unexpected hasher defaults: %+v", cfg.Auth)
	}
	if cfg.Auth.Argon2MemoryKiB != 65536 || cfg.Auth.Argon2Threads != 2 || cfg.Auth.Argon2Time != 3 {
		t.Fatalf("unexpected argon2 defaults: %+v", cfg.Auth)
	}
	if cfg.Auth.LoginMaxFailures != 5 || cfg.Auth.LoginFailureWindow != 15*time.Minute {
		t.Fatalf("unexpected throttle defaults: %+v", cfg.Auth)
	}
	if cfg.Mongo.Database != "job_records" || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected storage defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if cfg.RateLimit.RPS != 5 || cfg.RateLimit.Burst != 10 || cfg.Audit.Workers != 4 {
		t.Fatalf("unexpected limits: %+v %+v", cfg.RateLimit, cfg.Audit)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.Auth.JWTIssuer != "records-api" || cfg.TrustProxyHeaders {
		t.Fatalf("unexpected issuer/proxy defaults: %q %v", cfg.Auth.JWTIssuer, cfg.TrustProxyHeaders)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":           testSecret,
		"TOKEN_TTL":            "5m",
		"PASSWORD_ALGORITHM":   "argon2id",
		"ENV":                  "production",
		"CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
		"JWT_ISSUER":           "records-api-staging",
		"TRUST_PROXY_HEADERS":  "true",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Auth.TokenTTL != 5*time.Minute || cfg.Auth.PasswordAlgorithm != "argon2id" {
		t.Fatalf("overrides not applied: %+v", cfg.Auth)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.Auth.JWTIssuer != "records-api-staging" || !cfg.TrustProxyHeaders {
		t.Fatalf("unexpected issuer/proxy overrides: %q %v", cfg.Auth.JWTIssuer, cfg.TrustProxyHeaders)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("expected production env")
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing secret", map[string]string{}, "JWT_SECRET"},
		{"short secret", map[string]string{"JWT_SECRET": "short"}, "at least 32 bytes"},
		{"zero ttl", map[string]string{"JWT_SECRET": testSecret, "TOKEN_TTL": "0s"}, "TOKEN_TTL"},
		{"bad algorithm", map[string]string{"JWT_SECRET": testSecret, "PASSWORD_ALGORITHM": "md5"}, "PASSWORD_ALGORITHM"},
		{"bad cost", map[string]string{"JWT_SECRET": testSecret, "BCRYPT_COST": "40"}, "BCRYPT_COST"},
		{"bad duration", map[string]string{"JWT_SECRET": testSecret, "TOKEN_TTL": "soon"}, "TokenTTL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(context.Background(), envconfig.MapLookuper(tc.env))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}
