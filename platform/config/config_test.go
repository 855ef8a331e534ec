package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("AUCTION_WINDOW", "")
	t.Setenv("STORE_RETRIES", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()
	if cfg.HTTPAddr != ":4101" {
		t.Errorf("HTTPAddr = %q, want :4101", cfg.HTTPAddr)
	}
	if cfg.AuctionWindow != 10*time.Second {
		t.Errorf("AuctionWindow = %v, want 10s", cfg.AuctionWindow)
	}
	if cfg.StoreRetries != 5 {
		t.Errorf("StoreRetries = %d, want 5", cfg.StoreRetries)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUCTION_WINDOW", "3s")
	t.Setenv("STORE_RETRIES", "9")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()
	if cfg.AuctionWindow != 3*time.Second || cfg.StoreRetries != 9 {
		t.Errorf("window = %v retries = %d, want 3s and 9", cfg.AuctionWindow, cfg.StoreRetries)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}
