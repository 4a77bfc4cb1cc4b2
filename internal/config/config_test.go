package config

import (
	"testing"
	"time"
)

func TestGetenvDefault(t *testing.T) {
	t.Setenv("SHOWREEL_TEST_GETENV", "")
	if got := getenv("SHOWREEL_TEST_GETENV", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	t.Setenv("SHOWREEL_TEST_GETENV", "set")
	if got := getenv("SHOWREEL_TEST_GETENV", "fallback"); got != "set" {
		t.Fatalf("expected set, got %q", got)
	}
}

func TestMustDuration(t *testing.T) {
	t.Setenv("SHOWREEL_TEST_DUR", "90s")
	if got := mustDuration("SHOWREEL_TEST_DUR", time.Second); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}
	t.Setenv("SHOWREEL_TEST_DUR", "not-a-duration")
	if got := mustDuration("SHOWREEL_TEST_DUR", 7*time.Second); got != 7*time.Second {
		t.Fatalf("expected default on parse failure, got %v", got)
	}
}

func TestMustBool(t *testing.T) {
	t.Setenv("SHOWREEL_TEST_BOOL", "false")
	if mustBool("SHOWREEL_TEST_BOOL", true) {
		t.Fatal("expected false")
	}
	t.Setenv("SHOWREEL_TEST_BOOL", "bogus")
	if !mustBool("SHOWREEL_TEST_BOOL", true) {
		t.Fatal("expected default true on parse failure")
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(` example.com , "admin.example.com" , `)
	if len(got) != 2 || got[0] != "example.com" || got[1] != "admin.example.com" {
		t.Fatalf("unexpected result: %#v", got)
	}
	if splitAndTrim("") != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestLoadValidatesBackend(t *testing.T) {
	t.Setenv("SHOWREEL_ADMIN_PASSWORD", "secret")
	t.Setenv("SHOWREEL_BACKEND", "cloud")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown backend")
		}
	}()
	Load()
}

func TestLoadNormalizesAdminPath(t *testing.T) {
	t.Setenv("SHOWREEL_ADMIN_PASSWORD", "secret")
	t.Setenv("SHOWREEL_BACKEND", "local")
	t.Setenv("SHOWREEL_ADMIN_PATH", "hidden-door")
	cfg := Load()
	if cfg.AdminPath != "/hidden-door" {
		t.Fatalf("expected leading slash, got %q", cfg.AdminPath)
	}
}
