package localAuth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrEthical07/localAuth/store"
)

func TestBuildRequiresStore(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatal("expected error without store")
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.UsersKey = ""

	if _, err := New().WithConfig(cfg).WithStore(store.NewMemory()).Build(); err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestBuilderIsSingleUse(t *testing.T) {
	b := New().WithConfig(testConfig()).WithStore(store.NewMemory())

	engine, err := b.Build()
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	if _, err := b.Build(); !errors.Is(err, ErrBuilderReused) {
		t.Fatalf("expected ErrBuilderReused, got %v", err)
	}
}

func TestBuilderConfigIsolatedAfterBuild(t *testing.T) {
	cfg := testConfig()
	b := New().WithConfig(cfg).WithStore(store.NewMemory())

	// Mutating the caller's copy after WithConfig must not reach the engine.
	cfg.Validation.Disabled = true

	engine, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	if _, err := engine.Register(context.Background(), RegisterRequest{
		FirstName: "", LastName: "Doe", Email: "jo@x.com", Password: "abcdef",
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBuildDefaultsClockAndIDGenerator(t *testing.T) {
	engine, err := New().
		WithConfig(testConfig()).
		WithStore(store.NewMemory()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	before := time.Now().Add(-time.Minute)
	profile, rerr := engine.Register(context.Background(), RegisterRequest{
		FirstName: "Jo", LastName: "Doe", Email: "jo@x.com", Password: "abcdef",
	})
	if rerr != nil {
		t.Fatalf("Register failed: %v", rerr)
	}

	if profile.ID == "" {
		t.Fatal("expected generated ID")
	}
	if profile.CreatedAt.Before(before) {
		t.Fatalf("CreatedAt = %v", profile.CreatedAt)
	}
}
