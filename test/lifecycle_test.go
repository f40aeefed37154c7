//go:build integration
// +build integration

package test

import (
	"context"
	"errors"
	"testing"

	localAuth "github.com/MrEthical07/localAuth"
)

func TestAccountLifecycleOverRedis(t *testing.T) {
	kv, _, cleanup := newIntegrationStore(t)
	defer cleanup()

	ctx := context.Background()
	engine := newIntegrationEngine(t, kv, nil)

	registered, err := engine.Register(ctx, localAuth.RegisterRequest{
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "Alice@Example.com",
		Password:  "correct-horse",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if registered.Email != "Alice@Example.com" {
		t.Fatalf("email rewritten to %q", registered.Email)
	}

	if _, err := engine.Register(ctx, localAuth.RegisterRequest{
		FirstName: "Mallory",
		LastName:  "Liddell",
		Email:     "alice@example.com",
		Password:  "swordfish1",
	}); !errors.Is(err, localAuth.ErrDuplicateAccount) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}

	if err := engine.Logout(ctx); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	profile, err := engine.Login(ctx, "ALICE@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if profile.ID != registered.ID {
		t.Fatalf("login resolved a different account: %q vs %q", profile.ID, registered.ID)
	}

	if _, err := engine.UpdateProfile(ctx, localAuth.ProfileUpdate{
		Phone: localAuth.String("555-0100"),
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	session := engine.CurrentSession()
	if session == nil || session.Phone != "555-0100" {
		t.Fatalf("session = %+v", session)
	}
}

func TestSessionSurvivesEngineRestartOverRedis(t *testing.T) {
	kv, _, cleanup := newIntegrationStore(t)
	defer cleanup()

	ctx := context.Background()

	first := newIntegrationEngine(t, kv, nil)
	registered, err := first.Register(ctx, localAuth.RegisterRequest{
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
		Password:  "correct-horse",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	first.Close()

	second := newIntegrationEngine(t, kv, nil)
	session := second.CurrentSession()
	if session == nil || session.ID != registered.ID {
		t.Fatalf("session = %+v", session)
	}

	// Logout in the restarted engine clears the shared record.
	if err := second.Logout(ctx); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	third := newIntegrationEngine(t, kv, nil)
	if third.CurrentSession() != nil {
		t.Fatal("expected no session after logout")
	}
}

func TestStrictRehydrationOverRedis(t *testing.T) {
	kv, rdb, cleanup := newIntegrationStore(t)
	defer cleanup()

	ctx := context.Background()

	first := newIntegrationEngine(t, kv, func(cfg *localAuth.Config) {
		cfg.Session.StrictRehydration = true
	})
	if _, err := first.Register(ctx, localAuth.RegisterRequest{
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
		Password:  "correct-horse",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	first.Close()

	// Wipe the directory while the session record survives.
	if err := rdb.Del(ctx, "la:app_users").Err(); err != nil {
		t.Fatalf("del failed: %v", err)
	}

	second := newIntegrationEngine(t, kv, func(cfg *localAuth.Config) {
		cfg.Session.StrictRehydration = true
	})
	if second.CurrentSession() != nil {
		t.Fatal("expected stale session dropped")
	}
	if n := second.MetricsSnapshot().Counters[localAuth.MetricSessionRehydrationRejected]; n != 1 {
		t.Fatalf("rejected counter = %d", n)
	}
}

func TestJWTSessionEncodingOverRedis(t *testing.T) {
	kv, rdb, cleanup := newIntegrationStore(t)
	defer cleanup()

	ctx := context.Background()
	key := []byte("integration-signing-key")

	jwtConfig := func(cfg *localAuth.Config) {
		cfg.Session.Encoding = localAuth.SessionEncodingJWT
		cfg.Session.SigningKey = key
	}

	first := newIntegrationEngine(t, kv, jwtConfig)
	registered, err := first.Register(ctx, localAuth.RegisterRequest{
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
		Password:  "correct-horse",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	first.Close()

	second := newIntegrationEngine(t, kv, jwtConfig)
	session := second.CurrentSession()
	if session == nil || session.ID != registered.ID {
		t.Fatalf("session = %+v", session)
	}
	second.Close()

	// Flip one byte of the stored token; the next engine must reject it.
	record, err := rdb.Get(ctx, "la:current_user").Result()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	tampered := []byte(record)
	tampered[len(tampered)/2] ^= 0x01
	if err := rdb.Set(ctx, "la:current_user", string(tampered), 0).Err(); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	third := newIntegrationEngine(t, kv, jwtConfig)
	if third.CurrentSession() != nil {
		t.Fatal("expected tampered session rejected")
	}
}
