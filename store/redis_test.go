package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedis(client, "la"), mr
}

func TestRedisRoundTrip(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRedis(t)

	if _, ok, err := r.Get(ctx, "users"); err != nil || ok {
		t.Fatalf("expected absent key, ok=%v err=%v", ok, err)
	}

	if err := r.Set(ctx, "users", `{"a":1}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := r.Get(ctx, "users")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if value != `{"a":1}` {
		t.Fatalf("unexpected value %q", value)
	}

	if err := r.Remove(ctx, "users"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok, _ := r.Get(ctx, "users"); ok {
		t.Fatal("expected key removed")
	}
}

func TestRedisKeyPrefix(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	if err := r.Set(ctx, "session", "x"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !mr.Exists("la:session") {
		t.Fatal("expected prefixed key la:session in redis")
	}
}

func TestRedisRemoveAbsentIsNoOp(t *testing.T) {
	r, _ := newTestRedis(t)

	if err := r.Remove(context.Background(), "missing"); err != nil {
		t.Fatalf("Remove of absent key failed: %v", err)
	}
}

func TestRedisUnavailable(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)
	mr.Close()

	if _, _, err := r.Get(ctx, "users"); err == nil {
		t.Fatal("expected error after redis shutdown")
	}
	if err := r.Set(ctx, "users", "x"); err == nil {
		t.Fatal("expected error after redis shutdown")
	}
}
