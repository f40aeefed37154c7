//go:build integration
// +build integration

package test

import (
	"testing"

	localAuth "github.com/MrEthical07/localAuth"
	"github.com/MrEthical07/localAuth/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newIntegrationStore(t *testing.T) (*store.Redis, *redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	kv := store.NewRedis(rdb, "la")

	return kv, rdb, func() {
		_ = rdb.Close()
		mr.Close()
	}
}

func newIntegrationEngine(t *testing.T, kv store.KV, mutate func(*localAuth.Config)) *localAuth.Engine {
	t.Helper()

	cfg := localAuth.DefaultConfig()
	cfg.Latency.Enabled = false
	if mutate != nil {
		mutate(&cfg)
	}

	engine, err := localAuth.New().
		WithConfig(cfg).
		WithStore(kv).
		WithMetricsEnabled(true).
		Build()
	if err != nil {
		t.Fatalf("engine build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	return engine
}
