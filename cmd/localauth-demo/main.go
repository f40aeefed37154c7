// Command localauth-demo walks the full account lifecycle against a chosen
// store backend: register, rehydrate in a second engine, login, update the
// profile, and logout.
//
// Run:
//
//	go run ./cmd/localauth-demo
//	go run ./cmd/localauth-demo -store file -path ./accounts.json
//	go run ./cmd/localauth-demo -store redis -redis-addr localhost:6379
//
// With -store redis and no address, REDIS_ADDR is consulted and a miniredis
// instance is started as a last resort.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	localAuth "github.com/MrEthical07/localAuth"
	"github.com/MrEthical07/localAuth/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	var (
		backend   = flag.String("store", "memory", "store backend: memory, file, or redis")
		filePath  = flag.String("path", "localauth-demo.json", "document path for -store file")
		redisAddr = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		prefix    = flag.String("prefix", "la", "redis key prefix")
		delay     = flag.Duration("latency", 500*time.Millisecond, "simulated per-operation latency")
		audit     = flag.Bool("audit", false, "print audit events as JSON lines on stderr")
	)
	flag.Parse()

	ctx := context.Background()

	kv, cleanup, err := openStore(*backend, *filePath, *redisAddr, *prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	cfg := localAuth.DefaultConfig()
	cfg.Latency.Delay = *delay
	cfg.Latency.Enabled = *delay > 0
	cfg.Audit.Enabled = *audit

	builder := localAuth.New().WithConfig(cfg).WithStore(kv)
	if *audit {
		builder = builder.WithAuditSink(localAuth.NewJSONWriterSink(os.Stderr))
	}

	engine, err := builder.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	if session := engine.CurrentSession(); session != nil {
		fmt.Printf("rehydrated session for %s\n", session.Email)
	}

	email := fmt.Sprintf("demo-%d@example.com", time.Now().Unix())

	step("register")
	profile, err := engine.Register(ctx, localAuth.RegisterRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     email,
		Password:  "correct-horse",
	})
	exitOn(err)
	printProfile(profile)

	step("rehydrate in a fresh engine")
	second, err := localAuth.New().WithConfig(cfg).WithStore(kv).Build()
	exitOn(err)
	if session := second.CurrentSession(); session != nil {
		fmt.Printf("restored session for %s\n", session.Email)
	} else {
		fmt.Println("no session restored")
	}
	second.Close()

	step("logout and login again")
	exitOn(engine.Logout(ctx))
	profile, err = engine.Login(ctx, email, "correct-horse")
	exitOn(err)
	printProfile(profile)

	step("update profile")
	profile, err = engine.UpdateProfile(ctx, localAuth.ProfileUpdate{
		Phone: localAuth.String("+1 (555) 010-0123"),
	})
	exitOn(err)
	printProfile(profile)

	step("logout")
	exitOn(engine.Logout(ctx))
	if engine.CurrentSession() != nil {
		fmt.Fprintln(os.Stderr, "session survived logout")
		os.Exit(1)
	}
	fmt.Println("done")
}

func openStore(backend, filePath, redisAddr, prefix string) (store.KV, func(), error) {
	switch backend {
	case "memory":
		return store.NewMemory(), func() {}, nil

	case "file":
		return store.NewFile(filePath), func() {}, nil

	case "redis":
		addr := redisAddr
		if addr == "" {
			addr = os.Getenv("REDIS_ADDR")
		}
		if addr == "" {
			mr, err := miniredis.Run()
			if err != nil {
				return nil, nil, fmt.Errorf("start miniredis: %w", err)
			}
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			fmt.Printf("using miniredis at %s\n", mr.Addr())
			return store.NewRedis(client, prefix), func() {
				_ = client.Close()
				mr.Close()
			}, nil
		}
		client := redis.NewClient(&redis.Options{Addr: addr})
		fmt.Printf("using redis at %s\n", addr)
		return store.NewRedis(client, prefix), func() { _ = client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
}

func step(name string) {
	fmt.Printf("---- %s ----\n", name)
}

func printProfile(p *localAuth.UserProfile) {
	data, _ := json.MarshalIndent(p, "", "  ")
	fmt.Println(string(data))
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
