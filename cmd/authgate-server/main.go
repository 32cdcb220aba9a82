// Command authgate-server runs the HTTP token service against a real Redis.
//
// Configuration comes from AUTHGATE_* environment variables (see
// authgate.ConfigFromEnv), plus:
//
//	REDIS_ADDR    Redis address (default localhost:6379)
//	AUTHGATE_ADDR listen address (default :8080)
//
// A .env file in the working directory is loaded if present. The server
// seeds two demo accounts (user1/password1 as admin, user2/password2 as
// user); replace the provider wiring for real deployments.
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/authgate/authgate"
	"github.com/authgate/authgate/httpapi"
	"github.com/authgate/authgate/password"
)

func main() {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := authgate.ConfigFromEnv()
	if err != nil {
		log.Fatal("config: ", err)
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	listenAddr := os.Getenv("AUTHGATE_ADDR")
	if listenAddr == "" {
		listenAddr = ":8080"
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})

	provider, err := seedProvider(cfg)
	if err != nil {
		log.Fatal("seed users: ", err)
	}

	builder := authgate.New().
		WithConfig(cfg).
		WithRedis(rdb).
		WithUserProvider(provider)
	if cfg.Audit.Enabled {
		builder = builder.WithAuditSink(authgate.NewJSONWriterAuditSink(os.Stdout))
	}

	engine, err := builder.Build()
	if err != nil {
		log.Fatal("engine build: ", err)
	}
	defer engine.Close()

	handler := httpapi.NewHandler(engine)

	log.Printf("authgate-server listening on %s (redis %s)", listenAddr, redisAddr)
	log.Fatal(http.ListenAndServe(listenAddr, handler.Router()))
}

func seedProvider(cfg authgate.Config) (*httpapi.StaticUserProvider, error) {
	hasher, err := password.NewHasher(password.Config{
		Memory:      cfg.Password.Memory,
		Time:        cfg.Password.Time,
		Parallelism: cfg.Password.Parallelism,
		SaltLength:  cfg.Password.SaltLength,
		KeyLength:   cfg.Password.KeyLength,
	})
	if err != nil {
		return nil, err
	}

	provider := httpapi.NewStaticUserProvider()
	for _, u := range []struct{ name, pass, role string }{
		{"user1", "password1", "admin"},
		{"user2", "password2", "user"},
	} {
		hash, err := hasher.Hash(u.pass)
		if err != nil {
			return nil, err
		}
		provider.Add(authgate.UserRecord{Identifier: u.name, PasswordHash: hash, Role: u.role})
	}

	return provider, nil
}
