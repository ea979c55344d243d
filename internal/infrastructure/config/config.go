package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Storage selects the persistence backend: "mongo" (accounts/profiles
	// in MongoDB, session in Redis) or "bolt" (everything in one local
	// file, no external services required).
	Storage string `env:"STORAGE, default=mongo"`

	// SimulatedLatency adds an artificial delay to every auth and profile
	// operation so clients can exercise their loading states. Zero (the
	// default) disables it.
	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY, default=0s"`

	// DemoAccount controls seeding of the well-known demo account into a
	// never-initialized directory.
	DemoAccount bool `env:"DEMO_ACCOUNT, default=true"`

	Mongo MongoConfig
	Redis RedisConfig
	Bolt  BoltConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=fitpro"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type BoltConfig struct {
	Path string `env:"BOLT_PATH, default=fitpro.db"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
