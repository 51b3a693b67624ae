package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo        MongoConfig
	Redis        RedisConfig
	Collaborator CollaboratorConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=pokebid_users"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// CollaboratorConfig holds the base URLs of the two remote services this core
// aggregates from, plus a shared per-call timeout.
type CollaboratorConfig struct {
	PokemonBaseURL string        `env:"POKEMON_SERVICE_URL, default=http://localhost:8081"`
	AuctionBaseURL string        `env:"AUCTION_SERVICE_URL, default=http://localhost:8082"`
	Timeout        time.Duration `env:"COLLABORATOR_TIMEOUT, default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
