package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string `env:"JWT_SECRET"`

	// StaticBearerSecret gates the public registration surface.
	StaticBearerSecret string `env:"STATIC_BEARER_SECRET"`

	// DocsUsername/DocsPassword protect the swagger and openapi
	// introspection endpoints via basic auth.
	DocsUsername string `env:"DOCS_USERNAME, default=admin"`
	DocsPassword string `env:"DOCS_PASSWORD"`

	// FrontendURL is the base for links embedded in outbound mail.
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	Owner OwnerConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// OwnerConfig seeds the bootstrap owner account.
type OwnerConfig struct {
	Username string `env:"OWNER_USERNAME, default=root"`
	Password string `env:"OWNER_PASSWORD"`
	Email    string `env:"OWNER_EMAIL"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=admin_console"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
