package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	// AuthMode selects the identity backend: "local" (account store in
	// Mongo) or "remote" (external HTTP auth service). In remote mode the
	// identity service must sign its tokens with this JWT_SECRET and carry
	// the account email in the "sub" claim, since protected routes verify
	// bearer tokens locally rather than calling back to the issuer.
	AuthMode string `env:"AUTH_MODE,    default=local"`
	// CatalogMode selects the business catalog: "memory" (seeded) or "mongo".
	CatalogMode string `env:"CATALOG_MODE, default=memory"`

	SessionTTL     time.Duration `env:"SESSION_TTL,     default=24h"`
	InquiryWorkers int           `env:"INQUIRY_WORKERS, default=4"`
	InquiryInbox   string        `env:"INQUIRY_INBOX,   default=partnerships@collabhub.example"`

	Auth  RemoteConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type RemoteConfig struct {
	BaseURL          string        `env:"AUTH_BASE_URL"`
	RecommendBaseURL string        `env:"REC_BASE_URL"`
	Timeout          time.Duration `env:"REMOTE_TIMEOUT, default=10s"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=partner_directory"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
