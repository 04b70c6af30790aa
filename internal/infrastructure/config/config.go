package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	AppName    string `env:"APP_NAME,    default=ghibli-catalog-api"`
	APIVersion string `env:"API_VERSION, default=1.0.0"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	LogPretty  bool   `env:"LOG_PRETTY,  default=false"`

	// StoreDriver selects the credential store: postgres or mongo.
	StoreDriver string   `env:"STORE_DRIVER,       default=postgres"`
	CORSOrigins []string `env:"CORS_ALLOW_ORIGINS, default=*"`

	Auth     AuthConfig
	Ghibli   GhibliConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Seed     SeedConfig
}

type AuthConfig struct {
	SecretKey          string `env:"SECRET_KEY, required"`
	Algorithm          string `env:"ALGORITHM,  default=HS256"`
	AccessTokenMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=15"`
}

// AccessTokenTTL falls back to 15 minutes when the configured value is not positive.
func (a AuthConfig) AccessTokenTTL() time.Duration {
	if a.AccessTokenMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(a.AccessTokenMinutes) * time.Minute
}

type GhibliConfig struct {
	BaseURL string        `env:"GHIBLI_API,         default=https://ghibliapi.vercel.app"`
	Timeout time.Duration `env:"GHIBLI_API_TIMEOUT, default=10s"`
}

type DatabaseConfig struct {
	Host     string `env:"DATABASE_HOSTNAME, default=localhost"`
	Port     int    `env:"DATABASE_PORT,     default=5432"`
	Name     string `env:"DATABASE_NAME,     default=ghibli"`
	User     string `env:"DATABASE_USERNAME, default=postgres"`
	Password string `env:"DATABASE_PASSWORD"`
	SSLMode  string `env:"DATABASE_SSLMODE,  default=disable"`
	Debug    bool   `env:"DEBUG_MODE,        default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=ghibli"`
}

type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED,  default=false"`
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`

	LoginLimit  int           `env:"LOGIN_RATE_LIMIT,  default=10"`
	LoginWindow time.Duration `env:"LOGIN_RATE_WINDOW, default=1m"`
}

type SeedConfig struct {
	AdminUsername string `env:"SEED_ADMIN_USERNAME, default=admin"`
	AdminEmail    string `env:"SEED_ADMIN_EMAIL,    default=admin@test.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=P@ssw0rd"`
}

// IsDevelopment reports whether ENV is development.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Validate rejects settings the process cannot start with.
func (c *Config) Validate() error {
	switch c.Auth.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("config: ALGORITHM %q is not one of HS256, HS384, HS512", c.Auth.Algorithm)
	}
	switch c.StoreDriver {
	case StorePostgres, StoreMongo:
	default:
		return fmt.Errorf("config: STORE_DRIVER %q is not one of postgres, mongo", c.StoreDriver)
	}
	if c.Redis.Enabled && c.Redis.LoginLimit <= 0 {
		return errors.New("config: LOGIN_RATE_LIMIT must be positive")
	}
	return nil
}

// Load reads an optional dotenv file and then the process environment.
// .env.<ENV> is used when ENV is set, .env otherwise; a missing file is
// not an error and variables already set in the environment win.
func Load(ctx context.Context) (*Config, error) {
	if err := loadDotenv(os.Getenv("ENV")); err != nil {
		return nil, err
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadDotenv(env string) error {
	file := ".env"
	if env != "" {
		file = ".env." + env
	}
	if _, err := os.Stat(file); err != nil {
		return nil
	}
	if err := godotenv.Load(file); err != nil {
		return fmt.Errorf("config: load %s: %w", file, err)
	}
	return nil
}
