package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	HTTPPort      string        `env:"HTTP_PORT, default=8080"`
	Env           string        `env:"ENV, default=development"`
	LogLevel      string        `env:"LOG_LEVEL, default=info"`
	LogPretty     bool          `env:"LOG_PRETTY, default=false"`
	DBHost        string        `env:"DB_HOST, default=localhost"`
	DBPort        string        `env:"DB_PORT, default=5432"`
	DBUser        string        `env:"DB_USER, default=postgres"`
	DBPassword    string        `env:"DB_PASSWORD"`
	DBName        string        `env:"DB_NAME, default=fieldops"`
	DBSslMode     string        `env:"DB_SSLMODE, default=disable"`
	DBAutoMigrate bool          `env:"DB_AUTO_MIGRATE, default=true"`
	JWTSecret     string        `env:"JWT_SECRET, required"`
	JWTTTL        time.Duration `env:"JWT_TTL, default=24h"`
}

// LoadDotEnv copies path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads Config through lookuper, normally envconfig.OsLookuper().
func LoadConfig(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// DSN builds the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
