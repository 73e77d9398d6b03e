package config

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

var defaults = map[string]any{
	"API_ADDRESS":          ":8080",
	"POSTGRES_DB_ADDRESS":  "localhost:5432",
	"POSTGRES_USER":        "taskflow",
	"POSTGRES_PASSWORD":    "taskflow",
	"POSTGRES_DB":          "taskflow",
	"POSTGRES_PARAMS":      "sslmode=disable",
	"APP_TIMEZONE":         "UTC",
	"QUOTE_API_URL":        "https://zenquotes.io/api/random",
	"QUOTE_TIMEOUT":        "5s",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "text",
	"CORS_ALLOWED_ORIGINS": "*",
	"MIGRATIONS_DIR":       "./migrations",
}

// Config resolves settings from the process environment, then ./configs/.env,
// then built-in defaults.
type Config struct {
	v *viper.Viper
}

func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = newFromViper(viper.New())
	})
	return instance
}

func newFromViper(v *viper.Viper) *Config {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return &Config{v: v}
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// GetList splits a comma separated value, dropping empty items.
func (c *Config) GetList(key string) []string {
	raw := strings.Split(c.v.GetString(key), ",")
	items := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Location loads APP_TIMEZONE. Unknown zones are logged and fall back to UTC.
func (c *Config) Location() *time.Location {
	name := c.GetString("APP_TIMEZONE")
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown APP_TIMEZONE, falling back to UTC", slog.String("zone", name), slog.String("error", err.Error()))
		return time.UTC
	}
	return loc
}
