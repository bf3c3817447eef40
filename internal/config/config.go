package config

import (
	"io/fs"
	"os"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultEnvFile = ".env"

type Config struct {
	LogLevel string

	// AdminAddr enables the read-only admin listener when non-empty.
	AdminAddr      string
	MetricsEnabled bool
	MetricsToken   string
}

// Load reads the optional dotenv file, then the process environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	path := getenv("MINISHOP_ENV_FILE", defaultEnvFile)
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrapf(err, "load %s", path)
	}

	cfg := Config{
		LogLevel:     getenv("MINISHOP_LOG_LEVEL", "warn"),
		AdminAddr:    os.Getenv("MINISHOP_ADMIN_ADDR"),
		MetricsToken: os.Getenv("MINISHOP_METRICS_TOKEN"),
	}

	enabled, err := getenvBool("MINISHOP_METRICS_ENABLED", true)
	if err != nil {
		return Config{}, err
	}
	cfg.MetricsEnabled = enabled

	if _, err := zap.ParseAtomicLevel(cfg.LogLevel); err != nil {
		return Config{}, errors.Wrap(err, "MINISHOP_LOG_LEVEL")
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrapf(err, "%s", k)
	}
	return b, nil
}
