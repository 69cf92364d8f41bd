package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		PG         `yaml:"postgres"`
		HTTP       `yaml:"http"`
		GRPC       `yaml:"grpc"`
		Prometheus `yaml:"prometheus"`
		Kafka      `yaml:"kafka"`
		Auth       `yaml:"auth"`
		Ingest     `yaml:"ingest"`
		Stats      `yaml:"stats"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	}

	PG struct {
		MaxPoolSize    int    `env-required:"true" env:"MAX_POOL_SIZE" yaml:"max_pool_size"`
		URL            string `env-required:"true" env:"PG_URL"`
		MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
	}

	HTTP struct {
		Port            string        `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	GRPC struct {
		Port string `env-required:"true" yaml:"port" env:"GRPC_PORT"`
	}

	// Kafka publishing is disabled when Brokers is empty.
	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"http-logs"`
	}

	Auth struct {
		DisableRegistration bool `yaml:"disable_registration" env:"DISABLE_REGISTRATION" env-default:"false"`
	}

	Ingest struct {
		RateLimit  int           `yaml:"rate_limit" env:"INGEST_RATE_LIMIT" env-default:"600"`
		RateWindow time.Duration `yaml:"rate_window" env:"INGEST_RATE_WINDOW" env-default:"1m"`
	}

	Stats struct {
		Timezone string `yaml:"timezone" env:"STATS_TIMEZONE" env-default:"UTC"`
	}
)

const (
	ENV_PATH            = "infra/.env.dev"
	DEFAULT_CONFIG_PATH = "infra/config.yaml"
)

// LoadEnvFile preloads the dev env file; a missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.WithField("path", path).Debug("Env file not found, skipping")
			return nil
		}
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func New() (*Config, error) {
	if err := LoadEnvFile(ENV_PATH); err != nil {
		return nil, err
	}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = DEFAULT_CONFIG_PATH
	}

	return Load(pathToConfig)
}

// Load reads the yaml file at path and overlays environment variables.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if _, err := time.LoadLocation(cfg.Stats.Timezone); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
