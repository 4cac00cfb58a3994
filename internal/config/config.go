package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel      string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort      string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	RandomSeed    int64         `yaml:"random-seed" env:"RANDOM_SEED" env-default:"0"`
	Redis         Redis         `yaml:"redis"`
	Concentration Concentration `yaml:"concentration"`
}

type Redis struct {
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	GameTTL time.Duration `yaml:"game-ttl" env:"REDIS_GAME_TTL" env-default:"24h"`
}

type Concentration struct {
	DefaultPairs    int     `yaml:"default-pairs" env:"CONCENTRATION_DEFAULT_PAIRS" env-default:"8"`
	MaxPairs        int     `yaml:"max-pairs" env:"CONCENTRATION_MAX_PAIRS" env-default:"100"`
	CardAspectRatio float64 `yaml:"card-aspect-ratio" env:"CONCENTRATION_CARD_ASPECT_RATIO" env-default:"0.625"`
}

// MustLoad - load all configurations in config.yml file, environment variables win.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

func (that *Config) validate() error {
	if that.Concentration.DefaultPairs < 1 {
		return fmt.Errorf("concentration default-pairs must be positive, got %d", that.Concentration.DefaultPairs)
	}

	if that.Concentration.MaxPairs < that.Concentration.DefaultPairs {
		return fmt.Errorf("concentration max-pairs %d is below default-pairs %d",
			that.Concentration.MaxPairs, that.Concentration.DefaultPairs)
	}

	if that.Concentration.CardAspectRatio <= 0 {
		return fmt.Errorf("concentration card-aspect-ratio must be positive, got %v", that.Concentration.CardAspectRatio)
	}

	if that.Redis.GameTTL < 0 {
		return fmt.Errorf("redis game-ttl must not be negative, got %s", that.Redis.GameTTL)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
