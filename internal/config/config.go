package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"error"`
	LogFile   string    `yaml:"log-file" env:"LOG_FILE"`
	NoColor   bool      `yaml:"no-color" env:"NO_COLOR"`
	Profile   string    `yaml:"profile" env:"PROFILE" env-default:"player"`
	Redis     Redis     `yaml:"redis" env-prefix:"REDIS_"`
	Telemetry Telemetry `yaml:"telemetry" env-prefix:"TELEMETRY_"`
}

// Redis holds the scoreboard store. When disabled the score lives in memory.
type Redis struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Host     string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"PORT" env-default:"6379"`
	Password string `yaml:"password" env:"PASSWORD"`
	DB       int    `yaml:"db" env:"DB" env-default:"0"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Endpoint    string `yaml:"endpoint" env:"ENDPOINT"`
	ServiceName string `yaml:"service-name" env:"SERVICE_NAME" env-default:"tictactoe"`
}

// Load reads the config file at path when it exists, otherwise the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - like Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}
	return that.Host + ":" + that.Port
}
