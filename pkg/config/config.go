package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	OutputJson = "json"
	OutputCsv  = "csv"

	// Environment variables override file values, e.g. TIMETABLE_LOG_LEVEL=debug
	EnvPrefix = "TIMETABLE"

	// Looked up next to the executable when no path is given
	DefaultFileName = "config.json"
)

type Config struct {
	Env        string           `mapstructure:"env" validate:"oneof=development production"`
	Log        LogConfig        `mapstructure:"log"`
	Identifier IdentifierConfig `mapstructure:"identifier"`
	Output     OutputConfig     `mapstructure:"output"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// IdentifierConfig shapes newly allocated assignment identifiers: Prefix followed by Digits zero-padded digits
type IdentifierConfig struct {
	Prefix string `mapstructure:"prefix" validate:"required"`
	Digits int    `mapstructure:"digits" validate:"min=1,max=9"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=json csv"`
}

// Load reads the configuration file at path (JSON or YAML, optional when path is empty),
// then a .env file in the working directory (if any) and finally TIMETABLE_* environment variables
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}

	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns the config.json next to the running executable, or an empty string when there is none
func DefaultPath() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot determine executable path: %w", err)
	}

	path := filepath.Join(filepath.Dir(execPath), DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", EnvDevelopment)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("identifier.prefix", "SCH")
	v.SetDefault("identifier.digits", 3)

	v.SetDefault("output.format", OutputJson)
}
