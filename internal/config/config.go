// Package config loads gradesheet settings from defaults, an optional YAML
// file, an optional .env file and GRADESHEET_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "GRADESHEET"

// Config represents the complete tool configuration.
type Config struct {
	InputPath  string    `yaml:"input_path" envconfig:"INPUT_PATH" validate:"required"`
	OutputPath string    `yaml:"output_path" envconfig:"OUTPUT_PATH" validate:"required,nefield=InputPath"`
	SheetName  string    `yaml:"sheet_name" envconfig:"SHEET_NAME"`
	JSON       bool      `yaml:"json" envconfig:"JSON"`
	Log        LogConfig `yaml:"log" envconfig:"LOG"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json pretty"`
}

// LoadOptions names the optional files consulted by Load.
type LoadOptions struct {
	// ConfigFile is a YAML file. Empty skips it; a missing file is an error.
	ConfigFile string
	// EnvFile is a dotenv file. A missing file is ignored.
	EnvFile string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InputPath:  "marks.xlsx",
		OutputPath: "marks_report.xlsx",
		Log: LogConfig{
			Level:  "info",
			Format: "pretty",
		},
	}
}

// Load builds the configuration. Later sources win:
// defaults, YAML file, .env file, environment.
// The result is not validated; call Validate after applying flag overrides.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if opts.ConfigFile != "" {
		if err := loadFromFile(opts.ConfigFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays the keys present in a YAML file onto cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

var validate = validator.New()

// Validate checks required fields and enumerated values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", fe.Namespace(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag())
	}
}
