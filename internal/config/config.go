package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix namespaces every environment override, e.g. DICEPOKER_SEED
	EnvPrefix = "dicepoker"

	// ConfigFileEnv names an optional YAML file to load before the environment
	ConfigFileEnv = "DICEPOKER_CONFIG_FILE"

	// DotEnvFile is loaded into the environment when present
	DotEnvFile = ".env"
)

// Config provides configuration for dice poker
type Config struct {
	HumanName  string `yaml:"humanName" envconfig:"human_name"`
	DealerName string `yaml:"dealerName" envconfig:"dealer_name"`

	// Answers accepted at the play again prompt
	YesInput string `yaml:"yes" envconfig:"yes"`
	NoInput  string `yaml:"no" envconfig:"no"`

	// Seed makes games reproducible; zero seeds from the clock
	Seed int64 `yaml:"seed" envconfig:"seed"`

	LogLevel string `yaml:"logLevel" envconfig:"log_level"`
	NoColor  bool   `yaml:"noColor" envconfig:"no_color"`

	// Tone is "classic" or "funny"
	Tone string `yaml:"tone" envconfig:"tone"`

	// Redis is used for session state when Addr is set
	Redis struct {
		Addr     string        `yaml:"addr" envconfig:"addr"`
		Password string        `yaml:"password" envconfig:"password"`
		DB       int           `yaml:"db" envconfig:"db"`
		TTL      time.Duration `yaml:"ttl" envconfig:"ttl"`
	} `yaml:"redis" envconfig:"redis"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	cfg := &Config{
		HumanName:  "Player",
		DealerName: "Dealer",
		YesInput:   "y",
		NoInput:    "n",
		LogLevel:   "warn",
		Tone:       "classic",
	}
	cfg.Redis.TTL = time.Hour

	return cfg
}

// Load builds the configuration from defaults, a .env file, an optional
// YAML file and finally DICEPOKER_* environment variables
func Load() (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	cfg := Default()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail at the prompt or on startup
func (c *Config) Validate() error {
	if c.YesInput == "" || c.NoInput == "" {
		return errors.New("yes and no inputs cannot be empty")
	}
	if c.YesInput == c.NoInput {
		return fmt.Errorf("yes and no inputs must differ, both are %q", c.YesInput)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Redis.TTL < 0 {
		return fmt.Errorf("redis ttl cannot be negative: %s", c.Redis.TTL)
	}

	return nil
}

// UseRedis reports whether session state should live in Redis
func (c *Config) UseRedis() bool {
	return c.Redis.Addr != ""
}

// ParseLogLevel maps a level name to a pterm log level
func ParseLogLevel(level string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "", "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "fatal":
		return pterm.LogLevelFatal, nil
	case "off", "disabled":
		return pterm.LogLevelDisabled, nil
	default:
		return pterm.LogLevelDisabled, fmt.Errorf("unknown log level %q", level)
	}
}

// loadDotEnv sets variables from path without overriding ones already set
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	return nil
}
