package effaudit

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config drives the hosting surface: which oracle backs the
// classifier, where audit history lands, and how the scheduled
// self-validation runs. The core analysis types work without it.
type Config struct {
	OracleProvider string `yaml:"oracle_provider"`
	OracleModel    string `yaml:"oracle_model"`
	OracleTimeout  int    `yaml:"oracle_timeout_seconds"`

	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	OpenAIAPIKey    string `yaml:"openai_api_key"`

	DBPath string `yaml:"db_path"`

	BenchmarkConcurrency int     `yaml:"benchmark_concurrency"`
	ValidateSchedule     string  `yaml:"validate_schedule"`
	AccuracyThreshold    float64 `yaml:"accuracy_threshold"`

	SlackBotToken  string `yaml:"slack_bot_token"`
	SlackChannelID string `yaml:"slack_channel_id"`
}

// LoadConfig reads config.yaml (or $CONFIG_PATH), applies env var
// overrides, fills defaults and validates. A missing file is fine;
// everything can come from the environment.
func LoadConfig() (Config, error) {
	var cfg Config

	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", configPath, err)
		}
		log.Printf("config loaded path=%s", configPath)
	}

	// Env vars override YAML values
	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}

	// Defaults
	if cfg.OracleProvider == "" {
		cfg.OracleProvider = "none"
	}
	if cfg.OracleTimeout == 0 {
		cfg.OracleTimeout = int(DefaultOracleTimeout.Seconds())
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./effaudit.db"
	}
	if cfg.BenchmarkConcurrency == 0 {
		cfg.BenchmarkConcurrency = defaultBenchmarkConcurrency
	}
	if cfg.AccuracyThreshold == 0 {
		cfg.AccuracyThreshold = 0.80
	}

	switch cfg.OracleProvider {
	case "none":
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return Config{}, fmt.Errorf("anthropic_api_key is required when oracle_provider=anthropic")
		}
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return Config{}, fmt.Errorf("openai_api_key is required when oracle_provider=openai")
		}
	default:
		return Config{}, fmt.Errorf("oracle_provider must be 'anthropic', 'openai' or 'none', got '%s'", cfg.OracleProvider)
	}

	if cfg.OracleTimeout < 1 {
		return Config{}, fmt.Errorf("invalid oracle_timeout_seconds '%d': must be >= 1", cfg.OracleTimeout)
	}
	if cfg.BenchmarkConcurrency < 1 {
		return Config{}, fmt.Errorf("invalid benchmark_concurrency '%d': must be >= 1", cfg.BenchmarkConcurrency)
	}
	if cfg.AccuracyThreshold < 0 || cfg.AccuracyThreshold > 1 {
		return Config{}, fmt.Errorf("invalid accuracy_threshold '%f': must be between 0 and 1", cfg.AccuracyThreshold)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	envOverride(&cfg.OracleProvider, "ORACLE_PROVIDER")
	envOverride(&cfg.OracleModel, "ORACLE_MODEL")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.OpenAIAPIKey, "OPENAI_API_KEY")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.ValidateSchedule, "VALIDATE_SCHEDULE")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.SlackChannelID, "SLACK_CHANNEL_ID")
	if err := envOverrideInt(&cfg.OracleTimeout, "ORACLE_TIMEOUT_SECONDS"); err != nil {
		return err
	}
	if err := envOverrideInt(&cfg.BenchmarkConcurrency, "BENCHMARK_CONCURRENCY"); err != nil {
		return err
	}
	return envOverrideFloat(&cfg.AccuracyThreshold, "ACCURACY_THRESHOLD")
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) error {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", envKey, val, err)
		}
		*field = parsed
	}
	return nil
}

func envOverrideFloat(field *float64, envKey string) error {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", envKey, val, err)
		}
		*field = parsed
	}
	return nil
}
