package effaudit

import (
	"os"
	"path/filepath"
	"testing"
)

func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_PATH", "ORACLE_PROVIDER", "ORACLE_MODEL", "ORACLE_TIMEOUT_SECONDS",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "DB_PATH", "VALIDATE_SCHEDULE",
		"BENCHMARK_CONCURRENCY", "ACCURACY_THRESHOLD", "SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OracleProvider != "none" {
		t.Fatalf("provider=%q want none", cfg.OracleProvider)
	}
	if cfg.OracleTimeout != 30 {
		t.Fatalf("timeout=%d want 30", cfg.OracleTimeout)
	}
	if cfg.DBPath != "./effaudit.db" {
		t.Fatalf("db path=%q", cfg.DBPath)
	}
	if cfg.BenchmarkConcurrency != defaultBenchmarkConcurrency {
		t.Fatalf("concurrency=%d", cfg.BenchmarkConcurrency)
	}
	if cfg.AccuracyThreshold != 0.80 {
		t.Fatalf("threshold=%f", cfg.AccuracyThreshold)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	isolateConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `oracle_provider: anthropic
anthropic_api_key: test-key
oracle_model: some-model
db_path: /tmp/audit.db
accuracy_threshold: 0.9
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OracleProvider != "anthropic" || cfg.AnthropicAPIKey != "test-key" {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
	if cfg.OracleModel != "some-model" || cfg.DBPath != "/tmp/audit.db" || cfg.AccuracyThreshold != 0.9 {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	isolateConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: /from/yaml.db\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DB_PATH", "/from/env.db")
	t.Setenv("BENCHMARK_CONCURRENCY", "9")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != "/from/env.db" {
		t.Fatalf("env should beat yaml, got %q", cfg.DBPath)
	}
	if cfg.BenchmarkConcurrency != 9 {
		t.Fatalf("concurrency=%d want 9", cfg.BenchmarkConcurrency)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"anthropic without key", map[string]string{"ORACLE_PROVIDER": "anthropic"}},
		{"openai without key", map[string]string{"ORACLE_PROVIDER": "openai"}},
		{"bad provider", map[string]string{"ORACLE_PROVIDER": "palantir"}},
		{"bad threshold", map[string]string{"ACCURACY_THRESHOLD": "1.5"}},
		{"bad concurrency", map[string]string{"BENCHMARK_CONCURRENCY": "-2"}},
		{"unparseable int", map[string]string{"ORACLE_TIMEOUT_SECONDS": "soon"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			isolateConfigEnv(t)
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
