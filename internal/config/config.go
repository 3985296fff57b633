package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/sitediary/internal/util"
	"gopkg.in/yaml.v3"
)

// SecretEnv holds a plain shared secret; it takes precedence over password_hash.
const SecretEnv = "SITEDIARY_PASSWORD"

var ErrNoSecret = errors.New("no access secret configured (set password_hash or " + SecretEnv + ")")

// Config is the runtime configuration read from config.yaml.
type Config struct {
	// PasswordHash is the bcrypt hash of the shared access secret.
	PasswordHash string `yaml:"password_hash"`
	SavesDir     string `yaml:"saves_dir"`
	ReportsDir   string `yaml:"reports_dir"`
	LogFile      string `yaml:"log_file"`
	// Layout is "table" or "daily".
	Layout string `yaml:"layout"`
	// Theme names the TUI colour theme ("default" or "dracula").
	Theme string `yaml:"theme"`
	Debug bool   `yaml:"debug"`
}

func DefaultConfig() *Config {
	dataDir := util.DataDir(AppName)
	return &Config{
		SavesDir:   filepath.Join(dataDir, "saves"),
		ReportsDir: util.ReportsDir(AppName),
		LogFile:    filepath.Join(dataDir, LogFileName),
		Layout:     "table",
		Theme:      "default",
	}
}

func DefaultConfigPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.applyEnvOverrides()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if secret := strings.TrimSpace(os.Getenv(SecretEnv)); secret != "" {
		hash, err := util.HashSecret(secret)
		if err != nil {
			return err
		}
		c.PasswordHash = hash
	}
	return nil
}

// Validate checks the fields that cannot be defaulted.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PasswordHash) == "" {
		return ErrNoSecret
	}
	if c.Layout != "table" && c.Layout != "daily" {
		return fmt.Errorf("invalid layout %q (want table or daily)", c.Layout)
	}
	if c.SavesDir == "" {
		return fmt.Errorf("saves_dir must not be empty")
	}
	if c.ReportsDir == "" {
		return fmt.Errorf("reports_dir must not be empty")
	}
	return nil
}
