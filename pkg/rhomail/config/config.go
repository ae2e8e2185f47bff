package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRelayHost = "smtp.gmail.com"
	DefaultRelayPort = 465
	DefaultDomain    = "runrho.dev"

	DefaultSubject = "Test from demo"
	DefaultBody    = "This is a test email sent during the Rho Cloud demo."
)

// Config holds the tunable parts of the tool. Credentials are deliberately
// not part of it; they come from the environment on every invocation.
type Config struct {
	RelayHost  string `yaml:"relay-host,omitempty"`
	RelayPort  int    `yaml:"relay-port,omitempty"`
	Domain     string `yaml:"domain,omitempty"`
	SenderName string `yaml:"sender-name,omitempty"`
}

func Default() Config {
	return Config{
		RelayHost: DefaultRelayHost,
		RelayPort: DefaultRelayPort,
		Domain:    DefaultDomain,
	}
}

// Load reads the config file at path. A missing file is not an error; the
// defaults apply. Unset fields in an existing file also fall back to the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}
	cfg := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.RelayHost == "" {
		cfg.RelayHost = DefaultRelayHost
	}
	if cfg.RelayPort == 0 {
		cfg.RelayPort = DefaultRelayPort
	}
	if cfg.Domain == "" {
		cfg.Domain = DefaultDomain
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, content, 0o600)
}

func (c *Config) Validate() error {
	if c.RelayHost == "" {
		return errors.New("relay host is required")
	}
	if c.RelayPort <= 0 || c.RelayPort > 65535 {
		return fmt.Errorf("relay port out of range: %d", c.RelayPort)
	}
	if c.Domain == "" {
		return errors.New("recipient domain is required")
	}
	return nil
}

// RecipientAddress derives the onboarding address for a handle. The handle
// is concatenated as-is; no syntax validation beyond presence happens here.
func (c *Config) RecipientAddress(handle string) string {
	return handle + "@" + c.Domain
}
