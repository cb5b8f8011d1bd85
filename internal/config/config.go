// Package config manages persistent CLI configuration stored in ~/.config/wows/config.yaml.
// It provides read/write/list operations and masks sensitive values in output.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aviadshiber/wows/pkg/wows"
	"github.com/spf13/viper"
)

// Known configuration keys.
const (
	KeyApplicationID = "application_id"
	KeyRegion        = "region"
	KeyLanguage      = "language"
)

// sensitiveKeys are masked in list output.
var sensitiveKeys = map[string]bool{
	KeyApplicationID: true,
}

// knownKeys defines the valid configuration keys and their descriptions.
var knownKeys = map[string]string{
	KeyApplicationID: "Wargaming application ID",
	KeyRegion:        "Default region (na, eu, ru, asia)",
	KeyLanguage:      "Default response language (en, ru, de, ...)",
}

// Config wraps viper to manage wows configuration.
type Config struct {
	v        *viper.Viper
	filePath string
}

// Dir returns the configuration directory, ~/.config/wows.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, ".config", "wows"), nil
}

// New creates a Config that reads from ~/.config/wows/config.yaml.
// It creates the config directory if it does not exist.
func New() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	filePath := filepath.Join(dir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetConfigType("yaml")

	// Read existing config; ignore file-not-found since we create on first write.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return &Config{v: v, filePath: filePath}, nil
}

// Get returns the value for a configuration key.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// Set writes a configuration key-value pair and persists to disk.
func (c *Config) Set(key, value string) error {
	if _, ok := knownKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(KnownKeyNames(), ", "))
	}

	switch key {
	case KeyRegion:
		region, err := wows.ParseRegion(value)
		if err != nil {
			return err
		}
		value = region.String()
	case KeyLanguage:
		value = strings.ToLower(strings.TrimSpace(value))
	}

	c.v.Set(key, value)
	return c.write()
}

// List returns all set configuration entries as key-value pairs.
// Sensitive values are masked.
func (c *Config) List() []Entry {
	var entries []Entry
	for _, key := range KnownKeyNames() {
		val := c.v.GetString(key)
		if val == "" {
			continue
		}
		if sensitiveKeys[key] {
			val = mask(val)
		}
		entries = append(entries, Entry{Key: key, Value: val})
	}
	return entries
}

// Entry is a single configuration key-value pair.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// KnownKeyNames returns sorted known key names.
func KnownKeyNames() []string {
	return []string{KeyApplicationID, KeyLanguage, KeyRegion}
}

// Describe returns the description of a known key.
func Describe(key string) string {
	return knownKeys[key]
}

// FilePath returns the path to the configuration file.
func (c *Config) FilePath() string {
	return c.filePath
}

func (c *Config) write() error {
	return c.v.WriteConfigAs(c.filePath)
}

// mask shows the first 4 characters followed by "****".
func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
