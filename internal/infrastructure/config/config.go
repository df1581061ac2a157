// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for matrix configuration.
	DefaultConfigDir = ".matrix"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Config holds static configuration (read-only after load).
type Config struct {
	Data     DataConfig     `yaml:"data,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	LLM      LLMConfig      `yaml:"llm,omitempty"`
	Embedder EmbedderConfig `yaml:"embedder,omitempty"`
	Qdrant   QdrantConfig   `yaml:"qdrant,omitempty"`
}

// DataConfig holds the paths of the three JSON datasets. Relative paths
// resolve against the invocation directory.
type DataConfig struct {
	Assets    string `yaml:"assets,omitempty"`
	Spaces    string `yaml:"spaces,omitempty"`
	Universes string `yaml:"universes,omitempty"`
}

// OutputConfig holds the prompt sink settings.
type OutputConfig struct {
	// File is where the composed brief is written.
	File string `yaml:"file,omitempty"`
	// Pager disables the pager when false even on a terminal.
	Pager *bool `yaml:"pager,omitempty"`
}

// LLMConfig holds configuration for the generative model provider.
type LLMConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
}

// EmbedderConfig holds configuration for the embedding provider.
type EmbedderConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
}

// QdrantConfig holds configuration for the Qdrant entity index.
type QdrantConfig struct {
	Host       string `yaml:"host,omitempty"`
	Port       int    `yaml:"port,omitempty"`
	Collection string `yaml:"collection,omitempty"`
	APIKey     string `yaml:"api_key,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Assets:    "assets.json",
			Spaces:    "spaces.json",
			Universes: "universes.json",
		},
		Output: OutputConfig{
			File: "prompt_out.txt",
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o-mini",
		},
		Embedder: EmbedderConfig{
			Provider: "openai",
			Model:    "text-embedding-3-small",
		},
		Qdrant: QdrantConfig{
			Host:       "localhost",
			Port:       6334,
			Collection: "matrix_entities",
		},
	}
}

// Load loads configuration from the .matrix directory in the given
// path. A missing config file is not an error: the datasets live next
// to the binary by default and the config only overrides that.
func Load(basePath string) (*Config, error) {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if c.LLM.APIKey == "" {
			c.LLM.APIKey = key
		}
		if c.Embedder.APIKey == "" {
			c.Embedder.APIKey = key
		}
	}
	if key := os.Getenv("QDRANT_API_KEY"); key != "" {
		if c.Qdrant.APIKey == "" {
			c.Qdrant.APIKey = key
		}
	}
}

// PagerEnabled reports whether the pager may be used.
func (c *Config) PagerEnabled() bool {
	if c.Output.Pager == nil {
		return true
	}
	return *c.Output.Pager
}

// AssetsPath returns the assets dataset path resolved against basePath.
func (c *Config) AssetsPath(basePath string) string {
	return resolvePath(basePath, c.Data.Assets)
}

// SpacesPath returns the spaces dataset path resolved against basePath.
func (c *Config) SpacesPath(basePath string) string {
	return resolvePath(basePath, c.Data.Spaces)
}

// UniversesPath returns the universes dataset path resolved against basePath.
func (c *Config) UniversesPath(basePath string) string {
	return resolvePath(basePath, c.Data.Universes)
}

// OutputPath returns the prompt output path resolved against basePath.
func (c *Config) OutputPath(basePath string) string {
	return resolvePath(basePath, c.Output.File)
}

func resolvePath(basePath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(basePath, p)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a matrix config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
