// Package config loads the pipeline configuration from an optional JSON
// file with environment variable fallback (.env supported).
package config

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the CLI and server need to assemble a pipeline.
type Config struct {
	// APIKeys are the completion API credentials, rotated by the gateway.
	APIKeys []string `json:"api_keys"`
	Model   string   `json:"model"`
	BaseURL string   `json:"base_url,omitempty"`

	OutputDir  string `json:"output_dir,omitempty"`
	ServerAddr string `json:"server_addr,omitempty"`
}

// Load reads the JSON config file when present and fills gaps from the
// environment: LLM_API_KEYS (comma-separated), LLM_MODEL, LLM_BASE_URL.
// A missing file is fine as long as the environment supplies keys + model.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, err
			}
		case !os.IsNotExist(err):
			return Config{}, err
		}
	}

	if len(cfg.APIKeys) == 0 {
		cfg.APIKeys = splitKeys(os.Getenv("LLM_API_KEYS"))
	}
	if cfg.Model == "" {
		cfg.Model = os.Getenv("LLM_MODEL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}

	if len(cfg.APIKeys) == 0 {
		return Config{}, errors.New("no api keys configured; set api_keys in config or LLM_API_KEYS")
	}
	if cfg.Model == "" {
		return Config{}, errors.New("no model configured; set model in config or LLM_MODEL")
	}
	return cfg, nil
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
