// Package config provides configuration management for the GenPad application.
// Settings start from built-in defaults, are overlaid by the saved config file in
// the vault directory, and finally by environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// UI color constants for the TUI (Terminal User Interface)
const (
	// MainColorForeground is the primary text color (ANSI color code)
	MainColorForeground = "205"
	// MainColorBackground is the primary background color (ANSI color code)
	MainColorBackground = "16"
	// MainColorBackgroundMute is a muted background color (ANSI color code)
	MainColorBackgroundMute = "241"
	// ErrorColor is used for failed generations (ANSI color code)
	ErrorColor = "196"
)

// Supported generation backends.
const (
	BackendGemini = "gemini"
	BackendOllama = "ollama"
	BackendOpenAI = "openai"
)

// Backends lists the supported backends in the order the options screen cycles them.
var Backends = []string{BackendGemini, BackendOllama, BackendOpenAI}

const (
	defaultVaultDir    = ".genpad"
	configFileName     = "config.json"
	defaultBackend     = BackendGemini
	defaultTemperature = 1.0
	defaultOllamaURL   = "http://localhost:11434"

	// MinTemperature and MaxTemperature bound the sampling temperature.
	MinTemperature = 0.0
	MaxTemperature = 2.0
)

var defaultModels = map[string]string{
	BackendGemini: "gemini-2.5-flash",
	BackendOllama: "gemma3:1b",
	BackendOpenAI: "gpt-4o-mini",
}

// Config holds everything needed to build a generator.
// APIKey and VaultPath are never written to the config file.
type Config struct {
	Backend     string  `json:"backend"`
	ModelName   string  `json:"model_name"`
	Temperature float64 `json:"temperature"`
	APIURL      string  `json:"api_url,omitempty"`

	APIKey    string `json:"-"`
	VaultPath string `json:"-"`
}

// getDefaultVaultPath returns the default path for the vault directory.
// It uses the user's home directory if available, otherwise falls back to the current directory.
func getDefaultVaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./" + defaultVaultDir
	}
	return filepath.Join(home, defaultVaultDir)
}

// VaultPath returns the path to the application's data directory.
// It checks the GENPAD_VAULT environment variable first, then falls back to the default.
func VaultPath() string {
	if v := os.Getenv("GENPAD_VAULT"); v != "" {
		return v
	}
	return getDefaultVaultPath()
}

// IsBackend reports whether name is a supported backend.
func IsBackend(name string) bool {
	_, ok := defaultModels[name]
	return ok
}

// DefaultModel returns the model used for a backend when none is configured.
func DefaultModel(backend string) string {
	return defaultModels[backend]
}

// DefaultAPIURL returns the endpoint used for a backend when none is configured.
// Hosted backends return "" and let their SDK pick the endpoint.
func DefaultAPIURL(backend string) string {
	if backend == BackendOllama {
		return defaultOllamaURL
	}
	return ""
}

// APIKey reads the credential for a backend from the environment.
func APIKey(backend string) string {
	switch backend {
	case BackendGemini:
		if v := os.Getenv("GEMINI_API_KEY"); v != "" {
			return v
		}
		return os.Getenv("GOOGLE_API_KEY")
	case BackendOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	}
	return ""
}

// ClampTemperature limits t to [MinTemperature, MaxTemperature].
func ClampTemperature(t float64) float64 {
	if t < MinTemperature {
		return MinTemperature
	}
	if t > MaxTemperature {
		return MaxTemperature
	}
	return t
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend:     defaultBackend,
		ModelName:   DefaultModel(defaultBackend),
		Temperature: defaultTemperature,
		APIURL:      DefaultAPIURL(defaultBackend),
		APIKey:      APIKey(defaultBackend),
		VaultPath:   VaultPath(),
	}
}

// WithBackend switches to another backend, resetting model, endpoint and key
// to that backend's defaults.
func (c Config) WithBackend(backend string) Config {
	c.Backend = backend
	c.ModelName = DefaultModel(backend)
	c.APIURL = DefaultAPIURL(backend)
	c.APIKey = APIKey(backend)
	return c
}

// Path returns the location of the config file inside the vault.
func (c Config) Path() string {
	return filepath.Join(c.VaultPath, configFileName)
}

// Validate checks that the backend is known and a model is set.
func (c Config) Validate() error {
	if !IsBackend(c.Backend) {
		return fmt.Errorf("unknown backend %q (want one of %s)", c.Backend, strings.Join(Backends, ", "))
	}
	if strings.TrimSpace(c.ModelName) == "" {
		return errors.New("model name is empty")
	}
	return nil
}

// LoadEnvFile loads KEY=VALUE pairs from the given .env files (".env" when
// none are given) without overriding variables already set. Missing files
// are ignored.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load builds the effective configuration: defaults, then the saved file, then
// GENPAD_* environment variables.
func Load() (Config, error) {
	cfg := Default()

	saved, err := readFile(cfg.Path())
	if err != nil {
		return Config{}, err
	}
	if saved != nil {
		cfg = overlay(cfg, *saved)
	}

	cfg = applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes backend, model, temperature and API URL to the vault config file.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	configPath := cfg.Path()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var saved Config
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &saved, nil
}

func overlay(cfg, saved Config) Config {
	if saved.Backend != "" && saved.Backend != cfg.Backend {
		cfg = cfg.WithBackend(saved.Backend)
	}
	if saved.ModelName != "" {
		cfg.ModelName = saved.ModelName
	}
	if saved.APIURL != "" {
		cfg.APIURL = saved.APIURL
	}
	cfg.Temperature = ClampTemperature(saved.Temperature)
	return cfg
}

func applyEnv(cfg Config) Config {
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("GENPAD_BACKEND"))); v != "" && v != cfg.Backend {
		cfg = cfg.WithBackend(v)
	}
	if v := strings.TrimSpace(os.Getenv("GENPAD_MODEL")); v != "" {
		cfg.ModelName = v
	}
	if v := strings.TrimSpace(os.Getenv("GENPAD_API_URL")); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv("GENPAD_TEMPERATURE")); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			slog.Warn("invalid GENPAD_TEMPERATURE, keeping current value", "value", v, "temperature", cfg.Temperature)
		} else {
			cfg.Temperature = ClampTemperature(t)
		}
	}
	return cfg
}
