package stopquote

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the calculator tunables.
type Config struct {
	// Downloads is the directory the brokerage exports land in, and where
	// summary files are written.
	Downloads string `yaml:"downloads"`
	// Pattern is the glob the auto mode uses to find export files.
	Pattern string `yaml:"pattern"`
	// StopPercent is the fraction of the last price the stop baseline is
	// taken at.
	StopPercent float64 `yaml:"stop_percent"`
	// GainGate is the unrealized gain (in percent, either direction) below
	// which no new stop is proposed for a stock without an open stop order.
	GainGate float64 `yaml:"gain_gate"`
}

func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Downloads:   filepath.Join(home, "Downloads"),
		Pattern:     "ExportData*.csv",
		StopPercent: 0.95,
		GainGate:    5,
	}
}

// DefaultConfigPath is where LoadConfig looks when no path is given.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".stopquote.yaml")
}

// LoadConfig reads the YAML config file and applies environment overrides
// (a .env file is honored first). A missing config file is not an error,
// defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot parse config %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// defaults
	default:
		return cfg, fmt.Errorf("cannot read config %q: %w", path, err)
	}

	_ = godotenv.Load()
	if v := os.Getenv("STOPQUOTE_DOWNLOADS"); v != "" {
		cfg.Downloads = v
	}
	if v := os.Getenv("STOPQUOTE_PATTERN"); v != "" {
		cfg.Pattern = v
	}
	if v := os.Getenv("STOPQUOTE_STOP_PERCENT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid STOPQUOTE_STOP_PERCENT %q: %w", v, err)
		}
		cfg.StopPercent = f
	}
	if v := os.Getenv("STOPQUOTE_GAIN_GATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid STOPQUOTE_GAIN_GATE %q: %w", v, err)
		}
		cfg.GainGate = f
	}
	return cfg, nil
}
