// Package config loads runtime configuration from the environment, with
// optional .env file support and sane defaults for every value.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the card generator.
type Config struct {
	// InputPath is the roster file to read.
	InputPath string

	// OutputPath is where the finished PDF is written.
	OutputPath string

	// TemplatePath is the optional front-face background image.
	TemplatePath string

	// FontPath is the optional TTF font for card text.
	FontPath string

	// WorkDir holds transient raster files; defaults to the system
	// temporary directory.
	WorkDir string

	// Encoding is the roster file encoding: "utf-8" or "windows-1251".
	Encoding string

	// NormalizePayload pads/truncates barcode payloads to 12 digits.
	NormalizePayload bool

	// Debug enables verbose logging.
	Debug bool
}

// Load reads configuration from a .env file (if present) and the
// environment, applies defaults, and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load() // best effort; absence of .env is not an error

	cfg := &Config{
		InputPath:        getenv("CARDPRESS_INPUT", "data/names.csv"),
		OutputPath:       getenv("CARDPRESS_OUTPUT", "cards.pdf"),
		TemplatePath:     getenv("CARDPRESS_TEMPLATE", ""),
		FontPath:         getenv("CARDPRESS_FONT", ""),
		WorkDir:          getenv("CARDPRESS_WORKDIR", os.TempDir()),
		Encoding:         getenv("CARDPRESS_ENCODING", "utf-8"),
		NormalizePayload: getenvBool("CARDPRESS_NORMALIZE", false),
		Debug:            getenvBool("CARDPRESS_DEBUG", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks invariants that would otherwise surface as confusing
// failures deep inside the pipeline.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	switch c.Encoding {
	case "utf-8", "windows-1251":
	default:
		return fmt.Errorf("unsupported encoding %q", c.Encoding)
	}
	if c.TemplatePath != "" && c.FontPath == "" {
		return fmt.Errorf("a template requires a font file")
	}
	return nil
}

// getenv returns the environment value for key, or fallback when unset
// or empty.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getenvBool parses the environment value for key as a boolean.
func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
