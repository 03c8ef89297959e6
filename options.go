package cardpress

import (
	"time"

	"github.com/tsawler/cardpress/roster"
	"github.com/tsawler/cardpress/symbol"
)

// GenerateOptions holds configuration for card sheet generation.
type GenerateOptions struct {
	// Asset paths
	fontPath     string
	templatePath string

	// Transient raster files are created and deleted here.
	workDir string

	// Input decoding
	encoding roster.Encoding

	// Barcode payload handling
	normalizePayload bool

	// Document timestamp; fixed so identical runs are byte-identical.
	timestamp time.Time
}

// defaultTimestamp keeps output reproducible across runs. Callers that
// want real dates in the document metadata set one explicitly.
var defaultTimestamp = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// defaultOptions returns the default generation options.
func defaultOptions() GenerateOptions {
	return GenerateOptions{
		fontPath:         "",
		templatePath:     "",
		workDir:          "",
		encoding:         roster.UTF8,
		normalizePayload: false,
		timestamp:        defaultTimestamp,
	}
}

// clone creates a copy of GenerateOptions.
func (o GenerateOptions) clone() GenerateOptions {
	return o
}

// symbolConfig maps the options onto the barcode emitter configuration.
func (o GenerateOptions) symbolConfig() symbol.Config {
	cfg := symbol.DefaultConfig()
	cfg.Normalize = o.normalizePayload
	return cfg
}
