package symbol

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/ean"
	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/cardpress/checksum"
)

// Config holds barcode rendering geometry and payload handling.
type Config struct {
	// Width and Height are the scaled symbol size in pixels, before the
	// quiet zone is added.
	Width  int
	Height int

	// QuietZone is the white margin in pixels added on all sides.
	QuietZone int

	// Normalize forces the payload to exactly 12 digits before the check
	// digit is appended: longer numbers are truncated, shorter ones are
	// right-padded with zeros. When false the payload passes through
	// unchanged and the symbology collaborator decides validity.
	Normalize bool
}

// DefaultConfig returns the default rendering geometry.
func DefaultConfig() Config {
	return Config{
		Width:     360,
		Height:    120,
		QuietZone: 12,
		Normalize: false,
	}
}

// Emitter renders EAN-13 symbols for record numbers.
type Emitter struct {
	cfg Config
}

// NewEmitter creates an Emitter with the default configuration.
func NewEmitter() *Emitter {
	return NewEmitterWithConfig(DefaultConfig())
}

// NewEmitterWithConfig creates an Emitter with a custom configuration.
func NewEmitterWithConfig(cfg Config) *Emitter {
	return &Emitter{cfg: cfg}
}

// Emit writes a PNG at outPath encoding number plus its check digit as
// an EAN-13 symbol. The caller is responsible for deleting the file. On
// error no file is left behind.
func (e *Emitter) Emit(number, outPath string) error {
	payload, err := e.payload(number)
	if err != nil {
		return err
	}

	code, err := ean.Encode(payload)
	if err != nil {
		return fmt.Errorf("encode ean-13 %q: %w", payload, err)
	}

	scaled, err := barcode.Scale(code, e.cfg.Width, e.cfg.Height)
	if err != nil {
		return fmt.Errorf("scale barcode: %w", err)
	}

	img := withQuietZone(scaled, e.cfg.QuietZone)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create barcode file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(outPath)
		return fmt.Errorf("write barcode png: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("close barcode file: %w", err)
	}
	return nil
}

// payload returns the full symbol payload: the (optionally normalized)
// number with its check digit appended.
func (e *Emitter) payload(number string) (string, error) {
	n := number
	if e.cfg.Normalize {
		switch {
		case len(n) > 12:
			n = n[:12]
		case len(n) < 12:
			n += strings.Repeat("0", 12-len(n))
		}
	}

	digit, err := checksum.Digit(n)
	if err != nil {
		return "", fmt.Errorf("check digit for %q: %w", number, err)
	}
	return n + digit, nil
}

// withQuietZone composites the symbol onto a white canvas with margin
// pixels of padding on every side.
func withQuietZone(src image.Image, margin int) image.Image {
	if margin <= 0 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*margin, b.Dy()+2*margin))
	xdraw.Draw(dst, dst.Bounds(), image.White, image.Point{}, xdraw.Src)
	xdraw.Draw(dst, image.Rect(margin, margin, margin+b.Dx(), margin+b.Dy()), src, b.Min, xdraw.Src)
	return dst
}
