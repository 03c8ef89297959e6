package symbol

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEmit_WritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "barcode_123456789012.png")

	em := NewEmitter()
	if err := em.Emit("123456789012", out); err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("expected barcode file to exist: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}

	cfg := DefaultConfig()
	wantW := cfg.Width + 2*cfg.QuietZone
	wantH := cfg.Height + 2*cfg.QuietZone
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("image size = %dx%d, want %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantH)
	}

	// The quiet zone corner must be white.
	r, g, b, _ := img.At(0, 0).RGBA()
	white := color.White
	wr, wg, wb, _ := white.RGBA()
	if r != wr || g != wg || b != wb {
		t.Errorf("quiet zone corner = %v, expected white", img.At(0, 0))
	}
}

func TestEmit_InvalidPayload(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name   string
		number string
	}{
		{"too short", "123"},
		{"too long", "12345678901234"},
		{"non-digit", "12345678901x"},
	}

	em := NewEmitter()
	for _, tc := range cases {
		out := filepath.Join(dir, "bad.png")
		if err := em.Emit(tc.number, out); err == nil {
			t.Errorf("%s: expected error for %q", tc.name, tc.number)
		}
		if _, err := os.Stat(out); err == nil {
			t.Errorf("%s: no file should be left behind on failure", tc.name)
		}
	}
}

func TestEmit_Normalize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normalize = true
	em := NewEmitterWithConfig(cfg)

	dir := t.TempDir()

	short := filepath.Join(dir, "short.png")
	if err := em.Emit("123", short); err != nil {
		t.Errorf("Emit with short normalized payload returned error: %v", err)
	}

	long := filepath.Join(dir, "long.png")
	if err := em.Emit("12345678901234", long); err != nil {
		t.Errorf("Emit with long normalized payload returned error: %v", err)
	}
}

func TestPayload_AppendsCheckDigit(t *testing.T) {
	em := NewEmitter()
	got, err := em.payload("123456789012")
	if err != nil {
		t.Fatalf("payload returned error: %v", err)
	}
	if got != "1234567890128" {
		t.Errorf("payload = %q, want %q", got, "1234567890128")
	}
}

func TestPayload_NormalizeIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normalize = true
	em := NewEmitterWithConfig(cfg)

	first, err := em.payload("99")
	if err != nil {
		t.Fatalf("payload returned error: %v", err)
	}
	second, err := em.payload("99")
	if err != nil {
		t.Fatalf("payload returned error: %v", err)
	}

	if first != second {
		t.Errorf("normalized payload not deterministic: %q vs %q", first, second)
	}
	if len(first) != 13 {
		t.Errorf("normalized payload length = %d, want 13", len(first))
	}
}
