package face

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/tsawler/cardpress/roster"
)

// writeTestAssets writes a plain template PNG and a real TTF font into a
// temp dir and returns their paths.
func writeTestAssets(t *testing.T) (templatePath, fontPath string) {
	t.Helper()
	dir := t.TempDir()

	tmpl := image.NewRGBA(image.Rect(0, 0, 400, 222))
	for y := 0; y < 222; y++ {
		for x := 0; x < 400; x++ {
			tmpl.Set(x, y, color.NRGBA{R: 240, G: 240, B: 240, A: 255})
		}
	}
	templatePath = filepath.Join(dir, "face.png")
	f, err := os.Create(templatePath)
	if err != nil {
		t.Fatalf("failed to create template: %v", err)
	}
	if err := png.Encode(f, tmpl); err != nil {
		t.Fatalf("failed to encode template: %v", err)
	}
	f.Close()

	fontPath = filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o644); err != nil {
		t.Fatalf("failed to write font: %v", err)
	}
	return templatePath, fontPath
}

func TestNewRenderer_MissingAssets(t *testing.T) {
	templatePath, fontPath := writeTestAssets(t)

	if _, err := NewRenderer("nope.png", fontPath); err == nil {
		t.Error("expected error for missing template")
	}
	if _, err := NewRenderer(templatePath, "nope.ttf"); err == nil {
		t.Error("expected error for missing font")
	}
}

func TestRender_ProducesTemplateSizedPNG(t *testing.T) {
	templatePath, fontPath := writeTestAssets(t)

	r, err := NewRenderer(templatePath, fontPath)
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}

	out := filepath.Join(t.TempDir(), "front_0.png")
	rec := roster.Record{Name: "Alice Smith", Number: "123456789012", AdditionalInfo: "sales"}
	if err := r.Render(rec, out); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("expected face file to exist: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 222 {
		t.Errorf("face size = %dx%d, want template size 400x222",
			img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRender_LongNameStillFits(t *testing.T) {
	templatePath, fontPath := writeTestAssets(t)

	r, err := NewRenderer(templatePath, fontPath)
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}

	out := filepath.Join(t.TempDir(), "front_0.png")
	rec := roster.Record{Name: "X Maximiliana-Konstantinopolskaya"}
	if err := r.Render(rec, out); err != nil {
		t.Errorf("Render returned error for long name: %v", err)
	}
}

func TestShortName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Alice Smith", "Smith"},
		{"Cher", "Cher"},
		{"Anna Maria Jones", "Maria"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shortName(tt.name); got != tt.want {
			t.Errorf("shortName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
