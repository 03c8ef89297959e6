package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"
)

var testStamp = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func buildSimpleDoc(t *testing.T, out string) {
	t.Helper()
	doc, err := NewDocument(Config{Timestamp: testStamp}, nil)
	if err != nil {
		t.Fatalf("NewDocument returned error: %v", err)
	}
	doc.AddPage()
	doc.TextCentered(105, 20, 24, "Alice Smith")
	doc.Text(15, 40, 8, "123456789012")
	doc.Frame(15, 7, 90, 50)
	if err := doc.SaveTo(out); err != nil {
		t.Fatalf("SaveTo returned error: %v", err)
	}
}

func TestDocument_SaveTo(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")
	buildSimpleDoc(t, out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty document")
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:8])
	}
}

func TestDocument_Deterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.pdf")
	second := filepath.Join(dir, "b.pdf")

	buildSimpleDoc(t, first)
	buildSimpleDoc(t, second)

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical documents produced different bytes")
	}
}

func TestNewDocument_BadFont(t *testing.T) {
	_, err := NewDocument(Config{FontPath: "no-such-font.ttf", Timestamp: testStamp}, nil)
	if err == nil {
		t.Error("expected error for missing font file")
	}
}

func TestNewDocument_UTF8Font(t *testing.T) {
	fontPath := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o644); err != nil {
		t.Fatalf("failed to write font: %v", err)
	}

	doc, err := NewDocument(Config{FontPath: fontPath, Timestamp: testStamp}, nil)
	if err != nil {
		t.Fatalf("NewDocument returned error: %v", err)
	}
	doc.AddPage()
	doc.TextCentered(105, 20, 24, "Иван Иванов")

	out := filepath.Join(t.TempDir(), "out.pdf")
	if err := doc.SaveTo(out); err != nil {
		t.Errorf("SaveTo returned error: %v", err)
	}
}

func TestDocument_ReporterFiresOnce(t *testing.T) {
	calls := 0
	doc, err := NewDocument(Config{Timestamp: testStamp}, func(error) { calls++ })
	if err != nil {
		t.Fatalf("NewDocument returned error: %v", err)
	}

	doc.AddPage()
	doc.ImageFile("no-such-image.png", 10, 10, 90, 28)
	doc.ImageFile("still-missing.png", 10, 50, 90, 28)

	if calls != 1 {
		t.Errorf("reporter called %d times, want 1", calls)
	}

	// The recorded error halts the run at serialization time.
	if err := doc.SaveTo(filepath.Join(t.TempDir(), "out.pdf")); err == nil {
		t.Error("expected SaveTo to surface the recorded renderer error")
	}
}

func TestDocument_FitTextSize(t *testing.T) {
	doc, err := NewDocument(Config{Timestamp: testStamp}, nil)
	if err != nil {
		t.Fatalf("NewDocument returned error: %v", err)
	}

	short := doc.FitTextSize("Ann", 80, 24)
	if short != 24 {
		t.Errorf("short name should keep the max size, got %f", short)
	}

	long := doc.FitTextSize("An Extraordinarily Long Name That Cannot Fit", 80, 24)
	if long >= 24 {
		t.Errorf("long name should shrink below max size, got %f", long)
	}
	if long <= 4 {
		t.Errorf("fit size should stay above the floor, got %f", long)
	}
}
