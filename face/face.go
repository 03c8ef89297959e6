package face

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/cardpress/roster"
)

// Config holds front-face rendering parameters.
type Config struct {
	// MaxFontSize is the starting point for the name fit search, in
	// pixels at 72 DPI.
	MaxFontSize float64

	// MinFontSize is the floor for the fit search.
	MinFontSize float64

	// InfoFontSize is the fixed size of the additional-info text.
	InfoFontSize float64

	// MarginMM is the horizontal text margin in card millimetres; it is
	// converted to pixels relative to a 90 mm card width.
	MarginMM float64

	// TextColor is used for both the name and the additional info.
	TextColor color.Color
}

// DefaultConfig returns the rendering defaults.
func DefaultConfig() Config {
	return Config{
		MaxFontSize:  300,
		MinFontSize:  8,
		InfoFontSize: 100,
		MarginMM:     5,
		TextColor:    color.NRGBA{R: 57, G: 171, B: 226, A: 255},
	}
}

// cardWidthMM is the physical card width the template maps onto; margins
// are scaled against it.
const cardWidthMM = 90

// Renderer draws front faces onto copies of a template image.
type Renderer struct {
	template image.Image
	font     *sfnt.Font
	cfg      Config
}

// NewRenderer loads the template PNG and the TTF font used for labels.
func NewRenderer(templatePath, fontPath string) (*Renderer, error) {
	return NewRendererWithConfig(templatePath, fontPath, DefaultConfig())
}

// NewRendererWithConfig is NewRenderer with custom rendering parameters.
func NewRendererWithConfig(templatePath, fontPath string, cfg Config) (*Renderer, error) {
	tf, err := os.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	defer tf.Close()

	template, err := png.Decode(tf)
	if err != nil {
		return nil, fmt.Errorf("decode template %s: %w", templatePath, err)
	}

	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", fontPath, err)
	}

	return &Renderer{template: template, font: fnt, cfg: cfg}, nil
}

// Render writes the front face for rec as a PNG at outPath. The caller
// is responsible for deleting the file.
func (r *Renderer) Render(rec roster.Record, outPath string) error {
	b := r.template.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(canvas, canvas.Bounds(), r.template, b.Min, xdraw.Src)

	w, h := b.Dx(), b.Dy()
	margin := int(r.cfg.MarginMM / cardWidthMM * float64(w))

	if err := r.drawName(canvas, shortName(rec.Name), w, h, margin); err != nil {
		return err
	}
	if rec.AdditionalInfo != "" {
		if err := r.drawInfo(canvas, rec.AdditionalInfo, w, h, margin); err != nil {
			return err
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create face file: %w", err)
	}
	if err := png.Encode(f, canvas); err != nil {
		f.Close()
		os.Remove(outPath)
		return fmt.Errorf("write face png: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("close face file: %w", err)
	}
	return nil
}

// drawName fits the label into the middle third of the template and
// draws it centered.
func (r *Renderer) drawName(dst *image.RGBA, label string, w, h, margin int) error {
	maxWidth := w - 2*margin
	maxHeight := h / 3

	fc, adv, err := r.fitFace(label, maxWidth, maxHeight)
	if err != nil {
		return err
	}
	defer fc.Close()

	m := fc.Metrics()
	x := (w - adv.Ceil()) / 2
	y := h/2 + m.Ascent.Ceil()/2

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(r.cfg.TextColor),
		Face: fc,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
	return nil
}

// drawInfo draws the additional-info text in the lower-right corner.
func (r *Renderer) drawInfo(dst *image.RGBA, info string, w, h, margin int) error {
	fc, err := r.newFace(r.cfg.InfoFontSize)
	if err != nil {
		return err
	}
	defer fc.Close()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(r.cfg.TextColor),
		Face: fc,
	}
	adv := d.MeasureString(info)
	m := fc.Metrics()
	d.Dot = fixed.P(w-adv.Ceil()-margin, h-m.Descent.Ceil()-margin)
	d.DrawString(info)
	return nil
}

// fitFace returns the largest face, at or below MaxFontSize, whose
// rendering of label fits within maxWidth and maxHeight, together with
// the measured advance at that size. The caller closes the face.
func (r *Renderer) fitFace(label string, maxWidth, maxHeight int) (font.Face, fixed.Int26_6, error) {
	size := r.cfg.MaxFontSize
	for {
		fc, err := r.newFace(size)
		if err != nil {
			return nil, 0, err
		}

		d := &font.Drawer{Face: fc}
		adv := d.MeasureString(label)
		m := fc.Metrics()
		height := (m.Ascent + m.Descent).Ceil()

		if adv.Ceil() <= maxWidth && height <= maxHeight || size <= r.cfg.MinFontSize {
			return fc, adv, nil
		}
		fc.Close()
		size--
	}
}

// newFace builds a font.Face at the given pixel size.
func (r *Renderer) newFace(size float64) (font.Face, error) {
	fc, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	return fc, nil
}

// shortName picks the label drawn on the front face: the second word of
// the full name when there is one, otherwise the whole name.
func shortName(name string) string {
	words := strings.Fields(name)
	if len(words) > 1 {
		return words[1]
	}
	return name
}
