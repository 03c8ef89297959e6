package render

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Config holds document-wide settings.
type Config struct {
	// FontPath is an optional TTF file used for all text. When empty the
	// built-in Helvetica core font is used (sufficient for ASCII labels;
	// non-Latin names need a real font file).
	FontPath string

	// Timestamp is written as the document creation and modification
	// date. A fixed value makes repeated runs byte-identical.
	Timestamp time.Time
}

// Reporter receives renderer-internal errors as they first appear.
type Reporter func(err error)

// customFamily is the font family name registered for Config.FontPath.
const customFamily = "cardfont"

// Document is a single PDF document accumulated in memory and written
// exactly once by SaveTo. All coordinates are millimetres, origin at the
// top-left of the page.
type Document struct {
	pdf      *fpdf.Fpdf
	family   string
	report   Reporter
	reported bool
}

// NewDocument creates an empty A4 portrait document. The reporter may be
// nil. A font path that cannot be loaded is reported immediately as an
// error.
func NewDocument(cfg Config, report Reporter) (*Document, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// An empty font directory keeps fpdf from rewriting FontPath: the
	// default "." is path.Join'ed onto it, which strips the leading
	// separator from absolute paths.
	pdf.SetFontLocation("")
	pdf.SetCreationDate(cfg.Timestamp)
	pdf.SetModificationDate(cfg.Timestamp)

	family := "Helvetica"
	if cfg.FontPath != "" {
		family = customFamily
		pdf.AddUTF8Font(family, "", cfg.FontPath)
	}
	// Font registration is lazy in some paths; force a first use so a
	// broken font file fails here, not in the middle of a page.
	pdf.SetFont(family, "", 12)
	if pdf.Err() {
		return nil, fmt.Errorf("load font %q: %w", cfg.FontPath, pdf.Error())
	}

	if report == nil {
		report = func(error) {}
	}
	return &Document{pdf: pdf, family: family, report: report}, nil
}

// AddPage appends a new empty page and makes it current.
func (d *Document) AddPage() {
	d.pdf.AddPage()
	d.check()
}

// Text draws s with its left edge at x and its baseline at y.
func (d *Document) Text(x, y, size float64, s string) {
	d.pdf.SetFont(d.family, "", size)
	d.pdf.Text(x, y, s)
	d.check()
}

// TextCentered draws s horizontally centered on cx with its baseline at y.
func (d *Document) TextCentered(cx, y, size float64, s string) {
	d.pdf.SetFont(d.family, "", size)
	w := d.pdf.GetStringWidth(s)
	d.pdf.Text(cx-w/2, y, s)
	d.check()
}

// FitTextSize returns the largest font size, at or below maxSize, at
// which s is no wider than maxWidth millimetres.
func (d *Document) FitTextSize(s string, maxWidth, maxSize float64) float64 {
	size := maxSize
	for size > 4 {
		d.pdf.SetFont(d.family, "", size)
		if d.pdf.GetStringWidth(s) <= maxWidth {
			break
		}
		size--
	}
	d.check()
	return size
}

// Frame draws an unfilled black rectangle.
func (d *Document) Frame(x, y, w, h float64) {
	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.Rect(x, y, w, h, "D")
	d.check()
}

// ImageFile draws the PNG at path into the given box. The file's pixels
// are copied into the document during this call, so the caller may
// delete the file immediately afterwards.
func (d *Document) ImageFile(path string, x, y, w, h float64) {
	d.pdf.ImageOptions(path, x, y, w, h, false,
		fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	d.check()
}

// Err returns the writer's recorded internal error, if any.
func (d *Document) Err() error {
	if d.pdf.Err() {
		return d.pdf.Error()
	}
	return nil
}

// SaveTo serializes the document to path, overwriting any existing file.
// It must be called exactly once; the document is closed afterwards.
func (d *Document) SaveTo(path string) error {
	if err := d.Err(); err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write document %s: %w", path, err)
	}
	return nil
}

// check forwards the writer's internal error to the reporter the first
// time it appears. Later drawing calls are already no-ops at that point.
func (d *Document) check() {
	if d.pdf.Err() && !d.reported {
		d.reported = true
		d.report(d.pdf.Error())
	}
}
