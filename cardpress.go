// Package cardpress generates printable card sheets: for every record in
// a delimited input file it renders a name label and an EAN-13 barcode
// (record number plus computed check digit) onto a fixed card grid, and
// writes a single PDF.
//
// Basic usage:
//
//	err := cardpress.FromCSV("names.csv").WritePDF("cards.pdf")
//
// With options:
//
//	err := cardpress.FromCSV("names.csv").
//	    Font("font.ttf").
//	    Template("face.png").
//	    Logger(logger).
//	    WritePDF("cards.pdf")
//
// Each configuration method returns a new Generator instance, making
// chains side-effect free until WritePDF runs the pipeline.
//
// # Pipeline
//
// WritePDF is a straight line: load records, then per record compute the
// check digit, emit a transient barcode raster, draw it, and delete the
// raster; finally serialize the document once. One bad record aborts the
// whole run; no output file is written on failure and no transient file
// outlives its record.
//
// # Failure Taxonomy
//
// Failures are classified with exported sentinels matched via
// [errors.Is]: [ErrInputNotFound], [ErrFontLoad], [ErrEncode],
// [ErrRenderer], [ErrWrite].
package cardpress

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/cardpress/face"
	"github.com/tsawler/cardpress/layout"
	"github.com/tsawler/cardpress/render"
	"github.com/tsawler/cardpress/roster"
	"github.com/tsawler/cardpress/symbol"
)

// Failure sentinels. Concrete causes are wrapped alongside them, so both
// errors.Is(err, cardpress.ErrEncode) and the collaborator's message
// survive.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrFontLoad      = errors.New("font load failed")
	ErrEncode        = errors.New("barcode encoding failed")
	ErrRenderer      = errors.New("renderer failure")
	ErrWrite         = errors.New("document write failed")
)

// Card geometry in millimetres, relative to the card's top-left corner.
const (
	textMarginMM    = 5
	nameBaselineMM  = 12
	nameMaxSizePt   = 24
	barcodeInsetMM  = 4
	barcodeTopMM    = 16
	barcodeHeightMM = 26
	numberSizePt    = 8
)

// Generator provides a fluent interface for building card sheets. Each
// configuration method returns a new Generator instance.
type Generator struct {
	csvPath string
	opts    GenerateOptions
	logger  *zap.Logger
}

// FromCSV starts a Generator reading records from the file at path.
func FromCSV(path string) *Generator {
	return &Generator{
		csvPath: path,
		opts:    defaultOptions(),
		logger:  zap.NewNop(),
	}
}

// clone creates a copy of the Generator with copied options.
func (g *Generator) clone() *Generator {
	return &Generator{
		csvPath: g.csvPath,
		opts:    g.opts.clone(),
		logger:  g.logger,
	}
}

// Font sets the TTF font file used for all card text. Without it the
// built-in Helvetica core font is used, which only covers ASCII labels.
func (g *Generator) Font(path string) *Generator {
	ng := g.clone()
	ng.opts.fontPath = path
	return ng
}

// Template sets the front-face background image. When set, front-side
// sheets are generated ahead of the barcode sheets; without it only the
// barcode sheets are produced.
func (g *Generator) Template(path string) *Generator {
	ng := g.clone()
	ng.opts.templatePath = path
	return ng
}

// WorkDir sets the directory for transient raster files. Defaults to the
// system temporary directory.
func (g *Generator) WorkDir(dir string) *Generator {
	ng := g.clone()
	ng.opts.workDir = dir
	return ng
}

// Encoding sets the input file encoding (default UTF-8 with BOM support).
func (g *Generator) Encoding(enc roster.Encoding) *Generator {
	ng := g.clone()
	ng.opts.encoding = enc
	return ng
}

// NormalizePayload forces barcode payloads to 12 digits (truncating or
// zero-padding) instead of passing them through for the symbology to
// validate.
func (g *Generator) NormalizePayload() *Generator {
	ng := g.clone()
	ng.opts.normalizePayload = true
	return ng
}

// Timestamp sets the document creation/modification date. The default is
// a fixed date so identical runs produce byte-identical documents.
func (g *Generator) Timestamp(t time.Time) *Generator {
	ng := g.clone()
	ng.opts.timestamp = t
	return ng
}

// Logger attaches a logger to the pipeline. Defaults to a no-op logger.
func (g *Generator) Logger(l *zap.Logger) *Generator {
	ng := g.clone()
	ng.logger = l
	return ng
}

// WritePDF runs the whole pipeline and writes the finished document to
// outPath, overwriting any existing file. Any failure aborts the run
// before the output file is created.
func (g *Generator) WritePDF(outPath string) error {
	records, err := roster.LoadWithEncoding(g.csvPath, g.opts.encoding)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return err
	}
	g.logger.Info("records loaded",
		zap.String("path", g.csvPath), zap.Int("count", len(records)))

	doc, err := render.NewDocument(render.Config{
		FontPath:  g.opts.fontPath,
		Timestamp: g.opts.timestamp,
	}, func(rerr error) {
		g.logger.Error("renderer error", zap.Error(rerr))
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFontLoad, err)
	}

	grid := layout.NewGrid()
	workDir := g.opts.workDir
	if workDir == "" {
		workDir = os.TempDir()
	}

	if g.opts.templatePath != "" {
		if err := g.frontPages(doc, grid, records, workDir); err != nil {
			return err
		}
	}
	if err := g.barcodePages(doc, grid, records, workDir); err != nil {
		return err
	}

	if err := doc.SaveTo(outPath); err != nil {
		if doc.Err() != nil {
			return fmt.Errorf("%w: %w", ErrRenderer, err)
		}
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	g.logger.Info("document written", zap.String("path", outPath))
	return nil
}

// frontPages renders the template-based front sides, one grid slot per
// record in input order.
func (g *Generator) frontPages(doc *render.Document, grid *layout.Grid, records []roster.Record, workDir string) error {
	if g.opts.fontPath == "" {
		return fmt.Errorf("%w: front faces require a font file", ErrFontLoad)
	}
	renderer, err := face.NewRenderer(g.opts.templatePath, g.opts.fontPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFontLoad, err)
	}

	doc.AddPage()
	page := 0
	for i, rec := range records {
		slot := grid.Slot(i)
		if slot.Page > page {
			doc.AddPage()
			page = slot.Page
		}

		rasterPath := filepath.Join(workDir, fmt.Sprintf("front_%d.png", i))
		if err := g.drawFront(doc, renderer, rec, slot, grid, rasterPath); err != nil {
			return err
		}
		g.logger.Debug("front face drawn",
			zap.Int("record", i), zap.String("name", rec.Name))
	}
	return nil
}

// drawFront renders one front-face raster, draws it into its slot, and
// deletes the raster even when drawing failed.
func (g *Generator) drawFront(doc *render.Document, renderer *face.Renderer, rec roster.Record, slot layout.Slot, grid *layout.Grid, rasterPath string) error {
	if err := renderer.Render(rec, rasterPath); err != nil {
		return fmt.Errorf("%w: front face for %q: %w", ErrRenderer, rec.Name, err)
	}
	defer os.Remove(rasterPath)

	doc.ImageFile(rasterPath, slot.X, slot.Y, grid.CardWidth(), grid.CardHeight())
	return nil
}

// barcodePages renders the barcode sides on mirrored grid slots so they
// align with the front sides under duplex printing.
func (g *Generator) barcodePages(doc *render.Document, grid *layout.Grid, records []roster.Record, workDir string) error {
	emitter := symbol.NewEmitterWithConfig(g.opts.symbolConfig())

	doc.AddPage()
	page := 0
	for i, rec := range records {
		slot := grid.MirroredSlot(i)
		if slot.Page > page {
			doc.AddPage()
			page = slot.Page
		}

		rasterPath := filepath.Join(workDir, "barcode_"+rec.Number+".png")
		if err := g.drawCard(doc, emitter, rec, slot, grid, rasterPath); err != nil {
			return err
		}
		g.logger.Debug("card drawn",
			zap.Int("record", i), zap.String("number", rec.Number))
	}
	return nil
}

// drawCard draws one card: frame, fitted name, barcode raster, and the
// number under the symbol. The transient raster is deleted even when
// drawing failed.
func (g *Generator) drawCard(doc *render.Document, emitter *symbol.Emitter, rec roster.Record, slot layout.Slot, grid *layout.Grid, rasterPath string) error {
	cardW, cardH := grid.CardWidth(), grid.CardHeight()

	doc.Frame(slot.X, slot.Y, cardW, cardH)

	size := doc.FitTextSize(rec.Name, cardW-2*textMarginMM, nameMaxSizePt)
	doc.TextCentered(slot.X+cardW/2, slot.Y+nameBaselineMM, size, rec.Name)

	if err := emitter.Emit(rec.Number, rasterPath); err != nil {
		return fmt.Errorf("%w: record %q: %w", ErrEncode, rec.Number, err)
	}
	defer os.Remove(rasterPath)

	doc.ImageFile(rasterPath,
		slot.X+barcodeInsetMM, slot.Y+barcodeTopMM,
		cardW-2*barcodeInsetMM, barcodeHeightMM)
	doc.TextCentered(slot.X+cardW/2, slot.Y+cardH-2.5, numberSizePt, rec.Number)
	return nil
}
