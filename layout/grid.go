package layout

// Config describes the sheet geometry in millimetres.
type Config struct {
	// PageWidth and PageHeight are the sheet dimensions.
	PageWidth  float64
	PageHeight float64

	// CardWidth and CardHeight are the card dimensions.
	CardWidth  float64
	CardHeight float64

	// ColumnX lists the left edge of each column, left to right.
	ColumnX []float64

	// TopY is the top edge of the first row.
	TopY float64

	// RowStep is the vertical distance between row tops.
	RowStep float64
}

// DefaultConfig returns the A4 two-column business card sheet: 90x50 mm
// cards at 15 mm and 106 mm, first row 7 mm from the top, stepping 52 mm
// per row.
func DefaultConfig() Config {
	return Config{
		PageWidth:  210,
		PageHeight: 297,
		CardWidth:  90,
		CardHeight: 50,
		ColumnX:    []float64{15, 106},
		TopY:       7,
		RowStep:    52,
	}
}

// Slot is the placement of one card: the top-left corner of its frame
// and the zero-based page it lands on.
type Slot struct {
	X    float64
	Y    float64
	Page int
}

// Grid assigns sequential card indices to sheet positions.
type Grid struct {
	cfg     Config
	columns int
	rows    int
}

// NewGrid creates a Grid with the default sheet geometry.
func NewGrid() *Grid {
	return NewGridWithConfig(DefaultConfig())
}

// NewGridWithConfig creates a Grid with custom geometry. At least one
// row and one column always fit.
func NewGridWithConfig(cfg Config) *Grid {
	rows := 0
	if cfg.RowStep > 0 {
		rows = int((cfg.PageHeight - cfg.TopY) / cfg.RowStep)
	}
	if rows < 1 {
		rows = 1
	}
	columns := len(cfg.ColumnX)
	if columns < 1 {
		columns = 1
		cfg.ColumnX = []float64{0}
	}
	return &Grid{cfg: cfg, columns: columns, rows: rows}
}

// PerPage returns how many cards fit on one sheet.
func (g *Grid) PerPage() int {
	return g.rows * g.columns
}

// CardWidth returns the card width in millimetres.
func (g *Grid) CardWidth() float64 { return g.cfg.CardWidth }

// CardHeight returns the card height in millimetres.
func (g *Grid) CardHeight() float64 { return g.cfg.CardHeight }

// Slot returns the placement of the i-th card, filling rows left to
// right, top to bottom, then overflowing onto a new page.
func (g *Grid) Slot(i int) Slot {
	page := i / g.PerPage()
	j := i % g.PerPage()
	row := j / g.columns
	col := j % g.columns
	return Slot{
		X:    g.cfg.ColumnX[col],
		Y:    g.cfg.TopY + float64(row)*g.cfg.RowStep,
		Page: page,
	}
}

// MirroredSlot returns the placement of the i-th card with its column
// flipped within the row, for duplex-aligned back sides.
func (g *Grid) MirroredSlot(i int) Slot {
	page := i / g.PerPage()
	j := i % g.PerPage()
	row := j / g.columns
	col := g.columns - 1 - j%g.columns
	return Slot{
		X:    g.cfg.ColumnX[col],
		Y:    g.cfg.TopY + float64(row)*g.cfg.RowStep,
		Page: page,
	}
}
