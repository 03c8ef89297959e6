// Package layout computes card placement on printable sheets.
//
// Cards are laid out on a fixed grid: two columns per row, rows stepping
// down the page, a new page when the grid is full. All coordinates are
// in millimetres with the origin at the top-left corner of the page.
//
//	grid := layout.NewGrid()
//	slot := grid.Slot(3) // placement of the fourth card
//
// # Duplex Mirroring
//
// Back sides print on a separate sheet that is flipped when the stack
// comes out of the printer, so back-side columns run right-to-left:
//
//	back := grid.MirroredSlot(3)
//
// A card's front and mirrored back land on top of each other after the
// sheet is flipped along its vertical axis.
package layout
