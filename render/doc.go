// Package render wraps the PDF writer behind the narrow surface the card
// pipeline needs: add a page, draw text and frames at millimetre
// coordinates, place raster images, serialize once.
//
//	doc, err := render.NewDocument(render.Config{FontPath: "font.ttf"}, reporter)
//	if err != nil { ... }
//	doc.AddPage()
//	doc.TextCentered(105, 20, 24, "Alice Smith")
//	err = doc.SaveTo("cards.pdf")
//
// # Error Reporting
//
// The underlying writer records its first internal error and turns all
// later drawing calls into no-ops. Instead of a global callback, a
// [Reporter] is injected at construction: it is invoked once, when the
// internal error first appears, and the same error is returned again by
// [Document.SaveTo]. Drawing therefore never panics or aborts mid-page,
// and the pipeline stays testable without a real renderer behind it.
package render
