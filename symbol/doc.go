// Package symbol renders EAN-13 barcode rasters to transient PNG files.
//
// The emitter appends the weighted mod-10 check digit to the payload and
// hands the result to the barcode collaborator; payload validity (length,
// digits) is enforced by the collaborator, not duplicated here, so its
// rejections surface unchanged.
//
//	em := symbol.NewEmitter()
//	err := em.Emit("123456789012", "/tmp/barcode_123456789012.png")
//
// The caller owns the written file and is responsible for deleting it.
//
// # Geometry
//
// Symbols are scaled to a configurable pixel size and composited onto a
// white canvas with a quiet-zone margin on all sides, as retail scanners
// require. No human-readable text is drawn.
package symbol
