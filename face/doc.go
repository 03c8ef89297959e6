// Package face renders card front-side rasters from a template image.
//
// A front face is the template image with the card holder's short name
// fitted and centered over it, and the additional-info field drawn in
// the lower-right corner. Output is a transient PNG owned by the caller.
//
//	r, err := face.NewRenderer("vcard.face.png", "font.ttf")
//	if err != nil { ... }
//	err = r.Render(record, "/tmp/front_0.png")
//
// # Text Fitting
//
// The name is drawn at the largest font size, starting from
// [Config.MaxFontSize], at which it still fits inside the horizontal
// margins and the middle third of the template height.
package face
