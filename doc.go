// Package chroma converts colors between RGB, HSL, HSV, CMY and CMYK
// and derives palettes from a single seed color.
//
// # Overview
//
// Colors are stored canonically as an RGB triple (0–255 per channel)
// with an optional alpha byte. Every other color space is a view
// computed on demand by the conversion engine. Inputs in many shapes
// are accepted: hex strings ("#abc", "aabbcc", "#aabbccdd"),
// functional notation ("rgb(1,2,3)", "hsla(120,50%,50%,128)"), SVG 1.1
// color names ("steelblue"), keyed maps of channel letters, and
// positional number slices.
//
// # Quick Start
//
//	import "github.com/palettekit/chroma"
//
//	c, err := chroma.New("#ff8032")
//	if err != nil {
//	    ...
//	}
//
//	fmt.Println(c.HSLString()) // hsl(...) view of the same color
//
//	for _, t := range c.Triadic() {
//	    fmt.Println(t.Hex())
//	}
//
// # Architecture
//
// The library is organized into:
//   - Conversion engine: pure keyed-representation transforms (convert.go)
//   - Classifier: heterogeneous input detection and parsing (parse.go)
//   - Color value object: canonical storage and views (color.go, format.go)
//   - Palette algorithms: rotation, shades, tints, harmonies (palette.go)
//
// # Concurrency
//
// All conversion and palette functions are pure, and every Color owns
// its channel data exclusively. Distinct Colors may be used from
// multiple goroutines without synchronization; only Set mutates a
// Color in place.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive
// classifier and generator diagnostics through log/slog.
package chroma
