// Command chromad prints palettes derived from a seed color as
// terminal swatches.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/charmbracelet/lipgloss"

	"github.com/palettekit/chroma"
)

func main() {
	var (
		seed   = flag.String("color", "#3264c8", "seed color (hex, rgb(...), hsl(...), name, ...)")
		scheme = flag.String("scheme", "triadic", "palette scheme: complementary, split, triadic, tetradic, analogous, monochromatic, shades, tints")
		count  = flag.Int("count", 4, "palette size for schemes that take one")
	)
	flag.Parse()

	c, err := chroma.New(*seed)
	if err != nil {
		log.Fatalf("Failed to parse seed color: %v", err)
	}

	var palette []*chroma.Color
	switch *scheme {
	case "complementary":
		palette = []*chroma.Color{c, c.Complementary()}
	case "split":
		palette = c.SplitComplementary()
	case "triadic":
		palette = c.Triadic()
	case "tetradic":
		palette = c.Tetradic()
	case "analogous":
		palette = c.Analogous(*count)
	case "monochromatic":
		palette = c.Monochromatic(*count)
	case "shades":
		palette = c.Shades(*count)
	case "tints":
		palette = c.Tints(*count)
	default:
		log.Fatalf("Unknown scheme %q", *scheme)
	}

	for _, p := range palette {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(p.Hex())).
			Render("      ")
		fmt.Printf("%s  %-9s %-18s %s\n", swatch, p.Hex(), p.RGBString(), p.HSLString())
	}
}
