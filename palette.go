package chroma

import "gonum.org/v1/gonum/floats"

// Palette algorithms: every function derives new Colors from the
// receiver; the receiver itself is never modified.

// RotateType selects which HSV component the rotation engine steps.
type RotateType int

const (
	// RotateHue steps the hue around the color wheel.
	RotateHue RotateType = iota
	// RotateSaturation steps saturation from zero through the scope.
	RotateSaturation
	// RotateValue steps the value (brightness) component.
	RotateValue
)

// RotateOptions configures [Color.RotateWith].
type RotateOptions struct {
	// Type is the stepped component. Default RotateHue.
	Type RotateType
	// Scope is the span covered by the palette: degrees for hue
	// (0 or 360 mean the full wheel), percentage points otherwise.
	Scope float64
	// Rotation offsets the window center for partial-wheel hue
	// palettes, in degrees.
	Rotation float64
}

// Rotate produces count colors evenly spaced around the full hue
// wheel, anchored at hue 0. Triadic and tetradic palettes are
// Rotate(3) and Rotate(4).
func (c *Color) Rotate(count int) []*Color {
	return c.RotateWith(count, RotateOptions{Scope: 360})
}

// RotateWith is the general palette engine. It operates in HSV space:
// for a full-wheel hue palette the step is scope/count starting at
// hue 0; otherwise the scope is split into count-1 steps and centered
// on the color's own hue plus Rotation. Saturation and value rotations
// assign the raw offset to their component.
func (c *Color) RotateWith(count int, opt RotateOptions) []*Color {
	if count <= 0 {
		return nil
	}
	hsv := c.view(KindHSV)
	h, s, v := hsv["h"], hsv["s"], hsv["v"]

	scope := opt.Scope
	fullWheel := opt.Type == RotateHue && (scope == 0 || scope == 360)
	if fullWheel {
		scope = 360
	}

	var step float64
	switch {
	case fullWheel:
		step = scope / float64(count)
	case count > 1:
		step = scope / float64(count-1)
	}

	origin := 0.0
	if opt.Type == RotateHue && !fullWheel {
		origin = wrapDeg(h + opt.Rotation - scope/2)
	}

	out := make([]*Color, 0, count)
	for i := 0; i < count; i++ {
		offset := step * float64(i)
		k := Keyed{"h": h, "s": s, "v": v}
		switch opt.Type {
		case RotateSaturation:
			k["s"] = offset
		case RotateValue:
			k["v"] = offset
		default:
			k["h"] = wrapDeg(origin + offset)
		}
		out = append(out, c.fromHSV(k))
	}
	return out
}

// Complementary returns the color opposite on the hue wheel: hue
// shifted by 180°, saturation and lightness unchanged.
func (c *Color) Complementary() *Color {
	return c.hueShifted(180)
}

// SplitComplementary returns the color itself plus the two colors
// adjacent to its complement, at hue +150° and +210°.
func (c *Color) SplitComplementary() []*Color {
	return []*Color{c.clone(), c.hueShifted(150), c.hueShifted(210)}
}

// Triadic returns three colors evenly spaced around the hue wheel.
func (c *Color) Triadic() []*Color {
	return c.Rotate(3)
}

// Tetradic returns four colors evenly spaced around the hue wheel.
func (c *Color) Tetradic() []*Color {
	return c.Rotate(4)
}

// Analogous returns the color itself plus total neighbors at
// cumulative +30° hue steps. total defaults to 2 when not positive.
func (c *Color) Analogous(total int) []*Color {
	if total < 1 {
		total = 2
	}
	out := make([]*Color, 0, total+1)
	out = append(out, c.clone())
	for i := 1; i <= total; i++ {
		out = append(out, c.hueShifted(float64(30*i)))
	}
	return out
}

// Monochromatic returns total colors of the same hue and value with
// saturation stepped from 0 to 100.
func (c *Color) Monochromatic(total int) []*Color {
	if total < 1 {
		total = 10
	}
	return c.RotateWith(total, RotateOptions{Type: RotateSaturation, Scope: 100})
}

// Shades returns the color itself plus total colors stepping the HSL
// lightness linearly down to exactly 0 (black). Hue and saturation are
// held constant. total defaults to 10 when not positive.
func (c *Color) Shades(total int) []*Color {
	return c.lightnessLadder(total, 0)
}

// Tints returns the color itself plus total colors stepping the HSL
// lightness linearly up to exactly 100 (white). Hue and saturation are
// held constant. total defaults to 10 when not positive.
func (c *Color) Tints(total int) []*Color {
	return c.lightnessLadder(total, 100)
}

// lightnessLadder spans the lightness range between the color and the
// target in equal steps. floats.Span pins both endpoints, so the last
// step lands exactly on the target.
func (c *Color) lightnessLadder(total int, target float64) []*Color {
	if total < 1 {
		total = 10
	}
	hsl := c.view(KindHSL)
	ladder := make([]float64, total+1)
	floats.Span(ladder, hsl["l"], target)

	out := make([]*Color, 0, total+1)
	out = append(out, c.clone())
	for _, l := range ladder[1:] {
		k := Keyed{"h": hsl["h"], "s": hsl["s"], "l": l}
		out = append(out, c.fromHSL(k))
	}
	return out
}

// hueShifted rotates the hue in HSL space, leaving saturation and
// lightness untouched.
func (c *Color) hueShifted(delta float64) *Color {
	hsl := c.view(KindHSL)
	hsl["h"] = wrapDeg(hsl["h"] + delta)
	return c.fromHSL(hsl)
}

// fromHSL derives a new Color from an HSL representation built from
// the receiver's own channels; the conversion cannot fail.
func (c *Color) fromHSL(k Keyed) *Color {
	rgb, _ := HSLToRGB(k)
	return c.derive(rgb)
}

// fromHSV derives a new Color from an HSV representation built from
// the receiver's own channels; the conversion cannot fail.
func (c *Color) fromHSV(k Keyed) *Color {
	rgb, _ := HSVToRGB(k)
	return c.derive(rgb)
}
