package chroma

import "math"

// Luminance shifts every channel toward white (positive p) or black
// (negative p). p is a fraction in [-1,1]: each channel moves by
// ceil(p·headroom), where headroom is the distance to 255 when
// lightening and the channel value itself when darkening.
func (c *Color) Luminance(p float64) *Color {
	if p > 1 {
		p = 1
	}
	if p < -1 {
		p = -1
	}
	shift := func(ch int) int {
		if p >= 0 {
			return clampChannel(ch + int(math.Ceil(p*float64(255-ch))))
		}
		return clampChannel(ch - int(math.Ceil(-p*float64(ch))))
	}
	out := c.clone()
	out.r = shift(c.r)
	out.g = shift(c.g)
	out.b = shift(c.b)
	return out
}

// Lighten moves the color toward white by the given percentage.
func (c *Color) Lighten(percent float64) *Color {
	return c.Luminance(percent / 100)
}

// Darken moves the color toward black by the given percentage.
func (c *Color) Darken(percent float64) *Color {
	return c.Luminance(-percent / 100)
}

// Brightness returns the perceptual brightness in [0,255]:
// sqrt(0.299·r² + 0.587·g² + 0.114·b²).
func (c *Color) Brightness() float64 {
	r, g, b := float64(c.r), float64(c.g), float64(c.b)
	return math.Sqrt(0.299*r*r + 0.587*g*g + 0.114*b*b)
}

// Contrast returns pure white for dark colors (brightness below 130)
// and pure black otherwise, for use as a readable foreground.
func (c *Color) Contrast() *Color {
	if c.Brightness() < 130 {
		return RGB(255, 255, 255)
	}
	return RGB(0, 0, 0)
}

// GreyscaleMode selects the grey value computed by [Color.Greyscale].
type GreyscaleMode int

const (
	// GreyscaleLuminosity weights the channels 0.21/0.72/0.07.
	GreyscaleLuminosity GreyscaleMode = iota
	// GreyscaleAverage uses the channel mean.
	GreyscaleAverage
	// GreyscaleLightness uses the midpoint of the channel extremes.
	GreyscaleLightness
)

// Greyscale returns the color collapsed to a grey triple. Alpha is
// preserved.
func (c *Color) Greyscale(mode GreyscaleMode) *Color {
	r, g, b := float64(c.r), float64(c.g), float64(c.b)
	var grey float64
	switch mode {
	case GreyscaleAverage:
		grey = (r + g + b) / 3
	case GreyscaleLightness:
		grey = (math.Max(r, math.Max(g, b)) + math.Min(r, math.Min(g, b))) / 2
	default:
		grey = 0.21*r + 0.72*g + 0.07*b
	}
	v := int(math.Round(grey))
	out := c.clone()
	out.r, out.g, out.b = v, v, v
	return out
}
