package chroma

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex returns the color as "#rrggbb", with a trailing alpha byte when
// the color defines one.
func (c *Color) Hex() string {
	if c.hasAlpha {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, c.alpha)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// RGBString returns functional notation, "rgb(255,0,0)" or
// "rgba(255,0,0,128)" when alpha is set.
func (c *Color) RGBString() string {
	if c.hasAlpha {
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.r, c.g, c.b, c.alpha)
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
}

// HSLString returns functional notation such as "hsl(120,50%,50%)",
// or "hsla(...)" with a trailing alpha value when alpha is set.
func (c *Color) HSLString() string {
	return c.functional("hsl", KindHSL)
}

// HSVString returns functional notation such as "hsv(20,75%,78.431%)".
func (c *Color) HSVString() string {
	return c.functional("hsv", KindHSV)
}

// CMYString returns functional notation such as "cmy(0%,50%,75%)".
func (c *Color) CMYString() string {
	return c.functional("cmy", KindCMY)
}

// CMYKString returns functional notation such as "cmyk(0%,50%,75%,21.569%)".
func (c *Color) CMYKString() string {
	return c.functional("cmyk", KindCMYK)
}

// functional renders a view as name(values...). Every component except
// hue and alpha carries a percent suffix; CMY fractions are scaled to
// percentages first.
func (c *Color) functional(name string, kind Kind) string {
	view := c.view(kind)
	parts := make([]string, 0, 5)
	for _, key := range kind.Keys() {
		v := view[key]
		if kind == KindCMY {
			v = round3(v * 100)
		}
		if key == "h" {
			parts = append(parts, formatNum(v))
		} else {
			parts = append(parts, formatNum(v)+"%")
		}
	}
	if a, ok := view["a"]; ok && kind.hasAlphaKey() {
		name += "a"
		parts = append(parts, formatNum(a))
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}

// formatNum prints a channel value without trailing zeros.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
