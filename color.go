package chroma

import (
	"image/color"
)

// Color holds a canonical RGB triple with an optional alpha byte.
// All other color spaces are views computed on demand.
//
// Derived operations (Lighten, Greyscale, Complementary, palettes, ...)
// return new Colors; only [Color.Set] mutates in place.
type Color struct {
	r, g, b  int
	alpha    int
	hasAlpha bool
}

// Option configures color construction.
type Option func(*newOptions)

type newOptions struct {
	alpha    int
	hasAlpha bool
	fallback Kind
}

// WithAlpha sets the alpha channel explicitly. It wins over an alpha
// value carried by the input itself.
func WithAlpha(a int) Option {
	return func(o *newOptions) {
		o.alpha = a
		o.hasAlpha = true
	}
}

// WithFallback sets the kind assumed for positional inputs such as
// []int{120, 50, 50}. The default is RGB.
func WithFallback(k Kind) Option {
	return func(o *newOptions) {
		o.fallback = k
	}
}

// New constructs a Color from any representation the classifier
// accepts: hex strings, functional notation, color names, keyed maps,
// positional slices, or an existing *Color. A fourth numeric component
// becomes alpha; [WithAlpha] overrides it.
func New(input any, opts ...Option) (*Color, error) {
	o := newOptions{fallback: KindRGB}
	for _, opt := range opts {
		opt(&o)
	}

	_, keyed, err := Classify(input, o.fallback)
	if err != nil {
		return nil, err
	}
	rgb, err := Convert(keyed, KindRGB)
	if err != nil {
		return nil, err
	}

	c := &Color{
		r: clampChannel(int(rgb["r"])),
		g: clampChannel(int(rgb["g"])),
		b: clampChannel(int(rgb["b"])),
	}
	if a, ok := rgb["a"]; ok {
		c.alpha = clampChannel(int(a))
		c.hasAlpha = true
	}
	if o.hasAlpha {
		c.alpha = clampChannel(o.alpha)
		c.hasAlpha = true
	}
	return c, nil
}

// RGB constructs an opaque color from channel values, clamped to
// [0,255].
func RGB(r, g, b int) *Color {
	return &Color{r: clampChannel(r), g: clampChannel(g), b: clampChannel(b)}
}

// RGBA constructs a color with an alpha channel, all values clamped to
// [0,255].
func RGBA(r, g, b, a int) *Color {
	c := RGB(r, g, b)
	c.alpha = clampChannel(a)
	c.hasAlpha = true
	return c
}

// FromStd converts a standard library color.Color.
func FromStd(src color.Color) *Color {
	n := color.NRGBAModel.Convert(src).(color.NRGBA)
	return RGBA(int(n.R), int(n.G), int(n.B), int(n.A))
}

// Std converts to the standard color.Color interface. A color without
// alpha is fully opaque.
func (c *Color) Std() color.Color {
	a := uint8(255)
	if c.hasAlpha {
		a = uint8(c.alpha)
	}
	return color.NRGBA{R: uint8(c.r), G: uint8(c.g), B: uint8(c.b), A: a}
}

// Channel names one of the directly addressable channels of a Color.
type Channel int

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelA
)

// Get returns the value of a channel. Reading alpha on a color without
// one, or any unknown channel, fails with [UndefinedChannelError].
func (c *Color) Get(ch Channel) (int, error) {
	switch ch {
	case ChannelR:
		return c.r, nil
	case ChannelG:
		return c.g, nil
	case ChannelB:
		return c.b, nil
	case ChannelA:
		if !c.hasAlpha {
			return 0, &UndefinedChannelError{Channel: ch}
		}
		return c.alpha, nil
	default:
		return 0, &UndefinedChannelError{Channel: ch}
	}
}

// Set assigns a channel in place, clamping to [0,255]. Setting alpha
// defines the channel if it was absent. This is the only mutating
// operation on a Color.
func (c *Color) Set(ch Channel, v int) error {
	v = clampChannel(v)
	switch ch {
	case ChannelR:
		c.r = v
	case ChannelG:
		c.g = v
	case ChannelB:
		c.b = v
	case ChannelA:
		c.alpha = v
		c.hasAlpha = true
	default:
		return &UndefinedChannelError{Channel: ch}
	}
	return nil
}

// Alpha returns the alpha value and whether the color defines one.
func (c *Color) Alpha() (int, bool) {
	return c.alpha, c.hasAlpha
}

// View returns the structured representation of the color in the
// given kind. Hue is presented as a whole degree.
func (c *Color) View(kind Kind) (Keyed, error) {
	out, err := Convert(c.rgbKeyed(), kind)
	if err != nil {
		return nil, err
	}
	roundHue(out)
	return out, nil
}

// All returns the structured representation in every supported kind
// at once. Intended as a debugging aid.
func (c *Color) All() map[Kind]Keyed {
	out := make(map[Kind]Keyed, 5)
	for _, kind := range []Kind{KindRGB, KindHSL, KindHSV, KindCMY, KindCMYK} {
		out[kind] = c.view(kind)
	}
	return out
}

// view is View for internal use. Conversion from the canonical RGB
// channels cannot fail, so the error is discarded.
func (c *Color) view(kind Kind) Keyed {
	k, _ := Convert(c.rgbKeyed(), kind)
	roundHue(k)
	return k
}

func (c *Color) rgbKeyed() Keyed {
	k := Keyed{"r": float64(c.r), "g": float64(c.g), "b": float64(c.b)}
	if c.hasAlpha {
		k["a"] = float64(c.alpha)
	}
	return k
}

// derive builds a new Color from an RGB keyed representation, keeping
// the receiver's alpha unless the representation carries its own.
func (c *Color) derive(rgb Keyed) *Color {
	out := RGB(int(rgb["r"]), int(rgb["g"]), int(rgb["b"]))
	if a, ok := rgb["a"]; ok {
		out.alpha = clampChannel(int(a))
		out.hasAlpha = true
	} else if c.hasAlpha {
		out.alpha = c.alpha
		out.hasAlpha = true
	}
	return out
}

func (c *Color) clone() *Color {
	out := *c
	return &out
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
