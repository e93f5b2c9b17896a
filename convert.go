package chroma

import "math"

// Conversion engine: pure functions between keyed representations.
//
// Rounding is deliberately not unified across functions. Hue and
// percentage components are rounded to 3 decimals, HSL/HSV→RGB rounds
// channels up, CMY→RGB truncates. Hue is coarsened to whole degrees
// only at the presentation boundary ([Color.View] and the string
// formatters): at full saturation one degree of hue moves a
// reconstructed channel by up to ~4.25, so whole-degree hue inside the
// engine would break the ±1 per-channel round-trip budget.

// RGBToHSL converts an RGB representation to HSL.
// Hue is in degrees [0,360); it and the saturation and lightness
// percentages are rounded to 3 decimals. An "a" value is carried
// through.
func RGBToHSL(in Keyed) (Keyed, error) {
	if err := requireKind(in, KindRGB); err != nil {
		return nil, err
	}
	r, g, b := in["r"]/255, in["g"]/255, in["b"]/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	l := (max + min) / 2
	var h, s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
		h = hueDegrees(r, g, b, max, delta)
	}
	out := Keyed{"h": wrapDeg(round3(h)), "s": round3(s * 100), "l": round3(l * 100)}
	carryAlpha(out, in)
	return out, nil
}

// RGBToHSV converts an RGB representation to HSV.
// Same hue formula and rounding as [RGBToHSL]; value is the maximum
// channel and saturation is delta over that maximum.
func RGBToHSV(in Keyed) (Keyed, error) {
	if err := requireKind(in, KindRGB); err != nil {
		return nil, err
	}
	r, g, b := in["r"]/255, in["g"]/255, in["b"]/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	var h, s float64
	if delta != 0 {
		s = delta / max
		h = hueDegrees(r, g, b, max, delta)
	}
	out := Keyed{"h": wrapDeg(round3(h)), "s": round3(s * 100), "v": round3(max * 100)}
	carryAlpha(out, in)
	return out, nil
}

// hueDegrees computes the hue in degrees using the 6-sector formula.
// The sector is selected by which channel equals the maximum; the
// red-max sector wraps by +360 when blue exceeds green.
func hueDegrees(r, g, b, max, delta float64) float64 {
	switch max {
	case r:
		h := 60 * (g - b) / delta
		if b > g {
			h += 360
		}
		return h
	case g:
		return 60*(b-r)/delta + 120
	default:
		return 60*(r-g)/delta + 240
	}
}

// HSVToRGB converts an HSV representation to RGB using 6-sector
// interpolation. Each output channel is rounded up.
func HSVToRGB(in Keyed) (Keyed, error) {
	if err := requireKind(in, KindHSV); err != nil {
		return nil, err
	}
	h := wrapDeg(in["h"]) / 360
	s := in["s"] / 100
	v := in["v"] / 100

	var r, g, b float64
	if s == 0 {
		r, g, b = v, v, v
	} else {
		h *= 6
		if h >= 6 {
			h = 0
		}
		i := math.Floor(h)
		v1 := v * (1 - s)
		v2 := v * (1 - s*(h-i))
		v3 := v * (1 - s*(1-(h-i)))
		switch int(i) {
		case 0:
			r, g, b = v, v3, v1
		case 1:
			r, g, b = v2, v, v1
		case 2:
			r, g, b = v1, v, v3
		case 3:
			r, g, b = v1, v2, v
		case 4:
			r, g, b = v3, v1, v
		default:
			r, g, b = v, v1, v2
		}
	}
	out := Keyed{"r": math.Ceil(r * 255), "g": math.Ceil(g * 255), "b": math.Ceil(b * 255)}
	carryAlpha(out, in)
	return out, nil
}

// HSLToRGB converts an HSL representation to RGB.
// Each output channel is rounded up.
func HSLToRGB(in Keyed) (Keyed, error) {
	if err := requireKind(in, KindHSL); err != nil {
		return nil, err
	}
	h := wrapDeg(in["h"]) / 360
	s := in["s"] / 100
	l := in["l"] / 100

	var r, g, b float64
	if s == 0 {
		v := math.Ceil(l * 255)
		r, g, b = v, v, v
	} else {
		var v2 float64
		if l < 0.5 {
			v2 = l * (1 + s)
		} else {
			v2 = l + s - s*l
		}
		v1 := 2*l - v2
		r = math.Ceil(255 * hueToChannel(v1, v2, h+1.0/3))
		g = math.Ceil(255 * hueToChannel(v1, v2, h))
		b = math.Ceil(255 * hueToChannel(v1, v2, h-1.0/3))
	}
	out := Keyed{"r": r, "g": g, "b": b}
	carryAlpha(out, in)
	return out, nil
}

// hueToChannel evaluates the piecewise-linear hue helper at the hue
// fraction vh, wrapped into [0,1).
func hueToChannel(v1, v2, vh float64) float64 {
	if vh < 0 {
		vh++
	}
	if vh > 1 {
		vh--
	}
	switch {
	case 6*vh < 1:
		return v1 + (v2-v1)*6*vh
	case 2*vh < 1:
		return v2
	case 3*vh < 2:
		return v1 + (v2-v1)*(2.0/3-vh)*6
	default:
		return v1
	}
}

// RGBToCMY converts an RGB representation to CMY fractions in [0,1],
// rounded to 3 decimals.
func RGBToCMY(in Keyed) (Keyed, error) {
	if err := requireKind(in, KindRGB); err != nil {
		return nil, err
	}
	return Keyed{
		"c": round3(1 - in["r"]/255),
		"m": round3(1 - in["g"]/255),
		"y": round3(1 - in["b"]/255),
	}, nil
}

// CMYToRGB converts CMY fractions to RGB. Channels are truncated to
// whole numbers.
func CMYToRGB(in Keyed) (Keyed, error) {
	if err := requireKind(in, KindCMY); err != nil {
		return nil, err
	}
	return Keyed{
		"r": math.Trunc((1 - in["c"]) * 255),
		"g": math.Trunc((1 - in["m"]) * 255),
		"b": math.Trunc((1 - in["y"]) * 255),
	}, nil
}

// RGBToCMYK converts an RGB representation to CMYK percentages
// rounded to 3 decimals. Black is extracted as the minimum of the CMY
// fractions; pure black collapses c, m and y to zero.
func RGBToCMYK(in Keyed) (Keyed, error) {
	if err := requireKind(in, KindRGB); err != nil {
		return nil, err
	}
	c := 1 - in["r"]/255
	m := 1 - in["g"]/255
	y := 1 - in["b"]/255
	k := math.Min(c, math.Min(m, y))
	if k == 1 {
		c, m, y = 0, 0, 0
	} else {
		c = (c - k) / (1 - k)
		m = (m - k) / (1 - k)
		y = (y - k) / (1 - k)
	}
	return Keyed{
		"c": round3(c * 100),
		"m": round3(m * 100),
		"y": round3(y * 100),
		"k": round3(k * 100),
	}, nil
}

// CMYKToCMY converts CMYK percentages back to CMY fractions by
// reapplying the black component: x·(1−k)+k. This is the exact inverse
// of the extraction in [RGBToCMYK] and is defined for every k,
// including 0. Information lost at k==100 (where c, m and y were
// collapsed) stays lost: the result is pure black.
func CMYKToCMY(in Keyed) (Keyed, error) {
	if err := requireKind(in, KindCMYK); err != nil {
		return nil, err
	}
	k := in["k"] / 100
	return Keyed{
		"c": round3(in["c"]/100*(1-k) + k),
		"m": round3(in["m"]/100*(1-k) + k),
		"y": round3(in["y"]/100*(1-k) + k),
	}, nil
}

// CMYKToRGB converts CMYK percentages to RGB via CMY.
func CMYKToRGB(in Keyed) (Keyed, error) {
	cmy, err := CMYKToCMY(in)
	if err != nil {
		return nil, err
	}
	return CMYToRGB(cmy)
}

// Convert transforms a keyed representation into the target kind.
// Direct conversions come from a dispatch table; remaining pairs pivot
// through RGB. Identity conversions return a copy.
func Convert(in Keyed, target Kind) (Keyed, error) {
	if target.Keys() == nil {
		return nil, errInvalid(in, "invalid target kind %d", int(target))
	}
	from := DetectKind(in)
	if from == KindInvalid {
		return nil, errInvalid(in, "no recognized channel keys")
	}
	if from == target {
		return in.clone(), nil
	}
	if fn, ok := conversions[convPair{from, target}]; ok {
		return fn(in)
	}
	rgb, err := Convert(in, KindRGB)
	if err != nil {
		return nil, err
	}
	return Convert(rgb, target)
}

type convPair struct{ from, to Kind }

// conversions holds the direct conversion functions; every other pair
// is composed through RGB by [Convert].
var conversions = map[convPair]func(Keyed) (Keyed, error){
	{KindRGB, KindHSL}:  RGBToHSL,
	{KindRGB, KindHSV}:  RGBToHSV,
	{KindRGB, KindCMY}:  RGBToCMY,
	{KindRGB, KindCMYK}: RGBToCMYK,
	{KindHSL, KindRGB}:  HSLToRGB,
	{KindHSV, KindRGB}:  HSVToRGB,
	{KindCMY, KindRGB}:  CMYToRGB,
	{KindCMYK, KindRGB}: CMYKToRGB,
	{KindCMYK, KindCMY}: CMYKToCMY,
}

// requireKind guards a conversion function against representations of
// the wrong kind.
func requireKind(in Keyed, want Kind) error {
	if got := DetectKind(in); got != want {
		return errInvalid(in, "detected kind %s, want %s", got, want)
	}
	return nil
}

// carryAlpha copies an optional "a" value from in to out.
func carryAlpha(out, in Keyed) {
	if a, ok := in["a"]; ok {
		out["a"] = a
	}
}

// round3 rounds to 3 decimal places.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// roundDeg rounds a hue to the nearest whole degree in [0,360).
func roundDeg(h float64) float64 {
	return wrapDeg(math.Round(wrapDeg(h)))
}

// roundHue coarsens a hue component to the nearest whole degree in
// place. Presentation only: conversions keep fractional hue so that
// round-trips stay within the ±1 channel budget.
func roundHue(k Keyed) {
	if h, ok := k["h"]; ok {
		k["h"] = roundDeg(h)
	}
}

// wrapDeg wraps an angle into [0,360).
func wrapDeg(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
