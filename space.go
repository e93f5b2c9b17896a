package chroma

// Kind identifies one of the supported color spaces.
type Kind int

const (
	KindInvalid Kind = iota
	KindRGB
	KindHSL
	KindHSV
	KindCMY
	KindCMYK
)

// String returns the lowercase name of the color space.
func (k Kind) String() string {
	switch k {
	case KindRGB:
		return "rgb"
	case KindHSL:
		return "hsl"
	case KindHSV:
		return "hsv"
	case KindCMY:
		return "cmy"
	case KindCMYK:
		return "cmyk"
	default:
		return "invalid"
	}
}

// Keys returns the ordered channel keys of the color space, without
// the optional alpha key.
func (k Kind) Keys() []string {
	switch k {
	case KindRGB:
		return []string{"r", "g", "b"}
	case KindHSL:
		return []string{"h", "s", "l"}
	case KindHSV:
		return []string{"h", "s", "v"}
	case KindCMY:
		return []string{"c", "m", "y"}
	case KindCMYK:
		return []string{"c", "m", "y", "k"}
	default:
		return nil
	}
}

// hasAlphaKey reports whether the color space carries an optional
// alpha channel in its keyed representation.
func (k Kind) hasAlphaKey() bool {
	switch k {
	case KindRGB, KindHSL, KindHSV:
		return true
	}
	return false
}

// Keyed is a transient mapping from single-letter channel keys to
// numeric values, used during parsing and conversion. Scales follow
// the conversion engine: RGB channels 0–255, hue in degrees [0,360),
// HSL/HSV/CMYK percentages 0–100, CMY fractions 0–1.
type Keyed map[string]float64

func (k Keyed) clone() Keyed {
	out := make(Keyed, len(k))
	for key, v := range k {
		out[key] = v
	}
	return out
}

// DetectKind classifies a keyed representation by probing for
// discriminating channel keys, first match wins: r→rgb, l→hsl, v→hsv,
// k→cmyk, c→cmy.
func DetectKind(k Keyed) Kind {
	switch {
	case hasKey(k, "r"):
		return KindRGB
	case hasKey(k, "l"):
		return KindHSL
	case hasKey(k, "v"):
		return KindHSV
	case hasKey(k, "k"):
		return KindCMYK
	case hasKey(k, "c"):
		return KindCMY
	default:
		return KindInvalid
	}
}

func hasKey(k Keyed, key string) bool {
	_, ok := k[key]
	return ok
}
