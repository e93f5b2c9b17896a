package chroma

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Classifier: turns heterogeneous input into a (Kind, Keyed) pair.
//
// Accepted shapes, probed in order:
//   - *Color: its structured view in the fallback kind
//   - Keyed / map[string]float64 / map[string]int: key probe
//     (r→rgb, l→hsl, v→hsv, k→cmyk, c→cmy)
//   - []float64 / []int: positional values in the fallback kind,
//     one extra value becomes alpha
//   - string: functional notation, then color name, then hex

var (
	functionalPattern = regexp.MustCompile(`^([a-zA-Z]+)\(([^)]*)\)$`)
	numberPattern     = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	alphanumPattern   = regexp.MustCompile(`^[0-9a-zA-Z]+$`)
)

// Classify detects the color space of input and normalizes it into a
// keyed representation. fallback names the kind assumed for positional
// sequences and existing Colors; KindInvalid means rgb.
func Classify(input any, fallback Kind) (Kind, Keyed, error) {
	if fallback == KindInvalid {
		fallback = KindRGB
	}
	switch v := input.(type) {
	case *Color:
		out, err := v.View(fallback)
		if err != nil {
			return KindInvalid, nil, err
		}
		return fallback, out, nil
	case Keyed:
		return classifyKeyed(v)
	case map[string]float64:
		return classifyKeyed(Keyed(v))
	case map[string]int:
		k := make(Keyed, len(v))
		for key, val := range v {
			k[key] = float64(val)
		}
		return classifyKeyed(k)
	case []float64:
		return classifyPositional(v, fallback)
	case []int:
		vals := make([]float64, len(v))
		for i, n := range v {
			vals[i] = float64(n)
		}
		return classifyPositional(vals, fallback)
	case string:
		return classifyString(v, fallback)
	default:
		return KindInvalid, nil, errInvalid(input, "unsupported input type %T", input)
	}
}

// classifyKeyed probes a keyed collection for its kind and extracts
// that kind's channels, defaulting absent ones to 0. Alpha is carried
// for the kinds that allow it.
func classifyKeyed(in Keyed) (Kind, Keyed, error) {
	kind := DetectKind(in)
	if kind == KindInvalid {
		return KindInvalid, nil, errInvalid(in, "no recognized channel keys")
	}
	out := make(Keyed, len(in))
	for _, key := range kind.Keys() {
		out[key] = in[key]
	}
	if kind.hasAlphaKey() {
		if a, ok := in["a"]; ok {
			out["a"] = a
		}
	}
	Logger().Debug("classified keyed color input", "kind", kind.String())
	return kind, out, nil
}

// classifyPositional maps positional values onto the ordered keys of
// kind. One value beyond the kind's channels becomes alpha.
func classifyPositional(vals []float64, kind Kind) (Kind, Keyed, error) {
	keys := kind.Keys()
	if len(vals) == 0 {
		return KindInvalid, nil, errInvalid(vals, "empty positional input")
	}
	out := make(Keyed, len(keys)+1)
	for i, key := range keys {
		if i < len(vals) {
			out[key] = vals[i]
		} else {
			out[key] = 0
		}
	}
	if kind.hasAlphaKey() && len(vals) > len(keys) {
		out["a"] = vals[len(keys)]
	}
	Logger().Debug("classified positional color input", "kind", kind.String(), "values", len(vals))
	return kind, out, nil
}

// classifyString handles functional notation, color names and hex
// tokens, in that order.
func classifyString(s string, fallback Kind) (Kind, Keyed, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return KindInvalid, nil, errInvalid(s, "empty string")
	}

	if m := functionalPattern.FindStringSubmatch(trimmed); m != nil {
		return classifyFunctional(s, m[1], m[2])
	}

	if c, ok := colornames.Map[strings.ToLower(trimmed)]; ok {
		Logger().Debug("classified named color input", "name", strings.ToLower(trimmed))
		return KindRGB, Keyed{"r": float64(c.R), "g": float64(c.G), "b": float64(c.B)}, nil
	}

	if strings.ContainsRune(trimmed, '#') || alphanumPattern.MatchString(trimmed) {
		return classifyHex(s, trimmed)
	}

	return KindInvalid, nil, errInvalid(s, "unrecognized color string")
}

// classifyFunctional expands a name(values...) string. The letters of
// the name become deduplicated channel keys, the numeric tokens become
// values; whichever list is longer is truncated. The resulting keyed
// collection is classified again by the usual key probe.
func classifyFunctional(raw, name, args string) (Kind, Keyed, error) {
	var keys []string
	seen := map[byte]bool{}
	lower := strings.ToLower(name)
	for i := 0; i < len(lower); i++ {
		if !seen[lower[i]] {
			seen[lower[i]] = true
			keys = append(keys, string(lower[i]))
		}
	}

	tokens := numberPattern.FindAllString(args, -1)
	n := len(keys)
	if len(tokens) < n {
		n = len(tokens)
	}
	in := make(Keyed, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return KindInvalid, nil, errInvalid(raw, "bad numeric token %q", tokens[i])
		}
		in[keys[i]] = v
	}
	kind, out, err := classifyKeyed(in)
	if err != nil {
		return KindInvalid, nil, errInvalid(raw, "functional notation %q has no recognized channels", name)
	}
	return kind, out, nil
}

// classifyHex parses a hex token. Shorthand shorter than 6 characters
// expands by doubling each of the first 3 characters and padding with
// trailing zeros; a fourth byte group becomes alpha.
func classifyHex(raw, s string) (Kind, Keyed, error) {
	s = strings.ReplaceAll(s, "#", "")
	s = strings.Join(strings.Fields(s), "")

	if len(s) < 6 {
		short := s
		if len(short) > 3 {
			short = short[:3]
		}
		var b strings.Builder
		for i := 0; i < len(short); i++ {
			b.WriteByte(short[i])
			b.WriteByte(short[i])
		}
		s = b.String()
		for len(s) < 6 {
			s += "0"
		}
	}

	parse := func(group string) (float64, error) {
		v, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			return 0, errInvalid(raw, "bad hex group %q", group)
		}
		return float64(v), nil
	}

	out := make(Keyed, 4)
	var err error
	if out["r"], err = parse(s[0:2]); err != nil {
		return KindInvalid, nil, err
	}
	if out["g"], err = parse(s[2:4]); err != nil {
		return KindInvalid, nil, err
	}
	if out["b"], err = parse(s[4:6]); err != nil {
		return KindInvalid, nil, err
	}
	if len(s) >= 8 {
		if out["a"], err = parse(s[6:8]); err != nil {
			return KindInvalid, nil, err
		}
	}
	Logger().Debug("classified hex color input", "token", s)
	return KindRGB, out, nil
}
