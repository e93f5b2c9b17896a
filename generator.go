package chroma

// Generator produces raw color values in any representation the
// classifier accepts (hex strings, keyed maps, positional slices, ...).
// Implementations typically wrap an external random-color service;
// recognized generation options belong to the implementation and are
// fixed at construction time.
type Generator interface {
	// Generate returns one raw color value.
	Generate() (any, error)
	// GenerateN returns n raw color values.
	GenerateN(n int) ([]any, error)
}

// FromGenerator obtains one color from g and parses it. Options are
// applied the same way as in [New].
func FromGenerator(g Generator, opts ...Option) (*Color, error) {
	v, err := g.Generate()
	if err != nil {
		return nil, err
	}
	c, err := New(v, opts...)
	if err != nil {
		Logger().Warn("generated color value failed to parse", "value", v, "err", err)
		return nil, err
	}
	return c, nil
}

// FromGeneratorN obtains n colors from g and parses them. A single
// unparseable value fails the whole batch.
func FromGeneratorN(g Generator, n int, opts ...Option) ([]*Color, error) {
	vals, err := g.GenerateN(n)
	if err != nil {
		return nil, err
	}
	out := make([]*Color, 0, len(vals))
	for _, v := range vals {
		c, err := New(v, opts...)
		if err != nil {
			Logger().Warn("generated color value failed to parse", "value", v, "err", err)
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
