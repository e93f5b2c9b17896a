package chroma

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewFromVariousInputs(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		opts    []Option
		wantHex string
	}{
		{"hex string", "#FF0000", nil, "#ff0000"},
		{"shorthand hex", "#abc", nil, "#aabbcc"},
		{"functional rgb", "rgb(1,2,3)", nil, "#010203"},
		{"functional hsl", "hsl(0,100%,50%)", nil, "#ff0000"},
		{"named color", "steelblue", nil, "#4682b4"},
		{"positional ints", []int{255, 255, 255}, nil, "#ffffff"},
		{"keyed map", map[string]float64{"r": 16, "g": 32, "b": 48}, nil, "#102030"},
		{"positional hsl via fallback", []float64{0, 100, 50}, []Option{WithFallback(KindHSL)}, "#ff0000"},
		{"hex with alpha", "#aabbccdd", nil, "#aabbccdd"},
		{"clamps out of range", []int{-20, 300, 128}, nil, "#00ff80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.input, tt.opts...)
			if err != nil {
				t.Fatalf("New(%v) error: %v", tt.input, err)
			}
			if got := c.Hex(); got != tt.wantHex {
				t.Errorf("New(%v).Hex() = %q, want %q", tt.input, got, tt.wantHex)
			}
		})
	}
}

func TestNewFromExistingColor(t *testing.T) {
	orig, err := New("#aabbcc")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	copied, err := New(orig)
	if err != nil {
		t.Fatalf("New(*Color) error: %v", err)
	}
	if copied.Hex() != orig.Hex() {
		t.Errorf("New(*Color).Hex() = %q, want %q", copied.Hex(), orig.Hex())
	}
	// The copy owns its channels.
	if err := copied.Set(ChannelR, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if orig.Hex() != "#aabbcc" {
		t.Error("mutating a copied color changed the original")
	}
}

func TestNewInvalidInput(t *testing.T) {
	_, err := New(struct{}{})
	if err == nil {
		t.Fatal("New(struct{}{}) succeeded, want error")
	}
	var inv *InvalidInputError
	if !errors.As(err, &inv) {
		t.Errorf("New error = %T, want *InvalidInputError", err)
	}
}

func TestExplicitAlphaWins(t *testing.T) {
	c, err := New([]int{1, 2, 3, 200}, WithAlpha(100))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	a, ok := c.Alpha()
	if !ok || a != 100 {
		t.Errorf("Alpha() = %d, %v; want 100, true", a, ok)
	}
}

func TestFourthComponentBecomesAlpha(t *testing.T) {
	c, err := New([]int{1, 2, 3, 200})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	a, ok := c.Alpha()
	if !ok || a != 200 {
		t.Errorf("Alpha() = %d, %v; want 200, true", a, ok)
	}
}

func TestChannelGetSet(t *testing.T) {
	c := RGB(10, 20, 30)

	for _, tt := range []struct {
		ch   Channel
		want int
	}{
		{ChannelR, 10},
		{ChannelG, 20},
		{ChannelB, 30},
	} {
		got, err := c.Get(tt.ch)
		if err != nil {
			t.Fatalf("Get(%v) error: %v", tt.ch, err)
		}
		if got != tt.want {
			t.Errorf("Get(%v) = %d, want %d", tt.ch, got, tt.want)
		}
	}

	// Alpha is undefined until set.
	if _, err := c.Get(ChannelA); err == nil {
		t.Error("Get(ChannelA) on a color without alpha succeeded")
	}
	if err := c.Set(ChannelA, 77); err != nil {
		t.Fatalf("Set(ChannelA) error: %v", err)
	}
	if a, err := c.Get(ChannelA); err != nil || a != 77 {
		t.Errorf("Get(ChannelA) = %d, %v; want 77, nil", a, err)
	}

	// Set clamps to the channel range.
	if err := c.Set(ChannelR, 300); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if r, _ := c.Get(ChannelR); r != 255 {
		t.Errorf("Set(ChannelR, 300) stored %d, want 255", r)
	}
	if err := c.Set(ChannelG, -5); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if g, _ := c.Get(ChannelG); g != 0 {
		t.Errorf("Set(ChannelG, -5) stored %d, want 0", g)
	}
}

func TestUndefinedChannel(t *testing.T) {
	c := RGB(1, 2, 3)

	_, err := c.Get(Channel(99))
	var undef *UndefinedChannelError
	if !errors.As(err, &undef) {
		t.Fatalf("Get(Channel(99)) error = %T, want *UndefinedChannelError", err)
	}
	if err := c.Set(Channel(99), 1); !errors.As(err, &undef) {
		t.Errorf("Set(Channel(99)) error = %T, want *UndefinedChannelError", err)
	}
}

func TestStdInterop(t *testing.T) {
	c := FromStd(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	if got := c.Hex(); got != "#0a141eff" {
		t.Errorf("FromStd Hex() = %q, want %q", got, "#0a141eff")
	}

	back := c.Std().(color.NRGBA)
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	if back != want {
		t.Errorf("Std() = %v, want %v", back, want)
	}

	// A color without alpha converts as fully opaque.
	opaque := RGB(1, 2, 3).Std().(color.NRGBA)
	if opaque.A != 255 {
		t.Errorf("Std() alpha = %d, want 255", opaque.A)
	}
}

func TestView(t *testing.T) {
	c, err := New("#ff0000")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	hsl, err := c.View(KindHSL)
	if err != nil {
		t.Fatalf("View error: %v", err)
	}
	if diff := cmp.Diff(Keyed{"h": 0, "s": 100, "l": 50}, hsl); diff != "" {
		t.Errorf("View(KindHSL) mismatch (-want +got):\n%s", diff)
	}
}

func TestAllRepresentations(t *testing.T) {
	c := RGB(255, 0, 0)
	all := c.All()

	if len(all) != 5 {
		t.Fatalf("All() returned %d kinds, want 5", len(all))
	}
	if diff := cmp.Diff(Keyed{"r": 255, "g": 0, "b": 0}, all[KindRGB]); diff != "" {
		t.Errorf("All()[rgb] mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Keyed{"h": 0, "s": 100, "v": 100}, all[KindHSV]); diff != "" {
		t.Errorf("All()[hsv] mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Keyed{"c": 0, "m": 100, "y": 100, "k": 0}, all[KindCMYK]); diff != "" {
		t.Errorf("All()[cmyk] mismatch (-want +got):\n%s", diff)
	}
}
