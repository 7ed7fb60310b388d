package gfx_test

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/pkg/errors"

	"github.com/kjkrol/goshim/pkg/gfx"
)

func TestParseColorKey(t *testing.T) {
	cases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#ff00ff", want: gfx.Magenta},
		{in: "00ff00", want: color.RGBA{G: 255, A: 255}},
		{in: "#f0f", want: gfx.Magenta},
		{in: "not-a-colour", wantErr: true},
	}
	for _, tc := range cases {
		got, err := gfx.ParseColorKey(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseColorKey(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseColorKey(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestDefaultColorKey(t *testing.T) {
	t.Setenv(gfx.ColorKeyEnv, "")
	if got := gfx.DefaultColorKey(); got != gfx.Magenta {
		t.Fatalf("default key %v", got)
	}
	t.Setenv(gfx.ColorKeyEnv, "#00ff00")
	if got := gfx.DefaultColorKey(); got != (color.RGBA{G: 255, A: 255}) {
		t.Fatalf("env key %v", got)
	}
	t.Setenv(gfx.ColorKeyEnv, "garbage")
	if got := gfx.DefaultColorKey(); got != gfx.Magenta {
		t.Fatalf("malformed env should fall back to magenta, got %v", got)
	}
}

func TestErrorKinds(t *testing.T) {
	base := errors.New("boom")
	err := fmt.Errorf("outer: %w", &gfx.Error{Kind: gfx.KindRender, Op: "copy", Err: base})

	if !errors.Is(err, gfx.ErrRender) {
		t.Fatal("kind sentinel should match")
	}
	if errors.Is(err, gfx.ErrCreate) {
		t.Fatal("other kinds must not match")
	}
	if !errors.Is(err, base) {
		t.Fatal("cause should stay reachable")
	}
	if gfx.KindOf(err) != gfx.KindRender {
		t.Fatalf("KindOf = %v", gfx.KindOf(err))
	}
	if gfx.KindOf(base) != gfx.KindUnknown || gfx.IsKind(nil, gfx.KindUnknown) {
		t.Fatal("plain errors have no kind")
	}
}
