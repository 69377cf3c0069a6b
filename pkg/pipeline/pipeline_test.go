package pipeline

import (
	"testing"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/card"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/errors"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Username: "octocat"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("valid options should pass: %v", err)
	}

	if opts.Type != card.TypeActivity {
		t.Errorf("Type = %q, want %q", opts.Type, card.TypeActivity)
	}
	if opts.Theme != card.DefaultTheme {
		t.Errorf("Theme = %q, want %q", opts.Theme, card.DefaultTheme)
	}
	if opts.Layout != card.LayoutDefault {
		t.Errorf("Layout = %q, want %q", opts.Layout, card.LayoutDefault)
	}
	if opts.CacheSeconds != DefaultCacheSeconds {
		t.Errorf("CacheSeconds = %d, want %d", opts.CacheSeconds, DefaultCacheSeconds)
	}
	if opts.Logger == nil {
		t.Error("Logger should be defaulted")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{"missing username", Options{}, errors.ErrCodeInvalidUsername},
		{"blank username", Options{Username: "   "}, errors.ErrCodeInvalidUsername},
		{"bad username grammar", Options{Username: "-octo"}, errors.ErrCodeInvalidUsername},
		{"bad type", Options{Username: "octocat", Type: "banner"}, errors.ErrCodeInvalidCardType},
		{"bad theme", Options{Username: "octocat", Theme: "neon"}, errors.ErrCodeInvalidTheme},
		{"bad layout", Options{Username: "octocat", Layout: "diagonal"}, errors.ErrCodeInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.GetCode(err) != tt.wantCode {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestOptionsCacheSeconds(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultCacheSeconds},
		{-5, DefaultCacheSeconds},
		{600, 600},
		{MaxCacheSeconds, MaxCacheSeconds},
		{MaxCacheSeconds + 1, MaxCacheSeconds},
	}

	for _, tt := range tests {
		opts := Options{Username: "octocat", CacheSeconds: tt.in}
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatalf("ValidateAndSetDefaults(%d): %v", tt.in, err)
		}
		if opts.CacheSeconds != tt.want {
			t.Errorf("CacheSeconds(%d) = %d, want %d", tt.in, opts.CacheSeconds, tt.want)
		}
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Username: "octocat", CacheSeconds: 600, Theme: "dark"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first validation failed: %v", err)
	}
	once := opts

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second validation failed: %v", err)
	}
	if opts != once {
		t.Errorf("second call changed options: %+v != %+v", opts, once)
	}
}

func TestCardOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := Options{Username: "octocat"}
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatal(err)
		}
		co := opts.CardOptions()
		if !co.ShowBorder {
			t.Error("border should default to on")
		}
		if co.BorderRadius != DefaultBorderRadius {
			t.Errorf("BorderRadius = %v, want %v", co.BorderRadius, DefaultBorderRadius)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		zero := 0.0
		opts := Options{
			Username:     "octocat",
			Theme:        "dark",
			HideBorder:   true,
			BorderRadius: &zero,
			HideStats:    true,
			Width:        640,
			Layout:       card.LayoutVertical,
		}
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatal(err)
		}
		co := opts.CardOptions()
		if co.ShowBorder {
			t.Error("HideBorder should disable the border")
		}
		if co.BorderRadius != 0 {
			t.Errorf("explicit zero radius lost: %v", co.BorderRadius)
		}
		if !co.HideStats || co.Width != 640 || co.Theme != "dark" || co.Layout != card.LayoutVertical {
			t.Errorf("options not carried: %+v", co)
		}
	})
}
