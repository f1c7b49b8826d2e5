package model

import (
	"errors"
	"testing"
)

func TestIsDarkBackground(t *testing.T) {
	cases := []struct {
		token string
		want  bool
	}{
		{"bg-white", false},
		{"bg-gray-900", true},
		{"bg-blue-100", false},
		{"bg-amber-500", false},
		{"bg-indigo-600", true},
		{"bg-black", true},
		{"bg-dark", true},
		{"BG-SLATE-800", true},
		{"bg-blue-", false},
		{"bg-blue-tone", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsDarkBackground(tc.token); got != tc.want {
			t.Fatalf("IsDarkBackground(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestContrastTextClass(t *testing.T) {
	if got := ContrastTextClass("bg-green-800"); got != LightTextClass {
		t.Fatalf("expected light text on dark background, got %q", got)
	}
	if got := ContrastTextClass("bg-green-100"); got != DarkTextClass {
		t.Fatalf("expected dark text on light background, got %q", got)
	}
}

func TestLookupTheme(t *testing.T) {
	theme, ok := LookupTheme("  Dark ")
	if !ok || theme != DarkTheme {
		t.Fatalf("expected dark theme, got %+v ok=%v", theme, ok)
	}
	theme, ok = LookupTheme("forest")
	if !ok || theme.BackgroundClass != "bg-green-800" {
		t.Fatalf("expected forest swatch, got %+v ok=%v", theme, ok)
	}
	if _, ok := LookupTheme("neon"); ok {
		t.Fatal("expected unknown theme lookup to fail")
	}
	if _, ok := LookupTheme(""); ok {
		t.Fatal("expected empty theme lookup to fail")
	}
}

func TestThemesAreValidAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, theme := range Themes() {
		if err := theme.Validate(); err != nil {
			t.Fatalf("theme %q invalid: %v", theme.Name, err)
		}
		if seen[theme.Name] {
			t.Fatalf("duplicate theme name %q", theme.Name)
		}
		seen[theme.Name] = true
	}
	if len(Palette) == 0 {
		t.Fatal("expected non-empty palette")
	}
}

func TestThemeValidateRejectsBlankFields(t *testing.T) {
	err := Theme{BackgroundClass: "bg-white"}.Validate()
	if !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
	err = Theme{Name: "x"}.Validate()
	if !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}

func TestWithContrastText(t *testing.T) {
	theme := Theme{Name: "indigo", BackgroundClass: "bg-indigo-700", TextClass: "text-indigo-100"}
	if got := theme.WithContrastText().TextClass; got != LightTextClass {
		t.Fatalf("expected %q, got %q", LightTextClass, got)
	}
	if !theme.IsDark() {
		t.Fatal("expected indigo-700 to be dark")
	}
}
