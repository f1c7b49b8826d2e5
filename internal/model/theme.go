package model

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	LightTextClass = "text-white"
	DarkTextClass  = "text-gray-900"

	// darkShadeFloor is the first Tailwind shade treated as a dark background.
	darkShadeFloor = 600
)

// Theme is a named bundle of style tokens. Tokens are Tailwind-style class
// names; only IsDarkBackground looks inside them.
type Theme struct {
	Name            string
	BackgroundClass string
	TextClass       string
}

func (t Theme) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTheme)
	}
	if strings.TrimSpace(t.BackgroundClass) == "" {
		return fmt.Errorf("%w: %q has no background class", ErrInvalidTheme, t.Name)
	}
	return nil
}

func (t Theme) Equal(other Theme) bool {
	return strings.EqualFold(t.Name, other.Name)
}

func (t Theme) IsDark() bool {
	return IsDarkBackground(t.BackgroundClass)
}

// WithContrastText returns t with TextClass derived from BackgroundClass.
func (t Theme) WithContrastText() Theme {
	t.TextClass = ContrastTextClass(t.BackgroundClass)
	return t
}

var (
	LightTheme = Theme{Name: "light", BackgroundClass: "bg-white", TextClass: DarkTextClass}
	DarkTheme  = Theme{Name: "dark", BackgroundClass: "bg-gray-900", TextClass: LightTextClass}
)

// Palette is the fixed set of swatches offered by the swatch selector.
var Palette = []Theme{
	{Name: "white", BackgroundClass: "bg-white", TextClass: DarkTextClass},
	{Name: "sky", BackgroundClass: "bg-blue-100", TextClass: "text-blue-900"},
	{Name: "mint", BackgroundClass: "bg-green-100", TextClass: "text-green-900"},
	{Name: "rose", BackgroundClass: "bg-red-100", TextClass: "text-red-900"},
	{Name: "amber", BackgroundClass: "bg-amber-200", TextClass: "text-amber-900"},
	{Name: "indigo", BackgroundClass: "bg-indigo-700", TextClass: "text-indigo-100"},
	{Name: "forest", BackgroundClass: "bg-green-800", TextClass: "text-green-100"},
	{Name: "midnight", BackgroundClass: "bg-slate-900", TextClass: "text-slate-100"},
}

// Themes returns the light/dark pair followed by the palette.
func Themes() []Theme {
	out := make([]Theme, 0, len(Palette)+2)
	out = append(out, LightTheme, DarkTheme)
	return append(out, Palette...)
}

func LookupTheme(name string) (Theme, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Theme{}, false
	}
	for _, theme := range Themes() {
		if strings.EqualFold(theme.Name, name) {
			return theme, true
		}
	}
	return Theme{}, false
}

// IsDarkBackground reports whether a background token names a dark intensity:
// "black", anything containing "dark", or a numeric shade suffix of 600 and up.
func IsDarkBackground(token string) bool {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return false
	}
	if strings.Contains(token, "black") || strings.Contains(token, "dark") {
		return true
	}
	idx := strings.LastIndex(token, "-")
	if idx < 0 || idx == len(token)-1 {
		return false
	}
	shade, err := strconv.Atoi(token[idx+1:])
	if err != nil {
		return false
	}
	return shade >= darkShadeFloor
}

func ContrastTextClass(backgroundClass string) string {
	if IsDarkBackground(backgroundClass) {
		return LightTextClass
	}
	return DarkTextClass
}
