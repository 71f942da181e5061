package theme

import (
	"errors"
	"fmt"
)

var ErrThemeNotFound = errors.New("theme not found")

// built once, themes are never modified after start
var registry = GetPredefinedThemes()

func GetTheme(name string) (*Theme, error) {
	th, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return th, nil
}

// theme names in display order
func ListThemes() []string {
	return GetThemeNames()
}

func ThemeExists(name string) bool {
	_, ok := registry[name]
	return ok
}

func GetDefaultTheme() *Theme {
	return registry["default"]
}

// Resolve returns the named theme, or the default one for an empty or unknown name.
func Resolve(name string) *Theme {
	if th, err := GetTheme(name); err == nil {
		return th
	}
	return GetDefaultTheme()
}
