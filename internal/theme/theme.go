// Package theme resolves the accent color the pages are rendered with.
package theme

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

// Source records where the resolved color came from.
type Source string

const (
	SourceFlag   Source = "flag"
	SourceEnv    Source = "env"
	SourceRandom Source = "random"
)

var codes = map[string]string{
	"red":      "#e74c3c",
	"green":    "#16a085",
	"blue":     "#89CFF0",
	"blue2":    "#30336b",
	"pink":     "#f4c2c2",
	"darkblue": "#130f40",
	"lime":     "#C1FF9C",
}

// UnsupportedColorError is returned when the requested color has no hex code.
type UnsupportedColorError struct {
	Color string
}

func (e UnsupportedColorError) Error() string {
	return fmt.Sprintf("color not supported. Received '%s' expected one of %s", e.Color, strings.Join(Names(), ","))
}

// Theme is the resolved accent color.
type Theme struct {
	Name   string
	Hex    string
	Source Source
}

// Names lists the supported color names in sorted order.
func Names() []string {
	names := make([]string, 0, len(codes))
	for name := range codes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the hex code for a color name.
func Lookup(name string) (string, bool) {
	hex, ok := codes[name]
	return hex, ok
}

// Resolve picks the color with flag > env > random precedence.
// pick chooses an index in [0,n) for the random fallback; nil uses math/rand.
func Resolve(flagColor, envColor string, pick func(n int) int) (Theme, error) {
	var t Theme
	switch {
	case flagColor != "":
		t = Theme{Name: flagColor, Source: SourceFlag}
	case envColor != "":
		t = Theme{Name: envColor, Source: SourceEnv}
	default:
		if pick == nil {
			pick = rand.IntN
		}
		names := Names()
		t = Theme{Name: names[pick(len(names))], Source: SourceRandom}
	}

	hex, ok := Lookup(t.Name)
	if !ok {
		return Theme{}, UnsupportedColorError{Color: t.Name}
	}
	t.Hex = hex
	return t, nil
}
