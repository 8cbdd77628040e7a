package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ParsePoint parses a point literal of the form "x,y", e.g. "3,-1.25".
// Both fields are decimal: "010" is ten, and prefixes such as "0x" are
// rejected. x must be a whole number; range checks are left to the grid.
func ParsePoint(s string) (int, float64, error) {
	pieces := strings.Split(strings.TrimSpace(s), ",")
	if len(pieces) != 2 {
		return 0, 0, fmt.Errorf("point %q: want the form x,y", s)
	}
	x, err := parseWhole(strings.TrimSpace(pieces[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("point %q: x: %w", s, err)
	}
	y, err := cast.ToFloat64E(strings.TrimSpace(pieces[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("point %q: y: %w", s, err)
	}
	return x, y, nil
}

// parseWhole reads a decimal integer. cast.ToIntE honours base prefixes
// and leading-zero octal, so the value goes through ToFloat64E instead.
func parseWhole(s string) (int, error) {
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return int(f), nil
}
