package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a hex code or a named color (e.g. "yellow") to a tcell.Color.
func ParseColor(s string) (tcell.Color, error) {
	color, err := ParseHexColor(s)
	if err == nil {
		return color, nil
	}
	if strings.HasPrefix(s, "#") {
		return tcell.ColorDefault, err
	}

	color = tcell.GetColor(strings.ToLower(s))
	if color == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color name: %q", s)
	}
	return color, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
