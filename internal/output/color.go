package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode is the value of the --color flag.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ErrInvalidColorMode is returned by ParseColorMode for unknown values.
var ErrInvalidColorMode = errors.New("invalid color mode")

// ParseColorMode validates a --color value. Empty means auto.
func ParseColorMode(value string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("%w %q (use auto, always or never)", ErrInvalidColorMode, value)
	}
}

// ResolveColorMode decides whether to style output. In auto mode a set
// NO_COLOR variable turns color off even on a terminal. Unknown modes
// behave like auto.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	mode, err := ParseColorMode(colorMode)
	if err != nil {
		mode = ColorAuto
	}
	switch mode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		return isTTY
	}
}

// IsTTY reports whether v (a reader or writer) is a terminal. Only values
// with a file descriptor can be.
func IsTTY(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
