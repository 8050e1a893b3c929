package core

import (
	"fmt"
	"strings"
)

// ConsoleColor is an ANSI escape sequence used by the colored console
// appender.
type ConsoleColor string

const (
	ColorReset   ConsoleColor = "\033[0m"
	ColorRed     ConsoleColor = "\033[31m"
	ColorGreen   ConsoleColor = "\033[32m"
	ColorYellow  ConsoleColor = "\033[33m"
	ColorBlue    ConsoleColor = "\033[34m"
	ColorMagenta ConsoleColor = "\033[35m"
	ColorCyan    ConsoleColor = "\033[36m"
	ColorWhite   ConsoleColor = "\033[37m"
	ColorDefault ConsoleColor = "\033[39m"
)

// String returns the raw escape sequence.
func (c ConsoleColor) String() string { return string(c) }

var colorNames = map[string]ConsoleColor{
	"reset":   ColorReset,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"default": ColorDefault,
}

// ParseColor resolves a color name (case-insensitive) to its escape
// sequence.
func ParseColor(name string) (ConsoleColor, error) {
	if c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown console color: %q", name)
}

// ColorName returns the name of a known color, or its raw escape
// sequence when unnamed.
func ColorName(c ConsoleColor) string {
	for name, known := range colorNames {
		if known == c {
			return name
		}
	}
	return string(c)
}
