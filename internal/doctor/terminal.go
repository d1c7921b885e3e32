package doctor

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vdash/vdash/internal/dashboard"
)

// Comfortable terminal size for the full grid. The dashboard itself runs
// down to dashboard.MinWidth x MinHeight, but the info rows start
// collapsing well before that.
const (
	ComfortWidth  = 72
	ComfortHeight = 20
)

// TTYCheck verifies stdout is attached to a terminal.
type TTYCheck struct{}

func (c *TTYCheck) Name() string     { return "tty" }
func (c *TTYCheck) Category() string { return "TERMINAL" }

func (c *TTYCheck) Run() CheckResult {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "stdout is not a terminal",
			Suggestion: "Run vdash in a terminal, not behind a pipe or redirect",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "stdout is a terminal",
	}
}

// SizeCheck verifies the terminal is large enough for the dashboard grid.
type SizeCheck struct{}

func (c *SizeCheck) Name() string     { return "size" }
func (c *SizeCheck) Category() string { return "TERMINAL" }

func (c *SizeCheck) Run() CheckResult {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Cannot determine terminal size",
			Suggestion: "Is stdout a terminal? The dashboard needs one",
		}
	}

	if width < dashboard.MinWidth || height < dashboard.MinHeight {
		return CheckResult{
			Name:   c.Name(),
			Status: StatusFail,
			Message: fmt.Sprintf("Terminal is %dx%d; the dashboard needs at least %dx%d",
				width, height, dashboard.MinWidth, dashboard.MinHeight),
			Suggestion: "Resize the terminal or lower the font size",
		}
	}

	if width < ComfortWidth || height < ComfortHeight {
		return CheckResult{
			Name:   c.Name(),
			Status: StatusWarn,
			Message: fmt.Sprintf("Terminal is %dx%d; %dx%d or more is comfortable",
				width, height, ComfortWidth, ComfortHeight),
			Suggestion: "The grid fits but the info rows will be cramped",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Terminal is %dx%d", width, height),
	}
}

// ColorCheck reports the color profile the terminal advertises.
type ColorCheck struct{}

func (c *ColorCheck) Name() string     { return "color" }
func (c *ColorCheck) Category() string { return "TERMINAL" }

func (c *ColorCheck) Run() CheckResult {
	profile := termenv.ColorProfile()
	if profile == termenv.Ascii {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Terminal reports no color support",
			Suggestion: "Status colors will be invisible. Check $TERM; try TERM=xterm-256color",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Color profile: %s", profileName(profile)),
	}
}

// profileName maps a termenv profile to a display name.
func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "monochrome"
	}
}

// LocaleCheck verifies the locale can render the dashboard glyphs.
type LocaleCheck struct{}

func (c *LocaleCheck) Name() string     { return "locale" }
func (c *LocaleCheck) Category() string { return "TERMINAL" }

func (c *LocaleCheck) Run() CheckResult {
	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LC_CTYPE")
	}
	if locale == "" {
		locale = os.Getenv("LANG")
	}

	if locale == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No locale set",
			Suggestion: "Box-drawing and gauge glyphs need UTF-8. Try: export LANG=C.UTF-8",
		}
	}

	normalized := strings.ToLower(strings.ReplaceAll(locale, "-", ""))
	if !strings.Contains(normalized, "utf8") {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Locale %q is not UTF-8", locale),
			Suggestion: "Box-drawing and gauge glyphs may render as garbage. Try: export LANG=C.UTF-8",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Locale: %s", locale),
	}
}

// NewTerminalChecks creates all terminal-related checks.
func NewTerminalChecks() []Check {
	return []Check{
		&TTYCheck{},
		&SizeCheck{},
		&ColorCheck{},
		&LocaleCheck{},
	}
}
