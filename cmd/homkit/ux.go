package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// colorMode mirrors the --color flag: force, auto, never.
type colorMode string

const (
	colorAuto  colorMode = "auto"
	colorForce colorMode = "force"
	colorNever colorMode = "never"
)

var styles = struct {
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
	bold    lipgloss.Style
}{
	success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
	failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C")),
	muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7A89")),
	bold:    lipgloss.NewStyle().Bold(true),
}

// colorEnabled decides whether styles.* are actually applied. Resolved
// once from --color at CLI startup.
var colorEnabled = true

// resolveColorMode turns --color plus a terminal probe into a single
// enabled/disabled decision (spec §4.9's --color force/auto/never).
func resolveColorMode(mode colorMode) bool {
	switch mode {
	case colorForce:
		return true
	case colorNever:
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

func printSuccess(msg string) {
	fmt.Println(render(styles.success, "✓"), msg)
}

func printFailure(msg string) {
	fmt.Println(render(styles.failure, "✗"), msg)
}

func printMuted(msg string) {
	fmt.Println(render(styles.muted, msg))
}
