package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette (ANSI 256).
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle renders headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleValue renders values next to labels.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleLabel       = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

// statusKind selects the icon and color of a status line.
type statusKind int

const (
	statusSuccess statusKind = iota
	statusFailure
	statusWarning
	statusInfo
)

var statusIcons = [...]struct {
	glyph string
	color lipgloss.Color
}{
	statusSuccess: {"✓", colorGreen},
	statusFailure: {"✗", colorRed},
	statusWarning: {"!", colorYellow},
	statusInfo:    {"›", colorGray},
}

// statusLine formats msg behind the icon for kind.
func statusLine(kind statusKind, msg string) string {
	icon := statusIcons[kind]
	glyph := lipgloss.NewStyle().Foreground(icon.color).Render(icon.glyph)
	if kind == statusWarning {
		msg = lipgloss.NewStyle().Foreground(icon.color).Render(msg)
	}
	return glyph + " " + msg
}

func printSuccess(format string, args ...any) {
	fmt.Println(statusLine(statusSuccess, fmt.Sprintf(format, args...)))
}

func printFailure(format string, args ...any) {
	fmt.Println(statusLine(statusFailure, fmt.Sprintf(format, args...)))
}

func printWarning(format string, args ...any) {
	fmt.Println(statusLine(statusWarning, fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(statusLine(statusInfo, fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints an output path under a status line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints one dimmed summary line for a render: shape count,
// figure size in inches and whether the artifacts came from the cache.
func printStats(shapeCount int, width, height float64, cached bool) {
	fmt.Println("  " + statsLine(shapeCount, width, height, cached))
}

func statsLine(shapeCount int, width, height float64, cached bool) string {
	var parts []string
	if shapeCount > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d shapes", shapeCount)))
	}
	if width > 0 && height > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%.4g×%.4g in", width, height)))
	}
	if cached {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorGreen).Render("cached"))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorGray).Render("fresh"))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
