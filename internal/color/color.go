package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	// ActiveStyle marks the active mode in listings.
	ActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"})

	// WarningStyle highlights drift between the output file and its mode.
	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"})
)

// Initialize sets the background assumption used by adaptive colors.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Enabled reports whether colored output should be written to f.
// NO_COLOR disables color regardless of the terminal.
func Enabled(f *os.File) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Configure sets the global color profile. With color disabled every style
// renders as plain text, which keeps scripted output byte-exact.
func Configure(enabled bool) {
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
	Initialize(termenv.HasDarkBackground())
}
