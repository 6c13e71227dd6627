// Package color provides terminal color detection and styling for compose-mode.
//
// Styles are lipgloss styles with adaptive light/dark colors:
//   - ActiveStyle: the "*" marker of the active mode
//   - WarningStyle: the "Out of date!" drift marker
//
// Call Configure once at startup with the result of Enabled(os.Stdout).
// When color is disabled (NO_COLOR set, or stdout is not a terminal) the
// color profile is forced to ASCII so styles render as plain text and
// output piped into scripts is unchanged.
//
//	color.Configure(color.Enabled(os.Stdout))
//	fmt.Println(color.ActiveStyle.Render("*"))
package color
