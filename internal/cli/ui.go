package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleTitle for graph names and headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleValue for node names.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleNumber for positions in an ordering.
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleSuccess for success messages.
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// styleError for failure messages.
	styleError = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Print Helpers
// =============================================================================

// printTitle writes a styled heading line.
func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

// printOrdered writes nodes as a numbered list, one per line.
func printOrdered(w io.Writer, nodes []string) {
	for i, n := range nodes {
		fmt.Fprintf(w, "%s %s\n", styleNumber.Render(fmt.Sprintf("%3d.", i+1)), styleValue.Render(n))
	}
}

// printEmpty notes that a result has no entries.
func printEmpty(w io.Writer, msg string) {
	fmt.Fprintln(w, styleDim.Render(msg))
}
