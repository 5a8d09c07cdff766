// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
)

var (
	// StyleTitle for command headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleNumber for counts and depths.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for labels.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleKey = lipgloss.NewStyle().Foreground(colorGray).Width(18)
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// printKV prints one aligned "key value" row.
func printKV(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s %s\n", styleKey.Render(key), StyleNumber.Render(fmt.Sprint(value)))
}
