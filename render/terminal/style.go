package terminal

import "github.com/charmbracelet/lipgloss"

// Speaker color cycle — terminal counterpart of the docx palette, with
// lighter variants for dark backgrounds.
var speakerColors = []lipgloss.AdaptiveColor{
	{Light: "#1f497d", Dark: "#60a5fa"}, // blue
	{Light: "#4f81bd", Dark: "#93c5fd"}, // light blue
	{Light: "#7030a0", Dark: "#c084fc"}, // purple
	{Light: "#008000", Dark: "#4ade80"}, // green
	{Light: "#c0504d", Dark: "#f87171"}, // red
	{Light: "#806000", Dark: "#facc15"}, // gold
}

var (
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
)

var (
	styleTitle     = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta      = lipgloss.NewStyle().Foreground(colorDim)
	styleTimestamp = lipgloss.NewStyle().Foreground(colorDim)
	styleSeparator = lipgloss.NewStyle().Foreground(colorDim)
)

// speakerStyle returns the bold label style for the speaker at
// first-appearance index i.
func speakerStyle(i int) lipgloss.Style {
	color := speakerColors[i%len(speakerColors)]
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
