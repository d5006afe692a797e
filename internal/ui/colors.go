package ui

import "github.com/charmbracelet/lipgloss"

const (
	Background = lipgloss.Color("#0D3025")

	Primary   = lipgloss.Color("#E6F0E6")
	Secondary = lipgloss.Color("#CBD5D8")
	Faded     = lipgloss.Color("#5A7261")
	Accent    = lipgloss.Color("#C2A24B")

	Button = lipgloss.Color("#5A7261")
	Link   = lipgloss.Color("#4db7ff")

	TaskFill  = lipgloss.Color("#DCE8DB")
	TaskEmpty = lipgloss.Color("#5E7766")

	Green  = lipgloss.Color("#00a352")
	Red    = lipgloss.Color("#c42912")
	Yellow = lipgloss.Color("#c4b810")
	Orange = lipgloss.Color("#c27510")
)

// Width is the fixed width of every screen, in cells
const Width = 46

var (
	Frame = lipgloss.NewStyle().
		Width(Width).
		Padding(1, 2).
		Foreground(Primary)

	Header = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	Body   = lipgloss.NewStyle().Foreground(Primary)
	Help   = lipgloss.NewStyle().Foreground(Faded)
)

// Title renders the two-line heading used at the top of most screens
func Title(top, bottom string) string {
	if top == "" {
		return Header.Render(bottom) + "\n\n"
	}
	return Body.Render(top) + "\n" + Header.Render(bottom) + "\n\n"
}
