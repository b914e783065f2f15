package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for board elements
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1B5E20")).
			Bold(true).
			Padding(0, 1)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	slotStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	cursorSlotStyle = slotStyle.
			BorderForeground(lipgloss.Color("#FFD700"))

	selectedSlotStyle = slotStyle.
				BorderForeground(lipgloss.Color("#04B575"))

	candidateSlotStyle = slotStyle.
				BorderForeground(lipgloss.Color("#7D56F4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)
)

// cardStyle picks the red or black style for a card
func cardStyle(isRed bool) lipgloss.Style {
	if isRed {
		return redCardStyle
	}
	return blackCardStyle
}
