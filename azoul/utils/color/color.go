package color

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	bannerStyle    = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("130")).
			Padding(0, 1)
)

func ColorPrompt(s string) string {
	return promptStyle.Render(s)
}

func ColorInfo(s string) string {
	return infoStyle.Render(s)
}

func ColorWarning(s string) string {
	return warningStyle.Render(s)
}

func ColorError(s string) string {
	return errorStyle.Render(s)
}

// ColorAssistant renders a reply from the chat assistant.
func ColorAssistant(s string) string {
	return assistantStyle.Render(s)
}

func ColorDim(s string) string {
	return dimStyle.Render(s)
}

func Banner(s string) string {
	return bannerStyle.Render(s)
}
