package notifications

import "github.com/charmbracelet/lipgloss"

type style struct {
	icon             string
	title            string
	foreground       string
	background       string
	borderForeground string
}

func (s Severity) style() style {
	switch s {
	case Warning:
		return style{icon: "⚠", title: "Warning", foreground: "#1F2937", background: "#FBBF24", borderForeground: "#FBBF24"}
	case Error:
		return style{icon: "✕", title: "Error", foreground: "#FFFFFF", background: "#DC2626", borderForeground: "#DC2626"}
	default:
		return style{icon: "🔔", title: "Info", foreground: "#FFFFFF", background: "#7D56F4", borderForeground: "#7D56F4"}
	}
}

// Render renders a notification banner based on severity level
func Render(n Notification) string {
	st := n.Severity.style()

	headerText := st.icon + " " + st.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(n.Message))

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Bold(true).
		Width(maxWidth)
	if n.Severity == Info {
		headerStyle = headerStyle.Background(lipgloss.Color(st.background))
	}

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Width(maxWidth).
		Render(n.Message)

	content := lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(headerText), body)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.borderForeground)).
		Background(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(content)
}
