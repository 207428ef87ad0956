package main

import (
	"charm.land/lipgloss/v2"
)

var (
	answerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("36")).
			Padding(0, 1).
			Width(76)

	questionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	failureStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1).
			Width(76)
)

func renderAnswer(query, answer, dispatched string) string {
	body := questionStyle.Render("Q: "+query) + "\n\n" + answer
	if dispatched != "" {
		body += "\n\n" + sourceStyle.Render("via "+dispatched)
	}
	return answerStyle.Render(body)
}

func renderFailure(message, kind string) string {
	body := message
	if kind != "" {
		body += "\n\n" + sourceStyle.Render(kind)
	}
	return failureStyle.Render(body)
}
