package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var styles = NewTheme(Colors{
	Title:    "#7D56F4",
	Upcoming: "#04B575",
	Past:     "#626262",
	Failure:  "#FF0000",
	Confirm:  "#FFA500",
	Help:     "#626262",
})

// Colors names the foreground of each part of the browser.
type Colors struct {
	Title, Upcoming, Past, Failure, Confirm, Help string
}

// Theme holds the styles the views render with.
type Theme struct {
	title    lipgloss.Style
	status   lipgloss.Style
	failure  lipgloss.Style
	confirm  lipgloss.Style
	seeking  lipgloss.Style
	upcoming lipgloss.Style
	past     lipgloss.Style
	help     lipgloss.Style
}

func NewTheme(c Colors) *Theme {
	return &Theme{
		title:    bold(c.Title).MarginBottom(1),
		status:   bold(c.Upcoming),
		failure:  bold(c.Failure),
		confirm:  fg(c.Confirm),
		seeking:  fg(c.Upcoming).Italic(true),
		upcoming: bold(c.Upcoming).MarginTop(1),
		past:     bold(c.Past).MarginTop(1),
		help:     fg(c.Help).Italic(true),
	}
}

// showsHeading labels a show list with its count, upcoming lists standing out from past ones.
func (t *Theme) showsHeading(upcoming bool, count int) string {
	if upcoming {
		return t.upcoming.Render(fmt.Sprintf("Upcoming shows (%d)", count))
	}
	return t.past.Render(fmt.Sprintf("Past shows (%d)", count))
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func bold(color string) lipgloss.Style {
	return fg(color).Bold(true)
}
