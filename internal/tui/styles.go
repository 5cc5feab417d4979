package tui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles for one color scheme.
type Theme struct {
	Name       string
	Header     lipgloss.Style
	Affirm     lipgloss.Style
	UserLabel  lipgloss.Style
	AILabel    lipgloss.Style
	UserBubble lipgloss.Style
	AIBubble   lipgloss.Style
	Suggestion lipgloss.Style
	Help       lipgloss.Style
	Typing     lipgloss.Style
	Strong     lipgloss.Style
	Em         lipgloss.Style
}

func lightTheme() Theme {
	return Theme{
		Name:       "light",
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("125")),
		Affirm:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("133")),
		UserLabel:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27")),
		AILabel:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("125")),
		UserBubble: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		AIBubble:   lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("97")),
		Help:       lipgloss.NewStyle().Faint(true),
		Typing:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("243")),
		Strong:     lipgloss.NewStyle().Bold(true),
		Em:         lipgloss.NewStyle().Italic(true),
	}
}

func darkTheme() Theme {
	return Theme{
		Name:       "dark",
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		Affirm:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("176")),
		UserLabel:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		AILabel:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		UserBubble: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		AIBubble:   lipgloss.NewStyle().Foreground(lipgloss.Color("254")),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Help:       lipgloss.NewStyle().Faint(true),
		Typing:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Strong:     lipgloss.NewStyle().Bold(true),
		Em:         lipgloss.NewStyle().Italic(true),
	}
}

func themeByName(name string) Theme {
	if name == "dark" {
		return darkTheme()
	}
	return lightTheme()
}
