// Package ui provides the terminal user interface components for the GenPad application.
// This file contains style definitions for various UI elements using the lipgloss library.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/VarunSharma3520/GenPad/internal/config"
)

// Global style definitions for consistent theming across the application.
var (
	// titleStyle defines the styling for the application title/header.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(config.MainColorBackground)).
			Background(lipgloss.Color(config.MainColorForeground)).
			PaddingRight(4).
			PaddingLeft(4).
			AlignVertical(lipgloss.Center)

	// helpStyle defines the styling for help/instruction text.
	helpStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(config.MainColorBackgroundMute))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color(config.MainColorBackground)).
			Background(lipgloss.Color(config.MainColorForeground))

	// buttonFocusedStyle marks the button when Enter would press it.
	buttonFocusedStyle = buttonStyle.
				Underline(true).
				Background(lipgloss.Color("212"))

	buttonDisabledStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Foreground(lipgloss.Color(config.MainColorBackgroundMute)).
				Background(lipgloss.Color("236"))

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(config.MainColorForeground)).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(config.ErrorColor))

	outputPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(config.MainColorBackgroundMute))

	// optionStyle is the style for the options in the options screen
	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(config.MainColorForeground)).
			MarginLeft(2)

	// statusStyle is the style for status messages
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Italic(true)
)
