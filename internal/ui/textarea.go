// Package ui provides the terminal user interface components for the GenPad application.
// It uses the Bubble Tea framework for building interactive terminal applications.
package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/VarunSharma3520/GenPad/internal/config"
)

const (
	promptRows      = 5
	promptCharLimit = 8000
)

// NewPromptInput creates the multi-line prompt box. It starts focused so the
// user can type as soon as the screen appears.
func NewPromptInput() textarea.Model {
	ta := textarea.New()

	ta.Placeholder = "Enter your text prompt..."
	ta.ShowLineNumbers = false
	ta.CharLimit = promptCharLimit
	ta.SetWidth(defaultWidth)
	ta.SetHeight(promptRows)

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color(config.MainColorForeground))
	ta.BlurredStyle.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color(config.MainColorBackgroundMute))

	ta.Focus()
	return ta
}

// NewOptionInput creates a single-line editor used on the options screen.
func NewOptionInput(placeholder string, charLimit, width int) textinput.Model {
	ti := textinput.New()

	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Width = width
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(config.MainColorForeground))

	return ti
}
