package ui

import (
	"fmt"
	"strings"

	"github.com/VarunSharma3520/GenPad/internal/types"
)

const (
	loadingText = "Waiting for model..."
	helpPrompt  = "Tab: Prompt/Button • Ctrl+G: Generate • PgUp/PgDn: Scroll • Ctrl+O: Options • Esc: Quit"
	helpLoading = "Generating… Esc: Quit • PgUp/PgDn: Scroll"
	helpOptions = "Tab/↑/↓: Navigate • Enter: Select • ↑/↓ on Temperature: Adjust • Esc: Back • Ctrl+W: Quit"
)

// buttonLabel is the Generate button text for the current state.
func (m Model) buttonLabel() string {
	if m.Gen.Loading {
		return "Generating..."
	}
	return "Generate"
}

func (m Model) renderButton() string {
	label := m.buttonLabel()
	switch {
	case !m.Gen.CanGenerate():
		return buttonDisabledStyle.Render(label)
	case m.ButtonFocused:
		return buttonFocusedStyle.Render(label)
	default:
		return buttonStyle.Render(label)
	}
}

// renderResult renders exactly one of the loading, error and output branches.
func (m Model) renderResult() string {
	var body string
	switch m.Gen.Phase() {
	case PhaseLoading:
		body = fmt.Sprintf("%s %s", m.Spinner.View(), loadingStyle.Render(loadingText))
		// keep the pane the same height as the viewport
		body += strings.Repeat("\n", max(m.Output.Height-1, 0))
	default:
		body = m.Output.View()
	}
	return outputPaneStyle.Render(body)
}

// options returns the option rows with their current values.
func (m Model) options() []string {
	opts := make([]string, optCount)
	opts[optBackend] = "Backend: " + m.Config.Backend
	opts[optModel] = "Change Model: " + m.Config.ModelName
	opts[optTemperature] = fmt.Sprintf("Temperature: %.1f (use ↑/↓)", m.Config.Temperature)
	apiURL := m.Config.APIURL
	if apiURL == "" {
		apiURL = "(SDK default)"
	}
	opts[optAPIURL] = "Set API URL: " + apiURL
	opts[optSave] = "Save Settings"
	opts[optBack] = "Back to Prompt"
	return opts
}

// renderOptions renders the options screen with a list of selectable options
func (m Model) renderOptions() string {
	var sb strings.Builder

	switch {
	case m.EditingModel:
		sb.WriteString("Enter model name (press Enter to save, Esc to cancel):\n")
		sb.WriteString(m.ModelInput.View())
		return sb.String()

	case m.EditingAPIURL:
		sb.WriteString("Enter API URL (press Enter to save, empty for default, Esc to cancel):\n")
		sb.WriteString(m.APIURLInput.View())
		return sb.String()
	}

	for i, option := range m.options() {
		marker := "  "
		if i == m.SelectedOpt {
			marker = "➜ "
		}
		sb.WriteString(optionStyle.Render(marker + option))
		sb.WriteString("\n")
	}

	if m.configDirty {
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("Changes apply to the next generation."))
	}

	return sb.String()
}

// View renders the current state of the UI based on the current screen mode
func (m Model) View() string {
	var content string
	var instructions string

	switch m.ScreenMode {
	case types.ModePrompt:
		content = fmt.Sprintf("%s\n\n%s\n\n%s",
			m.Prompt.View(),
			m.renderButton(),
			m.renderResult(),
		)
		if m.Gen.Loading {
			instructions = helpStyle.Render(helpLoading)
		} else {
			instructions = helpStyle.Render(helpPrompt)
		}

	case types.ModeOptions:
		content = m.renderOptions()
		instructions = helpStyle.Render(helpOptions)

	default:
		content = "[Unknown Screen]"
	}

	statusBar := ""
	if m.StatusMsg != "" {
		statusBar = fmt.Sprintf("\n\n%s", statusStyle.Render(m.StatusMsg))
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n",
		titleStyle.Render("GenPad"),
		content,
		instructions,
		statusBar,
	)
}
