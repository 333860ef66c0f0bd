// Package ui provides the terminal user interface components for the GenPad application.
// This file handles the update loop and message handling for the Bubble Tea TUI.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/VarunSharma3520/GenPad/internal/config"
	"github.com/VarunSharma3520/GenPad/internal/llm"
	"github.com/VarunSharma3520/GenPad/internal/types"
)

const temperatureStep = 0.1

// Update is the single transition function of the UI: user events and
// generation results both arrive here as messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.Output, cmd = m.Output.Update(msg)
		return m, cmd

	case types.GenerateDoneMsg:
		m.handleGenerateDone(msg)
		return m, nil

	case types.StatusMsg:
		return m, m.setStatus(msg.Message, msg.Duration)

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.StatusMsg = ""
		}
		return m, nil

	case spinner.TickMsg:
		// Let the spinner stop ticking once nothing is loading.
		if !m.Gen.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	// Anything else (cursor blink and the like) belongs to the prompt box.
	var cmd tea.Cmd
	m.Prompt, cmd = m.Prompt.Update(msg)
	return m, cmd
}

// handleKeyMsg processes keyboard input messages.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlW {
		return m, tea.Quit
	}

	if m.ScreenMode == types.ModeOptions {
		switch {
		case m.EditingModel:
			return m.handleModelInput(msg)
		case m.EditingAPIURL:
			return m.handleAPIURLInput(msg)
		default:
			return m.handleOptionsKeyPress(msg)
		}
	}

	return m.handlePromptKeyPress(msg)
}

// handlePromptKeyPress handles keys on the prompt screen.
func (m *Model) handlePromptKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		// A request in flight cannot be cancelled; leaving is the only way out.
		return m, tea.Quit

	case tea.KeyCtrlO:
		m.ScreenMode = types.ModeOptions
		m.SelectedOpt = optBackend
		return m, nil

	case tea.KeyCtrlG:
		return m, m.handleGenerateClick()

	case tea.KeyTab, tea.KeyShiftTab:
		return m, m.toggleButtonFocus()

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.Output, cmd = m.Output.Update(msg)
		return m, cmd

	case tea.KeyEnter:
		if m.ButtonFocused {
			return m, m.handleGenerateClick()
		}
	}

	if m.ButtonFocused {
		return m, nil
	}

	var cmd tea.Cmd
	m.Prompt, cmd = m.Prompt.Update(msg)
	m.Gen.SetInput(m.Prompt.Value())
	return m, cmd
}

// toggleButtonFocus moves focus between the prompt box and the Generate button.
func (m *Model) toggleButtonFocus() tea.Cmd {
	if m.ButtonFocused {
		m.ButtonFocused = false
		return m.Prompt.Focus()
	}
	m.ButtonFocused = true
	m.Prompt.Blur()
	return nil
}

// handleGenerateClick starts a generation if the guard allows it.
func (m *Model) handleGenerateClick() tea.Cmd {
	if !m.Gen.CanGenerate() {
		return nil
	}
	if m.configDirty {
		if err := m.rebuildGenerator(); err != nil {
			m.setStatus(fmt.Sprintf("Settings not applied: %v", err), 0)
		}
	}

	req, ok := m.Gen.Begin()
	if !ok {
		return nil
	}

	m.requestID = uuid.NewString()

	m.Logger.Info("generation started", map[string]interface{}{
		"request_id":    m.requestID,
		"backend":       m.Config.Backend,
		"model":         m.Config.ModelName,
		"prompt_length": len(req.Text),
	})

	return tea.Batch(
		m.Spinner.Tick,
		llm.GenerateCmd(m.ctx, m.Generator, m.requestID, req),
	)
}

// handleGenerateDone records the outcome and scrolls the output pane to the top.
func (m *Model) handleGenerateDone(msg types.GenerateDoneMsg) {
	if !m.Gen.Loading || msg.ID != m.requestID {
		m.Logger.Warn("ignoring result for unknown request", map[string]interface{}{
			"request_id": msg.ID,
		})
		return
	}

	fields := map[string]interface{}{
		"request_id":  msg.ID,
		"duration_ms": msg.Elapsed.Milliseconds(),
	}
	if err := m.Gen.Complete(msg.Response, msg.Err); err != nil {
		m.Logger.Error("generation failed", err, fields)
	} else {
		fields["output_length"] = len(m.Gen.Output)
		m.Logger.Info("generation finished", fields)
	}

	m.refreshOutput()
	m.Output.GotoTop()
}

// handleOptionsKeyPress handles all key presses when in options mode.
func (m *Model) handleOptionsKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.ScreenMode = types.ModePrompt
		m.SelectedOpt = optBackend
		return m, nil

	case tea.KeyTab:
		m.SelectedOpt = (m.SelectedOpt + 1) % optCount
		return m, nil

	case tea.KeyShiftTab:
		m.SelectedOpt = (m.SelectedOpt - 1 + optCount) % optCount
		return m, nil

	case tea.KeyUp, tea.KeyDown:
		if m.SelectedOpt == optTemperature {
			delta := temperatureStep
			if msg.Type == tea.KeyDown {
				delta = -temperatureStep
			}
			t := math.Round((m.Config.Temperature+delta)*10) / 10
			m.Config.Temperature = config.ClampTemperature(t)
			m.configDirty = true
			return m, nil
		}
		if msg.Type == tea.KeyUp {
			m.SelectedOpt = (m.SelectedOpt - 1 + optCount) % optCount
		} else {
			m.SelectedOpt = (m.SelectedOpt + 1) % optCount
		}
		return m, nil

	case tea.KeyEnter:
		return m.handleOptionsSelection()
	}

	return m, nil
}

// handleModelInput handles input when editing the model name.
func (m *Model) handleModelInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.EditingModel = false
		m.ModelInput.Blur()
		m.ModelInput.Reset()
		return m, m.setStatus("Model change cancelled", 2*time.Second)

	case tea.KeyEnter:
		newModel := strings.TrimSpace(m.ModelInput.Value())
		m.EditingModel = false
		m.ModelInput.Blur()
		m.ModelInput.Reset()
		if newModel == "" || newModel == m.Config.ModelName {
			return m, nil
		}
		m.Config.ModelName = newModel
		m.configDirty = true
		return m, m.setStatus(fmt.Sprintf("Model set to %s", newModel), 2*time.Second)

	default:
		var cmd tea.Cmd
		m.ModelInput, cmd = m.ModelInput.Update(msg)
		return m, cmd
	}
}

// handleAPIURLInput handles input when editing the API URL.
func (m *Model) handleAPIURLInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.EditingAPIURL = false
		m.APIURLInput.Blur()
		m.APIURLInput.Reset()
		return m, nil

	case tea.KeyEnter:
		newURL := strings.TrimSpace(m.APIURLInput.Value())
		m.EditingAPIURL = false
		m.APIURLInput.Blur()
		m.APIURLInput.Reset()
		if newURL == m.Config.APIURL {
			return m, nil
		}
		// An empty value goes back to the backend's own endpoint.
		if newURL == "" {
			newURL = config.DefaultAPIURL(m.Config.Backend)
		}
		m.Config.APIURL = newURL
		m.configDirty = true
		return m, m.setStatus("API URL updated", 2*time.Second)

	default:
		var cmd tea.Cmd
		m.APIURLInput, cmd = m.APIURLInput.Update(msg)
		return m, cmd
	}
}

// handleOptionsSelection handles option selection in the options menu.
func (m *Model) handleOptionsSelection() (tea.Model, tea.Cmd) {
	switch m.SelectedOpt {
	case optBackend:
		m.Config = m.Config.WithBackend(nextBackend(m.Config.Backend))
		m.configDirty = true
		return m, m.setStatus("Backend set to "+m.Config.Backend, 2*time.Second)

	case optModel:
		m.EditingModel = true
		m.ModelInput.SetValue(m.Config.ModelName)
		return m, tea.Batch(m.ModelInput.Focus(), textinput.Blink)

	case optTemperature:
		// Changed with the arrow keys.
		return m, nil

	case optAPIURL:
		m.EditingAPIURL = true
		m.APIURLInput.SetValue(m.Config.APIURL)
		return m, tea.Batch(m.APIURLInput.Focus(), textinput.Blink)

	case optSave:
		if err := m.saveConfig(m.Config); err != nil {
			m.Logger.Error("failed to save settings", err, nil)
			return m, m.setStatus(fmt.Sprintf("Failed to save settings: %v", err), 3*time.Second)
		}
		m.Logger.Info("settings saved", map[string]interface{}{"path": m.Config.Path()})
		return m, m.setStatus("Settings saved successfully!", 2*time.Second)

	case optBack:
		m.ScreenMode = types.ModePrompt
		m.SelectedOpt = optBackend
		return m, nil
	}

	return m, nil
}

func nextBackend(current string) string {
	for i, b := range config.Backends {
		if b == current {
			return config.Backends[(i+1)%len(config.Backends)]
		}
	}
	return config.Backends[0]
}
