// Package ui provides the terminal user interface components for the GenPad application.
// This file defines the main application model and its core functionality.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VarunSharma3520/GenPad/internal/config"
	"github.com/VarunSharma3520/GenPad/internal/llm"
	"github.com/VarunSharma3520/GenPad/internal/logger"
	"github.com/VarunSharma3520/GenPad/internal/types"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minOutputRows = 3

	// rows used by everything except the output pane: title, prompt box,
	// button, help line, status line and the blank lines between them
	chromeRows = promptRows + 11
)

// Option rows on the options screen.
const (
	optBackend = iota
	optModel
	optTemperature
	optAPIURL
	optSave
	optBack
	optCount
)

// Model represents the main application state.
// Gen is the prompt screen's state machine; the bubbles components only
// render it and collect input for it.
type Model struct {
	Gen Generation

	Prompt        textarea.Model
	Output        viewport.Model
	Spinner       spinner.Model
	ButtonFocused bool
	ScreenMode    types.ScreenMode

	Config    config.Config
	Generator llm.Generator
	Logger    *logger.Logger

	// Options screen
	ModelInput    textinput.Model
	APIURLInput   textinput.Model
	SelectedOpt   int
	EditingModel  bool
	EditingAPIURL bool

	// configDirty is set when Config changed since Generator was built.
	configDirty bool

	StatusMsg string
	statusSeq int

	ctx       context.Context
	requestID string
	width     int
	height    int

	newGenerator func(context.Context, config.Config) (llm.Generator, error)
	saveConfig   func(config.Config) error
}

// statusExpiredMsg clears the status line unless a newer status replaced it.
type statusExpiredMsg struct{ seq int }

// InitialModel creates the model for the prompt screen. gen is used for every
// request until the user changes settings on the options screen.
func InitialModel(ctx context.Context, cfg config.Config, gen llm.Generator, log *logger.Logger) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if log == nil {
		log = logger.Discard()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(config.MainColorForeground))

	m := &Model{
		Prompt:       NewPromptInput(),
		Output:       viewport.New(defaultWidth, minOutputRows),
		Spinner:      sp,
		ScreenMode:   types.ModePrompt,
		Config:       cfg,
		Generator:    gen,
		Logger:       log,
		ModelInput:   NewOptionInput("Enter model name (e.g., gemini-2.5-flash)", 80, 40),
		APIURLInput:  NewOptionInput("Enter API URL (e.g., http://localhost:11434)", 200, 50),
		ctx:          ctx,
		newGenerator: llm.New,
		saveConfig:   config.Save,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init starts the cursor blinking in the prompt box.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// resize fits the prompt box and the output pane to the terminal.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	inner := max(width-2, 10)
	m.Prompt.SetWidth(inner)

	m.Output.Width = inner
	m.Output.Height = max(height-chromeRows, minOutputRows)
	m.refreshOutput()
}

// refreshOutput renders the finished result into the output pane.
// Only one of Err and Output is non-empty once a request completes.
func (m *Model) refreshOutput() {
	wrap := lipgloss.NewStyle().Width(m.Output.Width)
	switch m.Gen.Phase() {
	case PhaseFailed:
		m.Output.SetContent(errorStyle.Render(wrap.Render(m.Gen.Err)))
	case PhaseSuccess:
		m.Output.SetContent(wrap.Render(m.Gen.Output))
	default:
		m.Output.SetContent("")
	}
}

// setStatus shows msg on the status line. A zero duration keeps it until replaced.
func (m *Model) setStatus(msg string, duration time.Duration) tea.Cmd {
	m.StatusMsg = msg
	m.statusSeq++
	if duration <= 0 {
		return nil
	}
	seq := m.statusSeq
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// rebuildGenerator applies Config to a fresh generator. A construction error
// is kept as the generator so the next click reports it.
func (m *Model) rebuildGenerator() error {
	m.configDirty = false

	gen, err := m.newGenerator(m.ctx, m.Config)
	if err != nil {
		m.Logger.Error("failed to build generator", err, map[string]interface{}{
			"backend": m.Config.Backend,
			"model":   m.Config.ModelName,
		})
		m.Generator = llm.Unavailable(err)
		return err
	}

	m.Generator = gen
	m.Logger.Info("generator ready", map[string]interface{}{
		"backend": m.Config.Backend,
		"model":   m.Config.ModelName,
	})
	return nil
}
