package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/VarunSharma3520/GenPad/internal/llm"
)

type stubResponse string

func (s stubResponse) Text() string { return string(s) }

func TestGeneration_ZeroValueIsIdle(t *testing.T) {
	var g Generation
	assert.Equal(t, PhaseIdle, g.Phase())
	assert.False(t, g.CanGenerate())
}

func TestGeneration_GuardRejectsBlankInput(t *testing.T) {
	for _, in := range []string{"", " ", "\t", "\n\n", "  \r\n "} {
		g := Generation{Input: in, Output: "previous", Err: ""}

		req, ok := g.Begin()
		assert.False(t, ok, "input %q", in)
		assert.Equal(t, llm.Request{}, req)
		assert.Equal(t, "previous", g.Output, "state untouched for %q", in)
		assert.False(t, g.Loading)
	}
}

func TestGeneration_GuardRejectsWhileLoading(t *testing.T) {
	g := Generation{Input: "hi"}

	_, ok := g.Begin()
	require.True(t, ok)

	_, ok = g.Begin()
	assert.False(t, ok)
	assert.True(t, g.Loading)
}

func TestGeneration_BeginClearsPreviousResult(t *testing.T) {
	g := Generation{Input: "  tell me a joke ", Output: "old", Err: "Error generating response: old"}

	req, ok := g.Begin()
	require.True(t, ok)

	assert.Equal(t, "  tell me a joke ", req.Text, "prompt is sent untrimmed")
	assert.Nil(t, req.File)
	assert.Nil(t, req.FunctionDeclarations)
	assert.True(t, g.Loading)
	assert.Empty(t, g.Output)
	assert.Empty(t, g.Err)
	assert.Equal(t, "  tell me a joke ", g.Input, "input is kept")
	assert.Equal(t, PhaseLoading, g.Phase())
}

func TestGeneration_Complete(t *testing.T) {
	var nilGenai *genai.GenerateContentResponse

	tests := []struct {
		name       string
		resp       llm.Response
		err        error
		wantOutput string
		wantErr    string
		wantPhase  Phase
	}{
		{
			name:       "success",
			resp:       stubResponse("Hello"),
			wantOutput: "Hello",
			wantPhase:  PhaseSuccess,
		},
		{
			name:      "call failure",
			err:       errors.New("network down"),
			wantErr:   "Error generating response: network down",
			wantPhase: PhaseFailed,
		},
		{
			name:      "nil response",
			wantErr:   "Error generating response: Invalid API response",
			wantPhase: PhaseFailed,
		},
		{
			name:      "empty text",
			resp:      stubResponse(""),
			wantErr:   "Error generating response: Invalid API response",
			wantPhase: PhaseFailed,
		},
		{
			name:      "typed nil response",
			resp:      nilGenai,
			wantErr:   "Error generating response: Invalid API response",
			wantPhase: PhaseFailed,
		},
		{
			name:      "error wins over a response",
			resp:      stubResponse("ignored"),
			err:       errors.New("stream reset"),
			wantErr:   "Error generating response: stream reset",
			wantPhase: PhaseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Generation{Input: "prompt"}
			_, ok := g.Begin()
			require.True(t, ok)

			failure := g.Complete(tt.resp, tt.err)

			assert.False(t, g.Loading)
			assert.Equal(t, tt.wantOutput, g.Output)
			assert.Equal(t, tt.wantErr, g.Err)
			assert.Equal(t, tt.wantPhase, g.Phase())
			if tt.wantErr == "" {
				assert.NoError(t, failure)
			} else {
				assert.Error(t, failure)
			}
		})
	}
}

func TestGeneration_InvalidResponseIsSentinel(t *testing.T) {
	g := Generation{Input: "p"}
	g.Begin()

	err := g.Complete(stubResponse(""), nil)
	assert.ErrorIs(t, err, llm.ErrInvalidResponse)
}

func TestGeneration_RecoversAfterFailure(t *testing.T) {
	g := Generation{Input: "p"}

	g.Begin()
	g.Complete(nil, errors.New("network down"))
	require.Equal(t, PhaseFailed, g.Phase())

	_, ok := g.Begin()
	require.True(t, ok)
	assert.Empty(t, g.Err)

	g.Complete(stubResponse("Hello"), nil)
	assert.Equal(t, PhaseSuccess, g.Phase())
	assert.Empty(t, g.Err)
	assert.Equal(t, "Hello", g.Output)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "success", PhaseSuccess.String())
	assert.Equal(t, "failed", PhaseFailed.String())
}
