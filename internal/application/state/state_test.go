package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateLoading, "Loading"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_Toggle(t *testing.T) {
	tests := []struct {
		state     GameState
		want      GameState
		wantSteps bool
	}{
		{StatePlaying, StatePaused, true},
		{StatePaused, StatePlaying, false},
		{StateLoading, StateLoading, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Toggle())
			assert.Equal(t, tt.wantSteps, tt.state.Steps())
		})
	}
}
