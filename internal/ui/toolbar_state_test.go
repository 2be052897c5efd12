package ui

import (
	"slices"
	"testing"
)

func TestToolbarState_EnabledTools(t *testing.T) {
	tests := []struct {
		name     string
		state    ToolbarState
		expected []Tool
	}{
		{
			name:     "no cue",
			state:    ToolbarState{},
			expected: []Tool{ToolSettings, ToolLogs},
		},
		{
			name:     "selection without cue is ignored",
			state:    ToolbarState{TrackSelected: true},
			expected: []Tool{ToolSettings, ToolLogs},
		},
		{
			name:     "cue loaded",
			state:    ToolbarState{CueLoaded: true},
			expected: []Tool{ToolProperties, ToolStart, ToolSettings, ToolLogs},
		},
		{
			name:     "cue loaded and track selected",
			state:    ToolbarState{CueLoaded: true, TrackSelected: true},
			expected: []Tool{ToolTrackTag, ToolProperties, ToolStart, ToolSettings, ToolLogs},
		},
		{
			name:     "job running",
			state:    ToolbarState{CueLoaded: true, TrackSelected: true, Running: true},
			expected: []Tool{ToolProperties, ToolAbort, ToolLogs},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.state.EnabledTools()
			if !slices.Equal(got, test.expected) {
				t.Errorf("EnabledTools() = %v, expected %v", got, test.expected)
			}
		})
	}
}

func TestToolbarState_StartAndAbortExclusive(t *testing.T) {
	for _, running := range []bool{false, true} {
		s := ToolbarState{CueLoaded: true, Running: running}
		if s.Enabled(ToolStart) == s.Enabled(ToolAbort) {
			t.Errorf("running=%v: Start and Abort both %v", running, s.Enabled(ToolStart))
		}
	}
}

func TestTool_String(t *testing.T) {
	tests := []struct {
		tool     Tool
		expected string
	}{
		{ToolTrackTag, "TrackTag"},
		{ToolProperties, "Properties"},
		{ToolStart, "Start"},
		{ToolAbort, "Abort"},
		{ToolSettings, "Settings"},
		{ToolLogs, "Logs"},
		{Tool(99), "Unknown"},
	}
	for _, test := range tests {
		if got := test.tool.String(); got != test.expected {
			t.Errorf("Tool(%d).String() = %s, expected %s", int(test.tool), got, test.expected)
		}
	}
}
