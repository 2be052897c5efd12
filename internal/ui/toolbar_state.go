package ui

// Tool identifies a toolbar action
type Tool int

const (
	ToolTrackTag Tool = iota
	ToolProperties
	ToolStart
	ToolAbort
	ToolSettings
	ToolLogs
)

// Tools lists the toolbar actions in display order
var Tools = []Tool{ToolTrackTag, ToolProperties, ToolStart, ToolAbort, ToolSettings, ToolLogs}

// String returns the tool name used in logs
func (t Tool) String() string {
	switch t {
	case ToolTrackTag:
		return "TrackTag"
	case ToolProperties:
		return "Properties"
	case ToolStart:
		return "Start"
	case ToolAbort:
		return "Abort"
	case ToolSettings:
		return "Settings"
	case ToolLogs:
		return "Logs"
	default:
		return "Unknown"
	}
}

// ToolbarState is the input of the toolbar state machine
type ToolbarState struct {
	CueLoaded     bool
	TrackSelected bool
	Running       bool
}

// Enabled reports whether tool is usable in state s.
// While a job runs only Abort, Properties and Logs stay enabled.
func (s ToolbarState) Enabled(tool Tool) bool {
	if s.Running {
		switch tool {
		case ToolAbort:
			return true
		case ToolProperties:
			return s.CueLoaded
		case ToolLogs:
			return true
		default:
			return false
		}
	}

	switch tool {
	case ToolTrackTag:
		return s.CueLoaded && s.TrackSelected
	case ToolProperties, ToolStart:
		return s.CueLoaded
	case ToolAbort:
		return false
	case ToolSettings, ToolLogs:
		return true
	default:
		return false
	}
}

// EnabledTools returns the enabled tools in display order
func (s ToolbarState) EnabledTools() []Tool {
	var tools []Tool
	for _, t := range Tools {
		if s.Enabled(t) {
			tools = append(tools, t)
		}
	}
	return tools
}
