package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowMinWidth  float32 = 500
	WindowMinHeight float32 = 400
)

// Track list column widths
const (
	TrackNumWidth      float32 = 48
	TrackDurationWidth float32 = 64
	TrackRowMinHeight  float32 = 32
)

// Dialog sizes
const (
	SettingsDialogWidth  float32 = 560
	SettingsDialogHeight float32 = 420
	CDInfoDialogWidth    float32 = 620
	CDInfoDialogHeight   float32 = 480
	TrackDialogWidth     float32 = 480
	TrackDialogHeight    float32 = 440
	LogWindowWidth       float32 = 760
	LogWindowHeight      float32 = 520
	WizardDialogWidth    float32 = 560
)

// Text fragments
const (
	StatusProgressFmt = "%s: %s | %s: %d%%"
	CueFileExtension  = ".cue"
	TempDirPattern    = "FFcuesplitterGUI_"
	AppDisplayName    = "FFcuesplitter-GUI"
	AppIconName       = "ffcuesplittergui.png"
)

// Help menu links
const (
	UserGuideURL = "https://github.com/jeanslack/ffcuesplitter-gui"
	WikiURL      = "https://github.com/jeanslack/FFcuesplitter-GUI/wiki"
	IssuesURL    = "https://github.com/jeanslack/ffcuesplitter-gui/issues"
	FFmpegDocURL = "https://www.ffmpeg.org/documentation.html"
)

