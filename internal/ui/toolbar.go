package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/config"
)

var toolLabelKeys = map[Tool]string{
	ToolTrackTag:   KeyToolTrackTag,
	ToolProperties: KeyToolProperties,
	ToolStart:      KeyToolStart,
	ToolAbort:      KeyToolAbort,
	ToolSettings:   KeyToolSettings,
	ToolLogs:       KeyToolLogs,
}

// Toolbar is the row (or column) of main window actions
type Toolbar struct {
	buttons map[Tool]*widget.Button
	state   ToolbarState
	object  fyne.CanvasObject
}

// NewToolbar builds the toolbar buttons. Labels are hidden when the settings
// say so; icon size follows settings.ToolbarSize.
func NewToolbar(loc *Localization, icons map[Tool]fyne.Resource, settings config.Settings, actions map[Tool]func()) *Toolbar {
	tb := &Toolbar{buttons: make(map[Tool]*widget.Button, len(Tools))}

	objects := make([]fyne.CanvasObject, 0, len(Tools)+1)
	for _, tool := range Tools {
		label := ""
		if settings.ShowToolbarText() {
			label = loc.GetText(toolLabelKeys[tool])
		}
		btn := widget.NewButtonWithIcon(label, icons[tool], actions[tool])
		btn.Importance = widget.LowImportance
		tb.buttons[tool] = btn
		objects = append(objects, btn)
		if tool == ToolAbort {
			objects = append(objects, widget.NewSeparator())
		}
	}

	var box *fyne.Container
	if settings.ToolbarPos == config.ToolbarLeft || settings.ToolbarPos == config.ToolbarRight {
		box = container.NewVBox(objects...)
	} else {
		box = container.NewHBox(objects...)
	}

	base := fyne.CurrentApp().Settings().Theme()
	tb.object = container.NewThemeOverride(box, NewToolbarTheme(base, settings.ToolbarSize))
	tb.Apply(ToolbarState{})
	return tb
}

// Apply enables and disables the buttons for state
func (tb *Toolbar) Apply(state ToolbarState) {
	tb.state = state
	for tool, btn := range tb.buttons {
		if state.Enabled(tool) {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}

// State returns the last applied state
func (tb *Toolbar) State() ToolbarState {
	return tb.state
}

// Button returns the button of a tool
func (tb *Toolbar) Button(tool Tool) *widget.Button {
	return tb.buttons[tool]
}

// Object returns the canvas object to place in the window
func (tb *Toolbar) Object() fyne.CanvasObject {
	return tb.object
}

// placeToolbar lays out content with the toolbar on the configured side
func placeToolbar(pos int, bar, content fyne.CanvasObject) *fyne.Container {
	switch pos {
	case config.ToolbarBottom:
		return container.NewBorder(nil, bar, nil, nil, content)
	case config.ToolbarRight:
		return container.NewBorder(nil, nil, nil, bar, content)
	case config.ToolbarLeft:
		return container.NewBorder(nil, nil, bar, nil, content)
	default:
		return container.NewBorder(bar, nil, nil, nil, content)
	}
}
