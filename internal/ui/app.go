package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/config"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/logging"
)

// Launch loads the settings and opens the first window: an error report,
// the setup wizard or the main window. The caller runs the app.
func Launch(app fyne.App, opts Options) fyne.Window {
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	logger := logging.NewComponentLogger(opts.Logger, "launch")

	window := app.NewWindow(AppDisplayName)
	if icon, err := LoadAppIcon(opts.Paths.IconDir); err == nil {
		window.SetIcon(icon)
		app.SetIcon(icon)
	}

	settings, err := opts.Store.Load()
	if err != nil {
		logger.Error("load settings", "path", opts.Store.Path(), logging.Error(err))
		showConfigError(window, err)
		return window
	}
	opts.Settings = settings
	app.Settings().SetTheme(NewAppTheme(settings.IconTheme))

	if NeedsWizard(settings) {
		logger.Info("FFmpeg not configured, starting wizard")
		loc := NewLocalization()
		loc.SetLanguage(settings.Locale)
		window.SetTitle(loc.GetText(KeyWizardTitle))
		NewWizard(loc, window, settings, opts.Paths.FFmpegDir, func(updated config.Settings) {
			if err := opts.Store.Save(updated); err != nil {
				logger.Error("save settings", logging.Error(err))
				showConfigError(window, err)
				return
			}
			opts.Settings = updated
			openMain(app, window, opts)
		})
		window.Resize(fyne.NewSize(WizardDialogWidth, WindowMinHeight))
		window.CenterOnScreen()
		window.Show()
		return window
	}

	openMain(app, window, opts)
	window.Show()
	return window
}

func openMain(app fyne.App, window fyne.Window, opts Options) {
	NewRootUI(app, window, opts)

	size := fyne.NewSize(float32(opts.Settings.PanelSize[0]), float32(opts.Settings.PanelSize[1]))
	if size.Width < WindowMinWidth || size.Height < WindowMinHeight {
		size = fyne.NewSize(config.DefaultPanelWidth, config.DefaultPanelHeight)
	}
	window.Resize(size)
	window.CenterOnScreen()
}

// showConfigError replaces the window content with an unrecoverable error
func showConfigError(window fyne.Window, err error) {
	loc := NewLocalization()
	msg := widget.NewLabel(fmt.Sprintf(loc.GetText(KeyConfigError), err))
	msg.Wrapping = fyne.TextWrapWord
	msg.Importance = widget.DangerImportance
	quit := widget.NewButton(loc.GetText(KeyExit), window.Close)
	window.SetContent(container.NewBorder(nil, container.NewHBox(layout.NewSpacer(), quit), nil, nil, msg))
	window.Resize(fyne.NewSize(WizardDialogWidth, WindowMinHeight))
}
