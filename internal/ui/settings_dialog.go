package ui

import (
	"runtime"
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/config"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/platform"
)

var languageOrder = []string{LangSystem, LangEnglish, LangItalian}

// executableRow is the "use another location" check plus path entry of one binary
type executableRow struct {
	name   string
	local  *widget.Check
	entry  *widget.Entry
	browse *widget.Button
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	loc       *Localization
	window    fyne.Window
	settings  config.Settings
	bundleDir string
	dialog    dialog.Dialog
	onSaved   func(updated config.Settings, restart bool)

	// UI components
	clearLogsCheck    *widget.Check
	warnExitCheck     *widget.Check
	outputEntry       *widget.Entry
	ffmpeg            *executableRow
	ffprobe           *executableRow
	iconThemeSelect   *widget.Select
	toolbarPosRadio   *widget.RadioGroup
	toolbarSizeSelect *widget.Select
	toolbarTextCheck  *widget.Check
	logLevelSelect    *widget.Select
	languageSelect    *widget.Select
	toolbarPosLabels  []string
}

// NewSettingsDialog creates a settings dialog working on a copy of settings
func NewSettingsDialog(loc *Localization, window fyne.Window, settings config.Settings, bundleDir string, onSaved func(config.Settings, bool)) *SettingsDialog {
	sd := &SettingsDialog{
		loc:       loc,
		window:    window,
		settings:  settings.Clone(),
		bundleDir: bundleDir,
		onSaved:   onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.loc.GetText

	sd.clearLogsCheck = widget.NewCheck(t(KeyClearLogsOnExit), nil)
	sd.warnExitCheck = widget.NewCheck(t(KeyWarnExit), nil)
	misc := container.NewVBox(sd.clearLogsCheck, sd.warnExitCheck)

	sd.outputEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	file := container.NewVBox(
		widget.NewLabel(t(KeyOutputPrompt)),
		container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputEntry),
	)

	sd.ffmpeg = sd.newExecutableRow(platform.FFmpegName, t(KeyCustomFFmpeg))
	sd.ffprobe = sd.newExecutableRow(platform.FFprobeName, t(KeyCustomFFprobe))
	ffmpeg := container.NewVBox(
		widget.NewLabel(t(KeyExecPaths)),
		widget.NewSeparator(),
		sd.ffmpeg.local, container.NewBorder(nil, nil, nil, sd.ffmpeg.browse, sd.ffmpeg.entry),
		sd.ffprobe.local, container.NewBorder(nil, nil, nil, sd.ffprobe.browse, sd.ffprobe.entry),
	)

	sd.iconThemeSelect = widget.NewSelect(config.IconThemes, nil)
	sd.toolbarPosLabels = []string{t(KeyToolbarTop), t(KeyToolbarBottom), t(KeyToolbarRight), t(KeyToolbarLeft)}
	sd.toolbarPosRadio = widget.NewRadioGroup(sd.toolbarPosLabels, nil)
	sizes := make([]string, len(config.ToolbarSizes))
	for i, s := range config.ToolbarSizes {
		sizes[i] = strconv.Itoa(s)
	}
	sd.toolbarSizeSelect = widget.NewSelect(sizes, nil)
	sd.toolbarTextCheck = widget.NewCheck(t(KeyToolbarText), nil)
	languages := sd.loc.GetAvailableLanguages()
	languageNames := make([]string, len(languageOrder))
	for i, code := range languageOrder {
		languageNames[i] = languages[code]
	}
	sd.languageSelect = widget.NewSelect(languageNames, nil)
	appearance := container.NewVBox(
		widget.NewLabel(t(KeyIconTheme)), sd.iconThemeSelect,
		widget.NewSeparator(),
		widget.NewLabel(t(KeyToolbarPos)), sd.toolbarPosRadio,
		container.NewHBox(widget.NewLabel(t(KeyToolbarSize)), sd.toolbarSizeSelect),
		sd.toolbarTextCheck,
		widget.NewSeparator(),
		widget.NewLabel(t(KeyLanguage)), sd.languageSelect,
	)

	sd.logLevelSelect = widget.NewSelect(config.FFmpegLogLevels, nil)
	logging := container.NewVBox(widget.NewLabel(t(KeyLogLevelHint)), sd.logLevelSelect)

	tabs := container.NewAppTabs(
		container.NewTabItem(t(KeyTabMisc), misc),
		container.NewTabItem(t(KeyTabFile), file),
		container.NewTabItem(t(KeyTabFFmpeg), ffmpeg),
		container.NewTabItem(t(KeyTabAppearance), container.NewVScroll(appearance)),
		container.NewTabItem(t(KeyTabLogging), logging),
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySetupTitle),
		t(KeySave),
		t(KeyCancel),
		tabs,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) newExecutableRow(name, label string) *executableRow {
	row := &executableRow{name: name, entry: widget.NewEntry()}
	row.browse = widget.NewButton(sd.loc.GetText(KeyBrowse), func() {
		chooseExecutable(sd.window, row.entry.SetText)
	})
	row.local = widget.NewCheck(label, func(local bool) {
		if local {
			row.entry.Enable()
			row.browse.Enable()
			return
		}
		row.entry.Disable()
		row.browse.Disable()
		_, path := platform.DetectBinary(runtime.GOOS, name, sd.bundleDir)
		row.entry.SetText(path)
	})
	return row
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	s := sd.settings
	sd.clearLogsCheck.SetChecked(s.ClearLogFiles)
	sd.warnExitCheck.SetChecked(s.WarnExiting)
	sd.outputEntry.SetText(s.OutputDir)

	sd.loadExecutable(sd.ffmpeg, s.FFmpegIsLocal, s.FFmpegCmd)
	sd.loadExecutable(sd.ffprobe, s.FFprobeIsLocal, s.FFprobeCmd)

	sd.iconThemeSelect.SetSelected(s.IconTheme)
	if s.ToolbarPos >= 0 && s.ToolbarPos < len(sd.toolbarPosLabels) {
		sd.toolbarPosRadio.SetSelected(sd.toolbarPosLabels[s.ToolbarPos])
	}
	sd.toolbarSizeSelect.SetSelected(strconv.Itoa(s.ToolbarSize))
	sd.toolbarTextCheck.SetChecked(s.ShowToolbarText())
	sd.logLevelSelect.SetSelected(s.FFmpegLogLevel)

	lang := s.Locale
	if !slices.Contains(languageOrder, lang) {
		lang = LangSystem
	}
	sd.languageSelect.SetSelected(sd.loc.GetAvailableLanguages()[lang])
}

func (sd *SettingsDialog) loadExecutable(row *executableRow, local bool, path string) {
	// SetChecked(false) on an unchecked box does not fire OnChanged
	row.local.SetChecked(local)
	if local {
		row.entry.Enable()
		row.browse.Enable()
	} else {
		row.entry.Disable()
		row.browse.Disable()
	}
	row.entry.SetText(path)
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputEntry.SetText(uri.Path())
	}, sd.window)
}

// collect builds the updated settings from the widgets
func (sd *SettingsDialog) collect() (config.Settings, error) {
	s := sd.settings.Clone()
	s.ClearLogFiles = sd.clearLogsCheck.Checked
	s.WarnExiting = sd.warnExitCheck.Checked
	if sd.outputEntry.Text != "" {
		s.OutputDir = sd.outputEntry.Text
	}

	s.FFmpegIsLocal = sd.ffmpeg.local.Checked
	s.FFmpegCmd = sd.ffmpeg.entry.Text
	s.FFprobeIsLocal = sd.ffprobe.local.Checked
	s.FFprobeCmd = sd.ffprobe.entry.Text
	for _, row := range []*executableRow{sd.ffmpeg, sd.ffprobe} {
		if row.local.Checked {
			if err := platform.CheckExecutable(row.entry.Text); err != nil {
				return config.Settings{}, executableError(sd.loc, row.name, err)
			}
		}
	}

	if sd.iconThemeSelect.Selected != "" {
		s.IconTheme = sd.iconThemeSelect.Selected
	}
	if i := slices.Index(sd.toolbarPosLabels, sd.toolbarPosRadio.Selected); i >= 0 {
		s.ToolbarPos = i
	}
	if size, err := strconv.Atoi(sd.toolbarSizeSelect.Selected); err == nil {
		s.ToolbarSize = size
	}
	s.ToolbarText = config.ToolbarTextHide
	if sd.toolbarTextCheck.Checked {
		s.ToolbarText = config.ToolbarTextShow
	}
	if sd.logLevelSelect.Selected != "" {
		s.FFmpegLogLevel = sd.logLevelSelect.Selected
	}
	names := sd.loc.GetAvailableLanguages()
	for _, code := range languageOrder {
		if names[code] == sd.languageSelect.Selected {
			s.Locale = code
		}
	}

	s.Normalize()
	return s, nil
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	updated, err := sd.collect()
	if err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved(updated, needsRestart(sd.settings, updated))
	}
	sd.settings = updated
}

// needsRestart reports whether a change only applies after a restart
func needsRestart(old, updated config.Settings) bool {
	return old.IconTheme != updated.IconTheme ||
		old.ToolbarPos != updated.ToolbarPos ||
		old.ToolbarSize != updated.ToolbarSize ||
		old.ToolbarText != updated.ToolbarText ||
		old.Locale != updated.Locale
}

// chooseExecutable opens a file dialog to pick an executable
func chooseExecutable(window fyne.Window, onChosen func(path string)) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		onChosen(reader.URI().Path())
	}, window)
}
