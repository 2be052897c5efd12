package ui

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/config"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/platform"
)

var errIncomplete = errors.New("incomplete")

// NeedsWizard reports whether the FFmpeg executables still have to be configured
func NeedsWizard(s config.Settings) bool {
	return platform.CheckExecutable(s.FFmpegCmd) != nil || platform.CheckExecutable(s.FFprobeCmd) != nil
}

// executableError prefixes err with the executable name, using the
// localized message when the file lacks execute permission
func executableError(loc *Localization, name string, err error) error {
	if errors.Is(err, platform.ErrNotExecutable) {
		return fmt.Errorf("%s: %w", fmt.Sprintf(loc.GetText(KeyNotExecutable), name), err)
	}
	return fmt.Errorf("%s: %w", name, err)
}

// Wizard is the first-run setup: detect or locate FFmpeg and FFprobe
type Wizard struct {
	loc       *Localization
	window    fyne.Window
	goos      string
	bundleDir string
	settings  config.Settings
	onFinish  func(config.Settings)

	ffmpegEntry   *widget.Entry
	ffprobeEntry  *widget.Entry
	ffmpegBrowse  *widget.Button
	ffprobeBrowse *widget.Button
	finishBtn     *widget.Button
	message       *widget.Label

	locating bool
	bundled  bool
}

// NewWizard creates the wizard content for window
func NewWizard(loc *Localization, window fyne.Window, settings config.Settings, bundleDir string, onFinish func(config.Settings)) *Wizard {
	w := &Wizard{
		loc:       loc,
		window:    window,
		goos:      runtime.GOOS,
		bundleDir: bundleDir,
		settings:  settings.Clone(),
		onFinish:  onFinish,
	}
	w.createUI()
	return w
}

func (w *Wizard) createUI() {
	t := w.loc.GetText

	welcome := widget.NewLabel(t(KeyWizardWelcome))
	welcome.TextStyle = fyne.TextStyle{Bold: true}
	intro := widget.NewLabel(t(KeyWizardIntro))
	intro.Wrapping = fyne.TextWrapWord

	detectBtn := widget.NewButton(t(KeyAutoDetect), w.onDetect)
	locateBtn := widget.NewButton(t(KeyLocate), func() { w.setLocating(true) })

	w.ffmpegEntry = widget.NewEntry()
	w.ffmpegEntry.SetPlaceHolder(platform.FFmpegName)
	w.ffprobeEntry = widget.NewEntry()
	w.ffprobeEntry.SetPlaceHolder(platform.FFprobeName)
	w.ffmpegBrowse = widget.NewButton(t(KeyBrowse), func() { chooseExecutable(w.window, w.ffmpegEntry.SetText) })
	w.ffprobeBrowse = widget.NewButton(t(KeyBrowse), func() { chooseExecutable(w.window, w.ffprobeEntry.SetText) })

	w.message = widget.NewLabel("")
	w.message.Wrapping = fyne.TextWrapWord
	w.finishBtn = widget.NewButton(t(KeyFinish), w.onFinishClick)
	w.finishBtn.Importance = widget.HighImportance
	w.finishBtn.Disable()

	w.setLocating(false)

	content := container.NewVBox(
		welcome,
		intro,
		container.NewHBox(detectBtn, locateBtn),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, widget.NewLabel(platform.FFmpegName), w.ffmpegBrowse, w.ffmpegEntry),
		container.NewBorder(nil, nil, widget.NewLabel(platform.FFprobeName), w.ffprobeBrowse, w.ffprobeEntry),
		w.message,
		container.NewHBox(w.finishBtn),
	)
	w.window.SetContent(container.NewPadded(content))
	w.window.Resize(fyne.NewSize(WizardDialogWidth, content.MinSize().Height))
}

func (w *Wizard) setLocating(locating bool) {
	w.locating = locating
	for _, obj := range []fyne.Disableable{w.ffmpegEntry, w.ffprobeEntry, w.ffmpegBrowse, w.ffprobeBrowse} {
		if locating {
			obj.Enable()
		} else {
			obj.Disable()
		}
	}
	if locating {
		w.bundled = false
		w.finishBtn.Enable()
	}
}

// detect resolves both executables on the system or in the bundle
func (w *Wizard) detect() error {
	paths := make(map[string]string, 2)
	w.bundled = false
	for _, name := range []string{platform.FFmpegName, platform.FFprobeName} {
		state, path := platform.DetectBinary(w.goos, name, w.bundleDir)
		if state == platform.NotInstalled {
			return fmt.Errorf(w.loc.GetText(KeyNotInstalled), name)
		}
		if state == platform.Bundled {
			w.bundled = true
		}
		paths[name] = path
	}
	w.ffmpegEntry.SetText(paths[platform.FFmpegName])
	w.ffprobeEntry.SetText(paths[platform.FFprobeName])
	return nil
}

func (w *Wizard) onDetect() {
	w.setLocating(false)
	if err := w.detect(); err != nil {
		w.finishBtn.Disable()
		dialog.ShowError(err, w.window)
		return
	}
	if !w.bundled {
		w.finishBtn.Enable()
		return
	}
	showConfirm(w.loc, w.loc.GetText(KeyConfirmTitle), w.loc.GetText(KeyBundledFound), func(ok bool) {
		if ok {
			w.finishBtn.Enable()
		} else {
			w.setLocating(true)
		}
	}, w.window)
}

// result returns the settings with the chosen executables
func (w *Wizard) result() (config.Settings, error) {
	ffmpeg := strings.TrimSpace(w.ffmpegEntry.Text)
	ffprobe := strings.TrimSpace(w.ffprobeEntry.Text)
	if ffmpeg == "" || ffprobe == "" {
		return config.Settings{}, errIncomplete
	}
	if err := platform.CheckExecutable(ffmpeg); err != nil {
		return config.Settings{}, executableError(w.loc, platform.FFmpegName, err)
	}
	if err := platform.CheckExecutable(ffprobe); err != nil {
		return config.Settings{}, executableError(w.loc, platform.FFprobeName, err)
	}

	s := w.settings.Clone()
	s.FFmpegCmd = ffmpeg
	s.FFprobeCmd = ffprobe
	// locally chosen or bundled binaries are pinned by path
	local := w.locating || w.bundled
	s.FFmpegIsLocal = local
	s.FFprobeIsLocal = local
	return s, nil
}

func (w *Wizard) onFinishClick() {
	s, err := w.result()
	if errors.Is(err, errIncomplete) {
		dialog.ShowInformation(AppDisplayName, w.loc.GetText(KeyIncomplete), w.window)
		return
	}
	if err != nil {
		dialog.ShowError(err, w.window)
		return
	}
	w.message.SetText(w.loc.GetText(KeyWizardDone))
	if w.onFinish != nil {
		w.onFinish(s)
	}
}
