package ui

import (
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/platform"
)

const logExtension = ".log"

// LogViewer lists the log files and shows the selected one
type LogViewer struct {
	loc    *Localization
	window fyne.Window
	logDir string

	files    []string
	selected int

	list    *widget.List
	content *widget.TextGrid
}

// NewLogViewer creates the log window for logDir
func NewLogViewer(app fyne.App, loc *Localization, logDir string) *LogViewer {
	lv := &LogViewer{
		loc:      loc,
		window:   app.NewWindow(loc.GetText(KeyLogWindowTitle)),
		logDir:   logDir,
		selected: -1,
	}
	lv.createUI()
	lv.Refresh()
	return lv
}

func (lv *LogViewer) createUI() {
	lv.list = widget.NewList(
		func() int { return len(lv.files) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(lv.files[id])
		},
	)
	lv.list.OnSelected = func(id widget.ListItemID) {
		lv.selected = id
		lv.load()
	}

	lv.content = widget.NewTextGrid()

	refreshBtn := widget.NewButton(lv.loc.GetText(KeyRefresh), lv.Refresh)
	clearBtn := widget.NewButton(lv.loc.GetText(KeyClearLog), lv.onClear)
	showBtn := widget.NewButton(lv.loc.GetText(KeyShowInFolder), lv.onShowInFolder)
	closeBtn := widget.NewButton(lv.loc.GetText(KeyClose), func() { lv.window.Close() })

	listPane := container.NewBorder(widget.NewLabel(lv.loc.GetText(KeyLogFileList)), nil, nil, nil, lv.list)
	textPane := container.NewBorder(widget.NewLabel(lv.loc.GetText(KeyLogMessages)), nil, nil, nil, container.NewScroll(lv.content))
	split := container.NewVSplit(listPane, textPane)
	split.Offset = 0.25

	buttons := container.NewHBox(refreshBtn, clearBtn, showBtn, layout.NewSpacer(), closeBtn)
	lv.window.SetContent(container.NewBorder(nil, buttons, nil, nil, split))
	lv.window.Resize(fyne.NewSize(LogWindowWidth, LogWindowHeight))
}

// Show opens the window
func (lv *LogViewer) Show() {
	lv.window.Show()
}

// Files returns the listed log file names
func (lv *LogViewer) Files() []string {
	return lv.files
}

// Refresh rereads the file list and the selected log
func (lv *LogViewer) Refresh() {
	lv.files = listLogFiles(lv.logDir)
	if lv.selected >= len(lv.files) {
		lv.selected = -1
		lv.list.UnselectAll()
	}
	lv.list.Refresh()
	lv.load()
}

func (lv *LogViewer) load() {
	if lv.selected < 0 {
		lv.content.SetText("")
		return
	}
	data, err := os.ReadFile(filepath.Join(lv.logDir, lv.files[lv.selected]))
	if err != nil {
		lv.content.SetText(err.Error())
		return
	}
	lv.content.SetText(string(data))
}

func (lv *LogViewer) onClear() {
	if lv.selected < 0 {
		dialog.ShowInformation(AppDisplayName, lv.loc.GetText(KeySelectLog), lv.window)
		return
	}
	showConfirm(lv.loc, lv.loc.GetText(KeyConfirmTitle), lv.loc.GetText(KeyClearLogConfirm), func(ok bool) {
		if ok {
			lv.clearSelected()
		}
	}, lv.window)
}

// onShowInFolder opens the log directory, highlighting the selected file
func (lv *LogViewer) onShowInFolder() {
	var err error
	if lv.selected >= 0 {
		err = platform.OpenFileInManager(filepath.Join(lv.logDir, lv.files[lv.selected]))
	} else {
		err = platform.OpenPath(lv.logDir)
	}
	if err != nil {
		dialog.ShowError(err, lv.window)
	}
}

// clearSelected truncates the selected log file
func (lv *LogViewer) clearSelected() {
	if lv.selected < 0 {
		return
	}
	if err := os.Truncate(filepath.Join(lv.logDir, lv.files[lv.selected]), 0); err != nil {
		dialog.ShowError(err, lv.window)
		return
	}
	lv.load()
}

// listLogFiles returns the *.log names in dir; a missing dir yields none
func listLogFiles(dir string) []string {
	names, err := platform.ListFiles(dir)
	if err != nil {
		return nil
	}
	var logs []string
	for _, name := range names {
		if strings.HasSuffix(name, logExtension) {
			logs = append(logs, name)
		}
	}
	return logs
}
