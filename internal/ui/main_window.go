package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/config"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/cuesheet"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/logging"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/platform"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/split"
)

// Options carries what the main window needs from the bootstrap
type Options struct {
	Paths    config.Paths
	Store    *config.Store
	Settings config.Settings
	Logger   *slog.Logger
	Version  string

	// HTTPClient is used by the release check; nil means a default client
	HTTPClient *http.Client
}

// splitterFactory creates the worker of a job
type splitterFactory func(recipes []model.Recipe, logPath string, logger *slog.Logger) (split.Splitter, error)

func newWorker(recipes []model.Recipe, logPath string, logger *slog.Logger) (split.Splitter, error) {
	w, err := split.NewWorker(recipes, logPath, logger)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// job is the split currently owned by the main window
type job struct {
	splitter  split.Splitter
	tempDir   string
	outputDir string
}

// RootUI represents the main UI structure
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	opts         Options
	settings     config.Settings
	recent       *config.Recent
	localization *Localization
	logger       *slog.Logger

	panel   *CuePanel
	toolbar *Toolbar

	prober      cuesheet.Prober
	newSplitter splitterFactory
	job         *job
	quitting    bool
	// sheet imported while a job was running, shown once it ends
	pending *cuesheet.Sheet

	// onJobEnd is called after a job has been cleaned up
	onJobEnd func(status model.JobStatus)
}

// NewRootUI creates and initializes the main UI
func NewRootUI(app fyne.App, window fyne.Window, opts Options) *RootUI {
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(opts.Settings.Locale)

	ui := &RootUI{
		app:          app,
		window:       window,
		opts:         opts,
		settings:     opts.Settings.Clone(),
		recent:       config.NewRecent(app),
		localization: localization,
		logger:       logging.NewComponentLogger(opts.Logger, "ui"),
		prober:       cuesheet.NewFFprobe(opts.Settings.FFprobeCmd),
		newSplitter:  newWorker,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetCloseIntercept(ui.onClose)

	ui.setupUI()
	ui.logger.Debug("main window ready", "locale", localization.GetCurrentLanguage())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	actions := map[Tool]func(){
		ToolTrackTag:   ui.onTrackTag,
		ToolProperties: ui.onProperties,
		ToolStart:      ui.onStart,
		ToolAbort:      ui.onAbort,
		ToolSettings:   ui.onShowSettings,
		ToolLogs:       ui.onShowLogs,
	}
	icons := LoadToolbarIcons(ui.opts.Paths.IconDir, ui.settings.IconTheme)
	ui.toolbar = NewToolbar(ui.localization, icons, ui.settings, actions)

	ui.panel = NewCuePanel(
		ui.localization,
		ui.recent.GetLastFormat(cuesheet.FormatFLAC),
		ui.recent.GetLastQuality(""),
		ui.settings.OutputDir,
	)
	ui.panel.OnImport = ui.onImportCue
	ui.panel.OnBrowseOutput = ui.onBrowseOutput
	ui.panel.OnSelectionChanged = func(bool) { ui.updateToolbar() }
	ui.panel.OnOptionsChanged = func(format, quality string) {
		ui.recent.SetLastFormat(format)
		ui.recent.SetLastQuality(quality)
	}

	ui.window.SetContent(placeToolbar(ui.settings.ToolbarPos, ui.toolbar.Object(), ui.panel.Object()))
	ui.updateToolbar()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	openCue := fyne.NewMenuItem(t(KeyOpenCue), ui.onImportCue)
	openCue.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}
	notes := fyne.NewMenuItem(t(KeyWorkNotes), ui.onWorkNotes)
	notes.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierShortcutDefault}
	exit := fyne.NewMenuItem(t(KeyExit), ui.onClose)
	exit.IsQuit = true

	menus := []*fyne.Menu{
		fyne.NewMenu(t(KeyFile),
			openCue,
			fyne.NewMenuItem(t(KeyOpenOutputDir), ui.onOpenOutputDir),
			fyne.NewMenuItemSeparator(),
			notes,
			fyne.NewMenuItemSeparator(),
			exit,
		),
	}

	if ui.settings.ShowHiddenMenu {
		menus = append(menus, fyne.NewMenu(t(KeyGoto),
			fyne.NewMenuItem(t(KeyConfigDir), ui.onOpenConfigDir),
			fyne.NewMenuItem(t(KeyLogsDir), ui.onOpenLogDir),
		))
	}

	menus = append(menus, fyne.NewMenu(t(KeyHelp),
		fyne.NewMenuItem(t(KeyUserGuide), func() { ui.openURL(UserGuideURL) }),
		fyne.NewMenuItem(t(KeyWiki), func() { ui.openURL(WikiURL) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeyIssueTracker), func() { ui.openURL(IssuesURL) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeyFFmpegDocs), func() { ui.openURL(FFmpegDocURL) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeyCheckRelease), ui.onCheckRelease),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeyAbout), func() { ShowAbout(ui.localization, ui.window, ui.opts.Version) }),
	))

	ui.window.SetMainMenu(fyne.NewMainMenu(menus...))
}

// updateToolbar feeds the current state into the toolbar state machine
func (ui *RootUI) updateToolbar() {
	_, selected := ui.panel.SelectedIndex()
	ui.toolbar.Apply(ToolbarState{
		CueLoaded:     ui.panel.Sheet() != nil,
		TrackSelected: selected,
		Running:       ui.job != nil,
	})
}

// onImportCue asks for a CUE sheet, starting in the last used directory
func (ui *RootUI) onImportCue() {
	if ui.job != nil {
		return
	}
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		ui.importCue(path)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{CueFileExtension, strings.ToUpper(CueFileExtension)}))
	if dir := ui.recent.GetLastCueDir(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Show()
}

// importCue parses path in the background; probing may take a while
func (ui *RootUI) importCue(path string) {
	prober := ui.prober
	go func() {
		sheet, err := cuesheet.Open(context.Background(), path, cuesheet.Options{Prober: prober})
		fyne.Do(func() { ui.onCueLoaded(path, sheet, err) })
	}()
}

func (ui *RootUI) onCueLoaded(path string, sheet *cuesheet.Sheet, err error) {
	if err != nil {
		ui.logger.Warn("CUE import failed", "path", path, logging.Error(err))
		dialog.ShowError(err, ui.window)
		return
	}
	ui.logger.Info("CUE imported", "path", path, "tracks", len(sheet.Tracks), "encoding", sheet.Disc.Encoding)
	ui.recent.SetLastCueFile(path)
	if ui.job != nil {
		ui.pending = sheet
		return
	}
	ui.panel.SetSheet(sheet)
	ui.updateToolbar()
}

func (ui *RootUI) onBrowseOutput() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		updated := ui.settings.Clone()
		updated.OutputDir = uri.Path()
		ui.applySettings(updated, false)
	}, ui.window)
}

func (ui *RootUI) onTrackTag() {
	index, ok := ui.panel.SelectedIndex()
	if !ok {
		return
	}
	track, err := ui.panel.trackModel(index)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	NewTrackTagDialog(ui.localization, ui.window, index, track, ui.onTrackEdited).Show()
}

func (ui *RootUI) onTrackEdited(index int, track model.Track) {
	sheet := ui.panel.Sheet()
	if sheet == nil {
		return
	}
	if err := sheet.SetTrack(index, track); err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	ui.panel.RefreshTrack(index)
}

func (ui *RootUI) onProperties() {
	if sheet := ui.panel.Sheet(); sheet != nil {
		ShowCDInfo(ui.localization, ui.window, sheet.Disc)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.localization, ui.window, ui.settings, ui.opts.Paths.FFmpegDir, ui.applySettings).Show()
}

// applySettings persists updated and refreshes what can change live
func (ui *RootUI) applySettings(updated config.Settings, restart bool) {
	if err := ui.opts.Store.Save(updated); err != nil {
		ui.logger.Error("save settings", logging.Error(err))
		dialog.ShowError(err, ui.window)
		return
	}
	ui.settings = updated
	ui.prober = cuesheet.NewFFprobe(updated.FFprobeCmd)
	ui.panel.SetOutputDir(updated.OutputDir)
	if restart {
		dialog.ShowInformation(AppDisplayName, ui.localization.GetText(KeyRestartRequired), ui.window)
	}
}

func (ui *RootUI) onShowLogs() {
	if !dirExists(ui.opts.Paths.LogDir) {
		dialog.ShowInformation(AppDisplayName, ui.localization.GetText(KeyNoLogs), ui.window)
		return
	}
	NewLogViewer(ui.app, ui.localization, ui.opts.Paths.LogDir).Show()
}

func (ui *RootUI) onStart() {
	if err := ui.startJob(); err != nil {
		if errors.Is(err, cuesheet.ErrNothingSelected) {
			dialog.ShowInformation(AppDisplayName, ui.localization.GetText(KeyNothingChecked), ui.window)
			return
		}
		ui.logger.Error("split job not started", logging.Error(err))
		dialog.ShowError(err, ui.window)
	}
}

// startJob builds the recipes of the checked tracks and starts a worker
func (ui *RootUI) startJob() error {
	sheet := ui.panel.Sheet()
	if sheet == nil || ui.job != nil {
		return nil
	}
	if err := platform.CheckExecutable(ui.settings.FFmpegCmd); err != nil {
		return executableError(ui.localization, platform.FFmpegName, err)
	}

	tempDir, err := os.MkdirTemp("", TempDirPattern)
	if err != nil {
		return fmt.Errorf("create temporary directory: %w", err)
	}

	recipes, err := cuesheet.Recipes(sheet.Tracks, cuesheet.Params{
		FFmpegCmd: ui.settings.FFmpegCmd,
		LogLevel:  ui.settings.FFmpegLogLevel,
		Format:    ui.panel.Format(),
		Quality:   ui.panel.Quality(),
		CodecCopy: ui.panel.CodecCopy(),
		TempDir:   tempDir,
	}, ui.panel.Checked())
	if err != nil {
		os.RemoveAll(tempDir)
		return err
	}

	if err := platform.CreateDirectoryIfNotExists(ui.opts.Paths.LogDir); err != nil {
		os.RemoveAll(tempDir)
		return fmt.Errorf("create log directory: %w", err)
	}
	splitter, err := ui.newSplitter(recipes, ui.opts.Paths.FFmpegLog(), ui.opts.Logger)
	if err != nil {
		os.RemoveAll(tempDir)
		return err
	}
	if err := splitter.Start(context.Background()); err != nil {
		os.RemoveAll(tempDir)
		return err
	}

	ui.job = &job{splitter: splitter, tempDir: tempDir, outputDir: ui.settings.OutputDir}
	ui.logger.Info("split job started", logging.FieldJobID, splitter.JobID(), "tracks", len(recipes))
	ui.panel.SetRunning(true)
	ui.panel.SetProgress(0)
	ui.updateToolbar()

	go ui.relay(splitter)
	return nil
}

// relay drains the worker events onto the UI goroutine, then reports the end of the job
func (ui *RootUI) relay(splitter split.Splitter) {
	for ev := range splitter.Events() {
		fyne.Do(func() { ui.handleEvent(ev) })
	}
	status := splitter.Wait()
	fyne.Do(func() { ui.endJob(status) })
}

func (ui *RootUI) handleEvent(ev model.Event) {
	t := ui.localization.GetText
	switch ev.Kind {
	case model.EventStepStarted, model.EventProgress:
		if ui.job == nil || ui.job.splitter.Status() == model.JobStatusCancelling {
			return
		}
		ui.panel.SetProgress(ev.Fraction)
		ui.panel.SetStatus(fmt.Sprintf(StatusProgressFmt, t(KeyStatusProcessing), ev.Track(), t(KeyStatusProgress), ev.Percent()), widget.WarningImportance)
	case model.EventStepFailed:
		ui.logger.Warn("split step failed", "track", ev.Track(), "exit_code", ev.ExitCode)
	case model.EventLaunchFailed:
		ui.logger.Error("split step could not start", "track", ev.Track(), logging.Error(ev.Err))
		dialog.ShowError(ev.Err, ui.window)
	case model.EventCompleted:
		ui.logger.Debug("split job events drained", "status", ev.Status.String())
	}
}

// endJob finishes a job on the UI goroutine: deliver or discard the tracks
func (ui *RootUI) endJob(status model.JobStatus) {
	j := ui.job
	if j == nil {
		return
	}

	t := ui.localization.GetText
	switch status {
	case model.JobStatusFinished:
		ui.deliver(j)
		return
	case model.JobStatusInterrupted:
		ui.panel.SetStatus(t(KeyStatusInterrupted), widget.HighImportance)
	default:
		ui.panel.SetStatus(t(KeyStatusError), widget.DangerImportance)
		ui.notify(t(KeyErrorTitle), t(KeyErrorBody))
	}
	ui.finishJob(j, status)
}

// deliver moves the finished tracks to the output directory, asking once on conflicts
func (ui *RootUI) deliver(j *job) {
	conflicts, err := platform.FindConflicts(j.tempDir, j.outputDir)
	if err != nil {
		ui.failDelivery(j, err)
		return
	}
	if len(conflicts) == 0 || ui.quitting {
		ui.moveTracks(j, platform.ConflictOverwrite)
		return
	}

	ui.askConflictPolicy(conflicts, func(policy platform.ConflictPolicy, ok bool) {
		if !ok {
			ui.panel.SetStatus(ui.localization.GetText(KeyStatusInterrupted), widget.HighImportance)
			ui.finishJob(j, model.JobStatusInterrupted)
			return
		}
		ui.moveTracks(j, policy)
	})
}

func (ui *RootUI) moveTracks(j *job, policy platform.ConflictPolicy) {
	t := ui.localization.GetText
	result, err := platform.MoveTracks(j.tempDir, j.outputDir, policy)
	if err != nil {
		ui.failDelivery(j, err)
		return
	}

	status := t(KeyStatusFinished)
	if len(result.Skipped) > 0 {
		status += " " + fmt.Sprintf(t(KeySkippedTracks), len(result.Skipped))
	}
	ui.logger.Info("tracks delivered", "moved", len(result.Moved), "skipped", len(result.Skipped), "dir", j.outputDir)
	ui.panel.SetStatus(status, widget.SuccessImportance)
	ui.panel.SetProgress(0)
	ui.notify(t(KeySuccess), t(KeySuccessBody))
	ui.finishJob(j, model.JobStatusFinished)
}

func (ui *RootUI) failDelivery(j *job, err error) {
	ui.logger.Error("move tracks", logging.Error(err))
	ui.panel.SetStatus(ui.localization.GetText(KeyStatusError), widget.DangerImportance)
	dialog.ShowError(err, ui.window)
	ui.finishJob(j, model.JobStatusError)
}

// finishJob removes the temporary directory and unlocks the window
func (ui *RootUI) finishJob(j *job, status model.JobStatus) {
	if err := os.RemoveAll(j.tempDir); err != nil {
		ui.logger.Warn("remove temporary directory", "dir", j.tempDir, logging.Error(err))
	}
	ui.job = nil
	ui.panel.SetRunning(false)
	if ui.pending != nil {
		// keep the job outcome on the status line
		text, importance := ui.panel.StatusText(), ui.panel.status.Importance
		ui.panel.SetSheet(ui.pending)
		ui.panel.SetStatus(text, importance)
		ui.pending = nil
	}
	ui.updateToolbar()
	ui.logger.Info("split job ended", logging.FieldJobID, j.splitter.JobID(), "status", status.String())

	if ui.onJobEnd != nil {
		ui.onJobEnd(status)
	}
	if ui.quitting {
		ui.quit()
	}
}

// askConflictPolicy shows one dialog for every existing file: overwrite all, skip or cancel
func (ui *RootUI) askConflictPolicy(conflicts []string, onChoice func(policy platform.ConflictPolicy, ok bool)) {
	t := ui.localization.GetText

	names := make([]string, len(conflicts))
	for i, c := range conflicts {
		names[i] = "  " + c
	}
	message := widget.NewLabel(fmt.Sprintf(t(KeyConflictBody), len(conflicts), strings.Join(names, "\n")))
	message.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustomWithoutButtons(t(KeyConflictTitle), container.NewVScroll(message), ui.window)
	choose := func(policy platform.ConflictPolicy, ok bool) func() {
		return func() {
			d.Hide()
			onChoice(policy, ok)
		}
	}
	overwrite := widget.NewButton(t(KeyOverwriteAll), choose(platform.ConflictOverwrite, true))
	overwrite.Importance = widget.WarningImportance
	skip := widget.NewButton(t(KeySkip), choose(platform.ConflictSkip, true))
	cancel := widget.NewButton(t(KeyCancel), choose(platform.ConflictSkip, false))
	d.SetButtons([]fyne.CanvasObject{cancel, skip, overwrite})
	d.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
	d.Show()
}

func (ui *RootUI) onAbort() {
	if ui.job == nil {
		return
	}
	ui.panel.SetStatus(ui.localization.GetText(KeyStatusAborting), widget.WarningImportance)
	ui.toolbar.Button(ToolAbort).Disable()
	ui.job.splitter.Stop()
}

// notify sends a desktop notification
func (ui *RootUI) notify(title, content string) {
	ui.app.SendNotification(&fyne.Notification{Title: title, Content: content})
}

// onClose asks before killing a running job or, when configured, before exiting
func (ui *RootUI) onClose() {
	t := ui.localization.GetText
	if ui.job != nil {
		showConfirm(ui.localization, t(KeyConfirmTitle), t(KeyKillConfirm), func(ok bool) {
			if ok {
				ui.kill()
			}
		}, ui.window)
		return
	}

	if ui.settings.WarnExiting {
		showConfirm(ui.localization, t(KeyExit), t(KeyExitConfirm), func(ok bool) {
			if ok {
				ui.quit()
			}
		}, ui.window)
		return
	}
	ui.quit()
}

// kill stops the running job; the window closes once the worker has exited
func (ui *RootUI) kill() {
	ui.quitting = true
	if ui.job == nil {
		ui.quit()
		return
	}
	ui.job.splitter.Stop()
}

// quit persists the window size, empties the logs if configured and exits
func (ui *RootUI) quit() {
	ui.savePanelSize()
	if ui.settings.ClearLogFiles {
		if err := platform.ClearFileContents(ui.opts.Paths.LogDir); err != nil {
			ui.logger.Warn("clear log files", logging.Error(err))
		}
	}
	ui.app.Quit()
}

func (ui *RootUI) savePanelSize() {
	size := ui.window.Canvas().Size()
	current := [2]int{int(size.Width), int(size.Height)}
	if current[0] <= 0 || current[1] <= 0 || current == ui.settings.PanelSize {
		return
	}
	updated := ui.settings.Clone()
	updated.PanelSize = current
	if err := ui.opts.Store.Save(updated); err != nil {
		ui.logger.Warn("save panel size", logging.Error(err))
		return
	}
	ui.settings = updated
}

func (ui *RootUI) onOpenOutputDir() {
	ui.openPath(ui.settings.OutputDir)
}

func (ui *RootUI) onOpenConfigDir() {
	ui.openPath(ui.opts.Paths.ConfigDir)
}

func (ui *RootUI) onOpenLogDir() {
	if !dirExists(ui.opts.Paths.LogDir) {
		dialog.ShowInformation(AppDisplayName, ui.localization.GetText(KeyNoLogs), ui.window)
		return
	}
	ui.openPath(ui.opts.Paths.LogDir)
}

// onWorkNotes opens user_memos.txt with the default editor, creating it if needed
func (ui *RootUI) onWorkNotes() {
	if err := ensureFile(ui.opts.Paths.MemoFile); err != nil {
		dialog.ShowError(fmt.Errorf(ui.localization.GetText(KeyCreateFileErr), err), ui.window)
		return
	}
	ui.openPath(ui.opts.Paths.MemoFile)
}

func (ui *RootUI) openPath(path string) {
	if err := platform.OpenPath(path); err != nil {
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) openURL(raw string) {
	u, err := url.Parse(raw)
	if err != nil {
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		dialog.ShowError(err, ui.window)
	}
}

// onCheckRelease queries the latest published release in the background
func (ui *RootUI) onCheckRelease() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), platform.ReleaseCheckTimeout)
		defer cancel()
		rel, err := platform.LatestRelease(ctx, ui.opts.HTTPClient, platform.LatestReleaseURL)
		fyne.Do(func() { ui.showRelease(rel, err) })
	}()
}

func (ui *RootUI) showRelease(rel platform.Release, err error) {
	if err != nil {
		ui.logger.Warn("release check failed", logging.Error(err))
		dialog.ShowError(err, ui.window)
		return
	}

	content := container.NewVBox(widget.NewLabel(releaseMessage(ui.localization, rel.TagName, ui.opts.Version)))
	if link, err := url.Parse(platform.ReleasesPageURL); err == nil {
		content.Add(widget.NewHyperlink(platform.ReleasesPageURL, link))
	}
	dialog.ShowCustom(ui.localization.GetText(KeyCheckRelease), ui.localization.GetText(KeyClose), content, ui.window)
}

// releaseMessage compares the latest tag with the running version
func releaseMessage(loc *Localization, latest, current string) string {
	cmp, ok := platform.CompareVersions(latest, current)
	switch {
	case !ok || cmp < 0:
		return loc.GetText(KeyDevVersion)
	case cmp > 0:
		v := strings.TrimPrefix(strings.TrimPrefix(latest, "v"), ".")
		return fmt.Sprintf(loc.GetText(KeyNewRelease), v)
	default:
		return loc.GetText(KeyLatestVersion)
	}
}

// ensureFile creates an empty file at path unless one exists
func ensureFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, platform.DefaultFilePermissions)
	if err != nil {
		return err
	}
	return f.Close()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
