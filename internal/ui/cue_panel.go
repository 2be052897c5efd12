package ui

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/cuesheet"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
)

// CuePanel is the central area of the main window: CUE path, output options,
// track list, progress bar and status line
type CuePanel struct {
	loc *Localization

	sheet    *cuesheet.Sheet
	checked  []bool
	selected int

	cueEntry      *widget.Entry
	importBtn     *widget.Button
	outputEntry   *widget.Entry
	outputBtn     *widget.Button
	formatSelect  *widget.Select
	qualitySelect *widget.Select
	copyCheck     *widget.Check
	list          *widget.List
	progress      *widget.ProgressBar
	status        *widget.Label

	object fyne.CanvasObject

	// Callbacks
	OnImport           func()
	OnBrowseOutput     func()
	OnSelectionChanged func(selected bool)
	OnOptionsChanged   func(format, quality string)
}

// NewCuePanel creates the panel with the last used format and quality
func NewCuePanel(loc *Localization, format, quality, outputDir string) *CuePanel {
	p := &CuePanel{loc: loc, selected: -1}
	p.createUI()

	if !slices.Contains(cuesheet.Formats, format) {
		format = cuesheet.FormatFLAC
	}
	p.formatSelect.SetSelected(format)
	if slices.Contains(p.qualitySelect.Options, quality) {
		p.qualitySelect.SetSelected(quality)
	}
	p.outputEntry.SetText(outputDir)
	p.SetStatus(loc.GetText(KeyReady), widget.MediumImportance)
	return p
}

func (p *CuePanel) createUI() {
	p.cueEntry = widget.NewEntry()
	p.cueEntry.Disable()
	p.importBtn = widget.NewButton(p.loc.GetText(KeyImportCue), func() {
		if p.OnImport != nil {
			p.OnImport()
		}
	})

	p.outputEntry = widget.NewEntry()
	p.outputEntry.Disable()
	p.outputBtn = widget.NewButton(p.loc.GetText(KeyBrowse), func() {
		if p.OnBrowseOutput != nil {
			p.OnBrowseOutput()
		}
	})

	p.qualitySelect = widget.NewSelect(nil, func(string) { p.optionsChanged() })
	p.formatSelect = widget.NewSelect(cuesheet.Formats, p.onFormat)
	p.copyCheck = widget.NewCheck(p.loc.GetText(KeyCodecCopy), p.onCodecCopy)

	p.list = widget.NewList(
		func() int { return p.trackCount() },
		func() fyne.CanvasObject { return NewTrackRow(p.setChecked) },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if row, ok := obj.(*TrackRow); ok && p.sheet != nil && id < len(p.sheet.Tracks) {
				row.Update(id, p.sheet.Tracks[id], p.checked[id])
			}
		},
	)
	p.list.OnSelected = func(id widget.ListItemID) {
		p.selected = id
		if p.OnSelectionChanged != nil {
			p.OnSelectionChanged(true)
		}
	}
	p.list.OnUnselected = func(widget.ListItemID) {
		p.selected = -1
		if p.OnSelectionChanged != nil {
			p.OnSelectionChanged(false)
		}
	}

	p.progress = widget.NewProgressBar()
	p.status = widget.NewLabel("")
	p.status.Truncation = fyne.TextTruncateEllipsis

	form := widget.NewForm(
		widget.NewFormItem(p.loc.GetText(KeyCueFile), container.NewBorder(nil, nil, nil, p.importBtn, p.cueEntry)),
		widget.NewFormItem(p.loc.GetText(KeyOutputDir), container.NewBorder(nil, nil, nil, p.outputBtn, p.outputEntry)),
	)
	options := container.NewHBox(
		widget.NewLabel(p.loc.GetText(KeyFormat)), p.formatSelect,
		widget.NewLabel(p.loc.GetText(KeyQuality)), p.qualitySelect,
		p.copyCheck,
	)

	top := container.NewVBox(form, options, widget.NewSeparator(), newTrackHeader(p.loc))
	bottom := container.NewVBox(p.progress, p.status)
	p.object = container.NewBorder(top, bottom, nil, nil, p.list)
}

func (p *CuePanel) onFormat(format string) {
	labels := cuesheet.QualityLabels(format)
	_, def := cuesheet.QualityItems(format)
	p.qualitySelect.Options = labels
	p.qualitySelect.SetSelected(def)
	p.qualitySelect.Refresh()
	p.optionsChanged()
}

func (p *CuePanel) onCodecCopy(checked bool) {
	if checked {
		p.formatSelect.Disable()
		p.qualitySelect.Disable()
	} else {
		p.formatSelect.Enable()
		p.qualitySelect.Enable()
	}
}

func (p *CuePanel) optionsChanged() {
	if p.OnOptionsChanged != nil && p.formatSelect.Selected != "" {
		p.OnOptionsChanged(p.formatSelect.Selected, p.qualitySelect.Selected)
	}
}

func (p *CuePanel) trackCount() int {
	if p.sheet == nil {
		return 0
	}
	return len(p.sheet.Tracks)
}

func (p *CuePanel) setChecked(index int, checked bool) {
	if index >= 0 && index < len(p.checked) {
		p.checked[index] = checked
	}
}

// SetSheet shows an imported sheet with every track checked
func (p *CuePanel) SetSheet(sheet *cuesheet.Sheet) {
	p.sheet = sheet
	p.checked = make([]bool, len(sheet.Tracks))
	for i := range p.checked {
		p.checked[i] = true
	}
	p.selected = -1
	p.list.UnselectAll()
	p.cueEntry.SetText(sheet.Path)
	p.list.Refresh()
	p.progress.SetValue(0)
	p.SetStatus(p.loc.GetText(KeyReady), widget.MediumImportance)
}

// Sheet returns the loaded sheet or nil
func (p *CuePanel) Sheet() *cuesheet.Sheet {
	return p.sheet
}

// SelectedIndex returns the focused track
func (p *CuePanel) SelectedIndex() (int, bool) {
	return p.selected, p.selected >= 0 && p.selected < p.trackCount()
}

// Checked returns a copy of the per-track check state
func (p *CuePanel) Checked() []bool {
	return slices.Clone(p.checked)
}

// SetChecked changes the check state of one track
func (p *CuePanel) SetChecked(index int, checked bool) {
	p.setChecked(index, checked)
	p.list.RefreshItem(index)
}

// RefreshTrack redraws one row after a tag edit
func (p *CuePanel) RefreshTrack(index int) {
	p.list.RefreshItem(index)
}

// Format returns the selected output format
func (p *CuePanel) Format() string {
	return p.formatSelect.Selected
}

// Quality returns the selected compression preset
func (p *CuePanel) Quality() string {
	return p.qualitySelect.Selected
}

// CodecCopy reports whether the source codec is copied
func (p *CuePanel) CodecCopy() bool {
	return p.copyCheck.Checked
}

// SetCodecCopy toggles stream copy mode
func (p *CuePanel) SetCodecCopy(enabled bool) {
	p.copyCheck.SetChecked(enabled)
}

// SetOutputDir shows the destination directory
func (p *CuePanel) SetOutputDir(dir string) {
	p.outputEntry.SetText(dir)
}

// SetRunning locks the options while a job runs
func (p *CuePanel) SetRunning(running bool) {
	if running {
		p.importBtn.Disable()
		p.outputBtn.Disable()
		p.formatSelect.Disable()
		p.qualitySelect.Disable()
		p.copyCheck.Disable()
		return
	}
	p.importBtn.Enable()
	p.outputBtn.Enable()
	p.copyCheck.Enable()
	p.onCodecCopy(p.copyCheck.Checked)
}

// SetProgress sets the progress bar, fraction in [0,1]
func (p *CuePanel) SetProgress(fraction float64) {
	p.progress.SetValue(fraction)
}

// SetStatus writes the status line
func (p *CuePanel) SetStatus(text string, importance widget.Importance) {
	p.status.Importance = importance
	p.status.SetText(text)
}

// StatusText returns the status line
func (p *CuePanel) StatusText() string {
	return p.status.Text
}

// Object returns the panel canvas object
func (p *CuePanel) Object() fyne.CanvasObject {
	return p.object
}

// trackModel returns a copy of the track at index
func (p *CuePanel) trackModel(index int) (model.Track, error) {
	if p.sheet == nil {
		return model.Track{}, model.ErrTrackIndex
	}
	return p.sheet.Tracks.Get(index)
}
