package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
)

// TrackRow is one line of the track list: a check box and the track columns
type TrackRow struct {
	widget.BaseWidget

	index    int
	updating bool

	check         *widget.Check
	numLabel      *widget.Label
	artistLabel   *widget.Label
	titleLabel    *widget.Label
	durationLabel *widget.Label
	albumLabel    *widget.Label

	onChecked func(index int, checked bool)
}

// NewTrackRow creates an empty row; onChecked fires when the user toggles the box
func NewTrackRow(onChecked func(index int, checked bool)) *TrackRow {
	tr := &TrackRow{index: -1, onChecked: onChecked}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

func (tr *TrackRow) createUI() {
	tr.check = widget.NewCheck("", func(checked bool) {
		if tr.updating || tr.index < 0 || tr.onChecked == nil {
			return
		}
		tr.onChecked(tr.index, checked)
	})

	tr.numLabel = widget.NewLabel("")
	tr.artistLabel = newCellLabel()
	tr.titleLabel = newCellLabel()
	tr.albumLabel = newCellLabel()
	tr.durationLabel = widget.NewLabel("")
	tr.durationLabel.TextStyle = fyne.TextStyle{Monospace: true}
	tr.durationLabel.Alignment = fyne.TextAlignTrailing
}

func newCellLabel() *widget.Label {
	l := widget.NewLabel("")
	l.Truncation = fyne.TextTruncateEllipsis
	return l
}

// Update shows track at index with the given check state
func (tr *TrackRow) Update(index int, track model.Track, checked bool) {
	tr.updating = true
	defer func() { tr.updating = false }()

	tr.index = index
	tr.check.SetChecked(checked)
	tr.numLabel.SetText(model.ValueOrNA(track.TrackNum))
	tr.artistLabel.SetText(model.ValueOrNA(track.Performer))
	tr.titleLabel.SetText(model.ValueOrNA(track.Title))
	tr.durationLabel.SetText(track.GetLengthString())
	tr.albumLabel.SetText(model.ValueOrNA(track.Album))
}

// CreateRenderer lays the row out like the list header
func (tr *TrackRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(trackColumns(tr.check, tr.numLabel, tr.artistLabel, tr.titleLabel, tr.durationLabel, tr.albumLabel))
}

// newTrackHeader returns the column titles of the track list
func newTrackHeader(loc *Localization) fyne.CanvasObject {
	bold := func(key string) *widget.Label {
		l := widget.NewLabel(loc.GetText(key))
		l.TextStyle = fyne.TextStyle{Bold: true}
		return l
	}
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(widget.NewCheck("", nil).MinSize())
	return trackColumns(spacer, bold(KeyColTrack), bold(KeyColArtist), bold(KeyColTitle), bold(KeyColDuration), bold(KeyColAlbum))
}

func trackColumns(check, num, artist, title, duration, album fyne.CanvasObject) fyne.CanvasObject {
	left := container.NewHBox(check, container.NewGridWrap(fyne.NewSize(TrackNumWidth, TrackRowMinHeight), num))
	right := container.NewGridWrap(fyne.NewSize(TrackDurationWidth, TrackRowMinHeight), duration)
	return container.NewBorder(nil, nil, left, right, container.NewGridWithColumns(3, artist, title, album))
}
