package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
)

var tagLabelKeys = map[string]string{
	model.TagPerformer: KeyTagArtist,
	model.TagAlbum:     KeyTagAlbum,
	model.TagTitle:     KeyTagTitle,
	model.TagGenre:     KeyTagGenre,
	model.TagDate:      KeyTagDate,
	model.TagDiscID:    KeyTagDiscID,
	model.TagComment:   KeyTagComment,
}

// TrackTagDialog edits the CD-text tags of one track
type TrackTagDialog struct {
	window  fyne.Window
	index   int
	track   model.Track
	entries map[string]*widget.Entry
	dialog  dialog.Dialog
	onApply func(index int, track model.Track)
}

// NewTrackTagDialog creates the editor for the track at index
func NewTrackTagDialog(loc *Localization, window fyne.Window, index int, track model.Track, onApply func(int, model.Track)) *TrackTagDialog {
	d := &TrackTagDialog{
		window:  window,
		index:   index,
		track:   track,
		entries: make(map[string]*widget.Entry, len(model.EditableTags)),
		onApply: onApply,
	}

	items := make([]*widget.FormItem, 0, len(model.EditableTags))
	for _, tag := range model.EditableTags {
		entry := widget.NewEntry()
		entry.SetText(track.Tag(tag))
		if tag == model.TagComment {
			entry.MultiLine = true
			entry.Wrapping = fyne.TextWrapWord
		}
		d.entries[tag] = entry
		items = append(items, widget.NewFormItem(loc.GetText(tagLabelKeys[tag]), entry))
	}

	title := fmt.Sprintf(loc.GetText(KeyTrackTagTitle), track.Number)
	d.dialog = dialog.NewForm(title, loc.GetText(KeyApply), loc.GetText(KeyCancel), items, d.apply, window)
	d.dialog.Resize(fyne.NewSize(TrackDialogWidth, TrackDialogHeight))
	return d
}

// Show displays the dialog
func (d *TrackTagDialog) Show() {
	d.dialog.Show()
}

// apply copies the entries into the track and hands it to onApply
func (d *TrackTagDialog) apply(confirmed bool) {
	if !confirmed {
		return
	}

	tags := make(map[string]string, len(d.entries))
	for tag, entry := range d.entries {
		tags[tag] = entry.Text
	}

	track := d.track
	if err := track.ApplyTags(tags); err != nil {
		dialog.ShowError(err, d.window)
		return
	}
	if d.onApply != nil {
		d.onApply(d.index, track)
	}
}
