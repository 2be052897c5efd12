package ui

import (
	"fmt"
	"net/url"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/cuesheet"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
)

// ShowCDInfo displays the disc properties and the probed audio files
func ShowCDInfo(loc *Localization, window fyne.Window, disc model.DiscInfo) {
	grid := widget.NewTextGridFromString(cuesheet.FormatDiscInfo(disc))
	d := dialog.NewCustom(loc.GetText(KeyCDInfoTitle), loc.GetText(KeyClose), container.NewScroll(grid), window)
	d.Resize(fyne.NewSize(CDInfoDialogWidth, CDInfoDialogHeight))
	d.Show()
}

// showConfirm asks a yes/no question with localized buttons
func showConfirm(loc *Localization, title, message string, onAnswer func(bool), window fyne.Window) {
	d := dialog.NewConfirm(title, message, onAnswer, window)
	d.SetConfirmText(loc.GetText(KeyYes))
	d.SetDismissText(loc.GetText(KeyNo))
	d.Show()
}

// ShowAbout displays program name, version and project link
func ShowAbout(loc *Localization, window fyne.Window, version string) {
	title := widget.NewLabel(AppDisplayName)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(loc.GetText(KeyAboutText))
	description.Wrapping = fyne.TextWrapWord
	description.Alignment = fyne.TextAlignCenter

	versionLabel := widget.NewLabel(fmt.Sprintf("%s %s (%s, %s/%s)", loc.GetText(KeyVersion), version, runtime.Version(), runtime.GOOS, runtime.GOARCH))
	versionLabel.Alignment = fyne.TextAlignCenter

	content := container.NewVBox(title, description, versionLabel, widget.NewLabel("GPL-3.0"))
	if link, err := url.Parse(UserGuideURL); err == nil {
		content.Add(container.NewCenter(widget.NewHyperlink(UserGuideURL, link)))
	}

	d := dialog.NewCustom(loc.GetText(KeyAbout), loc.GetText(KeyClose), content, window)
	d.Show()
}
