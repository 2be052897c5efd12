package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the toolbar, menus and dialogs to the CUE importer and the split
// worker, and renders the track list, progress and status line. All UI strings
// are localized via Localization.
