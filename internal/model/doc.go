package model

// Package model defines domain data structures used across the app: track
// metadata records read from a CUE sheet, encoder recipes, job status and the
// typed events the split worker sends to the UI.
