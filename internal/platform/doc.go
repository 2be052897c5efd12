package platform

// Package platform contains OS integration glue: external binary discovery,
// filesystem helpers for moving split tracks, opening folders in the system
// file manager, and the new-release check.
