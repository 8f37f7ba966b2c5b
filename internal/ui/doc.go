// Package ui is the interactive preview for the catalog.
//
// The preview is a Bubble Tea program. The main area is a viewport holding
// the current page as rendered by the selected backend: ANSI output for the
// terminal, the indented semantic tree for the neural backend, and YAML
// dumps of the spatial and canvas graphs. Appearance keys go through the
// dispatcher like any agent action, so the state store stays the only
// source of truth and the exposure API sees the same changes.
//
// # Input
//
// Pressing i opens a one line input. Its text is handed to the dispatcher,
// which records the prose and applies the embedded actions. Protected
// actions are held; while one is pending the approval dialog takes over the
// screen and only y, n and ctrl+c are accepted.
//
// # Refresh
//
// The model polls the store on a short tick and rebuilds the preview only
// when the snapshot revision changes. Appearance changes are written to the
// preferences file as they are observed, whichever surface caused them.
package ui
