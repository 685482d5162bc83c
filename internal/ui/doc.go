// Package ui implements the interactive attendance sheet using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for marking attendance:
//  1. [SheetView] : Browse the roster and set each athlete's status
//  2. [ConfirmView] : Confirm before saving
//  3. [SaveView] : Monitor per-record progress during the save
//  4. [ResultView] : Display the summary and any per-athlete failures
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Progress updates flow through a channel from the sheet's Save, providing
// non-blocking status reporting while records are submitted.
package ui
