// Package ui implements the interactive terminal interface using bubbletea's Elm architecture.
//
// The [Model] is a thin shell around a [state.App]: key presses are handed to the app unchanged, and
// the returned outcome becomes a bubbletea command (quit) or a cursor visibility change.
// Each tab is drawn by a render function registered by [state.TabKind]:
//  1. Home : playlists, songs of the selected playlist and song detail in three panes
//  2. Sources : the persisted source directories
//  3. Settings : the effective configuration
//
// In Edit mode a popup replaces the tab body and shows the edit buffer with a blinking cursor.
// A tick message redraws the screen every configured interval.
package ui
