// Package state implements the application state and navigation engine behind the terminal UI.
//
// The engine is a modal, hierarchical dispatcher:
//  1. [App] : owns the global [Mode], the [Tabs] navigator and the [EditBuffer], and routes every key
//  2. [TabController] : one per tab ([HomeController], [SourcesController], [SettingsController]),
//     registered in tab order, handling the keys that reach its tab in Normal mode
//  3. [PlaylistBrowser] : two coupled selection levels (playlists, then songs of the selected playlist) with a [Focus]
//  4. [Selection] : a cyclic optional index, None exactly when the list is empty
//
// All state is owned by the single goroutine running the bubbletea update loop; nothing here is safe for concurrent use.
// The only fallible operations are write-through persistence calls, whose errors [App.HandleKey] returns unchanged.
package state
