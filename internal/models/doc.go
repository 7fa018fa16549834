// Package models defines the domain entities of the songbreeze music library.
//
// The package contains two categories of types:
//
// 1. Library entities built in memory at load time
//   - [Song] : Metadata for a single audio file, produced by [ProbeSong]
//   - [Playlist] : Named, ordered collection of songs
//
// 2. Persisted records read from and written to the library directory
//   - [SourceRecord] : The ordered list of source directories
//   - [PlaylistRecord] : Playlist names, song paths and the name to paths mapping
//
// Songs are never persisted directly; a playlist record stores paths and each path is probed again on load.
package models
