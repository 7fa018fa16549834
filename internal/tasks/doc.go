// Package tasks runs long playlist operations with progress reporting.
//
// # Bulk Export
//
// [BulkExport] writes every playlist of the library to a directory in one format:
//   - A fixed pool of workers renders and writes playlists concurrently
//   - Failures are collected per playlist and never abort the run
//   - An export_manifest.json summarizing the run is written last
//
// # Progress Reporting
//
// Operations accept an optional channel of [ProgressUpdate]. Sends use select with default,
// so a slow or absent reader never blocks the operation.
package tasks
