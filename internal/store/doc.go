// Package store implements the persisted, write-through string list used for the source directories.
//
// A [ListStore] keeps the list in memory and delegates persistence to a [Backend]:
//   - [JSONBackend] : a single JSON record on disk, rewritten in full on every save
//   - repositories.SourceRepository : a SQLite table, rewritten in one transaction
//
// Every mutating call performs exactly one whole-record write. Write failures are returned to the caller and never retried,
// so after a successful [ListStore.Append] or [ListStore.Remove] the backing record matches memory.
package store
