// Package repositories implements SQLite persistence for the source list.
//
// [SourceRepository] satisfies store.Backend: the whole list is rewritten inside one transaction on every save,
// with each row's position recording its index, so reads return the list in insertion order.
//
// The schema lives in the embedded migrations of the shared package and is applied by shared.OpenDatabase.
package repositories
