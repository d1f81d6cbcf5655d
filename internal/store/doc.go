// Package store keeps the history of compilation runs in SQLite.
package store
