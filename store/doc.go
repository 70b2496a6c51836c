// Package store persists decoded readouts in a SQL database.
//
// Open picks the driver from the DSN: postgres:// and postgresql:// URLs go
// through pgx, anything else is a SQLite file path (modernc.org/sqlite, no
// cgo). Each Record keeps the raw result string next to the decoded logical
// value and syndrome events, the latter as a JSON column.
package store
