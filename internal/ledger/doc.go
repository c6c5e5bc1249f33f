// Package ledger records every archive the porter produces in a SQLite
// database so earlier runs can be listed and their outputs verified.
//
// The schema is embedded and versioned. Opening a database written by a
// different schema version fails with ErrSchemaMismatch; the file must then be
// removed by hand.
package ledger
