// Package logging assembles the slog loggers used across mcpackr.
//
// New and NewFromConfig build a console (pretty) or JSON handler, optionally
// teed into a log file at its own level. Context helpers tag records with the
// run id and the revision being built, and the sink handler turns records into
// plain text lines for callers that only want a func(string).
package logging
