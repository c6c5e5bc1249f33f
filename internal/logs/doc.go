// Package logs reads back the run log the CLI mirrors to disk.
//
// Reads are bounded: Last keeps only the requested number of lines in memory
// and Follow polls from a byte offset, so a long-lived log never has to be
// loaded whole. Both accept an optional filter, which `mcpackr logs --run`
// uses to narrow output to a single run id.
package logs
