// Package main hosts the mcpackr CLI entrypoint and command graph.
//
// Commands resolve configuration once through commandContext, then hand the
// work to the internal packages: porter builds archives, preflight validates a
// pack before a run, and ledger keeps the history of produced archives.
package main
