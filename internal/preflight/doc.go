// Package preflight provides readiness checks for a pack directory and the
// filesystem paths mcpackr writes to.
//
// These checks run in two contexts:
//   - The porter calls the pack and output checks before building anything.
//     A failing check aborts the run before any archive is touched.
//   - The CLI "mcpackr check" command runs RunAll and prints every result.
package preflight
