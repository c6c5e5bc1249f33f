// Package textutil provides filename helpers for archive names derived from
// user supplied pack directories.
package textutil
