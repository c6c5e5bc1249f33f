// Package porter turns one resource pack directory into an archive per
// target revision.
//
// A run validates the pack, locks the output directory, removes archives left
// by earlier runs, indexes the pack and resolves per-revision overrides. Each
// target is then built by walking its working set in order. Every file goes
// through the same steps: manifest rendering, texture and descriptor renames,
// compass and clock transcoding, the particles atlas rule, overlay folder
// remapping, and finally a descriptor rewrite or a raw copy.
//
// Problems that only affect single assets are collected as complaints and
// never stop a run. Errors returned by Port carry one of the markers in
// errors.go.
package porter
