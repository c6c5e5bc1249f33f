// Package resolver decides, for every target revision, which physical files
// of an indexed pack represent each logical asset.
//
// A file named "P@r" overrides "P" for revision r only. Every other revision
// keeps using "P" unless it has an override of its own. Matching between a
// path and its overrides ignores case.
package resolver

import (
	"mcpackr/internal/assetindex"
	"mcpackr/internal/complaint"
	"mcpackr/internal/revision"
)

// WorkingSets holds the resolved file list for each revision of a catalog.
type WorkingSets struct {
	catalog []revision.ID
	sets    map[revision.ID][]assetindex.Path
	chosen  map[revision.ID]map[string]assetindex.Path
}

// Resolve distributes paths over the revisions in catalog. Overrides for a
// revision outside the catalog are reported to complaints and dropped.
// complaints may be nil.
func Resolve(paths []assetindex.Path, catalog []revision.ID, complaints *complaint.Set) *WorkingSets {
	ws := &WorkingSets{
		catalog: append([]revision.ID(nil), catalog...),
		sets:    make(map[revision.ID][]assetindex.Path, len(catalog)),
		chosen:  make(map[revision.ID]map[string]assetindex.Path, len(catalog)),
	}
	known := make(map[revision.ID]bool, len(catalog))
	for _, rev := range catalog {
		known[rev] = true
		ws.chosen[rev] = make(map[string]assetindex.Path)
	}

	overridden := make(map[string]map[revision.ID]bool)
	for _, p := range paths {
		rev, ok := p.Override()
		if !ok {
			continue
		}
		key := p.Key()
		if overridden[key] == nil {
			overridden[key] = make(map[revision.ID]bool)
		}
		overridden[key][rev] = true
	}

	for _, p := range paths {
		if rev, ok := p.Override(); ok {
			if !known[rev] {
				if complaints != nil {
					complaints.Addf("%s: unknown revision override @%d", p, rev)
				}
				continue
			}
			ws.add(rev, p)
			continue
		}
		key := p.Key()
		for _, rev := range catalog {
			if overridden[key][rev] {
				continue
			}
			ws.add(rev, p)
		}
	}
	return ws
}

func (ws *WorkingSets) add(rev revision.ID, p assetindex.Path) {
	ws.sets[rev] = append(ws.sets[rev], p)
	key := p.Key()
	if _, taken := ws.chosen[rev][key]; !taken {
		ws.chosen[rev][key] = p
	}
}

// Set returns the working set of rev in index order.
func (ws *WorkingSets) Set(rev revision.ID) []assetindex.Path {
	return ws.sets[rev]
}

// Lookup returns the physical path chosen for a logical path in rev.
func (ws *WorkingSets) Lookup(rev revision.ID, logical string) (assetindex.Path, bool) {
	p, ok := ws.chosen[rev][assetindex.FoldKey(logical)]
	return p, ok
}

// Revisions returns the catalog the sets were resolved against.
func (ws *WorkingSets) Revisions() []revision.ID {
	return append([]revision.ID(nil), ws.catalog...)
}
