package conversion

import (
	"sync"

	"mcpackr/internal/revision"
)

// Table holds the identifier renames needed for one (source, target) pair.
type Table struct {
	BlockStates *BiMap
	Models      *BiMap
	Textures    *BiMap
}

// modernToLegacy is built once from the static dataset and shared read-only.
var modernToLegacy = sync.OnceValue(func() Table {
	return Table{
		BlockStates: newBiMap(blockStatePairs()),
		Models:      newBiMap(modelPairs()),
		Textures:    newBiMap(texturePairs()),
	}
})

// For returns the table for porting from source to target. Revisions of the
// same class need no renames and get an empty table.
func For(source, target revision.ID) Table {
	switch {
	case source.Class() == revision.Modern && target.Class() == revision.Legacy:
		return modernToLegacy()
	case source.Class() == revision.Legacy && target.Class() == revision.Modern:
		return For(target, source).Inverse()
	default:
		return Table{}
	}
}

// Inverse swaps the direction of all three sub-maps.
func (t Table) Inverse() Table {
	return Table{
		BlockStates: t.BlockStates.Inverse(),
		Models:      t.Models.Inverse(),
		Textures:    t.Textures.Inverse(),
	}
}

// Empty reports whether the table renames nothing.
func (t Table) Empty() bool {
	return t.BlockStates.Len() == 0 && t.Models.Len() == 0 && t.Textures.Len() == 0
}

// BlockState maps a block-state file name. ok is false when the name is kept.
func (t Table) BlockState(name string) (string, bool) { return t.BlockStates.Get(name) }

// Model maps a model name. ok is false when the name is kept.
func (t Table) Model(name string) (string, bool) { return t.Models.Get(name) }

// Texture maps a texture name. ok is false when the name is kept.
func (t Table) Texture(name string) (string, bool) { return t.Textures.Get(name) }
