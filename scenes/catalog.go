package scenes

import (
	"io/fs"

	"github.com/automoto/platproto/shared/variants"
)

// Catalog is what every scene needs to start a prototype.
type Catalog struct {
	Variants *variants.Set
	// Watcher reports edited variant files read back from WatchFS. Both are
	// nil unless hot reload was requested.
	Watcher *variants.Watcher
	WatchFS fs.FS
}
