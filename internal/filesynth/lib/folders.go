package lib

import (
	"fmt"
	"path/filepath"
)

// PlanFolders returns every relative folder path for the given depth and
// fan-out, enumerated depth-first in increasing index order. That order is a
// designed total order: balanced distribution round-robins over it, so it
// must not be replaced with a different enumeration.
//
// Depth 0 yields a single empty path (files land directly in the output
// root). For depth >= 1 the result is the full Cartesian product of
// "folder_NN" segments across levels, so its length is foldersPerLevel^depth.
func PlanFolders(depth, foldersPerLevel int) []string {
	if depth <= 0 {
		return []string{""}
	}

	var walk func(remaining int, current string) []string
	walk = func(remaining int, current string) []string {
		if remaining == 0 {
			return []string{current}
		}
		var paths []string
		for i := 1; i <= foldersPerLevel; i++ {
			name := fmt.Sprintf("folder_%02d", i)
			next := name
			if current != "" {
				next = filepath.Join(current, name)
			}
			paths = append(paths, walk(remaining-1, next)...)
		}
		return paths
	}

	return walk(depth, "")
}
