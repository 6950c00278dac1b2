// Package naming derives WebP destination paths from source image paths and
// detects destination collisions between sources that share a stem.
package naming

import (
	"path/filepath"
	"sort"
	"strings"
)

// DestinationPath returns the output path for a source image: same directory
// and stem, extension replaced with lowercase ".webp". The case of the
// original extension does not affect the result.
func DestinationPath(src string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + ".webp"
}

// Collision describes one destination path claimed by multiple sources.
type Collision struct {
	Dest    string
	Sources []string
}

// DetectCollisions reports destinations claimed by more than one source
// (e.g. photo.png and photo.jpg in the same directory both derive
// photo.webp). Collisions are reported, never resolved: both conversions
// still run and the last writer wins. Results are sorted by destination for
// deterministic output.
func DetectCollisions(sources []string) []Collision {
	owners := make(map[string][]string)
	for _, src := range sources {
		dest := DestinationPath(src)
		owners[dest] = append(owners[dest], src)
	}

	var collisions []Collision
	for dest, srcs := range owners {
		if len(srcs) > 1 {
			collisions = append(collisions, Collision{Dest: dest, Sources: srcs})
		}
	}
	sort.Slice(collisions, func(i, j int) bool {
		return collisions[i].Dest < collisions[j].Dest
	})
	return collisions
}
