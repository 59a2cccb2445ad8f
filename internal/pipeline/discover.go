package pipeline

import (
	"os"

	"github.com/backmassage/boxgen/boxicon"
	"github.com/backmassage/boxgen/internal/pack"
)

// PackDirs returns the pack directories that exist under root, in pack
// priority order. Missing packs are omitted; they contribute no icons.
func PackDirs(root string) []string {
	var dirs []string
	for _, p := range boxicon.Packs {
		dir := pack.Dir(root, p)
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
