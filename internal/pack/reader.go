// Package pack enumerates icon pack directories and loads their SVG assets
// keyed by normalized identifier.
package pack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/boxgen/boxicon"
	"github.com/backmassage/boxgen/internal/naming"
)

// Asset is one SVG file read from a pack directory.
type Asset struct {
	Filename string
	Pack     boxicon.Pack
	Path     string
	Content  string
}

// Assets maps identifier → asset for one pack.
type Assets map[string]Asset

// Duplicate records a file whose identifier was already claimed by an
// earlier file in the same pack. The later file (Winner) replaces the
// earlier one (Loser).
type Duplicate struct {
	Pack       boxicon.Pack
	Identifier string
	Loser      string
	Winner     string
}

// Dir returns the directory of pack p under root.
func Dir(root string, p boxicon.Pack) string {
	return filepath.Join(root, string(p))
}

// List returns the SVG filenames directly inside dir (non-recursive),
// sorted lexicographically. A missing dir yields no files and no error.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), naming.SVGExt) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Read loads every SVG in pack p under root, keyed by the identifier
// derived with prefix. Files are processed in lexicographic order and a
// later file whose identifier collides with an earlier one wins; each such
// replacement is reported in the returned duplicates. A missing pack
// directory is not an error: packs are optional.
func Read(root string, p boxicon.Pack, prefix string) (Assets, []Duplicate, error) {
	dir := Dir(root, p)
	files, err := List(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("list pack %s: %w", p, err)
	}

	assets := make(Assets, len(files))
	var dups []Duplicate
	for _, name := range files {
		path := filepath.Join(dir, name)
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		id := naming.NormalizeWithPrefix(name, prefix)
		if prev, ok := assets[id]; ok {
			dups = append(dups, Duplicate{Pack: p, Identifier: id, Loser: prev.Filename, Winner: name})
		}
		assets[id] = Asset{Filename: name, Pack: p, Path: path, Content: string(b)}
	}
	return assets, dups, nil
}

// Set holds the assets of every pack.
type Set map[boxicon.Pack]Assets

// ReadAll reads all packs in priority order.
func ReadAll(root, prefix string) (Set, []Duplicate, error) {
	set := make(Set, len(boxicon.Packs))
	var dups []Duplicate
	for _, p := range boxicon.Packs {
		assets, d, err := Read(root, p, prefix)
		if err != nil {
			return nil, nil, err
		}
		set[p] = assets
		dups = append(dups, d...)
	}
	return set, dups, nil
}

// Lookup returns the asset backing identifier id in pack p.
func (s Set) Lookup(p boxicon.Pack, id string) (Asset, bool) {
	a, ok := s[p][id]
	return a, ok
}
