package pack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/boxgen/boxicon"
	"github.com/backmassage/boxgen/internal/naming"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestList_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "bx-b.svg", "")
	write(t, dir, "bx-a.SVG", "")
	write(t, dir, "readme.txt", "")
	write(t, filepath.Join(dir, "nested"), "bx-c.svg", "")

	files, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"bx-a.SVG", "bx-b.svg"}, files)
}

func TestRead_MissingPackIsEmpty(t *testing.T) {
	assets, dups, err := Read(t.TempDir(), boxicon.PackBrands, naming.DefaultPrefix)
	require.NoError(t, err)
	assert.Empty(t, assets)
	assert.Empty(t, dups)
}

func TestRead_KeysByIdentifier(t *testing.T) {
	root := t.TempDir()
	dir := Dir(root, boxicon.PackBasic)
	write(t, dir, "bx-home-alt.svg", "<svg/>")
	write(t, dir, "bx-map.svg", "<svg>map</svg>")

	assets, dups, err := Read(root, boxicon.PackBasic, naming.DefaultPrefix)
	require.NoError(t, err)
	assert.Empty(t, dups)
	require.Len(t, assets, 2)

	a := assets["HomeAlt"]
	assert.Equal(t, "bx-home-alt.svg", a.Filename)
	assert.Equal(t, boxicon.PackBasic, a.Pack)
	assert.Equal(t, "<svg/>", a.Content)
	assert.Equal(t, filepath.Join(dir, "bx-home-alt.svg"), a.Path)
	assert.Contains(t, assets, "MapIcon")
}

func TestRead_LastWriteWins(t *testing.T) {
	root := t.TempDir()
	dir := Dir(root, boxicon.PackFilled)
	write(t, dir, "bx-home-alt.svg", "second")
	write(t, dir, "bx-home--alt.svg", "first")

	assets, dups, err := Read(root, boxicon.PackFilled, naming.DefaultPrefix)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "second", assets["HomeAlt"].Content)
	assert.Equal(t, []Duplicate{{
		Pack:       boxicon.PackFilled,
		Identifier: "HomeAlt",
		Loser:      "bx-home--alt.svg",
		Winner:     "bx-home-alt.svg",
	}}, dups)
}

func TestReadAll(t *testing.T) {
	root := t.TempDir()
	write(t, Dir(root, boxicon.PackBasic), "bx-home.svg", "b")
	write(t, Dir(root, boxicon.PackBrands), "bx-github.svg", "g")

	set, dups, err := ReadAll(root, naming.DefaultPrefix)
	require.NoError(t, err)
	assert.Empty(t, dups)
	assert.Len(t, set, 3)
	assert.Empty(t, set[boxicon.PackFilled])

	a, ok := set.Lookup(boxicon.PackBrands, "Github")
	assert.True(t, ok)
	assert.Equal(t, "g", a.Content)
	_, ok = set.Lookup(boxicon.PackFilled, "Home")
	assert.False(t, ok)
}
