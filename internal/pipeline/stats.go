package pipeline

import (
	"github.com/backmassage/boxgen/boxicon"
	"github.com/backmassage/boxgen/internal/pack"
)

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Planned      int // identifiers in the merged plan
	Generated    int // components rendered (and written unless dry run)
	Skipped      int // planned identifiers with no readable glyph
	Failed       int // components that failed to render
	Files        int // output files written, including index and support
	BytesWritten int64
	PerPack      map[boxicon.Pack]int // assets read per pack
	Duplicates   []pack.Duplicate
}

// Assets returns the total number of assets read across packs.
func (s *RunStats) Assets() int {
	n := 0
	for _, c := range s.PerPack {
		n += c
	}
	return n
}
