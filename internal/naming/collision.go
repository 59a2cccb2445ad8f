package naming

import (
	"fmt"
	"strings"
	"sync"
)

// CollisionResolver tracks output file stems claimed by identifiers and
// resolves duplicates by appending "_dupN" suffixes. Stems are compared
// case-insensitively so two identifiers never map to the same file on a
// case-insensitive filesystem. All methods are goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	owners   map[string]string // lower-cased stem → identifier that owns it
	counters map[string]int    // lower-cased base stem → next dup counter
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Resolve returns the final stem for identifier. If requested is unclaimed
// (or already owned by identifier), it is returned as-is. Otherwise a
// "_dupN" variant is generated.
func (cr *CollisionResolver) Resolve(identifier, requested string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	key := strings.ToLower(requested)
	owner, exists := cr.owners[key]
	if !exists || owner == identifier {
		cr.owners[key] = identifier
		return requested
	}

	counter := cr.counters[key]
	if counter == 0 {
		counter = 1
	}

	for {
		candidate := fmt.Sprintf("%s_dup%d", requested, counter)
		cKey := strings.ToLower(candidate)
		cOwner, cExists := cr.owners[cKey]
		if !cExists || cOwner == identifier {
			cr.counters[key] = counter + 1
			cr.owners[cKey] = identifier
			return candidate
		}
		counter++
	}
}
