package board

import (
	"sort"

	"golang.org/x/exp/maps"
)

// LocationSet is an unordered set of squares. Callers must not depend on
// range order; use Sorted for anything that is displayed or compared.
type LocationSet map[Location]struct{}

func NewLocationSet(locs ...Location) LocationSet {
	s := make(LocationSet, len(locs))
	for _, loc := range locs {
		s[loc] = struct{}{}
	}
	return s
}

func (s LocationSet) Add(loc Location) {
	s[loc] = struct{}{}
}

func (s LocationSet) Contains(loc Location) bool {
	_, ok := s[loc]
	return ok
}

func (s LocationSet) Len() int {
	return len(s)
}

func (s LocationSet) Union(o LocationSet) LocationSet {
	out := make(LocationSet, len(s)+len(o))
	for loc := range s {
		out[loc] = struct{}{}
	}
	for loc := range o {
		out[loc] = struct{}{}
	}
	return out
}

func (s LocationSet) Equal(o LocationSet) bool {
	if len(s) != len(o) {
		return false
	}
	for loc := range s {
		if !o.Contains(loc) {
			return false
		}
	}
	return true
}

// Sorted returns the members in row-major order.
func (s LocationSet) Sorted() []Location {
	locs := maps.Keys(s)
	sort.Slice(locs, func(i, j int) bool {
		return locs[i].less(locs[j])
	})
	return locs
}
