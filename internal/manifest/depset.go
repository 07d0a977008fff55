package manifest

// DepSet is an ordered set of package identifiers. Add mutates the set in
// place; duplicates and empty names are ignored and insertion order is kept.
type DepSet struct {
	items []string
	seen  map[string]bool
}

// NewDepSet returns a set holding names in order.
func NewDepSet(names ...string) *DepSet {
	s := &DepSet{}
	s.Add(names...)
	return s
}

// Add appends every name not already present.
func (s *DepSet) Add(names ...string) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	for _, n := range names {
		if n == "" || s.seen[n] {
			continue
		}
		s.seen[n] = true
		s.items = append(s.items, n)
	}
}

// Contains reports whether name is in the set.
func (s *DepSet) Contains(name string) bool {
	return s != nil && s.seen[name]
}

// Len returns the number of entries.
func (s *DepSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// List returns a copy of the entries in insertion order.
func (s *DepSet) List() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
