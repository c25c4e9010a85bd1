package collect

import "specular/internal/docmodel"

// SymbolSet is an insertion-ordered identity set of symbols. Iteration order
// matches first insertion, which keeps discovery passes deterministic.
type SymbolSet struct {
	ids  []docmodel.SymbolID
	seen map[docmodel.SymbolID]struct{}
}

// NewSymbolSet returns an empty set.
func NewSymbolSet() *SymbolSet {
	return &SymbolSet{seen: make(map[docmodel.SymbolID]struct{})}
}

// Add inserts sym and reports whether it was not already present.
func (s *SymbolSet) Add(sym docmodel.SymbolID) bool {
	if !sym.IsValid() {
		return false
	}
	if _, ok := s.seen[sym]; ok {
		return false
	}
	s.seen[sym] = struct{}{}
	s.ids = append(s.ids, sym)
	return true
}

// Has reports whether sym is in the set.
func (s *SymbolSet) Has(sym docmodel.SymbolID) bool {
	_, ok := s.seen[sym]
	return ok
}

// Len reports the number of symbols in the set.
func (s *SymbolSet) Len() int { return len(s.ids) }

// IDs returns the symbols in insertion order. The slice is shared; callers
// must not mutate it.
func (s *SymbolSet) IDs() []docmodel.SymbolID { return s.ids }
