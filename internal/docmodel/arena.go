package docmodel

import (
	"fmt"

	"fortio.org/safecast"
)

// Reflections stores all allocated tree nodes in a compact slice-based arena.
type Reflections struct {
	data []Reflection
}

// NewReflections creates an arena with optional capacity hint.
func NewReflections(capacity uint32) *Reflections {
	if capacity == 0 {
		capacity = 64
	}
	return &Reflections{
		data: make([]Reflection, 1, capacity+1), // index 0 reserved for NoReflectionID
	}
}

// New allocates a reflection and returns its ID.
func (r *Reflections) New(refl *Reflection) ReflectionID {
	if refl == nil {
		panic("docmodel.Reflections.New: nil reflection")
	}
	value, err := safecast.Conv[uint32](len(r.data))
	if err != nil {
		panic(fmt.Errorf("reflection arena overflow: %w", err))
	}
	id := ReflectionID(value)
	r.data = append(r.data, *refl)
	return id
}

// Get returns the reflection pointer or nil for an invalid ID.
func (r *Reflections) Get(id ReflectionID) *Reflection {
	if !id.IsValid() || int(id) >= len(r.data) {
		return nil
	}
	return &r.data[id]
}

// Len reports number of stored reflections excluding the sentinel.
func (r *Reflections) Len() int { return len(r.data) - 1 }

// Data exposes the arena storage without the sentinel.
func (r *Reflections) Data() []Reflection {
	if len(r.data) <= 1 {
		return nil
	}
	return r.data[1:]
}

// Types stores type values in a compact arena.
type Types struct {
	data []Type
}

// NewTypes creates a type arena with optional capacity hint.
func NewTypes(capacity uint32) *Types {
	if capacity == 0 {
		capacity = 128
	}
	return &Types{
		data: make([]Type, 1, capacity+1), // index 0 reserved for NoTypeID
	}
}

// New allocates a type value and returns its ID.
func (t *Types) New(ty Type) TypeID {
	value, err := safecast.Conv[uint32](len(t.data))
	if err != nil {
		panic(fmt.Errorf("type arena overflow: %w", err))
	}
	id := TypeID(value)
	t.data = append(t.data, ty)
	return id
}

// Get returns the type pointer or nil for an invalid ID.
func (t *Types) Get(id TypeID) *Type {
	if !id.IsValid() || int(id) >= len(t.data) {
		return nil
	}
	return &t.data[id]
}

// Len reports number of stored types excluding the sentinel.
func (t *Types) Len() int { return len(t.data) - 1 }

// Data exposes the arena storage without the sentinel.
func (t *Types) Data() []Type {
	if len(t.data) <= 1 {
		return nil
	}
	return t.data[1:]
}

// Symbols stores compiler symbols in a compact arena.
type Symbols struct {
	data []Symbol
}

// NewSymbols creates a symbol arena with optional capacity hint.
func NewSymbols(capacity uint32) *Symbols {
	if capacity == 0 {
		capacity = 64
	}
	return &Symbols{
		data: make([]Symbol, 1, capacity+1), // index 0 reserved for NoSymbolID
	}
}

// New allocates a symbol and returns its ID.
func (s *Symbols) New(sym Symbol) SymbolID {
	value, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("symbol arena overflow: %w", err))
	}
	id := SymbolID(value)
	s.data = append(s.data, sym)
	return id
}

// Get returns the symbol pointer or nil for an invalid ID.
func (s *Symbols) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len reports number of stored symbols excluding the sentinel.
func (s *Symbols) Len() int { return len(s.data) - 1 }

// Data exposes the arena storage without the sentinel.
func (s *Symbols) Data() []Symbol {
	if len(s.data) <= 1 {
		return nil
	}
	return s.data[1:]
}
