// Package program models the compiler side of the pipeline: per-program
// symbol universes with declaration payloads that the resolver can convert
// into documentation reflections on demand.
package program

import (
	"fmt"

	"fortio.org/safecast"

	"specular/internal/docmodel"
)

// TypeSpec is the serializable shape of a type value. Refs point at symbols
// in the shared symbol arena, so instantiated declarations can themselves
// surface further missing symbols.
type TypeSpec struct {
	Kind   docmodel.TypeKind `msgpack:"kind"`
	Name   string            `msgpack:"name,omitempty"`
	Symbol docmodel.SymbolID `msgpack:"symbol,omitempty"`
	Elems  []*TypeSpec       `msgpack:"elems,omitempty"`
	Inline *DeclSpec         `msgpack:"inline,omitempty"`
}

// ParamSpec describes one parameter of a signature payload.
type ParamSpec struct {
	Name string    `msgpack:"name"`
	Type *TypeSpec `msgpack:"type,omitempty"`
}

// SigSpec describes a call signature of a declaration payload.
type SigSpec struct {
	Name   string      `msgpack:"name"`
	Return *TypeSpec   `msgpack:"return,omitempty"`
	Params []ParamSpec `msgpack:"params,omitempty"`
}

// DeclSpec is the conversion payload for one symbol: everything needed to
// synthesize a declaration reflection for it.
type DeclSpec struct {
	Name          string                  `msgpack:"name"`
	Kind          docmodel.ReflectionKind `msgpack:"kind"`
	Type          *TypeSpec               `msgpack:"type,omitempty"`
	ExtendedTypes []*TypeSpec             `msgpack:"extended,omitempty"`
	Signatures    []SigSpec               `msgpack:"signatures,omitempty"`
}

// Program is one compiler program: a named symbol universe with conversion
// payloads for the symbols it can document.
type Program struct {
	Name  string
	Decls map[docmodel.SymbolID]*DeclSpec
}

// Library holds every program of a build, addressed by ProgramID.
type Library struct {
	data []Program
}

// NewLibrary creates a program library with optional capacity hint.
func NewLibrary(capacity uint) *Library {
	if capacity == 0 {
		capacity = 4
	}
	c, err := safecast.Conv[uint32](capacity)
	if err != nil {
		panic(fmt.Errorf("program library overflow: %w", err))
	}
	return &Library{
		data: make([]Program, 1, c+1), // index 0 reserved for NoProgramID
	}
}

// Add registers a program and returns its ID.
func (l *Library) Add(name string) docmodel.ProgramID {
	value, err := safecast.Conv[uint32](len(l.data))
	if err != nil {
		panic(fmt.Errorf("program library overflow: %w", err))
	}
	id := docmodel.ProgramID(value)
	l.data = append(l.data, Program{
		Name:  name,
		Decls: make(map[docmodel.SymbolID]*DeclSpec),
	})
	return id
}

// RebuildLibrary reconstructs a library from decoded programs: element i
// becomes ProgramID i+1.
func RebuildLibrary(programs []Program) *Library {
	l := NewLibrary(uint(len(programs)))
	for _, p := range programs {
		if p.Decls == nil {
			p.Decls = make(map[docmodel.SymbolID]*DeclSpec)
		}
		l.data = append(l.data, p)
	}
	return l
}

// Programs returns the registered programs in ID order, without the
// sentinel. The slice is shared; callers must not mutate it.
func (l *Library) Programs() []Program {
	if len(l.data) <= 1 {
		return nil
	}
	return l.data[1:]
}

// Get returns the program pointer or nil for an invalid ID.
func (l *Library) Get(id docmodel.ProgramID) *Program {
	if !id.IsValid() || int(id) >= len(l.data) {
		return nil
	}
	return &l.data[id]
}

// Len reports the number of registered programs.
func (l *Library) Len() int { return len(l.data) - 1 }

// SetDecl installs the conversion payload for sym in the given program.
func (l *Library) SetDecl(id docmodel.ProgramID, sym docmodel.SymbolID, spec *DeclSpec) {
	if p := l.Get(id); p != nil && sym.IsValid() && spec != nil {
		p.Decls[sym] = spec
	}
}

// Decl looks up the payload for sym, trying the given program first and
// falling back to the program that owns the symbol.
func (l *Library) Decl(table *docmodel.Table, id docmodel.ProgramID, sym docmodel.SymbolID) *DeclSpec {
	if p := l.Get(id); p != nil {
		if spec, ok := p.Decls[sym]; ok {
			return spec
		}
	}
	s := table.Symbols.Get(sym)
	if s == nil || s.Program == id {
		return nil
	}
	if p := l.Get(s.Program); p != nil {
		return p.Decls[sym]
	}
	return nil
}
