package docmodel

// ReflectionID identifies a node in the documentation tree arena.
type ReflectionID uint32

const (
	// NoReflectionID marks the absence of a reflection reference.
	NoReflectionID ReflectionID = 0
)

// IsValid reports whether the ID refers to an allocated reflection.
func (id ReflectionID) IsValid() bool { return id != NoReflectionID }

// TypeID identifies a type value inside the type arena.
type TypeID uint32

const (
	// NoTypeID marks the absence of a type reference.
	NoTypeID TypeID = 0
)

// IsValid reports whether the type ID refers to an allocated type.
func (id TypeID) IsValid() bool { return id != NoTypeID }

// SymbolID identifies a compiler symbol inside the symbol arena.
// Symbol equality is ID equality; names are display data only.
type SymbolID uint32

const (
	// NoSymbolID marks the absence of a symbol reference.
	NoSymbolID SymbolID = 0
)

// IsValid reports whether the symbol ID refers to an allocated symbol.
func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// ProgramID identifies a compiler program in a program library.
type ProgramID uint32

const (
	// NoProgramID marks the absence of a program reference.
	NoProgramID ProgramID = 0
)

// IsValid reports whether the program ID refers to a registered program.
func (id ProgramID) IsValid() bool { return id != NoProgramID }
