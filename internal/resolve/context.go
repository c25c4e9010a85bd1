package resolve

import "specular/internal/docmodel"

// Context is the capability surface the driver needs from the surrounding
// conversion pipeline. Implementations carry the mutable conversion state
// (current scope, active compiler program) and perform all tree mutation on
// the driver's behalf, which keeps the algorithm runnable against a plain
// in-memory table in tests.
type Context interface {
	// Scope returns the reflection acting as the current lexical scope.
	Scope() docmodel.ReflectionID
	// SetScope switches the current scope.
	SetScope(id docmodel.ReflectionID)

	// FindByName looks a reflection up by exact name, nearest scope first.
	FindByName(name string) docmodel.ReflectionID
	// ChildByKind returns the direct child of parent with the given kind
	// and name, if any.
	ChildByKind(parent docmodel.ReflectionID, kind docmodel.ReflectionKind, name string) docmodel.ReflectionID

	// CreateDeclaration allocates a new reflection under parent.
	CreateDeclaration(parent docmodel.ReflectionID, kind docmodel.ReflectionKind, name string) docmodel.ReflectionID
	// Finalize completes a reflection created by CreateDeclaration and
	// fires the creation hooks.
	Finalize(id docmodel.ReflectionID)
	// Register binds sym to an existing reflection inside scope, so
	// references to sym resolve there without duplicating the entity.
	Register(sym docmodel.SymbolID, target docmodel.ReflectionID, scope docmodel.ReflectionID)
	// ConvertSymbol synthesizes a declaration for sym under parent using
	// the active compiler program. Returns NoReflectionID when the active
	// program cannot produce one.
	ConvertSymbol(sym docmodel.SymbolID, parent docmodel.ReflectionID) docmodel.ReflectionID
	// Remove detaches a reflection from the tree.
	Remove(id docmodel.ReflectionID)

	// Program returns the active compiler program used for conversion.
	Program() docmodel.ProgramID
	// SetProgram switches the active compiler program.
	SetProgram(id docmodel.ProgramID)
}
