package program

import (
	"specular/internal/docmodel"
	"specular/internal/resolve"
)

// Env binds a documentation table to a program library and carries the
// mutable conversion state (current scope, active program). It implements
// the driver's capability interface.
type Env struct {
	table *docmodel.Table
	lib   *Library
	hooks *resolve.Hooks

	scope docmodel.ReflectionID
	prog  docmodel.ProgramID
}

// NewEnv wires a conversion environment over table and lib. hooks may be
// nil when no creation events need recording.
func NewEnv(table *docmodel.Table, lib *Library, hooks *resolve.Hooks) *Env {
	return &Env{
		table: table,
		lib:   lib,
		hooks: hooks,
		scope: table.Root(),
	}
}

// Table exposes the underlying documentation table.
func (e *Env) Table() *docmodel.Table { return e.table }

// Scope returns the current lexical scope.
func (e *Env) Scope() docmodel.ReflectionID { return e.scope }

// SetScope switches the current lexical scope.
func (e *Env) SetScope(id docmodel.ReflectionID) { e.scope = id }

// Program returns the active compiler program.
func (e *Env) Program() docmodel.ProgramID { return e.prog }

// SetProgram switches the active compiler program.
func (e *Env) SetProgram(id docmodel.ProgramID) { e.prog = id }

// FindByName searches the scope chain for a reflection with the exact name.
func (e *Env) FindByName(name string) docmodel.ReflectionID {
	return e.table.FindByName(e.scope, name)
}

// ChildByKind returns the direct child of parent with the given kind/name.
func (e *Env) ChildByKind(parent docmodel.ReflectionID, kind docmodel.ReflectionKind, name string) docmodel.ReflectionID {
	return e.table.ChildByKind(parent, kind, name)
}

// CreateDeclaration allocates a synthetic reflection under parent.
func (e *Env) CreateDeclaration(parent docmodel.ReflectionID, kind docmodel.ReflectionKind, name string) docmodel.ReflectionID {
	return e.table.NewReflection(&docmodel.Reflection{
		Name:   name,
		Kind:   kind,
		Flags:  docmodel.FlagSynthetic,
		Parent: parent,
	})
}

// Finalize fires the creation hook for a newly created reflection.
func (e *Env) Finalize(id docmodel.ReflectionID) {
	if e.hooks != nil {
		e.hooks.DeclarationCreated(id, e.prog)
	}
}

// Register binds sym to target inside scope.
func (e *Env) Register(sym docmodel.SymbolID, target docmodel.ReflectionID, scope docmodel.ReflectionID) {
	if refl := e.table.Reflections.Get(scope); refl != nil {
		refl.Bind(sym, target)
	}
}

// Remove detaches a reflection from its parent.
func (e *Env) Remove(id docmodel.ReflectionID) {
	e.table.RemoveChild(id)
}

// ConvertSymbol synthesizes a declaration for sym under parent from the
// active program's payload. The new reflection is bound project-wide, so
// every reference to sym resolves to it from now on.
func (e *Env) ConvertSymbol(sym docmodel.SymbolID, parent docmodel.ReflectionID) docmodel.ReflectionID {
	spec := e.lib.Decl(e.table, e.prog, sym)
	if spec == nil {
		return docmodel.NoReflectionID
	}
	id := e.instantiateDecl(spec, parent)
	if id.IsValid() {
		e.Register(sym, id, e.table.Root())
		e.Finalize(id)
	}
	return id
}

// instantiateDecl materializes a payload as a reflection subtree. Arena
// appends may move backing storage, so reflection fields are only assigned
// through a fresh Get once all nested allocations are done.
func (e *Env) instantiateDecl(spec *DeclSpec, parent docmodel.ReflectionID) docmodel.ReflectionID {
	kind := spec.Kind
	if kind == docmodel.KindInvalid {
		kind = docmodel.KindDeclaration
	}
	id := e.table.NewReflection(&docmodel.Reflection{
		Name:   spec.Name,
		Kind:   kind,
		Flags:  docmodel.FlagSynthetic,
		Parent: parent,
	})

	typ := e.instantiateType(spec.Type)
	var ext []docmodel.TypeID
	for _, t := range spec.ExtendedTypes {
		ext = append(ext, e.instantiateType(t))
	}
	var sigs []docmodel.ReflectionID
	for _, sig := range spec.Signatures {
		sigs = append(sigs, e.instantiateSig(sig, id))
	}

	refl := e.table.Reflections.Get(id)
	refl.Type = typ
	refl.ExtendedTypes = ext
	refl.Signatures = sigs
	return id
}

// instantiateSig builds one call signature with its parameters. Signatures
// and parameters hang off their owner through dedicated fields, not
// containment children, so Parent is set without attaching.
func (e *Env) instantiateSig(sig SigSpec, owner docmodel.ReflectionID) docmodel.ReflectionID {
	var params []docmodel.ReflectionID
	for _, p := range sig.Params {
		pt := e.instantiateType(p.Type)
		params = append(params, e.table.NewReflection(&docmodel.Reflection{
			Name:  p.Name,
			Kind:  docmodel.KindParameter,
			Flags: docmodel.FlagSynthetic,
			Type:  pt,
		}))
	}
	ret := e.instantiateType(sig.Return)
	sid := e.table.NewReflection(&docmodel.Reflection{
		Name:   sig.Name,
		Kind:   docmodel.KindSignature,
		Flags:  docmodel.FlagSynthetic,
		Type:   ret,
		Params: params,
	})
	for _, pid := range params {
		e.table.Reflections.Get(pid).Parent = sid
	}
	e.table.Reflections.Get(sid).Parent = owner
	return sid
}

func (e *Env) instantiateType(spec *TypeSpec) docmodel.TypeID {
	if spec == nil {
		return docmodel.NoTypeID
	}
	ty := docmodel.Type{
		Kind:   spec.Kind,
		Name:   spec.Name,
		Symbol: spec.Symbol,
	}
	if spec.Inline != nil {
		inline := e.instantiateDecl(spec.Inline, docmodel.NoReflectionID)
		ty.Inline = inline
	}
	for _, elem := range spec.Elems {
		ty.Elems = append(ty.Elems, e.instantiateType(elem))
	}
	return e.table.Types.New(ty)
}
