package docmodel

// Reflection is a node in the documentation tree. Kind decides which of the
// type-bearing fields are meaningful; unused fields stay zero. Children holds
// containment (project -> modules -> declarations); signatures, parameters
// and type parameters hang off their owner through the dedicated fields.
type Reflection struct {
	Name   string
	Kind   ReflectionKind
	Flags  ReflectionFlags
	Parent ReflectionID

	Children []ReflectionID

	// Declaration fields.
	Type             TypeID
	TypeParams       []ReflectionID
	Signatures       []ReflectionID
	IndexSig         ReflectionID
	GetSig           ReflectionID
	SetSig           ReflectionID
	Overwrites       TypeID
	InheritedFrom    TypeID
	ImplementationOf TypeID
	ExtendedTypes    []TypeID
	ImplementedTypes []TypeID

	// Back-references maintained by the conversion pipeline. Everything they
	// point at is already inside the documented tree, so traversals must not
	// follow them.
	ExtendedBy    []TypeID
	ImplementedBy []TypeID

	// Signature fields.
	Params []ReflectionID

	// Type-parameter fields.
	Constraint  TypeID
	DefaultType TypeID

	// Bindings map symbols to the reflection they resolve to within this
	// node's scope. Populated by Register; nil until first use.
	Bindings map[SymbolID]ReflectionID
}

// IsScope reports whether the reflection kind can carry symbol bindings.
func (r *Reflection) IsScope() bool {
	switch r.Kind {
	case KindProject, KindModule, KindNamespace:
		return true
	default:
		return false
	}
}

// Bind records that sym resolves to target inside this scope.
func (r *Reflection) Bind(sym SymbolID, target ReflectionID) {
	if r.Bindings == nil {
		r.Bindings = make(map[SymbolID]ReflectionID)
	}
	r.Bindings[sym] = target
}
