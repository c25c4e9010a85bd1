package docmodel

// Hints provide optional capacity suggestions for the table arenas.
type Hints struct{ Reflections, Types, Symbols uint }

// Table aggregates the documentation tree arenas and the project root.
// All structural mutation goes through it so parent/child links stay
// consistent.
type Table struct {
	Reflections *Reflections
	Types       *Types
	Symbols     *Symbols
	root        ReflectionID
}

// NewTable builds a fresh table with optional capacity hints and allocates
// the project root under the given name.
func NewTable(name string, h Hints) *Table {
	t := &Table{
		Reflections: NewReflections(uint32(min(h.Reflections, 1<<20))),
		Types:       NewTypes(uint32(min(h.Types, 1<<20))),
		Symbols:     NewSymbols(uint32(min(h.Symbols, 1<<20))),
	}
	t.root = t.Reflections.New(&Reflection{Name: name, Kind: KindProject})
	return t
}

// RebuildTable reconstructs a table from decoded arena contents. Slices are
// in arena order: element i becomes ID i+1. Links inside the records must
// already be consistent; no reparenting happens here.
func RebuildTable(refls []Reflection, types []Type, syms []Symbol, root ReflectionID) *Table {
	t := &Table{
		Reflections: NewReflections(uint32(min(len(refls), 1<<20))),
		Types:       NewTypes(uint32(min(len(types), 1<<20))),
		Symbols:     NewSymbols(uint32(min(len(syms), 1<<20))),
	}
	for i := range refls {
		t.Reflections.New(&refls[i])
	}
	for _, ty := range types {
		t.Types.New(ty)
	}
	for _, sym := range syms {
		t.Symbols.New(sym)
	}
	t.root = root
	return t
}

// Root returns the project root reflection ID.
func (t *Table) Root() ReflectionID { return t.root }

// NewReflection allocates a reflection and attaches it under parent.
// An invalid parent leaves the node detached (snapshot decoding relies on
// that to rebuild links itself).
func (t *Table) NewReflection(refl *Reflection) ReflectionID {
	id := t.Reflections.New(refl)
	if refl.Parent.IsValid() {
		if parent := t.Reflections.Get(refl.Parent); parent != nil {
			parent.Children = append(parent.Children, id)
		}
	}
	return id
}

// RemoveChild detaches id from its parent. The reflection stays allocated
// (arena slots are never reused) but becomes unreachable from the root.
// This is the single destruction path in the model.
func (t *Table) RemoveChild(id ReflectionID) {
	refl := t.Reflections.Get(id)
	if refl == nil || !refl.Parent.IsValid() {
		return
	}
	parent := t.Reflections.Get(refl.Parent)
	if parent == nil {
		return
	}
	for i, child := range parent.Children {
		if child == id {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			break
		}
	}
	refl.Parent = NoReflectionID
}

// ChildByKind returns the direct child of parent with the given kind and
// name, or NoReflectionID.
func (t *Table) ChildByKind(parent ReflectionID, kind ReflectionKind, name string) ReflectionID {
	p := t.Reflections.Get(parent)
	if p == nil {
		return NoReflectionID
	}
	for _, child := range p.Children {
		if c := t.Reflections.Get(child); c != nil && c.Kind == kind && c.Name == name {
			return child
		}
	}
	return NoReflectionID
}

// Modules returns the top-level module containers of the project. A tree
// without modules is treated as a single module rooted at the project
// itself.
func (t *Table) Modules() []ReflectionID {
	root := t.Reflections.Get(t.root)
	if root == nil {
		return nil
	}
	var modules []ReflectionID
	for _, child := range root.Children {
		if c := t.Reflections.Get(child); c != nil && c.Kind == KindModule {
			modules = append(modules, child)
		}
	}
	if len(modules) == 0 {
		return []ReflectionID{t.root}
	}
	return modules
}

// OwnerModule returns the module that owns the given reflection: the module
// (or the project root, when it acts as the single module) holding a direct
// child with the same identity. NoReflectionID when no module owns it.
func (t *Table) OwnerModule(id ReflectionID) ReflectionID {
	for _, mod := range t.Modules() {
		m := t.Reflections.Get(mod)
		if m == nil {
			continue
		}
		for _, child := range m.Children {
			if child == id {
				return mod
			}
		}
	}
	return NoReflectionID
}

// FindByName searches for a reflection with the exact name, starting at the
// given scope and widening outward along the parent chain. Within a scope
// the search is breadth-first over containment children, so the nearest and
// shallowest match wins. Exact-match only; no disambiguation beyond scope
// distance.
func (t *Table) FindByName(scope ReflectionID, name string) ReflectionID {
	seen := NoReflectionID
	for scope.IsValid() {
		if found := t.findInSubtree(scope, name, seen); found.IsValid() {
			return found
		}
		seen = scope
		refl := t.Reflections.Get(scope)
		if refl == nil {
			break
		}
		scope = refl.Parent
	}
	return NoReflectionID
}

// findInSubtree does a BFS below root for a reflection named name, skipping
// the subtree already searched in a previous (nearer) round.
func (t *Table) findInSubtree(root ReflectionID, name string, skip ReflectionID) ReflectionID {
	queue := []ReflectionID{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == skip {
			continue
		}
		refl := t.Reflections.Get(id)
		if refl == nil {
			continue
		}
		if id != root && refl.Name == name {
			return id
		}
		queue = append(queue, refl.Children...)
	}
	return NoReflectionID
}

// FindBinding walks the scope chain from scope to the project root looking
// for a registered binding of sym. Nearest scope wins.
func (t *Table) FindBinding(scope ReflectionID, sym SymbolID) ReflectionID {
	for scope.IsValid() {
		refl := t.Reflections.Get(scope)
		if refl == nil {
			break
		}
		if target, ok := refl.Bindings[sym]; ok && target.IsValid() {
			return target
		}
		scope = refl.Parent
	}
	return NoReflectionID
}

// ResolveRef reports the reflection a TypeRef resolves to in the given
// scope: the directly attached target if present, otherwise a binding from
// the scope chain.
func (t *Table) ResolveRef(scope ReflectionID, ty *Type) ReflectionID {
	if ty == nil || ty.Kind != TypeRef {
		return NoReflectionID
	}
	if ty.Target.IsValid() {
		return ty.Target
	}
	return t.FindBinding(scope, ty.Symbol)
}
