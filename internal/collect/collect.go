// Package collect implements the reference collector: a stateless traversal
// that finds every symbol referenced from a documentation subtree without a
// resolved reflection.
package collect

import "specular/internal/docmodel"

// Missing walks the subtree under root and returns the symbols referenced by
// unresolved type references inside it. The traversal is a breadth-first
// worklist over reflections; inline reflections wrapped in type values are
// fed back into the worklist. Back-reference edges (extended-by,
// implemented-by) are not followed: everything behind them is already part
// of the documented tree. The walk has no side effects and is deterministic
// for a given tree state.
func Missing(table *docmodel.Table, root docmodel.ReflectionID) *SymbolSet {
	w := walker{table: table, scope: root, missing: NewSymbolSet()}
	w.push(root)
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		w.visit(id)
	}
	return w.missing
}

type walker struct {
	table   *docmodel.Table
	scope   docmodel.ReflectionID // binding lookup root for ref resolution
	queue   []docmodel.ReflectionID
	missing *SymbolSet
}

func (w *walker) push(ids ...docmodel.ReflectionID) {
	for _, id := range ids {
		if id.IsValid() {
			w.queue = append(w.queue, id)
		}
	}
}

// visit dispatches on the reflection kind and feeds every type-bearing
// field into the type visitor. Each kind names its fields explicitly so the
// dispatch stays exhaustive when kinds grow.
func (w *walker) visit(id docmodel.ReflectionID) {
	refl := w.table.Reflections.Get(id)
	if refl == nil {
		return
	}
	w.push(refl.Children...)

	switch refl.Kind {
	case docmodel.KindProject, docmodel.KindModule, docmodel.KindNamespace:
		// containers carry no types of their own

	case docmodel.KindDeclaration:
		w.visitType(refl.Type)
		w.push(refl.TypeParams...)
		w.push(refl.Signatures...)
		w.push(refl.IndexSig, refl.GetSig, refl.SetSig)
		w.visitType(refl.Overwrites)
		w.visitType(refl.InheritedFrom)
		w.visitType(refl.ImplementationOf)
		w.visitTypes(refl.ExtendedTypes)
		w.visitTypes(refl.ImplementedTypes)

	case docmodel.KindSignature:
		w.visitType(refl.Type)
		w.push(refl.TypeParams...)
		w.push(refl.Params...)

	case docmodel.KindParameter:
		w.visitType(refl.Type)

	case docmodel.KindTypeParameter:
		w.visitType(refl.Constraint)
		w.visitType(refl.DefaultType)
	}
}

func (w *walker) visitTypes(ids []docmodel.TypeID) {
	for _, id := range ids {
		w.visitType(id)
	}
}

// visitType inspects one type value. Only two cases contribute to the
// result: an unresolved symbol reference adds its symbol to the missing
// set, and an inline reflection re-enters the reflection worklist.
// Composite shapes are walked generically through their operands.
func (w *walker) visitType(id docmodel.TypeID) {
	ty := w.table.Types.Get(id)
	if ty == nil {
		return
	}
	switch ty.Kind {
	case docmodel.TypeRef:
		if !w.table.ResolveRef(w.scope, ty).IsValid() {
			w.missing.Add(ty.Symbol)
		}
	case docmodel.TypeInline:
		w.push(ty.Inline)
	default:
		w.visitTypes(ty.Elems)
	}
}
