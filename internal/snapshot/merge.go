package snapshot

import (
	"specular/internal/docmodel"
	"specular/internal/program"
)

// offsets shift every ID kind of a snapshot so its arenas can be appended
// after another snapshot's arenas. Zero (absent) IDs are never shifted.
type offsets struct {
	refl docmodel.ReflectionID
	typ  docmodel.TypeID
	sym  docmodel.SymbolID
	prog docmodel.ProgramID
}

func shiftRefl(id docmodel.ReflectionID, o offsets) docmodel.ReflectionID {
	if !id.IsValid() {
		return id
	}
	return id + o.refl
}

func shiftType(id docmodel.TypeID, o offsets) docmodel.TypeID {
	if !id.IsValid() {
		return id
	}
	return id + o.typ
}

func shiftSym(id docmodel.SymbolID, o offsets) docmodel.SymbolID {
	if !id.IsValid() {
		return id
	}
	return id + o.sym
}

func shiftProg(id docmodel.ProgramID, o offsets) docmodel.ProgramID {
	if !id.IsValid() {
		return id
	}
	return id + o.prog
}

func shiftReflSlice(ids []docmodel.ReflectionID, o offsets) {
	for i := range ids {
		ids[i] = shiftRefl(ids[i], o)
	}
}

func shiftTypeSlice(ids []docmodel.TypeID, o offsets) {
	for i := range ids {
		ids[i] = shiftType(ids[i], o)
	}
}

// shift rewrites every ID in the file in place.
func (f *File) shift(o offsets) {
	f.Root = shiftRefl(f.Root, o)

	for i := range f.Reflections {
		r := &f.Reflections[i]
		r.Parent = shiftRefl(r.Parent, o)
		shiftReflSlice(r.Children, o)
		r.Type = shiftType(r.Type, o)
		shiftReflSlice(r.TypeParams, o)
		shiftReflSlice(r.Signatures, o)
		r.IndexSig = shiftRefl(r.IndexSig, o)
		r.GetSig = shiftRefl(r.GetSig, o)
		r.SetSig = shiftRefl(r.SetSig, o)
		r.Overwrites = shiftType(r.Overwrites, o)
		r.InheritedFrom = shiftType(r.InheritedFrom, o)
		r.ImplementationOf = shiftType(r.ImplementationOf, o)
		shiftTypeSlice(r.ExtendedTypes, o)
		shiftTypeSlice(r.ImplementedTypes, o)
		shiftTypeSlice(r.ExtendedBy, o)
		shiftTypeSlice(r.ImplementedBy, o)
		shiftReflSlice(r.Params, o)
		r.Constraint = shiftType(r.Constraint, o)
		r.DefaultType = shiftType(r.DefaultType, o)
		if len(r.Bindings) > 0 {
			bindings := make(map[docmodel.SymbolID]docmodel.ReflectionID, len(r.Bindings))
			for sym, target := range r.Bindings {
				bindings[shiftSym(sym, o)] = shiftRefl(target, o)
			}
			r.Bindings = bindings
		}
	}

	for i := range f.Types {
		t := &f.Types[i]
		t.Symbol = shiftSym(t.Symbol, o)
		t.Target = shiftRefl(t.Target, o)
		t.Inline = shiftRefl(t.Inline, o)
		shiftTypeSlice(t.Elems, o)
	}

	for i := range f.Symbols {
		f.Symbols[i].Program = shiftProg(f.Symbols[i].Program, o)
	}

	for i := range f.Programs {
		p := &f.Programs[i]
		decls := make(map[docmodel.SymbolID]*program.DeclSpec, len(p.Decls))
		for sym, spec := range p.Decls {
			shiftDeclSpec(spec, o)
			decls[shiftSym(sym, o)] = spec
		}
		p.Decls = decls
	}

	if len(f.Origins) > 0 {
		origins := make(map[docmodel.ReflectionID]docmodel.ProgramID, len(f.Origins))
		for refl, prog := range f.Origins {
			origins[shiftRefl(refl, o)] = shiftProg(prog, o)
		}
		f.Origins = origins
	}
}

func shiftDeclSpec(spec *program.DeclSpec, o offsets) {
	if spec == nil {
		return
	}
	shiftTypeSpec(spec.Type, o)
	for _, t := range spec.ExtendedTypes {
		shiftTypeSpec(t, o)
	}
	for i := range spec.Signatures {
		sig := &spec.Signatures[i]
		shiftTypeSpec(sig.Return, o)
		for j := range sig.Params {
			shiftTypeSpec(sig.Params[j].Type, o)
		}
	}
}

func shiftTypeSpec(spec *program.TypeSpec, o offsets) {
	if spec == nil {
		return
	}
	spec.Symbol = shiftSym(spec.Symbol, o)
	shiftDeclSpec(spec.Inline, o)
	for _, elem := range spec.Elems {
		shiftTypeSpec(elem, o)
	}
}

// Merge folds extra snapshots into base: the extra arenas are appended with
// shifted IDs, and every top-level child of an extra project root is
// reparented under the base root. The base file is mutated and returned.
func Merge(base *File, extra ...*File) *File {
	for _, f := range extra {
		o := offsets{
			refl: docmodel.ReflectionID(len(base.Reflections)),
			typ:  docmodel.TypeID(len(base.Types)),
			sym:  docmodel.SymbolID(len(base.Symbols)),
			prog: docmodel.ProgramID(len(base.Programs)),
		}
		f.shift(o)

		base.Reflections = append(base.Reflections, f.Reflections...)
		base.Types = append(base.Types, f.Types...)
		base.Symbols = append(base.Symbols, f.Symbols...)
		base.Programs = append(base.Programs, f.Programs...)

		baseRoot := &base.Reflections[base.Root-1]
		extraRoot := &base.Reflections[f.Root-1]
		for _, child := range extraRoot.Children {
			base.Reflections[child-1].Parent = base.Root
			baseRoot.Children = append(baseRoot.Children, child)
		}
		extraRoot.Children = nil
		for sym, target := range extraRoot.Bindings {
			if baseRoot.Bindings == nil {
				baseRoot.Bindings = make(map[docmodel.SymbolID]docmodel.ReflectionID)
			}
			baseRoot.Bindings[sym] = target
		}
		extraRoot.Bindings = nil

		if f.Origins != nil {
			if base.Origins == nil {
				base.Origins = make(map[docmodel.ReflectionID]docmodel.ProgramID, len(f.Origins))
			}
			for refl, prog := range f.Origins {
				base.Origins[refl] = prog
			}
		}
	}
	return base
}
