package resolve_test

import (
	"testing"

	"specular/internal/collect"
	"specular/internal/docmodel"
	"specular/internal/program"
	"specular/internal/resolve"
)

type fixture struct {
	table   *docmodel.Table
	lib     *program.Library
	origins resolve.Origins
}

func newFixture() *fixture {
	return &fixture{
		table:   docmodel.NewTable("proj", docmodel.Hints{}),
		lib:     program.NewLibrary(0),
		origins: make(resolve.Origins),
	}
}

func (f *fixture) module(name string, prog docmodel.ProgramID) docmodel.ReflectionID {
	mod := f.table.NewReflection(&docmodel.Reflection{
		Name:   name,
		Kind:   docmodel.KindModule,
		Parent: f.table.Root(),
	})
	if prog.IsValid() {
		f.origins[mod] = prog
	}
	return mod
}

func (f *fixture) decl(parent docmodel.ReflectionID, name string, typ docmodel.TypeID) docmodel.ReflectionID {
	return f.table.NewReflection(&docmodel.Reflection{
		Name:   name,
		Kind:   docmodel.KindDeclaration,
		Parent: parent,
		Type:   typ,
	})
}

func (f *fixture) symbol(name string) docmodel.SymbolID {
	return f.table.Symbols.New(docmodel.Symbol{Name: name})
}

func (f *fixture) ref(sym docmodel.SymbolID) docmodel.TypeID {
	return f.table.Types.New(docmodel.Type{Kind: docmodel.TypeRef, Symbol: sym})
}

func (f *fixture) run(opts resolve.Options) resolve.Stats {
	env := program.NewEnv(f.table, f.lib, nil)
	return resolve.Run(env, f.table, f.origins, opts)
}

func internalOf(table *docmodel.Table, mod docmodel.ReflectionID, name string) docmodel.ReflectionID {
	return table.ChildByKind(mod, docmodel.KindNamespace, name)
}

func TestAliasExistingReflection(t *testing.T) {
	f := newFixture()
	a := f.module("a", docmodel.NoProgramID)
	b := f.module("b", docmodel.NoProgramID)
	target := f.decl(b, "T", docmodel.NoTypeID)
	sym := f.symbol("T")
	f.decl(a, "f", f.ref(sym))

	stats := f.run(resolve.Options{})
	if stats.Aliased != 1 || stats.Synthesized != 0 {
		t.Fatalf("stats = %+v, want one alias", stats)
	}
	if got := f.table.FindBinding(a, sym); got != target {
		t.Fatalf("binding in a = %d, want %d", got, target)
	}
	if ns := internalOf(f.table, a, "internal"); ns.IsValid() {
		t.Fatalf("aliasing created an internal namespace")
	}
	if missing := collect.Missing(f.table, a); missing.Len() != 0 {
		t.Fatalf("module a still missing %v", missing.IDs())
	}
}

func TestSynthesizeIntoInternalNamespace(t *testing.T) {
	f := newFixture()
	prog := f.lib.Add("main")
	a := f.module("a", prog)
	sym := f.symbol("U")
	f.decl(a, "g", f.ref(sym))
	f.lib.SetDecl(prog, sym, &program.DeclSpec{
		Name: "U",
		Type: &program.TypeSpec{Kind: docmodel.TypeIntrinsic, Name: "string"},
	})

	stats := f.run(resolve.Options{})
	if stats.Synthesized != 1 {
		t.Fatalf("stats = %+v, want one synthesis", stats)
	}
	ns := internalOf(f.table, a, "internal")
	if !ns.IsValid() {
		t.Fatalf("no internal namespace under module a")
	}
	if got := f.table.ChildByKind(ns, docmodel.KindDeclaration, "U"); !got.IsValid() {
		t.Fatalf("no synthesized declaration for U")
	}
	if missing := collect.Missing(f.table, a); missing.Len() != 0 {
		t.Fatalf("module a still missing %v", missing.IDs())
	}
}

func TestInternalNamespaceNameFromOptions(t *testing.T) {
	f := newFixture()
	prog := f.lib.Add("main")
	a := f.module("a", prog)
	sym := f.symbol("U")
	f.decl(a, "g", f.ref(sym))
	f.lib.SetDecl(prog, sym, &program.DeclSpec{Name: "U"})

	f.run(resolve.Options{InternalModule: "hidden"})
	if !internalOf(f.table, a, "hidden").IsValid() {
		t.Fatalf("namespace not named per options")
	}
	if internalOf(f.table, a, "internal").IsValid() {
		t.Fatalf("default-named namespace created alongside")
	}
}

func TestNoSynthesisLeavesUnresolved(t *testing.T) {
	f := newFixture()
	prog := f.lib.Add("main")
	a := f.module("a", prog)
	sym := f.symbol("U")
	f.decl(a, "g", f.ref(sym))
	f.lib.SetDecl(prog, sym, &program.DeclSpec{Name: "U"})

	stats := f.run(resolve.Options{NoSynthesis: true})
	if stats.Synthesized != 0 || stats.Skipped != 1 {
		t.Fatalf("stats = %+v, want one skip and no synthesis", stats)
	}
	if internalOf(f.table, a, "internal").IsValid() {
		t.Fatalf("no-synthesis still created a namespace")
	}
	if missing := collect.Missing(f.table, a); missing.Len() != 1 {
		t.Fatalf("U should stay unresolved, missing = %v", missing.IDs())
	}
}

func TestFixpointDiscoversChainedSymbols(t *testing.T) {
	f := newFixture()
	prog := f.lib.Add("main")
	a := f.module("a", prog)
	symU := f.symbol("U")
	symV := f.symbol("V")
	f.decl(a, "g", f.ref(symU))
	f.lib.SetDecl(prog, symU, &program.DeclSpec{
		Name: "U",
		Type: &program.TypeSpec{Kind: docmodel.TypeRef, Symbol: symV},
	})
	f.lib.SetDecl(prog, symV, &program.DeclSpec{
		Name: "V",
		Type: &program.TypeSpec{Kind: docmodel.TypeIntrinsic, Name: "number"},
	})

	stats := f.run(resolve.Options{})
	if stats.Synthesized != 2 {
		t.Fatalf("stats = %+v, want U and V synthesized", stats)
	}
	ns := internalOf(f.table, a, "internal")
	if !f.table.ChildByKind(ns, docmodel.KindDeclaration, "V").IsValid() {
		t.Fatalf("V not synthesized into the same namespace")
	}
	if missing := collect.Missing(f.table, a); missing.Len() != 0 {
		t.Fatalf("fixpoint left missing symbols %v", missing.IDs())
	}
}

func TestMutuallyRecursiveSymbolsTerminate(t *testing.T) {
	f := newFixture()
	prog := f.lib.Add("main")
	a := f.module("a", prog)
	symU := f.symbol("U")
	symV := f.symbol("V")
	f.decl(a, "g", f.ref(symU))
	f.lib.SetDecl(prog, symU, &program.DeclSpec{
		Name: "U",
		Type: &program.TypeSpec{Kind: docmodel.TypeRef, Symbol: symV},
	})
	f.lib.SetDecl(prog, symV, &program.DeclSpec{
		Name: "V",
		Type: &program.TypeSpec{Kind: docmodel.TypeRef, Symbol: symU},
	})

	stats := f.run(resolve.Options{})
	if stats.Synthesized != 2 {
		t.Fatalf("stats = %+v, want both sides of the cycle synthesized", stats)
	}
}

func TestDefaultExportNeverResolved(t *testing.T) {
	f := newFixture()
	prog := f.lib.Add("main")
	a := f.module("a", prog)
	sym := f.symbol("default")
	f.decl(a, "g", f.ref(sym))
	f.lib.SetDecl(prog, sym, &program.DeclSpec{Name: "default"})

	stats := f.run(resolve.Options{})
	if stats.Aliased != 0 || stats.Synthesized != 0 || stats.Skipped != 1 {
		t.Fatalf("stats = %+v, want default skipped", stats)
	}
	if internalOf(f.table, a, "internal").IsValid() {
		t.Fatalf("default export grew a namespace")
	}
}

func TestOwnershipMissDropsSymbol(t *testing.T) {
	f := newFixture()
	a := f.module("a", docmodel.NoProgramID)
	b := f.module("b", docmodel.NoProgramID)
	container := f.decl(b, "C", docmodel.NoTypeID)
	// T exists but is nested, so no module owns it directly.
	f.decl(container, "T", docmodel.NoTypeID)
	sym := f.symbol("T")
	f.decl(a, "f", f.ref(sym))

	stats := f.run(resolve.Options{})
	if stats.Dropped != 1 || stats.Aliased != 0 {
		t.Fatalf("stats = %+v, want one drop", stats)
	}
	if got := f.table.FindBinding(a, sym); got.IsValid() {
		t.Fatalf("dropped symbol got bound to %d", got)
	}
}

func TestEmptyNamespacePruned(t *testing.T) {
	f := newFixture()
	prog := f.lib.Add("main")
	a := f.module("a", prog)
	sym := f.symbol("U")
	f.decl(a, "g", f.ref(sym))
	// No payload for U: synthesis is attempted but produces nothing.

	stats := f.run(resolve.Options{})
	if stats.Synthesized != 0 || stats.Pruned != 1 {
		t.Fatalf("stats = %+v, want empty namespace pruned", stats)
	}
	if internalOf(f.table, a, "internal").IsValid() {
		t.Fatalf("empty namespace survived the pass")
	}
}

func TestProjectRootActsAsModule(t *testing.T) {
	f := newFixture()
	prog := f.lib.Add("main")
	f.origins[f.table.Root()] = prog
	sym := f.symbol("U")
	f.decl(f.table.Root(), "g", f.ref(sym))
	f.lib.SetDecl(prog, sym, &program.DeclSpec{Name: "U"})

	stats := f.run(resolve.Options{})
	if stats.Synthesized != 1 {
		t.Fatalf("stats = %+v, want synthesis under project root", stats)
	}
	if !internalOf(f.table, f.table.Root(), "internal").IsValid() {
		t.Fatalf("no internal namespace under project root")
	}
}

func TestSecondPassIsNoop(t *testing.T) {
	f := newFixture()
	prog := f.lib.Add("main")
	a := f.module("a", prog)
	b := f.module("b", docmodel.NoProgramID)
	target := f.decl(b, "T", docmodel.NoTypeID)
	symT := f.symbol("T")
	symU := f.symbol("U")
	f.decl(a, "f", f.ref(symT))
	f.decl(a, "g", f.ref(symU))
	f.lib.SetDecl(prog, symU, &program.DeclSpec{Name: "U"})
	_ = target

	first := f.run(resolve.Options{})
	if first.Aliased != 1 || first.Synthesized != 1 {
		t.Fatalf("first pass stats = %+v", first)
	}
	reflections := f.table.Reflections.Len()

	second := f.run(resolve.Options{})
	if second != (resolve.Stats{}) {
		t.Fatalf("second pass stats = %+v, want all zero", second)
	}
	if f.table.Reflections.Len() != reflections {
		t.Fatalf("second pass mutated the tree: %d -> %d reflections", reflections, f.table.Reflections.Len())
	}
}
