package collect

import (
	"testing"

	"specular/internal/docmodel"
)

type fixture struct {
	table *docmodel.Table
	mod   docmodel.ReflectionID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	table := docmodel.NewTable("proj", docmodel.Hints{})
	mod := table.NewReflection(&docmodel.Reflection{
		Name:   "a",
		Kind:   docmodel.KindModule,
		Parent: table.Root(),
	})
	return &fixture{table: table, mod: mod}
}

func (f *fixture) symbol(name string) docmodel.SymbolID {
	return f.table.Symbols.New(docmodel.Symbol{Name: name})
}

func (f *fixture) ref(sym docmodel.SymbolID) docmodel.TypeID {
	return f.table.Types.New(docmodel.Type{Kind: docmodel.TypeRef, Symbol: sym})
}

func (f *fixture) decl(name string, typ docmodel.TypeID) docmodel.ReflectionID {
	return f.table.NewReflection(&docmodel.Reflection{
		Name:   name,
		Kind:   docmodel.KindDeclaration,
		Parent: f.mod,
		Type:   typ,
	})
}

func wantSymbols(t *testing.T, set *SymbolSet, want ...docmodel.SymbolID) {
	t.Helper()
	got := set.IDs()
	if len(got) != len(want) {
		t.Fatalf("missing symbols = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("missing symbols = %v, want %v", got, want)
		}
	}
}

func TestMissingFindsUnresolvedRef(t *testing.T) {
	f := newFixture(t)
	sym := f.symbol("T")
	f.decl("f", f.ref(sym))

	wantSymbols(t, Missing(f.table, f.mod), sym)
}

func TestMissingSetSemantics(t *testing.T) {
	f := newFixture(t)
	sym := f.symbol("T")
	f.decl("f", f.ref(sym))
	f.decl("g", f.ref(sym))

	wantSymbols(t, Missing(f.table, f.mod), sym)
}

func TestMissingIgnoresResolvedRefs(t *testing.T) {
	f := newFixture(t)
	target := f.decl("T", docmodel.NoTypeID)
	sym := f.symbol("T")
	f.decl("f", f.table.Types.New(docmodel.Type{
		Kind:   docmodel.TypeRef,
		Symbol: sym,
		Target: target,
	}))

	wantSymbols(t, Missing(f.table, f.mod))
}

func TestMissingSeesScopeBindings(t *testing.T) {
	f := newFixture(t)
	target := f.decl("T", docmodel.NoTypeID)
	sym := f.symbol("T")
	f.decl("f", f.ref(sym))
	f.table.Reflections.Get(f.mod).Bind(sym, target)

	wantSymbols(t, Missing(f.table, f.mod))
}

func TestMissingRecursesIntoInline(t *testing.T) {
	f := newFixture(t)
	sym := f.symbol("T")
	inner := f.table.NewReflection(&docmodel.Reflection{
		Kind: docmodel.KindDeclaration,
		Type: f.ref(sym),
	})
	inline := f.table.Types.New(docmodel.Type{Kind: docmodel.TypeInline, Inline: inner})
	f.decl("f", inline)

	wantSymbols(t, Missing(f.table, f.mod), sym)
}

func TestMissingWalksComposites(t *testing.T) {
	f := newFixture(t)
	symA := f.symbol("A")
	symB := f.symbol("B")
	union := f.table.Types.New(docmodel.Type{
		Kind:  docmodel.TypeUnion,
		Elems: []docmodel.TypeID{f.ref(symA), f.ref(symB)},
	})
	array := f.table.Types.New(docmodel.Type{
		Kind:  docmodel.TypeArray,
		Elems: []docmodel.TypeID{union},
	})
	f.decl("f", array)

	wantSymbols(t, Missing(f.table, f.mod), symA, symB)
}

func TestMissingWalksSignaturesAndTypeParams(t *testing.T) {
	f := newFixture(t)
	retSym := f.symbol("Ret")
	paramSym := f.symbol("Arg")
	boundSym := f.symbol("Bound")

	param := f.table.NewReflection(&docmodel.Reflection{
		Name: "x",
		Kind: docmodel.KindParameter,
		Type: f.ref(paramSym),
	})
	sig := f.table.NewReflection(&docmodel.Reflection{
		Name:   "call",
		Kind:   docmodel.KindSignature,
		Type:   f.ref(retSym),
		Params: []docmodel.ReflectionID{param},
	})
	tp := f.table.NewReflection(&docmodel.Reflection{
		Name:       "T",
		Kind:       docmodel.KindTypeParameter,
		Constraint: f.ref(boundSym),
	})
	fn := f.decl("f", docmodel.NoTypeID)
	refl := f.table.Reflections.Get(fn)
	refl.Signatures = []docmodel.ReflectionID{sig}
	refl.TypeParams = []docmodel.ReflectionID{tp}

	wantSymbols(t, Missing(f.table, f.mod), boundSym, retSym, paramSym)
}

func TestMissingSkipsBackEdges(t *testing.T) {
	f := newFixture(t)
	sym := f.symbol("Hidden")
	base := f.decl("Base", docmodel.NoTypeID)
	refl := f.table.Reflections.Get(base)
	refl.ExtendedBy = []docmodel.TypeID{f.ref(sym)}
	refl.ImplementedBy = []docmodel.TypeID{f.ref(sym)}

	wantSymbols(t, Missing(f.table, f.mod))
}

func TestMissingIsIdempotent(t *testing.T) {
	f := newFixture(t)
	sym := f.symbol("T")
	f.decl("f", f.ref(sym))

	first := Missing(f.table, f.mod)
	second := Missing(f.table, f.mod)
	wantSymbols(t, second, first.IDs()...)
}
