// Package resolve implements the resolution driver: the per-module fixpoint
// loop that repairs unresolved type references by aliasing existing
// reflections or synthesizing new ones inside a lazily-created internal
// namespace.
package resolve

import (
	"specular/internal/collect"
	"specular/internal/docmodel"
)

// defaultExportName is the reserved name of default exports. Symbols with
// this name are never aliased or synthesized.
const defaultExportName = "default"

// Options configure one resolution pass.
type Options struct {
	// InternalModule is the display name of the per-module internal
	// namespace. Empty means "internal".
	InternalModule string
	// NoSynthesis leaves undocumented symbols unresolved instead of
	// growing an internal namespace for them.
	NoSynthesis bool
}

func (o Options) internalName() string {
	if o.InternalModule == "" {
		return "internal"
	}
	return o.InternalModule
}

// Stats summarize what a resolution pass did.
type Stats struct {
	Modules     int // modules with at least one missing symbol
	Aliased     int // symbols bound to an existing reflection
	Synthesized int // declarations created inside internal namespaces
	Dropped     int // aliasable symbols with no owning module
	Skipped     int // default exports and synthesis opt-outs
	Pruned      int // internal namespaces removed because they stayed empty
}

// Run performs the resolution phase over the whole project: one pass per
// top-level module (or the project root when the tree has no modules).
// origins maps module reflections to the compiler program that produced
// them; it is consumed here and must not be reused. The pass never fails:
// every unresolvable condition is a policy branch, not an error.
func Run(ctx Context, table *docmodel.Table, origins Origins, opts Options) Stats {
	var stats Stats
	for _, mod := range table.Modules() {
		resolveModule(ctx, table, mod, origins[mod], opts, &stats)
	}
	return stats
}

// resolveModule runs the discover/resolve fixpoint for a single module.
// A module whose subtree has no missing symbols is left untouched: no
// scope switch, no internal namespace.
func resolveModule(ctx Context, table *docmodel.Table, mod docmodel.ReflectionID, prog docmodel.ProgramID, opts Options, stats *Stats) {
	queue := collect.Missing(table, mod)
	if queue.Len() == 0 {
		return
	}
	stats.Modules++

	prevScope := ctx.Scope()
	prevProg := ctx.Program()
	ctx.SetScope(mod)
	ctx.SetProgram(prog)

	// tried grows monotonically and symbols are never reprocessed, so the
	// loop is bounded by the number of distinct symbols reachable from a
	// finite tree.
	tried := collect.NewSymbolSet()
	internal := docmodel.NoReflectionID
	created := false

	for queue.Len() > 0 {
		for _, sym := range queue.IDs() {
			if !tried.Add(sym) {
				continue
			}
			s := table.Symbols.Get(sym)
			if s == nil {
				continue
			}
			if s.Name == defaultExportName {
				stats.Skipped++
				continue
			}

			if found := ctx.FindByName(s.Name); found.IsValid() {
				if owner := table.OwnerModule(found); owner.IsValid() {
					ctx.Register(sym, found, mod)
					stats.Aliased++
				} else {
					// Known gap: an aliasable reflection without an owning
					// module is dropped for this round instead of falling
					// back to synthesis.
					stats.Dropped++
				}
				continue
			}

			if opts.NoSynthesis {
				stats.Skipped++
				continue
			}
			if !internal.IsValid() {
				internal = ctx.ChildByKind(mod, docmodel.KindNamespace, opts.internalName())
				if !internal.IsValid() {
					internal = ctx.CreateDeclaration(mod, docmodel.KindNamespace, opts.internalName())
					ctx.Finalize(internal)
					created = true
				}
			}
			if ctx.ConvertSymbol(sym, internal).IsValid() {
				stats.Synthesized++
			}
		}

		// Synthesized declarations may reference further undocumented
		// symbols; rescan only the namespace that grew.
		if opts.NoSynthesis || !internal.IsValid() {
			break
		}
		next := collect.NewSymbolSet()
		for _, sym := range collect.Missing(table, internal).IDs() {
			if !tried.Has(sym) {
				next.Add(sym)
			}
		}
		queue = next
	}

	if created && internal.IsValid() {
		if refl := table.Reflections.Get(internal); refl != nil && len(refl.Children) == 0 {
			ctx.Remove(internal)
			stats.Pruned++
		}
	}

	ctx.SetProgram(prevProg)
	ctx.SetScope(prevScope)
}
