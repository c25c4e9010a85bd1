package dumpfmt

import (
	"strings"

	"specular/internal/docmodel"
)

// TypeString renders a type value as a compact one-line summary. scope is
// the binding lookup root used to decide whether a reference is resolved.
func TypeString(table *docmodel.Table, scope docmodel.ReflectionID, id docmodel.TypeID) string {
	ty := table.Types.Get(id)
	if ty == nil {
		return ""
	}
	switch ty.Kind {
	case docmodel.TypeIntrinsic:
		return ty.Name
	case docmodel.TypeRef:
		name := "?"
		if sym := table.Symbols.Get(ty.Symbol); sym != nil {
			name = sym.Name
		}
		if !table.ResolveRef(scope, ty).IsValid() {
			return name + "!"
		}
		return name
	case docmodel.TypeInline:
		if refl := table.Reflections.Get(ty.Inline); refl != nil && len(refl.Signatures) > 0 {
			return "fn"
		}
		return "{...}"
	case docmodel.TypeArray:
		return elemString(table, scope, ty, 0) + "[]"
	case docmodel.TypeUnion:
		return joinElems(table, scope, ty, " | ")
	case docmodel.TypeIntersection:
		return joinElems(table, scope, ty, " & ")
	case docmodel.TypeTuple:
		return "[" + joinElems(table, scope, ty, ", ") + "]"
	case docmodel.TypeConditional:
		if len(ty.Elems) == 4 {
			parts := make([]string, 4)
			for i, elem := range ty.Elems {
				parts[i] = TypeString(table, scope, elem)
			}
			return parts[0] + " extends " + parts[1] + " ? " + parts[2] + " : " + parts[3]
		}
		return joinElems(table, scope, ty, " ? ")
	default:
		return ""
	}
}

func elemString(table *docmodel.Table, scope docmodel.ReflectionID, ty *docmodel.Type, i int) string {
	if i >= len(ty.Elems) {
		return "?"
	}
	return TypeString(table, scope, ty.Elems[i])
}

func joinElems(table *docmodel.Table, scope docmodel.ReflectionID, ty *docmodel.Type, sep string) string {
	parts := make([]string, 0, len(ty.Elems))
	for _, elem := range ty.Elems {
		parts = append(parts, TypeString(table, scope, elem))
	}
	return strings.Join(parts, sep)
}
