package docmodel

// TypeKind classifies a type value attached to a reflection.
type TypeKind uint8

const (
	TypeInvalid TypeKind = iota
	TypeRef               // reference to a named symbol
	TypeInline            // wraps a nested reflection (object/function literal)
	TypeIntrinsic         // built-in type, carries only a display name
	TypeArray
	TypeUnion
	TypeIntersection
	TypeTuple
	TypeConditional
)

func (k TypeKind) String() string {
	switch k {
	case TypeRef:
		return "ref"
	case TypeInline:
		return "inline"
	case TypeIntrinsic:
		return "intrinsic"
	case TypeArray:
		return "array"
	case TypeUnion:
		return "union"
	case TypeIntersection:
		return "intersection"
	case TypeTuple:
		return "tuple"
	case TypeConditional:
		return "conditional"
	default:
		return "invalid"
	}
}

// Type is a polymorphic type value. Which fields are meaningful depends on
// Kind: TypeRef uses Symbol and Target, TypeInline uses Inline, TypeIntrinsic
// uses Name, and the composite kinds carry their operands in Elems.
type Type struct {
	Kind   TypeKind
	Name   string       // intrinsic display name
	Symbol SymbolID     // TypeRef: referenced symbol
	Target ReflectionID // TypeRef: resolved reflection, if any
	Inline ReflectionID // TypeInline: wrapped reflection
	Elems  []TypeID     // composite operands
}

// Symbol is a compiler-level identity for a named entity. Two symbols with
// the same name are still distinct unless their IDs match.
type Symbol struct {
	Name    string
	Program ProgramID // program that owns the symbol, if known
}
