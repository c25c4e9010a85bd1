package docmodel

// ReflectionKind classifies a node in the documentation tree.
type ReflectionKind uint8

const (
	KindInvalid ReflectionKind = iota
	KindProject
	KindModule
	KindNamespace
	KindDeclaration
	KindSignature
	KindParameter
	KindTypeParameter
)

func (k ReflectionKind) String() string {
	switch k {
	case KindProject:
		return "project"
	case KindModule:
		return "module"
	case KindNamespace:
		return "namespace"
	case KindDeclaration:
		return "declaration"
	case KindSignature:
		return "signature"
	case KindParameter:
		return "parameter"
	case KindTypeParameter:
		return "type-parameter"
	default:
		return "invalid"
	}
}

// ReflectionFlags encode misc attributes for quick checks.
type ReflectionFlags uint8

const (
	// FlagSynthetic marks reflections created by the resolver rather than
	// by the conversion pipeline (internal namespaces and their members).
	FlagSynthetic ReflectionFlags = 1 << iota
)
