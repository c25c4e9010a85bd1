package dumpfmt

// PrettyOpts configures pretty-printing of a documentation tree.
type PrettyOpts struct {
	Color       bool
	ShowTypes   bool // append type summaries after entity names
	ShowHidden  bool // include signatures, parameters and type parameters
	BindingMark bool // annotate aliased entities
}

// JSONOpts configures JSON output of a documentation tree.
type JSONOpts struct {
	Indent       bool
	IncludeTypes bool
}
