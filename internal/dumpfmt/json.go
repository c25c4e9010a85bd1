package dumpfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"specular/internal/docmodel"
)

// NodeOutput is the JSON shape of one reflection.
type NodeOutput struct {
	Name       string       `json:"name"`
	Kind       string       `json:"kind"`
	Synthetic  bool         `json:"synthetic,omitempty"`
	Type       string       `json:"type,omitempty"`
	TypeParams []NodeOutput `json:"typeParams,omitempty"`
	Signatures []NodeOutput `json:"signatures,omitempty"`
	Params     []NodeOutput `json:"params,omitempty"`
	Children   []NodeOutput `json:"children,omitempty"`
}

// JSON writes the subtree under root as a single JSON document.
func JSON(w io.Writer, table *docmodel.Table, root docmodel.ReflectionID, opts JSONOpts) error {
	node, ok := buildNode(table, root, root, opts)
	if !ok {
		return fmt.Errorf("reflection %d not found", root)
	}
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(node)
}

func buildNode(table *docmodel.Table, scope, id docmodel.ReflectionID, opts JSONOpts) (NodeOutput, bool) {
	refl := table.Reflections.Get(id)
	if refl == nil {
		return NodeOutput{}, false
	}
	node := NodeOutput{
		Name:      refl.Name,
		Kind:      refl.Kind.String(),
		Synthetic: refl.Flags&docmodel.FlagSynthetic != 0,
	}
	if opts.IncludeTypes && refl.Type.IsValid() {
		node.Type = TypeString(table, scope, refl.Type)
	}
	node.TypeParams = buildNodes(table, scope, refl.TypeParams, opts)
	node.Signatures = buildNodes(table, scope, refl.Signatures, opts)
	node.Params = buildNodes(table, scope, refl.Params, opts)
	node.Children = buildNodes(table, scope, refl.Children, opts)
	return node, true
}

func buildNodes(table *docmodel.Table, scope docmodel.ReflectionID, ids []docmodel.ReflectionID, opts JSONOpts) []NodeOutput {
	var nodes []NodeOutput
	for _, id := range ids {
		if node, ok := buildNode(table, scope, id, opts); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}
