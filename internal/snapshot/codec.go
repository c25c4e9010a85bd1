// Package snapshot implements the interchange format between compiler front
// ends and the resolver: a msgpack-encoded file carrying the converted
// documentation tree, the program library and the module-origin mapping.
package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"specular/internal/docmodel"
	"specular/internal/program"
	"specular/internal/resolve"
)

// Current schema version - increment when File format changes.
const schemaVersion uint16 = 1

// File is the on-disk snapshot payload. Arena slices are in ID order:
// element i corresponds to ID i+1.
type File struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16

	Root        docmodel.ReflectionID
	Reflections []docmodel.Reflection
	Types       []docmodel.Type
	Symbols     []docmodel.Symbol

	Programs []program.Program
	Origins  map[docmodel.ReflectionID]docmodel.ProgramID
}

// Build is a fully decoded project ready for the resolution phase.
type Build struct {
	Table   *docmodel.Table
	Library *program.Library
	Origins resolve.Origins
}

// Encode writes the snapshot to w.
func Encode(w io.Writer, f *File) error {
	if err := msgpack.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Decode reads a snapshot from r and validates its schema version.
func Decode(r io.Reader) (*File, error) {
	var f File
	if err := msgpack.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if f.Schema != schemaVersion {
		return nil, fmt.Errorf("snapshot schema %d, want %d", f.Schema, schemaVersion)
	}
	if !f.Root.IsValid() || int(f.Root) > len(f.Reflections) {
		return nil, fmt.Errorf("snapshot root %d out of range", f.Root)
	}
	return &f, nil
}

// Load reads and decodes a snapshot file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Save encodes the snapshot and writes it atomically next to path.
func Save(path string, f *File) error {
	var buf bytes.Buffer
	if err := Encode(&buf, f); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Materialize turns a decoded file into live arenas.
func Materialize(f *File) *Build {
	origins := make(resolve.Origins, len(f.Origins))
	for refl, prog := range f.Origins {
		origins[refl] = prog
	}
	return &Build{
		Table:   docmodel.RebuildTable(f.Reflections, f.Types, f.Symbols, f.Root),
		Library: program.RebuildLibrary(f.Programs),
		Origins: origins,
	}
}

// Capture is the inverse of Materialize: it flattens live arenas back into
// a file payload, preserving registered bindings and synthesized nodes.
func Capture(b *Build) *File {
	f := &File{
		Schema:      schemaVersion,
		Root:        b.Table.Root(),
		Reflections: b.Table.Reflections.Data(),
		Types:       b.Table.Types.Data(),
		Symbols:     b.Table.Symbols.Data(),
		Programs:    b.Library.Programs(),
		Origins:     make(map[docmodel.ReflectionID]docmodel.ProgramID, len(b.Origins)),
	}
	for refl, prog := range b.Origins {
		f.Origins[refl] = prog
	}
	return f
}
