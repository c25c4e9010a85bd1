// Package docmodel holds the in-memory documentation tree: reflections,
// type values and compiler symbols, stored in compact slice arenas and
// addressed by typed IDs. The arenas never reuse slots, so IDs stay stable
// for the lifetime of a build.
package docmodel
