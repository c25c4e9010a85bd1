package resolve

import "specular/internal/docmodel"

// Origins records which compiler program produced each module-level
// reflection. It is populated by the creation hook during conversion and
// consumed (then discarded) by Run; its lifetime is exactly one build
// phase.
type Origins map[docmodel.ReflectionID]docmodel.ProgramID

// Hooks collects conversion-time events the driver needs later. The
// conversion pipeline fires DeclarationCreated once per top-level
// reflection.
type Hooks struct {
	origins Origins
}

// NewHooks returns an empty hook recorder.
func NewHooks() *Hooks {
	return &Hooks{origins: make(Origins)}
}

// DeclarationCreated records that refl was produced by prog.
func (h *Hooks) DeclarationCreated(refl docmodel.ReflectionID, prog docmodel.ProgramID) {
	if refl.IsValid() && prog.IsValid() {
		h.origins[refl] = prog
	}
}

// Origins hands the recorded mapping to the resolution phase and resets
// the recorder, so a later build starts clean.
func (h *Hooks) Origins() Origins {
	o := h.origins
	h.origins = make(Origins)
	return o
}
