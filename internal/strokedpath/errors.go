package strokedpath

import "errors"

// Package errors for strokedpath. The generator raises no runtime
// errors from well-formed input (see the Error Handling Design section
// of SPEC_FULL.md); these sentinels cover the one contract violation
// that cannot be silently clamped away.
var (
	// ErrNilInput is returned when New is called with a nil
	// TessellatedPath.
	ErrNilInput = errors.New("strokedpath: nil tessellated path")
)
