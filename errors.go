package wideint

import (
	"github.com/pkg/errors"
)

// Both errors signal a defect in the calling algorithm. They are never
// returned; operations panic with a value that wraps one of them, so a caller
// that recovers can still identify the cause with errors.Is or errors.Cause.
var (
	// ErrCapacityExceeded is raised when a result would need more than
	// MaxLimbs significant limbs.
	ErrCapacityExceeded = errors.New("wideint: capacity exceeded")

	// ErrAliasedBuffers is raised when a result receiver is the same Uint as
	// an operand it must be distinct from.
	ErrAliasedBuffers = errors.New("wideint: aliased buffers")
)

func panicCapacity(limbs int) {
	panic(errors.Wrapf(ErrCapacityExceeded, "%d limbs requested, max %d", limbs, MaxLimbs))
}

func (z *Uint) mustNotAlias(xs ...*Uint) {
	for _, x := range xs {
		if z == x {
			panic(errors.WithStack(ErrAliasedBuffers))
		}
	}
}
