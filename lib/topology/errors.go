package topology

import "errors"

// Status sentinels. Call sites wrap these with additional context via
// samber/oops; callers classify results with errors.Is.
var (
	// ErrInvalidArgument indicates a nil or mis-sized required buffer, a
	// zero count, or a flag that requires adjacency when none was given.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrArithmeticOverflow indicates the face count cannot be addressed
	// within the 32-bit face-id domain used by adjacency entries.
	ErrArithmeticOverflow = errors.New("face count exceeds 32-bit index domain")

	// ErrValidationFailed indicates one or more topology violations were
	// found, or the adjacency table was internally inconsistent.
	ErrValidationFailed = errors.New("mesh validation failed")

	// ErrOutOfMemory indicates the bowtie-detection scratch buffers could
	// not be sized for the requested mesh.
	ErrOutOfMemory = errors.New("scratch allocation exceeds addressable size")
)
