package topology

import (
	"math"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/go-trimesh/go-trimesh/lib/util/logger"
)

var log = logger.GetLogger()

// Validate checks the topology of an indexed triangle mesh.
//
// indices holds 3*nFaces corner indices; entries equal to the index type's
// maximum value mark intentionally unused corners and are exempt from range
// checks. adjacency, when non-nil, holds 3*nFaces neighbor face ids with
// Unused32 marking boundary edges; it is required by ValidateBackfacing and
// ValidateBowties. Supplying msgs enables accumulate mode: the log is
// cleared, every violation in a phase is appended, and the phase returns an
// aggregate status. With a nil msgs the first violation returns immediately.
//
// A failing index scan prevents bowtie detection from running. The returned
// error wraps one of ErrInvalidArgument, ErrArithmeticOverflow,
// ErrValidationFailed, or ErrOutOfMemory; a nil return means the mesh
// passed every requested check. The mesh buffers are never written.
func Validate[T Index](indices []T, nFaces, nVerts int, adjacency []uint32, flags Flags, msgs *Diagnostics) error {
	if len(indices) == 0 || nFaces <= 0 || nVerts <= 0 {
		return oops.Wrapf(ErrInvalidArgument, "indices, nFaces and nVerts are required")
	}
	if uint64(nFaces)*3 > math.MaxUint32 {
		return oops.Wrapf(ErrArithmeticOverflow, "%d faces cannot be addressed with 32-bit face ids", nFaces)
	}
	if uint64(len(indices)) != uint64(nFaces)*3 {
		return oops.Wrapf(ErrInvalidArgument, "index buffer holds %d entries, want %d", len(indices), 3*nFaces)
	}
	if adjacency != nil && uint64(len(adjacency)) != uint64(nFaces)*3 {
		return oops.Wrapf(ErrInvalidArgument, "adjacency buffer holds %d entries, want %d", len(adjacency), 3*nFaces)
	}

	if msgs != nil {
		msgs.Reset()
	}

	log.WithFields(logrus.Fields{
		"faces": nFaces,
		"verts": nVerts,
		"flags": flags,
	}).Debug("validating mesh topology")

	if err := scanIndices(indices, nFaces, nVerts, adjacency, flags, msgs); err != nil {
		return err
	}

	if flags.Has(ValidateBowties) {
		if err := detectBowties(indices, nFaces, nVerts, adjacency, msgs); err != nil {
			return err
		}
	}

	return nil
}
