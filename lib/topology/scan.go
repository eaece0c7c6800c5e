package topology

import (
	"github.com/samber/oops"
)

// scanIndices makes one pass over all triangles checking index bounds,
// adjacency bounds, degenerate triangles, and duplicated neighbor links.
// Out-of-range values are always violations; degenerate and duplicate
// neighbor reports are gated by flags. With a nil msgs the first violation
// terminates the scan.
func scanIndices[T Index](indices []T, nFaces, nVerts int, adjacency []uint32, flags Flags, msgs *Diagnostics) error {
	if flags.Has(ValidateBackfacing) && adjacency == nil {
		if msgs != nil {
			msgs.appendf("Missing adjacency information required to check for BACKFACING")
		}
		return oops.Wrapf(ErrInvalidArgument, "adjacency required to validate backfacing")
	}

	unused := sentinelOf[T]()
	violations := 0

	for face := 0; face < nFaces; face++ {
		for point := 0; point < 3; point++ {
			i := indices[face*3+point]
			if uint64(i) >= uint64(nVerts) && i != unused {
				if msgs == nil {
					return oops.Wrapf(ErrValidationFailed, "invalid index value (%d) on face %d", i, face)
				}
				violations++
				msgs.appendf("An invalid index value (%d) was found on face %d", i, face)
			}

			if adjacency != nil {
				j := adjacency[face*3+point]
				if uint64(j) >= uint64(nFaces) && j != Unused32 {
					if msgs == nil {
						return oops.Wrapf(ErrValidationFailed, "invalid neighbor index value (%d) on face %d", j, face)
					}
					violations++
					msgs.appendf("An invalid neighbor index value (%d) was found on face %d", j, face)
				}
			}
		}

		i0 := indices[face*3]
		i1 := indices[face*3+1]
		i2 := indices[face*3+2]

		if isDegenerate(i0, i1, i2) {
			if flags.Has(ValidateDegenerate) {
				if msgs == nil {
					return oops.Wrapf(ErrValidationFailed, "degenerate triangle %d", face)
				}
				violations++

				// Report the first repeated vertex in the original's fixed
				// scan order.
				var bad T
				switch {
				case i0 == i1:
					bad = i0
				case i1 == i2:
					bad = i2
				default:
					bad = i0
				}
				msgs.appendf("A point (%d) was found more than once in triangle %d", bad, face)
			}

			// A degenerate triangle's adjacency is undefined; skip the
			// duplicate-neighbor check either way.
			continue
		}

		if flags.Has(ValidateBackfacing) {
			j0 := adjacency[face*3]
			j1 := adjacency[face*3+1]
			j2 := adjacency[face*3+2]

			if (j0 == j1 && j0 != Unused32) ||
				(j0 == j2 && j0 != Unused32) ||
				(j1 == j2 && j1 != Unused32) {
				if msgs == nil {
					return oops.Wrapf(ErrValidationFailed, "duplicated neighbor on face %d", face)
				}
				violations++

				var bad uint32
				switch {
				case j0 == j1 && j0 != Unused32:
					bad = j0
				case j0 == j2 && j0 != Unused32:
					bad = j0
				default:
					bad = j1
				}
				msgs.appendf("A neighbor triangle (%d) was found more than once on triangle %d "+
					"(likely two triangles share the same points with opposite direction)", bad, face)
			}
		}
	}

	if violations > 0 {
		return oops.Wrapf(ErrValidationFailed, "index scan found %d violations across %d faces", violations, nFaces)
	}
	return nil
}
