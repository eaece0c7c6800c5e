package topology

import (
	"math"

	"github.com/samber/oops"
)

// bowtieScratch sizes the four per-call working buffers for bowtie
// detection. The sizes are validated before allocation so an unsatisfiable
// request is reported instead of aborting the process.
func bowtieScratch(nFaces, nVerts int) (cornerSeen []bool, fanOwner, fanFace []uint32, reported []bool, err error) {
	const maxElems = math.MaxInt / 4
	if nFaces > maxElems/3 || nVerts > maxElems {
		err = oops.Wrapf(ErrOutOfMemory, "bowtie scratch for %d faces and %d vertices", nFaces, nVerts)
		return
	}

	cornerSeen = make([]bool, 3*nFaces)
	fanOwner = make([]uint32, nVerts)
	for i := range fanOwner {
		fanOwner[i] = Unused32
	}
	fanFace = make([]uint32, nVerts)
	reported = make([]bool, nVerts)
	return
}

// detectBowties partitions the triangles around every vertex into fans and
// reports each vertex claimed by more than one disconnected fan. Degenerate
// faces are excluded from fan analysis. Scratch state lives for one call.
func detectBowties[T Index](indices []T, nFaces, nVerts int, adjacency []uint32, msgs *Diagnostics) error {
	if adjacency == nil {
		if msgs != nil {
			msgs.appendf("Missing adjacency information required to check for BOWTIES")
		}
		return oops.Wrapf(ErrInvalidArgument, "adjacency required to detect bowties")
	}

	cornerSeen, fanOwner, fanFace, reported, err := bowtieScratch(nFaces, nVerts)
	if err != nil {
		return err
	}

	unused := sentinelOf[T]()
	walker := NewOrbitWalker(indices, adjacency, nFaces)
	bowties := 0

	for face := 0; face < nFaces; face++ {
		i0 := indices[face*3]
		i1 := indices[face*3+1]
		i2 := indices[face*3+2]

		if isDegenerate(i0, i1, i2) {
			// Degenerate faces have no meaningful fan membership.
			cornerSeen[face*3] = true
			cornerSeen[face*3+1] = true
			cornerSeen[face*3+2] = true
			continue
		}

		for point := 0; point < 3; point++ {
			if cornerSeen[face*3+point] {
				continue
			}
			cornerSeen[face*3+point] = true

			pivot := indices[face*3+point]
			if pivot == unused {
				// Intentionally unused corner; there is no vertex to orbit.
				continue
			}
			if uint64(pivot) >= uint64(nVerts) {
				return oops.Wrapf(ErrValidationFailed, "index value (%d) on face %d outside vertex count %d", pivot, face, nVerts)
			}
			v := uint32(pivot)

			if err := walker.Init(uint32(face), pivot, WalkAll); err != nil {
				return oops.Wrapf(ErrValidationFailed, "fan walk could not start at face %d", face)
			}
			for !walker.Done() {
				curFace, curCorner, err := walker.Next()
				if err != nil {
					// Corrupt adjacency terminates detection immediately,
					// even in accumulate mode.
					return err
				}
				cornerSeen[curFace*3+curCorner] = true

				if fanOwner[v] == Unused32 {
					fanOwner[v] = uint32(face)
					fanFace[v] = curFace
				} else if fanOwner[v] != uint32(face) && !reported[v] {
					// The vertex is already owned by a fan this walk never
					// reached: a bowtie. Report it exactly once.
					reported[v] = true
					bowties++
					if msgs == nil {
						return oops.Wrapf(ErrValidationFailed, "bowtie around vertex %d shared by faces %d and %d", v, curFace, fanFace[v])
					}
					msgs.appendf("Bowtie found around vertex %d shared by faces %d and %d", v, curFace, fanFace[v])
				}
			}
		}
	}

	if bowties > 0 {
		return oops.Wrapf(ErrValidationFailed, "%d bowtie vertices found", bowties)
	}
	return nil
}
