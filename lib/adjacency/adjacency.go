// Package adjacency derives the face-adjacency table consumed by the
// topology validator: for every edge of every triangle, the id of the face
// sharing that edge, or topology.Unused32 for a boundary edge.
package adjacency

import (
	"math"

	"github.com/samber/oops"

	"github.com/go-trimesh/go-trimesh/lib/topology"
	"github.com/go-trimesh/go-trimesh/lib/util/logger"
)

var log = logger.GetLogger()

// edgeKey is a directed edge between two vertex ids. A triangle edge
// (a, b) pairs with an opposite-direction edge (b, a) on another face.
type edgeKey struct {
	v0, v1 uint32
}

type edgeRef struct {
	face, edge uint32
}

// Build computes the adjacency buffer for an indexed triangle mesh. Edges
// are paired first-come: when more than two faces share an edge, the extra
// faces keep boundary entries and are left for the validator to judge.
// Degenerate faces and edges touching an unused-corner sentinel produce no
// pairing. The input buffers are only read.
func Build[T topology.Index](indices []T, nFaces, nVerts int) ([]uint32, error) {
	if len(indices) == 0 || nFaces <= 0 || nVerts <= 0 {
		return nil, oops.Wrapf(topology.ErrInvalidArgument, "indices, nFaces and nVerts are required")
	}
	if uint64(nFaces)*3 > math.MaxUint32 {
		return nil, oops.Wrapf(topology.ErrArithmeticOverflow, "%d faces cannot be addressed with 32-bit face ids", nFaces)
	}
	if uint64(len(indices)) != uint64(nFaces)*3 {
		return nil, oops.Wrapf(topology.ErrInvalidArgument, "index buffer holds %d entries, want %d", len(indices), 3*nFaces)
	}

	unused := ^T(0)
	adj := make([]uint32, 3*nFaces)
	for i := range adj {
		adj[i] = topology.Unused32
	}

	// Edges still waiting for their opposite-direction partner.
	open := make(map[edgeKey]edgeRef, 3*nFaces)

	for face := 0; face < nFaces; face++ {
		i0 := indices[face*3]
		i1 := indices[face*3+1]
		i2 := indices[face*3+2]
		if i0 == i1 || i0 == i2 || i1 == i2 {
			// Degenerate faces get no adjacency; pairing their repeated
			// edges would link a face to itself.
			continue
		}

		for edge := 0; edge < 3; edge++ {
			a := indices[face*3+edge]
			b := indices[face*3+(edge+1)%3]
			if a == unused || b == unused {
				continue
			}
			if uint64(a) >= uint64(nVerts) {
				return nil, oops.Wrapf(topology.ErrInvalidArgument, "invalid index value (%d) on face %d", a, face)
			}
			if uint64(b) >= uint64(nVerts) {
				return nil, oops.Wrapf(topology.ErrInvalidArgument, "invalid index value (%d) on face %d", b, face)
			}

			opposite := edgeKey{uint32(b), uint32(a)}
			if ref, ok := open[opposite]; ok {
				adj[face*3+edge] = ref.face
				adj[int(ref.face)*3+int(ref.edge)] = uint32(face)
				delete(open, opposite)
				continue
			}

			key := edgeKey{uint32(a), uint32(b)}
			if _, dup := open[key]; dup {
				// Same directed edge on a third face; keep the earliest.
				continue
			}
			open[key] = edgeRef{uint32(face), uint32(edge)}
		}
	}

	log.WithField("faces", nFaces).WithField("boundary_edges", len(open)).Debug("built adjacency table")
	return adj, nil
}
