package topology

import (
	"github.com/samber/oops"
)

// WalkDirection selects the rotational sense of an OrbitWalker.
type WalkDirection int

const (
	// WalkAll sweeps one rotational direction until a boundary or a full
	// cycle, then covers the other side of an open fan from the start.
	WalkAll WalkDirection = iota

	// WalkClockwise stops at the first boundary.
	WalkClockwise

	// WalkCounterClockwise stops at the first boundary.
	WalkCounterClockwise
)

// OrbitWalker enumerates the ring of triangles sharing a single vertex by
// following adjacency links one triangle at a time. It only reads the
// caller's buffers and can be re-initialized for repeated walks.
//
// Edge k of a face joins corners k and (k+1)%3, so the two edges incident
// to the pivot corner c are edge c and edge (c+2)%3; crossing the former
// rotates one way around the vertex, crossing the latter the other way.
type OrbitWalker[T Index] struct {
	indices   []T
	adjacency []uint32
	nFaces    uint32

	vertex      T
	startFace   uint32
	startCorner uint32
	face        uint32
	corner      uint32

	clockwise      bool
	stopOnBoundary bool
	reversed       bool
	done           bool
	steps          uint32
	err            error
}

// NewOrbitWalker creates a walker over the given index and adjacency
// buffers. Init must be called before the first Next.
func NewOrbitWalker[T Index](indices []T, adjacency []uint32, nFaces int) *OrbitWalker[T] {
	return &OrbitWalker[T]{
		indices:   indices,
		adjacency: adjacency,
		nFaces:    uint32(nFaces),
		done:      true,
	}
}

// Init positions the walker at the corner of face holding vertex. The
// vertex must appear in the face.
func (w *OrbitWalker[T]) Init(face uint32, vertex T, dir WalkDirection) error {
	if face >= w.nFaces {
		return oops.Wrapf(ErrInvalidArgument, "orbit start face %d out of range (%d faces)", face, w.nFaces)
	}
	corner := findCorner(w.indices, face, vertex)
	if corner == Unused32 {
		return oops.Wrapf(ErrInvalidArgument, "vertex %d does not appear in face %d", vertex, face)
	}

	w.vertex = vertex
	w.startFace = face
	w.startCorner = corner
	w.face = face
	w.corner = corner
	w.clockwise = dir != WalkCounterClockwise
	w.stopOnBoundary = dir != WalkAll
	w.reversed = false
	w.done = false
	w.steps = 0
	w.err = nil
	return nil
}

// Done reports whether the walk has covered the fan (full cycle, or both
// sides of an open fan in WalkAll mode) or has failed.
func (w *OrbitWalker[T]) Done() bool {
	return w.done
}

// Next yields the current (face, corner) pair and advances the walker. A
// non-nil error means the adjacency table is internally inconsistent; the
// walk is over and the returned position must not be used.
func (w *OrbitWalker[T]) Next() (uint32, uint32, error) {
	if w.done {
		return Unused32, Unused32, oops.Wrapf(ErrValidationFailed, "orbit walker advanced past completion")
	}
	face, corner := w.face, w.corner
	w.advance()
	if w.err != nil {
		return face, corner, w.err
	}
	return face, corner, nil
}

func (w *OrbitWalker[T]) advance() {
	w.steps++
	if w.steps > w.nFaces*3+3 {
		// Every fan is bounded by the face count; exceeding it means the
		// adjacency links loop without passing through the start face.
		w.fail(oops.Wrapf(ErrValidationFailed, "orbit around vertex %d did not terminate; adjacency is inconsistent", w.vertex))
		return
	}

	edge := w.corner
	if !w.clockwise {
		edge = (w.corner + 2) % 3
	}

	next := w.adjacency[w.face*3+edge]
	if next == Unused32 {
		if w.stopOnBoundary || w.reversed {
			w.done = true
			return
		}
		// Open fan: restart at the seed and sweep the other rotational
		// direction. The seed itself was already yielded.
		w.reversed = true
		w.clockwise = !w.clockwise
		w.face = w.startFace
		w.corner = w.startCorner
		w.advance()
		return
	}
	if next == w.startFace {
		w.done = true
		return
	}
	if next >= w.nFaces {
		w.fail(oops.Wrapf(ErrValidationFailed, "adjacency entry references face %d beyond face count %d", next, w.nFaces))
		return
	}

	corner := findCorner(w.indices, next, w.vertex)
	if corner == Unused32 {
		w.fail(oops.Wrapf(ErrValidationFailed, "face %d is linked into the fan around vertex %d but does not use it", next, w.vertex))
		return
	}

	w.face = next
	w.corner = corner
}

func (w *OrbitWalker[T]) fail(err error) {
	w.err = err
	w.done = true
}
