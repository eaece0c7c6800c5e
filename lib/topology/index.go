package topology

// Index constrains the element type of a triangle index buffer. Both widths
// reserve their maximum value as the "intentionally unused corner" sentinel,
// which is exempt from range checks.
type Index interface {
	~uint16 | ~uint32
}

// Unused32 marks a boundary edge in an adjacency buffer: the edge has no
// neighboring face.
const Unused32 uint32 = 0xFFFFFFFF

// sentinelOf returns the unused-corner sentinel for the index type, the
// type's maximum representable value.
func sentinelOf[T Index]() T {
	return ^T(0)
}

// findCorner returns which corner (0-2) of face holds vertex, or Unused32
// if the vertex does not appear in the face.
func findCorner[T Index](indices []T, face uint32, vertex T) uint32 {
	base := int(face) * 3
	for corner := 0; corner < 3; corner++ {
		if indices[base+corner] == vertex {
			return uint32(corner)
		}
	}
	return Unused32
}

// isDegenerate reports whether two or more corners of the face share a
// vertex.
func isDegenerate[T Index](i0, i1, i2 T) bool {
	return i0 == i1 || i0 == i2 || i1 == i2
}
