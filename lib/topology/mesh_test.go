package topology

// Shared fixtures: small meshes with hand-built adjacency tables.
// Adjacency entry [face][e] is the neighbor across edge e, where edge e
// joins corners e and (e+1)%3.

const u32 = Unused32

// closedFan is four triangles forming a closed ring around vertex 0, with
// ring vertices 1-4.
func closedFan() (indices []uint32, adj []uint32, nFaces, nVerts int) {
	indices = []uint32{
		0, 1, 2,
		0, 2, 3,
		0, 3, 4,
		0, 4, 1,
	}
	adj = []uint32{
		3, u32, 1,
		0, u32, 2,
		1, u32, 3,
		2, u32, 0,
	}
	return indices, adj, 4, 5
}

// openFan is the closed fan with its last triangle removed, leaving
// boundary edges on both sides of the fan around vertex 0.
func openFan() (indices []uint32, adj []uint32, nFaces, nVerts int) {
	indices = []uint32{
		0, 1, 2,
		0, 2, 3,
		0, 3, 4,
	}
	adj = []uint32{
		u32, u32, 1,
		0, u32, 2,
		1, u32, u32,
	}
	return indices, adj, 3, 5
}

// bowtieFans is two closed fans that meet only at vertex 0: faces 0-3 use
// ring vertices 1-4, faces 4-7 use ring vertices 5-8. No adjacency entry
// links the two fans.
func bowtieFans() (indices []uint32, adj []uint32, nFaces, nVerts int) {
	indices = []uint32{
		0, 1, 2,
		0, 2, 3,
		0, 3, 4,
		0, 4, 1,
		0, 5, 6,
		0, 6, 7,
		0, 7, 8,
		0, 8, 5,
	}
	adj = []uint32{
		3, u32, 1,
		0, u32, 2,
		1, u32, 3,
		2, u32, 0,
		7, u32, 5,
		4, u32, 6,
		5, u32, 7,
		6, u32, 4,
	}
	return indices, adj, 8, 9
}

// tripleFans adds a third closed fan (faces 8-11, ring vertices 9-12)
// around the same vertex 0.
func tripleFans() (indices []uint32, adj []uint32, nFaces, nVerts int) {
	indices, adj, _, _ = bowtieFans()
	indices = append(indices,
		0, 9, 10,
		0, 10, 11,
		0, 11, 12,
		0, 12, 9,
	)
	adj = append(adj,
		11, u32, 9,
		8, u32, 10,
		9, u32, 11,
		10, u32, 8,
	)
	return indices, adj, 12, 13
}

// backfacingPair is two triangles over the same three vertices with
// opposite winding; every edge of each triangle points at the other.
func backfacingPair() (indices []uint32, adj []uint32, nFaces, nVerts int) {
	indices = []uint32{
		0, 1, 2,
		0, 2, 1,
	}
	adj = []uint32{
		1, 1, 1,
		0, 0, 0,
	}
	return indices, adj, 2, 3
}

// to16 converts a fixture index buffer to 16-bit, mapping Unused32 corners
// to the 16-bit sentinel.
func to16(indices []uint32) []uint16 {
	out := make([]uint16, len(indices))
	for i, v := range indices {
		if v == Unused32 {
			out[i] = 0xFFFF
			continue
		}
		out[i] = uint16(v)
	}
	return out
}
