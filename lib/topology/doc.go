// Package topology validates the connectivity of indexed triangle meshes
// before they enter downstream processing such as cleaning, simplification,
// or attribute remapping.
//
// Validate performs a linear scan for out-of-range indices, out-of-range
// adjacency entries, degenerate triangles, and duplicated neighbor links,
// and can additionally walk the triangle fans around every vertex to detect
// bowties (a single vertex shared by two disconnected fans). Nothing in this
// package mutates the mesh; buffers supplied by the caller are only read.
//
// Passing a *Diagnostics enables accumulate mode, where every violation in a
// phase is logged before the phase returns; passing nil enables fail-fast
// mode, where the first violation terminates the call.
package topology
