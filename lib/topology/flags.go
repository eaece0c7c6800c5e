package topology

// Flags selects which optional checks Validate performs. Out-of-range index
// and neighbor values are always reported regardless of the flag set.
type Flags uint32

const (
	// ValidateDefault checks only that index and adjacency values are in
	// range or equal to their respective unused sentinels.
	ValidateDefault Flags = 0x0

	// ValidateBackfacing reports triangles with a duplicated neighbor link,
	// the usual signature of two triangles sharing the same three vertices
	// with opposite winding. Requires an adjacency buffer.
	ValidateBackfacing Flags = 0x1

	// ValidateBowties reports vertices shared by two or more disconnected
	// triangle fans. Requires an adjacency buffer.
	ValidateBowties Flags = 0x2

	// ValidateDegenerate reports triangles that use the same vertex for two
	// or more corners.
	ValidateDegenerate Flags = 0x4
)

// Has reports whether every bit of check is set.
func (f Flags) Has(check Flags) bool {
	return f&check == check
}
