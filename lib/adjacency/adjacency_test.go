package adjacency

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-trimesh/go-trimesh/lib/topology"
)

const u32 = topology.Unused32

// TestBuild_Quad verifies a two-triangle quad pairs its shared diagonal
// and leaves the outline as boundary edges.
func TestBuild_Quad(t *testing.T) {
	indices := []uint32{
		0, 1, 2,
		0, 2, 3,
	}
	adj, err := Build(indices, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, []uint32{
		u32, u32, 1,
		0, u32, u32,
	}, adj)
}

// TestBuild_OppositeWindingPair verifies two triangles over the same
// vertices with opposite winding point at each other across all three
// edges, the input topology.Validate flags as backfacing.
func TestBuild_OppositeWindingPair(t *testing.T) {
	indices := []uint32{
		0, 1, 2,
		0, 2, 1,
	}
	adj, err := Build(indices, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint32{
		1, 1, 1,
		0, 0, 0,
	}, adj)

	var msgs topology.Diagnostics
	verr := topology.Validate(indices, 2, 3, adj, topology.ValidateBackfacing, &msgs)
	require.Error(t, verr)
	assert.True(t, errors.Is(verr, topology.ErrValidationFailed))
	assert.Equal(t, 2, msgs.Len())
}

// TestBuild_ClosedFanRoundTrip verifies a derived adjacency table passes
// bowtie validation for a manifold fan.
func TestBuild_ClosedFanRoundTrip(t *testing.T) {
	indices := []uint32{
		0, 1, 2,
		0, 2, 3,
		0, 3, 4,
		0, 4, 1,
	}
	adj, err := Build(indices, 4, 5)
	require.NoError(t, err)
	assert.NoError(t, topology.Validate(indices, 4, 5, adj, topology.ValidateBowties, nil))
}

// TestBuild_BowtieRoundTrip verifies that building adjacency for two fans
// joined only at a vertex produces no cross-fan links, so validation
// reports the bowtie.
func TestBuild_BowtieRoundTrip(t *testing.T) {
	indices := []uint32{
		0, 1, 2,
		0, 2, 3,
		0, 3, 4,
		0, 4, 1,
		0, 5, 6,
		0, 6, 7,
		0, 7, 8,
		0, 8, 5,
	}
	adj, err := Build(indices, 8, 9)
	require.NoError(t, err)

	var msgs topology.Diagnostics
	verr := topology.Validate(indices, 8, 9, adj, topology.ValidateBowties, &msgs)
	require.Error(t, verr)
	require.Equal(t, 1, msgs.Len())
	assert.Contains(t, msgs.Entries()[0], "Bowtie found around vertex 0")
}

// TestBuild_DegenerateFaceHasNoAdjacency verifies degenerate faces are
// excluded from edge pairing entirely.
func TestBuild_DegenerateFaceHasNoAdjacency(t *testing.T) {
	indices := []uint32{
		0, 0, 1,
		0, 1, 2,
	}
	adj, err := Build(indices, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint32{
		u32, u32, u32,
		u32, u32, u32,
	}, adj)
}

// TestBuild_SentinelCornerSkipped verifies edges touching an unused corner
// produce no pairing.
func TestBuild_SentinelCornerSkipped(t *testing.T) {
	indices := []uint32{
		0xFFFFFFFF, 0, 1,
		0xFFFFFFFF, 1, 0,
	}
	adj, err := Build(indices, 2, 2)
	require.NoError(t, err)
	// Only the (0,1)/(1,0) pair exists; sentinel edges stay boundaries.
	assert.Equal(t, []uint32{
		u32, 1, u32,
		u32, 0, u32,
	}, adj)
}

// TestBuild_ArgumentChecks verifies the precondition errors.
func TestBuild_ArgumentChecks(t *testing.T) {
	_, err := Build[uint32](nil, 1, 3)
	assert.True(t, errors.Is(err, topology.ErrInvalidArgument))

	_, err = Build([]uint32{0, 1, 2}, 2, 3)
	assert.True(t, errors.Is(err, topology.ErrInvalidArgument))

	_, err = Build([]uint32{0, 1, 9}, 1, 3)
	assert.True(t, errors.Is(err, topology.ErrInvalidArgument))
}

// TestBuild_16Bit verifies the builder accepts 16-bit index buffers with
// their own sentinel.
func TestBuild_16Bit(t *testing.T) {
	indices := []uint16{
		0, 1, 2,
		0, 2, 3,
	}
	adj, err := Build(indices, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, []uint32{
		u32, u32, 1,
		0, u32, u32,
	}, adj)
}
