package topology

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBowtie_SingleFanClean verifies that vertices used by one connected
// fan never produce a bowtie report, for closed and open fans alike.
func TestBowtie_SingleFanClean(t *testing.T) {
	t.Run("closed ring", func(t *testing.T) {
		indices, adj, nFaces, nVerts := closedFan()
		var msgs Diagnostics
		assert.NoError(t, Validate(indices, nFaces, nVerts, adj, ValidateBowties, &msgs))
		assert.Equal(t, 0, msgs.Len())
	})
	t.Run("open fan", func(t *testing.T) {
		indices, adj, nFaces, nVerts := openFan()
		assert.NoError(t, Validate(indices, nFaces, nVerts, adj, ValidateBowties, nil))
	})
	t.Run("single triangle", func(t *testing.T) {
		indices := []uint32{0, 1, 2}
		adj := []uint32{u32, u32, u32}
		assert.NoError(t, Validate(indices, 1, 3, adj, ValidateBowties, nil))
	})
}

// TestBowtie_TwoFans verifies that a vertex at the junction of two
// disconnected fans is reported exactly once, naming the vertex and one
// representative face from each fan.
func TestBowtie_TwoFans(t *testing.T) {
	indices, adj, nFaces, nVerts := bowtieFans()

	var msgs Diagnostics
	err := Validate(indices, nFaces, nVerts, adj, ValidateBowties, &msgs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
	require.Equal(t, 1, msgs.Len())
	assert.Equal(t, "Bowtie found around vertex 0 shared by faces 4 and 0", msgs.Entries()[0])

	// Fail-fast mode reports the same condition through the error.
	err = Validate(indices, nFaces, nVerts, adj, ValidateBowties, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
}

// TestBowtie_ThreeFansSingleReport verifies the duplicate-report
// suppression: a third disconnected fan touching the same vertex does not
// produce a second entry.
func TestBowtie_ThreeFansSingleReport(t *testing.T) {
	indices, adj, nFaces, nVerts := tripleFans()

	var msgs Diagnostics
	err := Validate(indices, nFaces, nVerts, adj, ValidateBowties, &msgs)
	require.Error(t, err)
	assert.Equal(t, 1, msgs.Len())
}

// TestBowtie_DegenerateFacesExcluded verifies degenerate faces neither
// seed fans nor count toward bowties.
func TestBowtie_DegenerateFacesExcluded(t *testing.T) {
	// A clean open fan plus a degenerate face reusing vertex 0.
	indices, adj, nFaces, nVerts := openFan()
	indices = append(indices, 0, 0, 2)
	adj = append(adj, u32, u32, u32)
	nFaces++

	var msgs Diagnostics
	assert.NoError(t, Validate(indices, nFaces, nVerts, adj, ValidateBowties, &msgs))
	assert.Equal(t, 0, msgs.Len())
}

// TestBowtie_MissingAdjacency verifies the InvalidArgument precondition
// symmetric to the backfacing check.
func TestBowtie_MissingAdjacency(t *testing.T) {
	indices := []uint32{0, 1, 2}

	err := Validate(indices, 1, 3, nil, ValidateBowties, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	var msgs Diagnostics
	err = Validate(indices, 1, 3, nil, ValidateBowties, &msgs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	require.Equal(t, 1, msgs.Len())
	assert.Contains(t, msgs.Entries()[0], "Missing adjacency information")
}

// TestBowtie_CorruptAdjacencyFailsImmediately verifies that an internally
// inconsistent adjacency table terminates detection even in accumulate
// mode, leaving the walker error as the result.
func TestBowtie_CorruptAdjacencyFailsImmediately(t *testing.T) {
	// Face 0 points at face 1 across edge 2, but face 1 shares no vertex
	// with face 0. The scan passes (all values in range) and the fan walk
	// fails.
	indices := []uint32{
		0, 1, 2,
		5, 6, 7,
	}
	adj := []uint32{
		u32, u32, 1,
		0, u32, u32,
	}

	var msgs Diagnostics
	err := Validate(indices, 2, 8, adj, ValidateBowties, &msgs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
}

// TestBowtie_SentinelCornerSkipped verifies unused corners do not seed fan
// walks.
func TestBowtie_SentinelCornerSkipped(t *testing.T) {
	indices := []uint32{0xFFFFFFFF, 0, 1}
	adj := []uint32{u32, u32, u32}
	assert.NoError(t, Validate(indices, 1, 2, adj, ValidateBowties, nil))
}

// TestBowtieScratch_Overflow verifies the OutOfMemory pre-check rejects
// unrepresentable scratch sizes before allocating.
func TestBowtieScratch_Overflow(t *testing.T) {
	_, _, _, _, err := bowtieScratch(1, math.MaxInt/2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfMemory))
}
