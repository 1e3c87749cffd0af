package mode

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the kernel-facing layout: objects sorted and
// unique, counts summing to the table length, each object's span sorted
// and unique.
func checkInvariants(t *testing.T, r *AtomicRequest) {
	t.Helper()

	require.Len(t, r.propCounts, len(r.objects))
	require.Len(t, r.values, len(r.props))

	assert.True(t, sort.SliceIsSorted(r.objects, func(i, j int) bool {
		return r.objects[i] < r.objects[j]
	}))
	for i := 1; i < len(r.objects); i++ {
		assert.NotEqual(t, r.objects[i-1], r.objects[i])
	}

	total := 0
	span := 0
	for _, count := range r.propCounts {
		props := r.props[span : span+int(count)]
		assert.True(t, sort.SliceIsSorted(props, func(i, j int) bool {
			return props[i] < props[j]
		}))
		for i := 1; i < len(props); i++ {
			assert.NotEqual(t, props[i-1], props[i])
		}
		span += int(count)
		total += int(count)
	}
	assert.Equal(t, len(r.props), total)
}

func TestAtomicRequestSet(t *testing.T) {
	var req AtomicRequest
	req.Set(CRTCID(5), PropertyID(20), 1)
	req.Set(CRTCID(5), PropertyID(10), 2)
	req.Set(ConnectorID(3), PropertyID(30), 3)

	assert.Equal(t, 3, req.Len())
	checkInvariants(t, &req)

	assert.Equal(t, []uint32{3, 5}, req.objects)
	assert.Equal(t, []uint32{1, 2}, req.propCounts)
	assert.Equal(t, []uint32{30, 10, 20}, req.props)
	assert.Equal(t, []uint64{3, 2, 1}, req.values)
}

func TestAtomicRequestReplace(t *testing.T) {
	var req AtomicRequest
	req.Set(PlaneID(7), PropertyID(1), 100)
	req.Set(PlaneID(7), PropertyID(1), 200)

	assert.Equal(t, 1, req.Len())
	checkInvariants(t, &req)
	assert.Equal(t, []uint64{200}, req.values)
}

func TestAtomicRequestInterleaved(t *testing.T) {
	var req AtomicRequest
	// insertion order deliberately shuffled across objects
	req.Set(CRTCID(9), PropertyID(4), 1)
	req.Set(CRTCID(2), PropertyID(8), 2)
	req.Set(CRTCID(9), PropertyID(1), 3)
	req.Set(CRTCID(2), PropertyID(6), 4)
	req.Set(CRTCID(9), PropertyID(4), 5)

	assert.Equal(t, 4, req.Len())
	checkInvariants(t, &req)

	assert.Equal(t, []uint32{2, 9}, req.objects)
	assert.Equal(t, []uint32{6, 8, 1, 4}, req.props)
	assert.Equal(t, []uint64{4, 2, 3, 5}, req.values)
}

func TestAtomicRequestReset(t *testing.T) {
	var req AtomicRequest
	req.Set(CRTCID(1), PropertyID(1), 1)
	req.Reset()
	assert.Zero(t, req.Len())

	req.Set(CRTCID(2), PropertyID(2), 2)
	assert.Equal(t, 1, req.Len())
	checkInvariants(t, &req)
}
