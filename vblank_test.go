package drm

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokms/drm/ioctl"
)

func TestVblankType(t *testing.T) {
	typ, err := vblankType(VblankRelative, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(VblankRelative), typ)

	// index 1 maps to the secondary-crtc bit position
	typ, err = vblankType(VblankAbsolute, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1<<vblankHighCrtcShift), typ)

	typ, err = vblankType(VblankRelative|VblankEventFlag, MaxVblankCrtcIndex)
	require.NoError(t, err)
	assert.Equal(t, uint32(vblankHighCrtcMask|VblankRelative|VblankEventFlag), typ)
}

func TestVblankTypeBadIndex(t *testing.T) {
	_, err := vblankType(VblankRelative, -1)
	assert.True(t, errors.Is(err, ioctl.ErrInvalidArgument))

	_, err = vblankType(VblankRelative, MaxVblankCrtcIndex+1)
	assert.True(t, errors.Is(err, ioctl.ErrInvalidArgument))
}

func TestMonotonicDeadline(t *testing.T) {
	a, err := MonotonicDeadline(time.Second)
	require.NoError(t, err)
	b, err := MonotonicDeadline(2 * time.Second)
	require.NoError(t, err)
	assert.Greater(t, b, a)
	assert.NotZero(t, a)
}
