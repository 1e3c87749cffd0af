package mode

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/gokms/drm/ioctl"
)

func TestAddFB2PlaneCount(t *testing.T) {
	_, err := AddFB2(nil, 1, 1, 0, 0, nil)
	assert.True(t, errors.Is(err, ioctl.ErrInvalidArgument))

	_, err = AddFB2(nil, 1, 1, 0, 0, make([]FBPlane, 5))
	assert.True(t, errors.Is(err, ioctl.ErrInvalidArgument))
}

func TestGammaLutValidation(t *testing.T) {
	_, err := gammaLut(CRTCID(1), nil, nil, nil)
	assert.True(t, errors.Is(err, ioctl.ErrInvalidArgument))

	_, err = gammaLut(CRTCID(1), make([]uint16, 256), make([]uint16, 256),
		make([]uint16, 255))
	assert.True(t, errors.Is(err, ioctl.ErrInvalidArgument))

	lut, err := gammaLut(CRTCID(1), make([]uint16, 256), make([]uint16, 256),
		make([]uint16, 256))
	assert.NoError(t, err)
	assert.Equal(t, uint32(256), lut.gammaSize)
}

func TestDirtyFBClipLimit(t *testing.T) {
	err := DirtyFB(nil, FBID(1), 0, 0, make([]ClipRect, MaxDirtyClips+1))
	assert.True(t, errors.Is(err, ioctl.ErrInvalidArgument))
}

func TestModeName(t *testing.T) {
	var m Info
	copy(m.Name[:], "1920x1080")
	assert.Equal(t, "1920x1080", m.ModeName())
}

func TestModeInfoSize(t *testing.T) {
	// struct drm_mode_modeinfo is 68 bytes on every architecture
	assert.Equal(t, uintptr(68), unsafe.Sizeof(Info{}))
}
