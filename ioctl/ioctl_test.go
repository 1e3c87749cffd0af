package ioctl

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func getbits(n uint32) string {
	return strconv.FormatUint(uint64(n), 2)
}

func TestNewCode(t *testing.T) {
	code := NewCode(Read, 0x218, 'r', 1)
	expected := uint32(0x82187201)
	if code != expected {
		t.Errorf("Expected %s but got %s", getbits(expected),
			getbits(code))
		return
	}
}

func TestNewCodeNone(t *testing.T) {
	// DRM_IO(0x1e), the set-master request
	code := NewCode(None, 0, 'd', 0x1e)
	assert.Equal(t, uint32(0x641e), code)
}

func TestNewCodePanics(t *testing.T) {
	assert.Panics(t, func() { NewCode(8, 0, 'd', 0) })
	assert.Panics(t, func() { NewCode(None, 40000, 'd', 0) })
}

func TestTranslate(t *testing.T) {
	for _, tc := range []struct {
		errno unix.Errno
		kind  Kind
	}{
		{unix.EBADF, InvalidFileDescriptor},
		{unix.ENOTTY, InvalidFileDescriptor},
		{unix.EFAULT, MemoryFault},
		{unix.EINVAL, InvalidArgument},
		{unix.EACCES, PermissionDenied},
		{unix.EPERM, PermissionDenied},
		{unix.EBUSY, Busy},
		{unix.ENOSPC, NoSpace},
		{unix.ENODEV, Unknown},
		{unix.EIO, Unknown},
	} {
		err := translate(tc.errno)
		require.Error(t, err)

		var ioctlErr *Error
		require.True(t, errors.As(err, &ioctlErr), "errno %d", tc.errno)
		assert.Equal(t, tc.kind, ioctlErr.Kind, "errno %d", tc.errno)
		assert.Equal(t, tc.errno, ioctlErr.Errno)
		assert.True(t, errors.Is(err, tc.errno))
	}
}

func TestTranslateSentinels(t *testing.T) {
	assert.True(t, errors.Is(translate(unix.EINVAL), ErrInvalidArgument))
	assert.True(t, errors.Is(translate(unix.EBUSY), ErrBusy))
	assert.True(t, errors.Is(translate(unix.EPERM), ErrPermissionDenied))
	assert.False(t, errors.Is(translate(unix.EINVAL), ErrBusy))

	// unknown errnos match no sentinel
	assert.False(t, errors.Is(translate(unix.EIO), ErrInvalidArgument))
}

func TestErrorString(t *testing.T) {
	err := translate(unix.EINVAL)
	assert.Contains(t, err.Error(), "invalid argument")
}
