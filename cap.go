package drm

import (
	"os"
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

type (
	sysCapability struct {
		cap uint64
		val uint64
	}

	sysClientCap struct {
		cap uint64
		val uint64
	}
)

// Driver capabilities (DRM_CAP_*). Read-only; queried with GetCap.
const (
	CapDumbBuffer          = 0x1
	CapVBlankHighCRTC      = 0x2
	CapDumbPreferredDepth  = 0x3
	CapDumbPreferShadow    = 0x4
	CapPrime               = 0x5
	CapTimestampMonotonic  = 0x6
	CapAsyncPageFlip       = 0x7
	CapCursorWidth         = 0x8
	CapCursorHeight        = 0x9
	CapAddFB2Modifiers     = 0x10
	CapPageFlipTarget      = 0x11
	CapCrtcInVblankEvent   = 0x12
	CapSyncobj             = 0x13
	CapSyncobjTimeline     = 0x14
	CapAtomicAsyncPageFlip = 0x15
)

// Bits of the CapPrime value.
const (
	PrimeCapImport = 0x1
	PrimeCapExport = 0x2
)

// Client capabilities (DRM_CLIENT_CAP_*). Writable toggles that change
// how the kernel presents objects on this file description; set with
// SetClientCap.
const (
	ClientCapStereo3D            = 1
	ClientCapUniversalPlanes     = 2
	ClientCapAtomic              = 3 // implies universal planes
	ClientCapAspectRatio         = 4
	ClientCapWritebackConnectors = 5 // requires atomic
	ClientCapCursorPlaneHotspot  = 6 // requires atomic
)

// GetCap queries a read-only driver capability.
func GetCap(file *os.File, cap uint64) (uint64, error) {
	c := &sysCapability{cap: cap}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLGetCap),
		uintptr(unsafe.Pointer(c)))
	if err != nil {
		return 0, err
	}
	return c.val, nil
}

// SetClientCap toggles a client capability on this file description.
// ClientCapAtomic must be enabled before any atomic commit.
func SetClientCap(file *os.File, cap uint64, enable bool) error {
	c := &sysClientCap{cap: cap}
	if enable {
		c.val = 1
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLSetClientCap),
		uintptr(unsafe.Pointer(c)))
}

// HasDumbBuffer reports whether the driver supports generic dumb
// buffers.
func HasDumbBuffer(file *os.File) bool {
	val, err := GetCap(file, CapDumbBuffer)
	return err == nil && val != 0
}
