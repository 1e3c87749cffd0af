package mode

import (
	"os"
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

// Page-flip flags.
const (
	// PageFlipEvent queues a completion event on the device fd.
	PageFlipEvent = 0x01
	// PageFlipAsync flips immediately instead of at the next vblank;
	// most drivers restrict what may change asynchronously.
	PageFlipAsync = 0x02

	// Target flags select the vblank the flip aims at and consume
	// the sequence argument of PageFlipTarget.
	PageFlipTargetAbsolute = 0x4
	PageFlipTargetRelative = 0x8
)

const (
	cursorFlagBO   = 0x01
	cursorFlagMove = 0x02
)

type (
	sysPageFlip struct {
		crtcID uint32
		fbID   uint32
		flags  uint32

		// carries the target sequence for flag-targeted flips
		reserved uint32
		userData uint64
	}

	sysCursor struct {
		flags  uint32
		crtcID uint32
		x, y   int32
		width  uint32
		height uint32
		handle uint32 // driver specific handle
	}

	sysCursor2 struct {
		flags  uint32
		crtcID uint32
		x, y   int32
		width  uint32
		height uint32
		handle uint32
		hotX   int32
		hotY   int32
	}

	sysCrtcLut struct {
		crtcID    uint32
		gammaSize uint32

		// pointers to arrays
		red   uint64
		green uint64
		blue  uint64
	}
)

// PageFlip schedules fb to replace the CRTC's scan-out buffer at the
// next vblank. The kernel rejects a flip while another is pending on
// the same CRTC (ioctl.ErrBusy).
func PageFlip(file *os.File, crtc CRTCID, fb FBID, flags uint32, userData uint64) error {
	f := &sysPageFlip{
		crtcID:   crtc.Raw(),
		fbID:     fb.Raw(),
		flags:    flags,
		userData: userData,
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModePageFlip),
		uintptr(unsafe.Pointer(f)))
}

// PageFlipTarget schedules a flip aimed at a vblank sequence, given
// absolutely or relative to the current count per the target flag in
// flags.
func PageFlipTarget(file *os.File, crtc CRTCID, fb FBID, flags uint32, sequence uint32, userData uint64) error {
	f := &sysPageFlip{
		crtcID:   crtc.Raw(),
		fbID:     fb.Raw(),
		flags:    flags,
		reserved: sequence,
		userData: userData,
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModePageFlip),
		uintptr(unsafe.Pointer(f)))
}

// SetCursor attaches a buffer object as the CRTC's cursor image. A
// zero handle hides the cursor.
func SetCursor(file *os.File, crtc CRTCID, boHandle uint32, width, height uint32) error {
	c := &sysCursor{
		flags:  cursorFlagBO,
		crtcID: crtc.Raw(),
		width:  width,
		height: height,
		handle: boHandle,
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeCursor),
		uintptr(unsafe.Pointer(c)))
}

// SetCursor2 is SetCursor with a hotspot, the point within the image
// that sits on the pointer position.
func SetCursor2(file *os.File, crtc CRTCID, boHandle uint32, width, height uint32, hotX, hotY int32) error {
	c := &sysCursor2{
		flags:  cursorFlagBO,
		crtcID: crtc.Raw(),
		width:  width,
		height: height,
		handle: boHandle,
		hotX:   hotX,
		hotY:   hotY,
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeCursor2),
		uintptr(unsafe.Pointer(c)))
}

// MoveCursor positions the CRTC's cursor.
func MoveCursor(file *os.File, crtc CRTCID, x, y int32) error {
	c := &sysCursor{
		flags:  cursorFlagMove,
		crtcID: crtc.Raw(),
		x:      x,
		y:      y,
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeCursor),
		uintptr(unsafe.Pointer(c)))
}

// GetGamma reads the CRTC's gamma lookup table into the three slices,
// which must all have the CRTC's gamma size.
func GetGamma(file *os.File, crtc CRTCID, red, green, blue []uint16) error {
	lut, err := gammaLut(crtc, red, green, blue)
	if err != nil {
		return err
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeGetGamma),
		uintptr(unsafe.Pointer(lut)))
}

// SetGamma programs the CRTC's gamma lookup table from the three
// slices, which must all have the CRTC's gamma size.
func SetGamma(file *os.File, crtc CRTCID, red, green, blue []uint16) error {
	lut, err := gammaLut(crtc, red, green, blue)
	if err != nil {
		return err
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeSetGamma),
		uintptr(unsafe.Pointer(lut)))
}

func gammaLut(crtc CRTCID, red, green, blue []uint16) (*sysCrtcLut, error) {
	if len(red) == 0 || len(red) != len(green) || len(red) != len(blue) {
		return nil, ioctl.ErrInvalidArgument
	}
	return &sysCrtcLut{
		crtcID:    crtc.Raw(),
		gammaSize: uint32(len(red)),
		red:       uint64(uintptr(unsafe.Pointer(&red[0]))),
		green:     uint64(uintptr(unsafe.Pointer(&green[0]))),
		blue:      uint64(uintptr(unsafe.Pointer(&blue[0]))),
	}, nil
}
