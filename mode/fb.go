package mode

import (
	"os"
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

// Framebuffer flags accepted by AddFB2.
const (
	FBInterlaced = 1 << 0 // for interlaced framebuffers
	FBModifiers  = 1 << 1 // enables the modifier fields
)

// Annotation hints for DirtyFB.
const (
	DirtyAnnotateCopy = 0x01
	DirtyAnnotateFill = 0x02

	// MaxDirtyClips is the kernel's per-call clip-rect limit.
	MaxDirtyClips = 256
)

type (
	sysFBCmd struct {
		fbID   uint32
		width  uint32
		height uint32
		pitch  uint32
		bpp    uint32
		depth  uint32

		// driver-specific handle
		handle uint32
	}

	sysFBCmd2 struct {
		fbID        uint32
		width       uint32
		height      uint32
		pixelFormat uint32 // fourcc code
		flags       uint32

		// Per-plane GEM handle; unused planes stay zero.
		handles  [4]uint32
		pitches  [4]uint32 // pitch for each plane
		offsets  [4]uint32 // offset of each plane
		modifier [4]uint64 // tiling/compression layout per plane
	}

	sysFBDirtyCmd struct {
		fbID     uint32
		flags    uint32
		color    uint32
		numClips uint32
		clipsPtr uint64
	}

	// ClipRect is a kernel drm_clip_rect: x1/y1 inclusive, x2/y2
	// exclusive.
	ClipRect struct {
		X1, Y1 uint16
		X2, Y2 uint16
	}

	// FB describes a legacy (single-plane) framebuffer as reported by
	// GetFB.
	FB struct {
		ID     FBID
		Width  uint32
		Height uint32
		Pitch  uint32
		BPP    uint32
		Depth  uint32
		Handle uint32
	}

	// FBPlane is one plane of a multi-planar framebuffer for AddFB2.
	FBPlane struct {
		Handle   uint32
		Pitch    uint32
		Offset   uint32
		Modifier uint64
	}
)

// AddFB registers a single-plane buffer object as a framebuffer using
// the legacy depth/bpp description and returns its handle.
func AddFB(file *os.File, width, height uint16, depth, bpp uint8, pitch, boHandle uint32) (FBID, error) {
	f := &sysFBCmd{
		width:  uint32(width),
		height: uint32(height),
		pitch:  pitch,
		bpp:    uint32(bpp),
		depth:  uint32(depth),
		handle: boHandle,
	}

	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeAddFB),
		uintptr(unsafe.Pointer(f)))
	if err != nil {
		return 0, err
	}
	return FBID(f.fbID), nil
}

// AddFB2 registers a framebuffer with an explicit fourcc pixel format
// and up to four planes. Modifiers are honored only with FBModifiers
// set in flags.
func AddFB2(file *os.File, width, height uint32, pixelFormat uint32, flags uint32, planes []FBPlane) (FBID, error) {
	if len(planes) == 0 || len(planes) > 4 {
		return 0, ioctl.ErrInvalidArgument
	}
	f := &sysFBCmd2{
		width:       width,
		height:      height,
		pixelFormat: pixelFormat,
		flags:       flags,
	}
	for i, p := range planes {
		f.handles[i] = p.Handle
		f.pitches[i] = p.Pitch
		f.offsets[i] = p.Offset
		f.modifier[i] = p.Modifier
	}

	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeAddFB2),
		uintptr(unsafe.Pointer(f)))
	if err != nil {
		return 0, err
	}
	return FBID(f.fbID), nil
}

// GetFB loads a framebuffer's legacy description. The returned Handle
// is a fresh reference owned by the caller (close it with
// drm.CloseGem); it is zero when the framebuffer's buffer cannot be
// exposed to this client.
func GetFB(file *os.File, id FBID) (*FB, error) {
	f := &sysFBCmd{fbID: id.Raw()}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeGetFB),
		uintptr(unsafe.Pointer(f)))
	if err != nil {
		return nil, err
	}
	return &FB{
		ID:     id,
		Width:  f.width,
		Height: f.height,
		Pitch:  f.pitch,
		BPP:    f.bpp,
		Depth:  f.depth,
		Handle: f.handle,
	}, nil
}

// RmFB destroys a framebuffer. CRTCs currently scanning it out are
// disabled by the kernel.
func RmFB(file *os.File, id FBID) error {
	fbID := id.Raw()
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeRmFB),
		uintptr(unsafe.Pointer(&fbID)))
}

// DirtyFB flushes damaged regions of a framebuffer to the hardware, for
// drivers that do not continuously scan out (e.g. USB displays). With
// no clips the whole framebuffer is flushed.
func DirtyFB(file *os.File, id FBID, flags, color uint32, clips []ClipRect) error {
	if len(clips) > MaxDirtyClips {
		return ioctl.ErrInvalidArgument
	}
	cmd := &sysFBDirtyCmd{
		fbID:  id.Raw(),
		flags: flags,
		color: color,
	}
	if len(clips) > 0 {
		cmd.numClips = uint32(len(clips))
		cmd.clipsPtr = uint64(uintptr(unsafe.Pointer(&clips[0])))
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeDirtyFB),
		uintptr(unsafe.Pointer(cmd)))
}
