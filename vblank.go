package drm

import (
	"os"
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

// Vblank request type word. The low bit selects absolute vs relative
// targeting, bits 1-5 carry the CRTC index, the high bits are flags.
const (
	VblankAbsolute = 0x0
	VblankRelative = 0x1

	vblankHighCrtcShift = 1
	vblankHighCrtcMask  = 0x0000003e

	// VblankEventFlag queues an asynchronous event instead of
	// blocking; the reply carries no timestamp.
	VblankEventFlag = 0x4000000
	// VblankNextOnMiss re-targets to the next vblank when the
	// requested sequence already passed.
	VblankNextOnMiss = 0x10000000
	// VblankSecondary is the legacy second-CRTC selector.
	VblankSecondary = 0x20000000
)

// MaxVblankCrtcIndex is the largest CRTC index expressible in the
// request type word.
const MaxVblankCrtcIndex = vblankHighCrtcMask >> vblankHighCrtcShift

// The reply layout of drm_wait_vblank; the request overlays it
// (type, sequence, signal), with signal sharing tvalSec's bytes.
type sysWaitVblank struct {
	typ      uint32
	sequence uint32
	tvalSec  int64
	tvalUsec int64
}

// VblankReply reports the vblank counter and, for blocking waits, the
// timestamp of the vblank.
type VblankReply struct {
	Frame uint32
	Sec   int64
	Usec  int64

	// HasTime is false for VblankEventFlag requests, whose timestamp is
	// delivered with the event record instead.
	HasTime bool
}

func vblankType(typ uint32, crtcIndex int) (uint32, error) {
	if crtcIndex < 0 || crtcIndex > MaxVblankCrtcIndex {
		return 0, ioctl.ErrInvalidArgument
	}
	return typ | (uint32(crtcIndex)<<vblankHighCrtcShift)&vblankHighCrtcMask, nil
}

// WaitVblank waits for a vblank on the CRTC with the given index into
// the device's CRTC list. typ combines VblankAbsolute or VblankRelative
// with the flag bits; sequence is the target counter value or delta.
// userData is returned in the event record when VblankEventFlag is set.
func WaitVblank(file *os.File, typ uint32, sequence uint32, crtcIndex int, userData uint64) (VblankReply, error) {
	t, err := vblankType(typ, crtcIndex)
	if err != nil {
		return VblankReply{}, err
	}

	// Zeroed so reply fields the kernel leaves untouched (e.g. the
	// timestamp for event requests) read as zero.
	w := &sysWaitVblank{typ: t, sequence: sequence}
	w.tvalSec = int64(userData) // request.signal shares these bytes

	err = ioctl.Do(file.Fd(), uintptr(IOCTLWaitVblank),
		uintptr(unsafe.Pointer(w)))
	if err != nil {
		return VblankReply{}, err
	}

	reply := VblankReply{Frame: w.sequence}
	if typ&VblankEventFlag == 0 {
		reply.Sec = w.tvalSec
		reply.Usec = w.tvalUsec
		reply.HasTime = true
	}
	return reply, nil
}
