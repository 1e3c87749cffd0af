package mode

import (
	"os"
	"unsafe"

	"github.com/gokms/drm/ioctl"
	"launchpad.net/gommap"
)

type (
	sysCreateDumb struct {
		height, width uint32
		bpp           uint32
		flags         uint32

		// returned by the kernel
		handle uint32
		pitch  uint32
		size   uint64
	}

	sysMapDumb struct {
		handle uint32 // handle of the buffer
		pad    uint32

		// fake offset to use for subsequent mmap call
		offset uint64
	}

	sysDestroyDumb struct {
		handle uint32
	}

	// DumbBuffer is a kernel-allocated, CPU-mappable scan-out buffer.
	// Pitch and Size are chosen by the driver and may exceed the
	// caller's geometry due to alignment.
	DumbBuffer struct {
		Handle uint32

		Width, Height uint32
		BPP           uint32
		Pitch         uint32
		Size          uint64
	}
)

// CreateDumb allocates a dumb buffer sized for width x height pixels at
// bpp bits per pixel. Requires the dumb-buffer capability
// (drm.HasDumbBuffer).
func CreateDumb(file *os.File, width, height uint32, bpp uint32) (*DumbBuffer, error) {
	d := &sysCreateDumb{width: width, height: height, bpp: bpp}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeCreateDumb),
		uintptr(unsafe.Pointer(d)))
	if err != nil {
		return nil, err
	}
	return &DumbBuffer{
		Handle: d.handle,
		Width:  width,
		Height: height,
		BPP:    bpp,
		Pitch:  d.pitch,
		Size:   d.size,
	}, nil
}

// MapDumb prepares a dumb buffer for mapping and returns the fake
// offset to mmap the device fd at.
func MapDumb(file *os.File, handle uint32) (uint64, error) {
	m := &sysMapDumb{handle: handle}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeMapDumb),
		uintptr(unsafe.Pointer(m)))
	if err != nil {
		return 0, err
	}
	return m.offset, nil
}

// Map maps the whole dumb buffer read-write into this process.
func (d *DumbBuffer) Map(file *os.File) (gommap.MMap, error) {
	offset, err := MapDumb(file, d.Handle)
	if err != nil {
		return nil, err
	}
	return gommap.MapAt(0, file.Fd(), int64(offset), int64(d.Size),
		gommap.PROT_READ|gommap.PROT_WRITE, gommap.MAP_SHARED)
}

// DestroyDumb frees a dumb buffer. Mappings of it must be unmapped
// first.
func DestroyDumb(file *os.File, handle uint32) error {
	d := &sysDestroyDumb{handle: handle}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeDestroyDumb),
		uintptr(unsafe.Pointer(d)))
}
