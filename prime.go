package drm

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/gokms/drm/ioctl"
)

type (
	sysPrimeHandle struct {
		handle uint32
		flags  uint32
		fd     int32
	}

	sysGemOpen struct {
		name   uint32
		handle uint32
		size   uint64
	}

	sysGemClose struct {
		handle uint32
		pad    uint32
	}

	sysGemFlink struct {
		handle uint32
		name   uint32
	}
)

// Flags accepted by PrimeHandleToFD. Exported fds are close-on-exec
// unless PrimeCloexec is left out deliberately.
const (
	PrimeCloexec = uint32(unix.O_CLOEXEC)
	PrimeRDWR    = uint32(unix.O_RDWR)
)

// PrimeHandleToFD exports a driver-local buffer handle as a dma-buf
// file descriptor that can be passed to other processes.
func PrimeHandleToFD(file *os.File, handle uint32, flags uint32) (int, error) {
	p := &sysPrimeHandle{handle: handle, flags: flags}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLPrimeHandleToFD),
		uintptr(unsafe.Pointer(p)))
	if err != nil {
		return -1, err
	}
	return int(p.fd), nil
}

// PrimeFDToHandle imports a dma-buf file descriptor as a driver-local
// buffer handle.
func PrimeFDToHandle(file *os.File, fd int) (uint32, error) {
	p := &sysPrimeHandle{fd: int32(fd)}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLPrimeFDToHandle),
		uintptr(unsafe.Pointer(p)))
	if err != nil {
		return 0, err
	}
	return p.handle, nil
}

// OpenGem opens a GEM object by its global flink name and returns the
// local handle and object size.
func OpenGem(file *os.File, name uint32) (uint32, uint64, error) {
	g := &sysGemOpen{name: name}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLGemOpen),
		uintptr(unsafe.Pointer(g)))
	if err != nil {
		return 0, 0, err
	}
	return g.handle, g.size, nil
}

// CloseGem releases a GEM buffer handle.
func CloseGem(file *os.File, handle uint32) error {
	g := &sysGemClose{handle: handle}
	return ioctl.Do(file.Fd(), uintptr(IOCTLGemClose),
		uintptr(unsafe.Pointer(g)))
}

// FlinkGem publishes a GEM handle under a global name.
func FlinkGem(file *os.File, handle uint32) (uint32, error) {
	g := &sysGemFlink{handle: handle}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLGemFlink),
		uintptr(unsafe.Pointer(g)))
	if err != nil {
		return 0, err
	}
	return g.name, nil
}
