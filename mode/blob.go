package mode

import (
	"os"
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

type (
	sysGetBlob struct {
		blobID uint32
		length uint32
		data   uint64
	}

	sysCreateBlob struct {
		data   uint64
		length uint32

		// returned by the kernel
		blobID uint32
	}

	sysDestroyBlob struct {
		blobID uint32
	}
)

// CreateBlob copies data into a new kernel-owned blob and returns its
// handle. Empty data is refused by the kernel.
func CreateBlob(file *os.File, data []byte) (BlobID, error) {
	if len(data) == 0 {
		return 0, ioctl.ErrInvalidArgument
	}
	blob := &sysCreateBlob{
		data:   uint64(uintptr(unsafe.Pointer(&data[0]))),
		length: uint32(len(data)),
	}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeCreateBlob),
		uintptr(unsafe.Pointer(blob)))
	if err != nil {
		return 0, err
	}
	return BlobID(blob.blobID), nil
}

// CreateModeBlob wraps a display mode in a blob, as consumed by a
// CRTC's MODE_ID property in atomic commits.
func CreateModeBlob(file *os.File, mode *Info) (BlobID, error) {
	buf := (*[unsafe.Sizeof(Info{})]byte)(unsafe.Pointer(mode))
	return CreateBlob(file, buf[:])
}

// GetBlob fetches a blob's contents with the two-pass protocol. If the
// blob shrank between the two calls the tail of the result is zero
// padding.
func GetBlob(file *os.File, id BlobID) ([]byte, error) {
	blob := &sysGetBlob{blobID: id.Raw()}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeGetBlob),
		uintptr(unsafe.Pointer(blob)))
	if err != nil {
		return nil, err
	}

	var data []byte
	if blob.length > 0 {
		data = make([]byte, blob.length)
		blob.data = uint64(uintptr(unsafe.Pointer(&data[0])))

		err = ioctl.Do(file.Fd(), uintptr(IOCTLModeGetBlob),
			uintptr(unsafe.Pointer(blob)))
		if err != nil {
			return nil, err
		}
	}
	return data[:min(len(data), int(blob.length))], nil
}

// DestroyBlob drops a blob created by this client. Kernel-created
// blobs (e.g. EDID) cannot be destroyed.
func DestroyBlob(file *os.File, id BlobID) error {
	blob := &sysDestroyBlob{blobID: id.Raw()}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeDestroyBlob),
		uintptr(unsafe.Pointer(blob)))
}
