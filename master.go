package drm

import (
	"os"
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

type sysAuth struct {
	magic uint32
}

// SetMaster acquires the DRM master lock for this file description.
// At most one file description per device holds it; most mode-setting
// operations require it.
func SetMaster(file *os.File) error {
	return ioctl.Do(file.Fd(), uintptr(IOCTLSetMaster), 0)
}

// DropMaster releases the DRM master lock.
func DropMaster(file *os.File) error {
	return ioctl.Do(file.Fd(), uintptr(IOCTLDropMaster), 0)
}

// GetMagic generates a magic authentication token unique to this file
// description. The token can be passed to the process holding the
// master lock, which validates it with AuthMagic.
func GetMagic(file *os.File) (uint32, error) {
	auth := &sysAuth{}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLGetMagic),
		uintptr(unsafe.Pointer(auth)))
	if err != nil {
		return 0, err
	}
	return auth.magic, nil
}

// AuthMagic authenticates another client's magic token. Must be called
// on the file description holding the master lock.
func AuthMagic(file *os.File, magic uint32) error {
	auth := &sysAuth{magic: magic}
	return ioctl.Do(file.Fd(), uintptr(IOCTLAuthMagic),
		uintptr(unsafe.Pointer(auth)))
}
