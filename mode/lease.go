package mode

import (
	"os"
	"unsafe"

	"github.com/gokms/drm/ioctl"
	"golang.org/x/sys/unix"
)

type (
	sysCreateLease struct {
		objectIDs   uint64
		objectCount uint32
		flags       uint32

		// returned by the kernel
		lesseeID uint32
		fd       uint32
	}

	sysListLessees struct {
		countLessees uint32
		pad          uint32
		lesseesPtr   uint64
	}

	sysGetLease struct {
		countObjects uint32
		pad          uint32
		objectsPtr   uint64
	}

	sysRevokeLease struct {
		lesseeID uint32
	}

	// Lease is a new lessee's id together with the drm fd that holds
	// the leased objects.
	Lease struct {
		LesseeID uint32
		File     *os.File
	}
)

// CreateLease carves the given objects out of this master into a new
// drm fd. The objects stay visible to the lessor but only the lessee
// may drive them. Closing the returned file ends the lease.
func CreateLease(file *os.File, objects []ObjectID, cloexec bool) (*Lease, error) {
	if len(objects) == 0 {
		return nil, ioctl.ErrInvalidArgument
	}
	ids := make([]uint32, len(objects))
	for i, obj := range objects {
		ids[i] = obj.Raw()
	}

	var flags uint32
	if cloexec {
		flags = unix.O_CLOEXEC
	}
	lease := &sysCreateLease{
		objectIDs:   uint64(uintptr(unsafe.Pointer(&ids[0]))),
		objectCount: uint32(len(ids)),
		flags:       flags,
	}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeCreateLease),
		uintptr(unsafe.Pointer(lease)))
	if err != nil {
		return nil, err
	}
	return &Lease{
		LesseeID: lease.lesseeID,
		File:     os.NewFile(uintptr(lease.fd), "drm-lease"),
	}, nil
}

// ListLessees fetches the lessee ids of this master with the two-pass
// protocol.
func ListLessees(file *os.File) ([]uint32, error) {
	list := &sysListLessees{}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeListLessees),
		uintptr(unsafe.Pointer(list)))
	if err != nil {
		return nil, err
	}

	var lessees []uint32
	if list.countLessees > 0 {
		lessees = make([]uint32, list.countLessees)
		list.lesseesPtr = uint64(uintptr(unsafe.Pointer(&lessees[0])))

		err = ioctl.Do(file.Fd(), uintptr(IOCTLModeListLessees),
			uintptr(unsafe.Pointer(list)))
		if err != nil {
			return nil, err
		}
	}
	return lessees[:min(len(lessees), int(list.countLessees))], nil
}

// GetLease fetches the raw object ids a leased fd holds with the
// two-pass protocol.
func GetLease(file *os.File) ([]uint32, error) {
	lease := &sysGetLease{}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeGetLease),
		uintptr(unsafe.Pointer(lease)))
	if err != nil {
		return nil, err
	}

	var objects []uint32
	if lease.countObjects > 0 {
		objects = make([]uint32, lease.countObjects)
		lease.objectsPtr = uint64(uintptr(unsafe.Pointer(&objects[0])))

		err = ioctl.Do(file.Fd(), uintptr(IOCTLModeGetLease),
			uintptr(unsafe.Pointer(lease)))
		if err != nil {
			return nil, err
		}
	}
	return objects[:min(len(objects), int(lease.countObjects))], nil
}

// RevokeLease ends a lease from the lessor side. The lessee keeps its
// fd but every mode-setting call on it fails from then on.
func RevokeLease(file *os.File, lesseeID uint32) error {
	revoke := &sysRevokeLease{lesseeID: lesseeID}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeRevokeLease),
		uintptr(unsafe.Pointer(revoke)))
}
