package drm

import (
	"bytes"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

type (
	sysVersion struct {
		major   int32
		minor   int32
		patch   int32
		namelen int64
		name    uintptr
		datelen int64
		date    uintptr
		desclen int64
		desc    uintptr
	}

	// Version of the DRM driver behind a device node.
	Version struct {
		Major, Minor, Patch int32
		Name                string // driver name (eg.: i915)
		Date                string
		Desc                string
	}

	sysUnique struct {
		uniqueLen int64
		unique    uintptr
	}

	sysSetVersion struct {
		diMajor int32
		diMinor int32
		ddMajor int32
		ddMinor int32
	}
)

const driPath = "/dev/dri"

// Available reports the driver version of the first card, or an error
// when no DRM device can be opened.
func Available() (Version, error) {
	f, err := OpenCard(0)
	if err != nil {
		return Version{}, err
	}
	defer f.Close()
	return GetVersion(f)
}

// OpenNode opens the n-th node of the given type under /dev/dri.
func OpenNode(typ NodeType, n int) (*os.File, error) {
	return open(filepath.Join(driPath, nodeName(typ, n)))
}

// OpenCard opens the n-th primary node.
func OpenCard(n int) (*os.File, error) {
	return OpenNode(NodePrimary, n)
}

// OpenControlDev opens the n-th control node.
func OpenControlDev(n int) (*os.File, error) {
	return OpenNode(NodeControl, n)
}

// OpenRenderDev opens the n-th render node.
func OpenRenderDev(n int) (*os.File, error) {
	return OpenNode(NodeRender, n)
}

func open(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR, 0)
}

// GetVersion reads the driver version. The string fields use the
// two-pass protocol: the first call reports the lengths, the second
// fills caller buffers.
func GetVersion(file *os.File) (Version, error) {
	var name, date, desc []byte

	version := &sysVersion{}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLVersion),
		uintptr(unsafe.Pointer(version)))
	if err != nil {
		return Version{}, err
	}

	if version.namelen > 0 {
		name = make([]byte, version.namelen+1)
		version.name = uintptr(unsafe.Pointer(&name[0]))
	}
	if version.datelen > 0 {
		date = make([]byte, version.datelen+1)
		version.date = uintptr(unsafe.Pointer(&date[0]))
	}
	if version.desclen > 0 {
		desc = make([]byte, version.desclen+1)
		version.desc = uintptr(unsafe.Pointer(&desc[0]))
	}

	err = ioctl.Do(file.Fd(), uintptr(IOCTLVersion),
		uintptr(unsafe.Pointer(version)))
	if err != nil {
		return Version{}, err
	}

	v := Version{
		Major: version.major,
		Minor: version.minor,
		Patch: version.patch,
		Name:  cstring(name[:version.namelen]),
		Date:  cstring(date[:version.datelen]),
		Desc:  cstring(desc[:version.desclen]),
	}
	return v, nil
}

// SetVersion requests a specific DRM interface version. A value of -1
// leaves the corresponding component unchanged.
func SetVersion(file *os.File, diMajor, diMinor, ddMajor, ddMinor int32) error {
	sv := &sysSetVersion{
		diMajor: diMajor,
		diMinor: diMinor,
		ddMajor: ddMajor,
		ddMinor: ddMinor,
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLSetVersion),
		uintptr(unsafe.Pointer(sv)))
}

// GetBusID reads the bus identifier of the device, e.g. "pci:0000:00:02.0".
func GetBusID(file *os.File) (string, error) {
	u := &sysUnique{}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLGetUnique),
		uintptr(unsafe.Pointer(u)))
	if err != nil {
		return "", err
	}
	if u.uniqueLen == 0 {
		return "", nil
	}

	buf := make([]byte, u.uniqueLen+1)
	u.unique = uintptr(unsafe.Pointer(&buf[0]))
	err = ioctl.Do(file.Fd(), uintptr(IOCTLGetUnique),
		uintptr(unsafe.Pointer(u)))
	if err != nil {
		return "", err
	}
	return cstring(buf[:u.uniqueLen]), nil
}

// cstring drops everything from the first NUL byte on.
func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
