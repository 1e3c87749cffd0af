package mode

import (
	"os"
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

// Values of a plane's "type" property.
const (
	PlaneTypeOverlay = 0
	PlaneTypePrimary = 1
	PlaneTypeCursor  = 2
)

type (
	sysGetPlaneRes struct {
		planeIDPtr  uint64
		countPlanes uint32
	}

	sysGetPlane struct {
		planeID uint32

		crtcID uint32
		fbID   uint32

		possibleCrtcs uint32
		gammaSize     uint32

		countFormatTypes uint32
		formatTypePtr    uint64
	}

	sysSetPlane struct {
		planeID uint32
		crtcID  uint32
		fbID    uint32 // fb object contains surface format type
		flags   uint32

		// signed dest location allows it to be partially off screen
		crtcX, crtcY int32
		crtcW, crtcH uint32

		// source values are 16.16 fixed point
		srcX, srcY uint32
		srcH, srcW uint32
	}

	// Plane describes one compositing plane. PossibleCrtcs is a
	// bitmask of indices into the device's CRTC list; Formats lists
	// the supported fourcc pixel formats.
	Plane struct {
		ID PlaneID

		CRTC CRTCID // zero when unbound
		FB   FBID   // zero when no buffer attached

		PossibleCrtcs uint32
		GammaSize     uint32

		Formats []uint32
	}
)

// GetPlaneResources fetches the device's plane handles with the
// two-pass protocol. Without the universal-planes client capability the
// kernel hides primary and cursor planes.
func GetPlaneResources(file *os.File) ([]PlaneID, error) {
	res := &sysGetPlaneRes{}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeGetPlaneResources),
		uintptr(unsafe.Pointer(res)))
	if err != nil {
		return nil, err
	}

	var planes []PlaneID
	if res.countPlanes > 0 {
		planes = make([]PlaneID, res.countPlanes)
		res.planeIDPtr = uint64(uintptr(unsafe.Pointer(&planes[0])))
	}

	err = ioctl.Do(file.Fd(), uintptr(IOCTLModeGetPlaneResources),
		uintptr(unsafe.Pointer(res)))
	if err != nil {
		return nil, err
	}
	return planes[:min(len(planes), int(res.countPlanes))], nil
}

// GetPlane loads a plane's info, fetching the format list with the
// two-pass protocol.
func GetPlane(file *os.File, id PlaneID) (*Plane, error) {
	plane := &sysGetPlane{planeID: id.Raw()}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeGetPlane),
		uintptr(unsafe.Pointer(plane)))
	if err != nil {
		return nil, err
	}

	var formats []uint32
	if plane.countFormatTypes > 0 {
		formats = make([]uint32, plane.countFormatTypes)
		plane.formatTypePtr = uint64(uintptr(unsafe.Pointer(&formats[0])))

		err = ioctl.Do(file.Fd(), uintptr(IOCTLModeGetPlane),
			uintptr(unsafe.Pointer(plane)))
		if err != nil {
			return nil, err
		}
	}

	return &Plane{
		ID:            id,
		CRTC:          CRTCID(plane.crtcID),
		FB:            FBID(plane.fbID),
		PossibleCrtcs: plane.possibleCrtcs,
		GammaSize:     plane.gammaSize,
		Formats:       formats[:min(len(formats), int(plane.countFormatTypes))],
	}, nil
}

// SetPlane attaches fb to the plane and scans the source rectangle
// (in 16.16 fixed-point buffer coordinates) out to the destination
// rectangle on the CRTC. A zero fb disables the plane.
func SetPlane(file *os.File, id PlaneID, crtc CRTCID, fb FBID,
	flags uint32,
	crtcX, crtcY int32, crtcW, crtcH uint32,
	srcX, srcY, srcW, srcH uint32) error {

	plane := &sysSetPlane{
		planeID: id.Raw(),
		crtcID:  crtc.Raw(),
		fbID:    fb.Raw(),
		flags:   flags,
		crtcX:   crtcX,
		crtcY:   crtcY,
		crtcW:   crtcW,
		crtcH:   crtcH,
		srcX:    srcX,
		srcY:    srcY,
		srcW:    srcW,
		srcH:    srcH,
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeSetPlane),
		uintptr(unsafe.Pointer(plane)))
}
