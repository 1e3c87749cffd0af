package mode

import (
	"os"
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

const (
	DisplayInfoLen   = 32
	ConnectorNameLen = 32
	DisplayModeLen   = 32
	PropNameLen      = 32
)

// Connection states of a connector.
const (
	Connected         = 1
	Disconnected      = 2
	UnknownConnection = 3
)

// Connector types (DRM_MODE_CONNECTOR_*).
const (
	ConnectorUnknown     = 0
	ConnectorVGA         = 1
	ConnectorDVII        = 2
	ConnectorDVID        = 3
	ConnectorDVIA        = 4
	ConnectorComposite   = 5
	ConnectorSVideo      = 6
	ConnectorLVDS        = 7
	ConnectorComponent   = 8
	Connector9PinDIN     = 9
	ConnectorDisplayPort = 10
	ConnectorHDMIA       = 11
	ConnectorHDMIB       = 12
	ConnectorTV          = 13
	ConnectorEDP         = 14
	ConnectorVirtual     = 15
	ConnectorDSI         = 16
	ConnectorDPI         = 17
	ConnectorWriteback   = 18
	ConnectorSPI         = 19
	ConnectorUSB         = 20
)

var connectorTypeNames = []string{
	"Unknown", "VGA", "DVI-I", "DVI-D", "DVI-A", "Composite", "SVIDEO",
	"LVDS", "Component", "DIN", "DP", "HDMI-A", "HDMI-B", "TV", "eDP",
	"Virtual", "DSI", "DPI", "Writeback", "SPI", "USB",
}

// ConnectorTypeName returns the conventional name of a connector type.
func ConnectorTypeName(typ uint32) string {
	if int(typ) < len(connectorTypeNames) {
		return connectorTypeNames[typ]
	}
	return "Unknown"
}

type (
	sysResources struct {
		fbIDPtr              uint64
		crtcIDPtr            uint64
		connectorIDPtr       uint64
		encoderIDPtr         uint64
		countFbs             uint32
		countCrtcs           uint32
		countConnectors      uint32
		countEncoders        uint32
		minWidth, maxWidth   uint32
		minHeight, maxHeight uint32
	}

	sysGetConnector struct {
		encodersPtr   uint64
		modesPtr      uint64
		propsPtr      uint64
		propValuesPtr uint64

		countModes    uint32
		countProps    uint32
		countEncoders uint32

		encoderID       uint32 // current encoder
		connectorID     uint32
		connectorType   uint32
		connectorTypeID uint32

		connection        uint32
		mmWidth, mmHeight uint32
		subpixel          uint32
		pad               uint32
	}

	sysGetEncoder struct {
		id  uint32
		typ uint32

		crtcID uint32

		possibleCrtcs  uint32
		possibleClones uint32
	}

	sysCrtc struct {
		setConnectorsPtr uint64
		countConnectors  uint32

		id   uint32
		fbID uint32

		x, y uint32 // position on the framebuffer

		gammaSize uint32
		modeValid uint32
		mode      Info
	}

	// Info is the fixed 68-byte display mode record
	// (struct drm_mode_modeinfo). Equality is structural over all
	// fields, so == works for mode comparison.
	Info struct {
		Clock                                         uint32
		Hdisplay, HsyncStart, HsyncEnd, Htotal, Hskew uint16
		Vdisplay, VsyncStart, VsyncEnd, Vtotal, Vscan uint16

		Vrefresh uint32

		Flags uint32
		Type  uint32
		Name  [DisplayModeLen]uint8
	}

	// Resources is the card's set of KMS objects, excluding planes
	// (see GetPlaneResources), plus the supported framebuffer
	// dimension ranges.
	Resources struct {
		Fbs        []FBID
		Crtcs      []CRTCID
		Connectors []ConnectorID
		Encoders   []EncoderID

		MinWidth, MaxWidth   uint32
		MinHeight, MaxHeight uint32
	}

	// Connector describes one physical output port.
	Connector struct {
		ID ConnectorID

		// CurrentEncoder is zero when no encoder drives the
		// connector.
		CurrentEncoder EncoderID

		Type   uint32
		TypeID uint32

		Connection uint8

		// Physical size of the sink in millimetres; zero when
		// unknown.
		PhysWidth, PhysHeight uint32

		Subpixel uint8

		Modes []Info

		Props      []PropertyID
		PropValues []uint64

		Encoders []EncoderID
	}

	// Encoder describes a pixel-signal encoder. PossibleCrtcs and
	// PossibleClones are bitmasks of indices into the device's CRTC
	// and encoder lists.
	Encoder struct {
		ID   EncoderID
		Type uint32

		CRTC CRTCID // zero when unbound

		PossibleCrtcs  uint32
		PossibleClones uint32
	}

	// Crtc describes one scan-out engine.
	Crtc struct {
		ID CRTCID
		FB FBID // zero when disconnected

		X, Y          uint32
		Width, Height uint32

		ModeValid bool
		Mode      Info

		GammaSize int
	}
)

// ModeName returns the NUL-terminated name of the mode as a string.
func (m *Info) ModeName() string {
	for i, b := range m.Name {
		if b == 0 {
			return string(m.Name[:i])
		}
	}
	return string(m.Name[:])
}

// GetResources fetches the card's connector, encoder, CRTC and
// framebuffer handles with the two-pass protocol. If the kernel-side
// lists grow between the two calls the returned slices are truncated
// to the sizes of the first pass; callers needing a stable view
// re-issue until the counts settle.
func GetResources(file *os.File) (*Resources, error) {
	mres := &sysResources{}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeResources),
		uintptr(unsafe.Pointer(mres)))
	if err != nil {
		return nil, err
	}

	var (
		fbids   []FBID
		crtcids []CRTCID
		connids []ConnectorID
		encids  []EncoderID
	)

	if mres.countFbs > 0 {
		fbids = make([]FBID, mres.countFbs)
		mres.fbIDPtr = uint64(uintptr(unsafe.Pointer(&fbids[0])))
	}
	if mres.countCrtcs > 0 {
		crtcids = make([]CRTCID, mres.countCrtcs)
		mres.crtcIDPtr = uint64(uintptr(unsafe.Pointer(&crtcids[0])))
	}
	if mres.countEncoders > 0 {
		encids = make([]EncoderID, mres.countEncoders)
		mres.encoderIDPtr = uint64(uintptr(unsafe.Pointer(&encids[0])))
	}
	if mres.countConnectors > 0 {
		connids = make([]ConnectorID, mres.countConnectors)
		mres.connectorIDPtr = uint64(uintptr(unsafe.Pointer(&connids[0])))
	}

	err = ioctl.Do(file.Fd(), uintptr(IOCTLModeResources),
		uintptr(unsafe.Pointer(mres)))
	if err != nil {
		return nil, err
	}

	return &Resources{
		Fbs:        fbids[:min(len(fbids), int(mres.countFbs))],
		Crtcs:      crtcids[:min(len(crtcids), int(mres.countCrtcs))],
		Connectors: connids[:min(len(connids), int(mres.countConnectors))],
		Encoders:   encids[:min(len(encids), int(mres.countEncoders))],
		MinWidth:   mres.minWidth,
		MaxWidth:   mres.maxWidth,
		MinHeight:  mres.minHeight,
		MaxHeight:  mres.maxHeight,
	}, nil
}

// GetConnector loads a connector's info. With forceProbe the kernel
// re-probes the physical link before answering; otherwise it reports
// cached connection state. The four inline lists follow the two-pass
// protocol and the call loops until the reported counts are stable, so
// the result is never truncated by a concurrent hot-plug.
func GetConnector(file *os.File, id ConnectorID, forceProbe bool) (*Connector, error) {
	// A probe is triggered only by a request with count_modes == 0,
	// so the sizing pass points at a one-mode stub unless the caller
	// asked for it.
	var stub Info

	sizes := &sysGetConnector{connectorID: id.Raw()}
	if !forceProbe {
		sizes.countModes = 1
		sizes.modesPtr = uint64(uintptr(unsafe.Pointer(&stub)))
	}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeGetConnector),
		uintptr(unsafe.Pointer(sizes)))
	if err != nil {
		return nil, err
	}

	var (
		conn     *sysGetConnector
		props    []PropertyID
		values   []uint64
		modes    []Info
		encoders []EncoderID
	)
	for {
		props = make([]PropertyID, sizes.countProps)
		values = make([]uint64, sizes.countProps)
		modes = make([]Info, sizes.countModes)
		encoders = make([]EncoderID, sizes.countEncoders)

		conn = &sysGetConnector{
			connectorID:   id.Raw(),
			countModes:    sizes.countModes,
			countProps:    sizes.countProps,
			countEncoders: sizes.countEncoders,
		}
		if len(props) > 0 {
			conn.propsPtr = uint64(uintptr(unsafe.Pointer(&props[0])))
			conn.propValuesPtr = uint64(uintptr(unsafe.Pointer(&values[0])))
		}
		if len(modes) > 0 {
			conn.modesPtr = uint64(uintptr(unsafe.Pointer(&modes[0])))
		} else if !forceProbe {
			conn.countModes = 1
			conn.modesPtr = uint64(uintptr(unsafe.Pointer(&stub)))
		}
		if len(encoders) > 0 {
			conn.encodersPtr = uint64(uintptr(unsafe.Pointer(&encoders[0])))
		}

		err = ioctl.Do(file.Fd(), uintptr(IOCTLModeGetConnector),
			uintptr(unsafe.Pointer(conn)))
		if err != nil {
			return nil, err
		}

		if conn.countModes == sizes.countModes &&
			conn.countProps == sizes.countProps &&
			conn.countEncoders == sizes.countEncoders {
			break
		}
		// A hot-plug grew one of the lists; retry with the new
		// counts.
		*sizes = *conn
	}

	if !forceProbe && len(modes) == 0 {
		conn.countModes = 0
	}

	return &Connector{
		ID:             id,
		CurrentEncoder: EncoderID(conn.encoderID),
		Type:           conn.connectorType,
		TypeID:         conn.connectorTypeID,
		Connection:     uint8(conn.connection),
		PhysWidth:      conn.mmWidth,
		PhysHeight:     conn.mmHeight,

		// convert subpixel from kernel to userspace
		Subpixel: uint8(conn.subpixel + 1),

		Modes:      modes[:conn.countModes],
		Props:      props[:conn.countProps],
		PropValues: values[:conn.countProps],
		Encoders:   encoders[:conn.countEncoders],
	}, nil
}

// GetEncoder loads an encoder's info.
func GetEncoder(file *os.File, id EncoderID) (*Encoder, error) {
	encoder := &sysGetEncoder{id: id.Raw()}

	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeGetEncoder),
		uintptr(unsafe.Pointer(encoder)))
	if err != nil {
		return nil, err
	}

	return &Encoder{
		ID:             id,
		CRTC:           CRTCID(encoder.crtcID),
		Type:           encoder.typ,
		PossibleCrtcs:  encoder.possibleCrtcs,
		PossibleClones: encoder.possibleClones,
	}, nil
}

// GetCrtc loads a CRTC's current configuration.
func GetCrtc(file *os.File, id CRTCID) (*Crtc, error) {
	crtc := &sysCrtc{id: id.Raw()}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeGetCrtc),
		uintptr(unsafe.Pointer(crtc)))
	if err != nil {
		return nil, err
	}
	ret := &Crtc{
		ID:        id,
		X:         crtc.x,
		Y:         crtc.y,
		ModeValid: crtc.modeValid != 0,
		FB:        FBID(crtc.fbID),
		GammaSize: int(crtc.gammaSize),
	}

	ret.Mode = crtc.mode
	ret.Width = uint32(crtc.mode.Hdisplay)
	ret.Height = uint32(crtc.mode.Vdisplay)
	return ret, nil
}

// SetCrtc configures a CRTC: attach fb and drive the given connectors
// at position (x, y) with the given mode. A nil mode blanks the CRTC.
// Requires the master lock on primary nodes.
func SetCrtc(file *os.File, id CRTCID, fb FBID, x, y uint32, connectors []ConnectorID, mode *Info) error {
	crtc := &sysCrtc{
		id:   id.Raw(),
		fbID: fb.Raw(),
		x:    x,
		y:    y,
	}
	if len(connectors) > 0 {
		crtc.setConnectorsPtr = uint64(uintptr(unsafe.Pointer(&connectors[0])))
		crtc.countConnectors = uint32(len(connectors))
	}
	if mode != nil {
		crtc.mode = *mode
		crtc.modeValid = 1
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeSetCrtc),
		uintptr(unsafe.Pointer(crtc)))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
