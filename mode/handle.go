package mode

// Kernel object-type discriminators (DRM_MODE_OBJECT_*).
const (
	ObjectCRTC      = 0xcccccccc
	ObjectConnector = 0xc0c0c0c0
	ObjectEncoder   = 0xe0e0e0e0
	ObjectMode      = 0xdededede
	ObjectProperty  = 0xb0b0b0b0
	ObjectFB        = 0xfbfbfbfb
	ObjectBlob      = 0xbbbbbbbb
	ObjectPlane     = 0xeeeeeeee
	ObjectAny       = 0
)

// Each KMS object kind gets its own handle type over the raw non-zero
// 32-bit kernel identifier. Zero is "none" for every kind, so a
// handle-or-none fits in the same 32 bits as a raw handle. Handles are
// plain values: copying one does not duplicate a resource and dropping
// one does not free it.
type (
	// ConnectorID identifies a physical output port.
	ConnectorID uint32
	// EncoderID identifies a signal encoder.
	EncoderID uint32
	// CRTCID identifies a scan-out engine.
	CRTCID uint32
	// FBID identifies a framebuffer.
	FBID uint32
	// PlaneID identifies a compositing plane.
	PlaneID uint32
	// PropertyID identifies a property schema.
	PropertyID uint32
	// BlobID identifies a kernel-owned property blob.
	BlobID uint32
)

// ObjectID is any typed KMS handle together with its kernel object
// type, as required by the property ioctls and the atomic builder.
type ObjectID interface {
	Raw() uint32
	ObjectType() uint32
}

func (id ConnectorID) Raw() uint32 { return uint32(id) }
func (id EncoderID) Raw() uint32   { return uint32(id) }
func (id CRTCID) Raw() uint32      { return uint32(id) }
func (id FBID) Raw() uint32        { return uint32(id) }
func (id PlaneID) Raw() uint32     { return uint32(id) }
func (id PropertyID) Raw() uint32  { return uint32(id) }
func (id BlobID) Raw() uint32      { return uint32(id) }

func (ConnectorID) ObjectType() uint32 { return ObjectConnector }
func (EncoderID) ObjectType() uint32   { return ObjectEncoder }
func (CRTCID) ObjectType() uint32      { return ObjectCRTC }
func (FBID) ObjectType() uint32        { return ObjectFB }
func (PlaneID) ObjectType() uint32     { return ObjectPlane }
func (PropertyID) ObjectType() uint32  { return ObjectProperty }
func (BlobID) ObjectType() uint32      { return ObjectBlob }

// The NewXxxID constructors are the checked raw-to-typed conversions:
// they refuse the reserved zero value. Converting between two typed
// kinds requires going through Raw() explicitly.

func NewConnectorID(raw uint32) (ConnectorID, bool) {
	return ConnectorID(raw), raw != 0
}

func NewEncoderID(raw uint32) (EncoderID, bool) {
	return EncoderID(raw), raw != 0
}

func NewCRTCID(raw uint32) (CRTCID, bool) {
	return CRTCID(raw), raw != 0
}

func NewFBID(raw uint32) (FBID, bool) {
	return FBID(raw), raw != 0
}

func NewPlaneID(raw uint32) (PlaneID, bool) {
	return PlaneID(raw), raw != 0
}

func NewPropertyID(raw uint32) (PropertyID, bool) {
	return PropertyID(raw), raw != 0
}

func NewBlobID(raw uint32) (BlobID, bool) {
	return BlobID(raw), raw != 0
}
