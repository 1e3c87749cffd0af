package mode

import (
	"os"
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

// Property schema flag bits (DRM_MODE_PROP_*).
const (
	propPending   = 1 << 0 // deprecated, unused on current kernels
	propRange     = 1 << 1
	propImmutable = 1 << 2
	propEnum      = 1 << 3 // enumerated type with text strings
	propBlob      = 1 << 4
	propBitmask   = 1 << 5 // bitmask of enumerated types

	propExtendedType = 0x0000ffc0
	propObject       = 1 << 6 // DRM_MODE_PROP_TYPE(1)
	propSignedRange  = 2 << 6 // DRM_MODE_PROP_TYPE(2)

	propAtomic = 0x80000000
)

// PropertyType is the decoded value type of a property schema.
type PropertyType int

const (
	// PropertyUnknown covers flag combinations this library does not
	// decode; raw values pass through uninterpreted.
	PropertyUnknown PropertyType = iota
	PropertyRange
	PropertySignedRange
	PropertyEnum
	PropertyBitmask
	PropertyObject
	PropertyBlob
)

func (t PropertyType) String() string {
	switch t {
	case PropertyRange:
		return "range"
	case PropertySignedRange:
		return "signed range"
	case PropertyEnum:
		return "enum"
	case PropertyBitmask:
		return "bitmask"
	case PropertyObject:
		return "object"
	case PropertyBlob:
		return "blob"
	}
	return "unknown"
}

func classifyProperty(flags uint32) PropertyType {
	switch {
	case flags&propEnum != 0 && flags&propBitmask == 0:
		return PropertyEnum
	case flags&propBitmask != 0:
		return PropertyBitmask
	case flags&propRange != 0:
		return PropertyRange
	case flags&propExtendedType == propSignedRange:
		return PropertySignedRange
	case flags&propExtendedType == propObject:
		return PropertyObject
	case flags&propBlob != 0:
		return PropertyBlob
	}
	return PropertyUnknown
}

type (
	sysGetProperty struct {
		valuesPtr   uint64
		enumBlobPtr uint64

		propID uint32
		flags  uint32
		name   [PropNameLen]uint8

		countValues uint32

		// This is only used to count enum values, not blobs. The
		// _blobs is historical
		countEnumBlobs uint32
	}

	sysPropertyEnum struct {
		value uint64
		name  [PropNameLen]uint8
	}

	sysConnectorSetProperty struct {
		value       uint64
		propID      uint32
		connectorID uint32
	}

	sysObjGetProperties struct {
		propsPtr      uint64
		propValuesPtr uint64
		countProps    uint32
		objID         uint32
		objType       uint32
	}

	sysObjSetProperty struct {
		value   uint64
		propID  uint32
		objID   uint32
		objType uint32
	}

	// EnumEntry is one named value of an enum property, or one named
	// bit position of a bitmask property.
	EnumEntry struct {
		Value uint64
		Name  string
	}

	// Property is a decoded property schema. Only the fields selected
	// by Type carry meaning: Enums for enum/bitmask, Min/Max for
	// range, SignedMin/SignedMax for signed range, ObjectKind for
	// object references.
	Property struct {
		ID   PropertyID
		Name string

		Type PropertyType

		// Mutable is false for properties the kernel refuses to
		// set.
		Mutable bool
		// Atomic properties are exposed only to clients with the
		// atomic client capability.
		Atomic bool
		// Pending is a legacy flag with no effect on current
		// kernels.
		Pending bool

		Enums []EnumEntry

		Min, Max uint64

		SignedMin, SignedMax int64

		// ObjectKind is the required kernel object type
		// (ObjectCRTC etc.) of values, or ObjectAny.
		ObjectKind uint32
	}

	// PropertyValue is a raw property value paired with its schema's
	// type so callers can interpret it.
	PropertyValue struct {
		Type PropertyType

		// Raw is the untouched 64-bit value.
		Raw uint64

		// Signed is Raw reinterpreted for signed-range properties.
		Signed int64

		// Object is the referenced object's raw handle for object
		// properties; zero means none. ObjectKind mirrors the
		// schema.
		Object     uint32
		ObjectKind uint32

		// Blob is the referenced blob for blob properties; zero
		// means none.
		Blob BlobID
	}
)

// GetProperty loads and decodes a property schema. The variable-length
// value and enum tables follow the two-pass protocol; only the tables
// meaningful for the decoded type are fetched.
func GetProperty(file *os.File, id PropertyID) (*Property, error) {
	prop := &sysGetProperty{propID: id.Raw()}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeGetProperty),
		uintptr(unsafe.Pointer(prop)))
	if err != nil {
		return nil, err
	}

	p := &Property{
		ID:      id,
		Name:    cstr(prop.name[:]),
		Type:    classifyProperty(prop.flags),
		Mutable: prop.flags&propImmutable == 0,
		Atomic:  prop.flags&propAtomic != 0,
		Pending: prop.flags&propPending != 0,
	}

	var (
		values []uint64
		enums  []sysPropertyEnum
	)
	switch p.Type {
	case PropertyRange, PropertySignedRange, PropertyObject:
		if prop.countValues > 0 {
			values = make([]uint64, prop.countValues)
			prop.valuesPtr = uint64(uintptr(unsafe.Pointer(&values[0])))
		}
	case PropertyEnum, PropertyBitmask:
		if prop.countEnumBlobs > 0 {
			enums = make([]sysPropertyEnum, prop.countEnumBlobs)
			prop.enumBlobPtr = uint64(uintptr(unsafe.Pointer(&enums[0])))
		}
	}

	if values != nil || enums != nil {
		err = ioctl.Do(file.Fd(), uintptr(IOCTLModeGetProperty),
			uintptr(unsafe.Pointer(prop)))
		if err != nil {
			return nil, err
		}
		values = values[:min(len(values), int(prop.countValues))]
		enums = enums[:min(len(enums), int(prop.countEnumBlobs))]
	}

	switch p.Type {
	case PropertyRange:
		if len(values) >= 2 {
			p.Min, p.Max = values[0], values[1]
		}
	case PropertySignedRange:
		if len(values) >= 2 {
			p.SignedMin = int64(values[0])
			p.SignedMax = int64(values[1])
		}
	case PropertyObject:
		if len(values) >= 1 {
			p.ObjectKind = uint32(values[0])
		}
	case PropertyEnum, PropertyBitmask:
		p.Enums = make([]EnumEntry, len(enums))
		for i, e := range enums {
			p.Enums[i] = EnumEntry{Value: e.value, Name: cstr(e.name[:])}
		}
	}
	return p, nil
}

// Value interprets a raw 64-bit value against this schema.
func (p *Property) Value(raw uint64) PropertyValue {
	v := PropertyValue{Type: p.Type, Raw: raw}
	switch p.Type {
	case PropertySignedRange:
		v.Signed = int64(raw)
	case PropertyObject:
		v.Object = uint32(raw)
		v.ObjectKind = p.ObjectKind
	case PropertyBlob:
		v.Blob = BlobID(raw)
	}
	return v
}

// GetObjectProperties fetches the property/value pairs attached to any
// KMS object with the two-pass protocol. The two returned slices are
// parallel.
func GetObjectProperties(file *os.File, obj ObjectID) ([]PropertyID, []uint64, error) {
	props := &sysObjGetProperties{
		objID:   obj.Raw(),
		objType: obj.ObjectType(),
	}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLModeObjGetProperties),
		uintptr(unsafe.Pointer(props)))
	if err != nil {
		return nil, nil, err
	}

	var (
		ids    []PropertyID
		values []uint64
	)
	if props.countProps > 0 {
		ids = make([]PropertyID, props.countProps)
		values = make([]uint64, props.countProps)
		props.propsPtr = uint64(uintptr(unsafe.Pointer(&ids[0])))
		props.propValuesPtr = uint64(uintptr(unsafe.Pointer(&values[0])))

		err = ioctl.Do(file.Fd(), uintptr(IOCTLModeObjGetProperties),
			uintptr(unsafe.Pointer(props)))
		if err != nil {
			return nil, nil, err
		}
	}
	n := min(len(ids), int(props.countProps))
	return ids[:n], values[:n], nil
}

// SetObjectProperty sets one property on any KMS object through the
// legacy (non-atomic) path.
func SetObjectProperty(file *os.File, obj ObjectID, prop PropertyID, value uint64) error {
	req := &sysObjSetProperty{
		value:   value,
		propID:  prop.Raw(),
		objID:   obj.Raw(),
		objType: obj.ObjectType(),
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeObjSetProperty),
		uintptr(unsafe.Pointer(req)))
}

// SetConnectorProperty sets a connector property through the dedicated
// legacy ioctl, which predates SetObjectProperty.
func SetConnectorProperty(file *os.File, conn ConnectorID, prop PropertyID, value uint64) error {
	req := &sysConnectorSetProperty{
		value:       value,
		propID:      prop.Raw(),
		connectorID: conn.Raw(),
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeSetConnectorProperty),
		uintptr(unsafe.Pointer(req)))
}

func cstr(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
