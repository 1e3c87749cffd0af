package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyProperty(t *testing.T) {
	for _, tc := range []struct {
		name  string
		flags uint32
		typ   PropertyType
	}{
		{"range", propRange, PropertyRange},
		{"enum", propEnum, PropertyEnum},
		{"bitmask", propBitmask, PropertyBitmask},
		{"blob", propBlob, PropertyBlob},
		{"object", propObject, PropertyObject},
		{"signed range", propSignedRange, PropertySignedRange},
		{"none", 0, PropertyUnknown},

		// legacy drivers set enum and bitmask together; bitmask
		// wins
		{"enum+bitmask", propEnum | propBitmask, PropertyBitmask},

		// decoding ignores the modifier bits
		{"immutable range", propRange | propImmutable, PropertyRange},
		{"atomic enum", propEnum | propAtomic, PropertyEnum},
		{"pending blob", propBlob | propPending, PropertyBlob},

		// an unknown extended type is not an object
		{"extended type 3", 3 << 6, PropertyUnknown},
	} {
		assert.Equal(t, tc.typ, classifyProperty(tc.flags), tc.name)
	}
}

func TestPropertyValue(t *testing.T) {
	signed := &Property{Type: PropertySignedRange}
	v := signed.Value(0xffffffffffffffff)
	assert.Equal(t, int64(-1), v.Signed)

	obj := &Property{Type: PropertyObject, ObjectKind: ObjectCRTC}
	v = obj.Value(17)
	assert.Equal(t, uint32(17), v.Object)
	assert.Equal(t, uint32(ObjectCRTC), v.ObjectKind)

	v = obj.Value(0)
	assert.Zero(t, v.Object) // none

	blob := &Property{Type: PropertyBlob}
	v = blob.Value(99)
	assert.Equal(t, BlobID(99), v.Blob)

	unknown := &Property{Type: PropertyUnknown}
	v = unknown.Value(123)
	assert.Equal(t, uint64(123), v.Raw)
	assert.Zero(t, v.Object)
	assert.Zero(t, v.Blob)
}

func TestPropertyTypeString(t *testing.T) {
	assert.Equal(t, "enum", PropertyEnum.String())
	assert.Equal(t, "unknown", PropertyUnknown.String())
	assert.Equal(t, "unknown", PropertyType(99).String())
}

func TestCstr(t *testing.T) {
	assert.Equal(t, "EDID", cstr([]byte{'E', 'D', 'I', 'D', 0, 0}))
	assert.Equal(t, "abc", cstr([]byte("abc")))
	assert.Equal(t, "", cstr([]byte{0}))
}
