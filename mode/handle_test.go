package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleConstructorsRefuseZero(t *testing.T) {
	_, ok := NewConnectorID(0)
	assert.False(t, ok)
	_, ok = NewCRTCID(0)
	assert.False(t, ok)
	_, ok = NewFBID(0)
	assert.False(t, ok)
	_, ok = NewPlaneID(0)
	assert.False(t, ok)
	_, ok = NewPropertyID(0)
	assert.False(t, ok)
	_, ok = NewBlobID(0)
	assert.False(t, ok)
	_, ok = NewEncoderID(0)
	assert.False(t, ok)
}

func TestHandleRoundTrip(t *testing.T) {
	id, ok := NewCRTCID(42)
	assert.True(t, ok)
	assert.Equal(t, uint32(42), id.Raw())
}

func TestHandleObjectTypes(t *testing.T) {
	for _, tc := range []struct {
		obj ObjectID
		typ uint32
	}{
		{ConnectorID(1), ObjectConnector},
		{EncoderID(1), ObjectEncoder},
		{CRTCID(1), ObjectCRTC},
		{FBID(1), ObjectFB},
		{PlaneID(1), ObjectPlane},
		{PropertyID(1), ObjectProperty},
		{BlobID(1), ObjectBlob},
	} {
		assert.Equal(t, tc.typ, tc.obj.ObjectType())
		assert.Equal(t, uint32(1), tc.obj.Raw())
	}
}
