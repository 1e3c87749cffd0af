package drm

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokms/drm/ioctl"
)

func putVblankRecord(typ uint32, userData uint64, sec, usec, seq, crtc uint32) []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:], typ)
	binary.LittleEndian.PutUint32(buf[4:], 32)
	binary.LittleEndian.PutUint64(buf[8:], userData)
	binary.LittleEndian.PutUint32(buf[16:], sec)
	binary.LittleEndian.PutUint32(buf[20:], usec)
	binary.LittleEndian.PutUint32(buf[24:], seq)
	binary.LittleEndian.PutUint32(buf[28:], crtc)
	return buf
}

func TestParseEventsVblank(t *testing.T) {
	buf := putVblankRecord(EventTypeVblank, 0xdeadbeef, 12, 34, 56, 0)

	events, err := parseEvents(buf)
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev, ok := events[0].(VblankEvent)
	require.True(t, ok)
	assert.Equal(t, uint32(56), ev.Frame)
	assert.Equal(t, uint32(12), ev.Sec)
	assert.Equal(t, uint32(34), ev.Usec)
	assert.Equal(t, uint64(0xdeadbeef), ev.UserData)
}

func TestParseEventsFlip(t *testing.T) {
	buf := putVblankRecord(EventTypeFlipComplete, 7, 1, 2, 3, 42)

	events, err := parseEvents(buf)
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev, ok := events[0].(PageFlipEvent)
	require.True(t, ok)
	assert.Equal(t, uint32(3), ev.Frame)
	assert.Equal(t, uint32(42), ev.CrtcID)
	assert.Equal(t, uint64(7), ev.UserData)
}

func TestParseEventsMultiple(t *testing.T) {
	buf := append(putVblankRecord(EventTypeVblank, 1, 0, 0, 10, 0),
		putVblankRecord(EventTypeFlipComplete, 2, 0, 0, 11, 0)...)

	events, err := parseEvents(buf)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.IsType(t, VblankEvent{}, events[0])
	assert.IsType(t, PageFlipEvent{}, events[1])
}

func TestParseEventsUnknown(t *testing.T) {
	buf := make([]byte, 12)
	binary.LittleEndian.PutUint32(buf[0:], 0x99)
	binary.LittleEndian.PutUint32(buf[4:], 12)
	binary.LittleEndian.PutUint32(buf[8:], 0xabcd)

	events, err := parseEvents(buf)
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev, ok := events[0].(UnknownEvent)
	require.True(t, ok)
	assert.Equal(t, uint32(0x99), ev.Type)
	assert.Len(t, ev.Data, 12)
}

func TestParseEventsMalformed(t *testing.T) {
	// header length smaller than the header itself
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:], EventTypeVblank)
	binary.LittleEndian.PutUint32(buf[4:], 4)

	_, err := parseEvents(buf)
	assert.True(t, errors.Is(err, ioctl.ErrInvalidArgument))

	// record length running past the buffer
	binary.LittleEndian.PutUint32(buf[4:], 64)
	_, err = parseEvents(buf)
	assert.True(t, errors.Is(err, ioctl.ErrInvalidArgument))
}

func TestParseEventsEmpty(t *testing.T) {
	events, err := parseEvents(nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}
