package drm

import (
	"os"
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

// Event record types emitted on the device fd after a page-flip-event
// or vblank-event request.
const (
	EventTypeVblank       = 0x01
	EventTypeFlipComplete = 0x02
	EventTypeCrtcSequence = 0x03
)

type (
	sysEvent struct {
		typ    uint32
		length uint32
	}

	sysEventVblank struct {
		typ      uint32
		length   uint32
		userData uint64
		tvSec    uint32
		tvUsec   uint32
		sequence uint32
		crtcID   uint32
	}
)

// Event is one demultiplexed record from the device fd. The concrete
// type is VblankEvent, PageFlipEvent or UnknownEvent.
type Event interface {
	eventType() uint32
}

// VblankEvent reports a vblank requested with VblankEventFlag.
type VblankEvent struct {
	Frame    uint32
	Sec      uint32
	Usec     uint32
	UserData uint64
}

func (VblankEvent) eventType() uint32 { return EventTypeVblank }

// PageFlipEvent reports a completed page flip requested with
// PageFlipEvent. CrtcID is zero on kernels without the
// crtc-in-vblank-event capability; such callers identify the CRTC via
// UserData.
type PageFlipEvent struct {
	Frame    uint32
	Sec      uint32
	Usec     uint32
	CrtcID   uint32
	UserData uint64
}

func (PageFlipEvent) eventType() uint32 { return EventTypeFlipComplete }

// UnknownEvent carries the raw bytes of a record this library does not
// decode, including its header.
type UnknownEvent struct {
	Type uint32
	Data []byte
}

func (e UnknownEvent) eventType() uint32 { return e.Type }

const eventHeaderLen = int(unsafe.Sizeof(sysEvent{}))

// ReadEvents performs one read on the device fd and returns the whole
// records it contained. The fd becomes readable once a requested event
// is pending; callers drive readiness with their own poll facility.
func ReadEvents(file *os.File) ([]Event, error) {
	var buf [1024]byte
	n, err := file.Read(buf[:])
	if err != nil {
		return nil, err
	}
	return parseEvents(buf[:n])
}

func parseEvents(buf []byte) ([]Event, error) {
	var events []Event
	for i := 0; i+eventHeaderLen <= len(buf); {
		hdr := (*sysEvent)(unsafe.Pointer(&buf[i]))
		if hdr.length < uint32(eventHeaderLen) || i+int(hdr.length) > len(buf) {
			return events, ioctl.ErrInvalidArgument
		}
		switch hdr.typ {
		case EventTypeVblank:
			ev := (*sysEventVblank)(unsafe.Pointer(&buf[i]))
			events = append(events, VblankEvent{
				Frame:    ev.sequence,
				Sec:      ev.tvSec,
				Usec:     ev.tvUsec,
				UserData: ev.userData,
			})
		case EventTypeFlipComplete:
			ev := (*sysEventVblank)(unsafe.Pointer(&buf[i]))
			events = append(events, PageFlipEvent{
				Frame:    ev.sequence,
				Sec:      ev.tvSec,
				Usec:     ev.tvUsec,
				CrtcID:   ev.crtcID,
				UserData: ev.userData,
			})
		default:
			data := make([]byte, hdr.length)
			copy(data, buf[i:i+int(hdr.length)])
			events = append(events, UnknownEvent{Type: hdr.typ, Data: data})
		}
		i += int(hdr.length)
	}
	return events, nil
}
