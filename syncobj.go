package drm

import (
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/gokms/drm/ioctl"
)

// SyncobjID is a handle to a kernel-managed fence slot. Zero is never
// a valid handle.
type SyncobjID uint32

// Raw returns the kernel handle value.
func (id SyncobjID) Raw() uint32 { return uint32(id) }

type (
	sysSyncobjCreate struct {
		handle uint32
		flags  uint32
	}

	sysSyncobjDestroy struct {
		handle uint32
		pad    uint32
	}

	sysSyncobjHandle struct {
		handle uint32
		flags  uint32
		fd     int32
		pad    uint32
	}

	sysSyncobjWait struct {
		handles       uint64
		timeoutNsec   int64
		countHandles  uint32
		flags         uint32
		firstSignaled uint32
		pad           uint32
		deadlineNsec  uint64
	}

	sysSyncobjTimelineWait struct {
		handles       uint64
		points        uint64
		timeoutNsec   int64
		countHandles  uint32
		flags         uint32
		firstSignaled uint32
		pad           uint32
		deadlineNsec  uint64
	}

	sysSyncobjArray struct {
		handles      uint64
		countHandles uint32
		pad          uint32
	}

	sysSyncobjTimelineArray struct {
		handles      uint64
		points       uint64
		countHandles uint32
		flags        uint32
	}

	sysSyncobjTransfer struct {
		srcHandle uint32
		dstHandle uint32
		srcPoint  uint64
		dstPoint  uint64
		flags     uint32
		pad       uint32
	}

	sysSyncobjEventfd struct {
		handle uint32
		flags  uint32
		point  uint64
		fd     int32
		pad    uint32
	}
)

const (
	syncobjCreateSignaled = 0x1

	syncobjExportSyncFile = 0x1
	syncobjImportSyncFile = 0x1
)

// Flags for SyncobjWait and SyncobjTimelineWait.
const (
	// SyncobjWaitAll waits for all handles instead of any one.
	SyncobjWaitAll = 0x1
	// SyncobjWaitForSubmit treats "no fence attached yet" as "not
	// signalled yet" and keeps waiting instead of failing.
	SyncobjWaitForSubmit = 0x2
	// SyncobjWaitAvailable (timeline only) waits for the point to be
	// submitted, not signalled.
	SyncobjWaitAvailable = 0x4
)

// CreateSyncobj creates a new sync object, optionally pre-signalled.
func CreateSyncobj(file *os.File, signaled bool) (SyncobjID, error) {
	c := &sysSyncobjCreate{}
	if signaled {
		c.flags = syncobjCreateSignaled
	}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLSyncobjCreate),
		uintptr(unsafe.Pointer(c)))
	if err != nil {
		return 0, err
	}
	return SyncobjID(c.handle), nil
}

// DestroySyncobj releases a sync object handle.
func DestroySyncobj(file *os.File, id SyncobjID) error {
	d := &sysSyncobjDestroy{handle: id.Raw()}
	return ioctl.Do(file.Fd(), uintptr(IOCTLSyncobjDestroy),
		uintptr(unsafe.Pointer(d)))
}

// SyncobjToFD exports a sync object. With exportSyncFile the result is
// a one-shot sync-file fd that becomes readable when the current fence
// signals; otherwise it is a syncobj fd preserving object identity
// across processes. The fd is close-on-exec.
func SyncobjToFD(file *os.File, id SyncobjID, exportSyncFile bool) (int, error) {
	h := &sysSyncobjHandle{handle: id.Raw()}
	if exportSyncFile {
		h.flags = syncobjExportSyncFile
	}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLSyncobjHandleToFD),
		uintptr(unsafe.Pointer(h)))
	if err != nil {
		return -1, err
	}
	return int(h.fd), nil
}

// SyncobjFromFD is the inverse of SyncobjToFD. With importSyncFile the
// fd is a sync file whose fence is installed into a fresh sync object;
// otherwise the fd is a syncobj fd.
func SyncobjFromFD(file *os.File, fd int, importSyncFile bool) (SyncobjID, error) {
	h := &sysSyncobjHandle{fd: int32(fd)}
	if importSyncFile {
		h.flags = syncobjImportSyncFile
	}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLSyncobjFDToHandle),
		uintptr(unsafe.Pointer(h)))
	if err != nil {
		return 0, err
	}
	return SyncobjID(h.handle), nil
}

// MonotonicDeadline converts a relative timeout into the absolute
// CLOCK_MONOTONIC nanosecond deadline syncobj waits expect.
func MonotonicDeadline(d time.Duration) (int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, err
	}
	return ts.Nano() + d.Nanoseconds(), nil
}

// SyncobjWait blocks until one (or, with SyncobjWaitAll, every one) of
// the handles signals, or until the absolute CLOCK_MONOTONIC deadline
// timeoutNsec passes. It returns the index of the first signalled
// handle.
func SyncobjWait(file *os.File, ids []SyncobjID, timeoutNsec int64, flags uint32) (uint32, error) {
	if len(ids) == 0 {
		return 0, ioctl.ErrInvalidArgument
	}
	w := &sysSyncobjWait{
		handles:      uint64(uintptr(unsafe.Pointer(&ids[0]))),
		timeoutNsec:  timeoutNsec,
		countHandles: uint32(len(ids)),
		flags:        flags,
	}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLSyncobjWait),
		uintptr(unsafe.Pointer(w)))
	if err != nil {
		return 0, err
	}
	return w.firstSignaled, nil
}

// SyncobjReset un-signals a set of binary sync objects.
func SyncobjReset(file *os.File, ids []SyncobjID) error {
	if len(ids) == 0 {
		return nil
	}
	a := &sysSyncobjArray{
		handles:      uint64(uintptr(unsafe.Pointer(&ids[0]))),
		countHandles: uint32(len(ids)),
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLSyncobjReset),
		uintptr(unsafe.Pointer(a)))
}

// SyncobjSignal synchronously signals a set of binary sync objects.
func SyncobjSignal(file *os.File, ids []SyncobjID) error {
	if len(ids) == 0 {
		return nil
	}
	a := &sysSyncobjArray{
		handles:      uint64(uintptr(unsafe.Pointer(&ids[0]))),
		countHandles: uint32(len(ids)),
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLSyncobjSignal),
		uintptr(unsafe.Pointer(a)))
}

// SyncobjTimelineWait is SyncobjWait for timeline points: each handle
// is paired with the point of its timeline to wait on.
func SyncobjTimelineWait(file *os.File, ids []SyncobjID, points []uint64, timeoutNsec int64, flags uint32) (uint32, error) {
	if len(ids) == 0 || len(ids) != len(points) {
		return 0, ioctl.ErrInvalidArgument
	}
	w := &sysSyncobjTimelineWait{
		handles:      uint64(uintptr(unsafe.Pointer(&ids[0]))),
		points:       uint64(uintptr(unsafe.Pointer(&points[0]))),
		timeoutNsec:  timeoutNsec,
		countHandles: uint32(len(ids)),
		flags:        flags,
	}
	err := ioctl.Do(file.Fd(), uintptr(IOCTLSyncobjTimelineWait),
		uintptr(unsafe.Pointer(w)))
	if err != nil {
		return 0, err
	}
	return w.firstSignaled, nil
}

const syncobjQueryLastSubmitted = 0x1

// SyncobjQuery reads the current timeline point of each handle into
// points. With lastSubmitted it reads the last submitted point instead
// of the last signalled one.
func SyncobjQuery(file *os.File, ids []SyncobjID, points []uint64, lastSubmitted bool) error {
	if len(ids) == 0 || len(ids) != len(points) {
		return ioctl.ErrInvalidArgument
	}
	a := &sysSyncobjTimelineArray{
		handles:      uint64(uintptr(unsafe.Pointer(&ids[0]))),
		points:       uint64(uintptr(unsafe.Pointer(&points[0]))),
		countHandles: uint32(len(ids)),
	}
	if lastSubmitted {
		a.flags = syncobjQueryLastSubmitted
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLSyncobjQuery),
		uintptr(unsafe.Pointer(a)))
}

// SyncobjTransfer copies the fence at srcPoint of src to dstPoint of
// dst. A point of zero addresses the binary fence slot.
func SyncobjTransfer(file *os.File, dst SyncobjID, dstPoint uint64, src SyncobjID, srcPoint uint64) error {
	t := &sysSyncobjTransfer{
		srcHandle: src.Raw(),
		dstHandle: dst.Raw(),
		srcPoint:  srcPoint,
		dstPoint:  dstPoint,
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLSyncobjTransfer),
		uintptr(unsafe.Pointer(t)))
}

// SyncobjTimelineSignal advances each handle's timeline to the paired
// point.
func SyncobjTimelineSignal(file *os.File, ids []SyncobjID, points []uint64) error {
	if len(ids) == 0 || len(ids) != len(points) {
		return ioctl.ErrInvalidArgument
	}
	a := &sysSyncobjTimelineArray{
		handles:      uint64(uintptr(unsafe.Pointer(&ids[0]))),
		points:       uint64(uintptr(unsafe.Pointer(&points[0]))),
		countHandles: uint32(len(ids)),
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLSyncobjTimelineSignal),
		uintptr(unsafe.Pointer(a)))
}

// SyncobjEventfd registers eventfd to be written when the sync object
// (or, for timelines, the given point) signals. With waitAvailable the
// write happens when the point is submitted instead.
func SyncobjEventfd(file *os.File, id SyncobjID, point uint64, eventfd int, waitAvailable bool) error {
	e := &sysSyncobjEventfd{
		handle: id.Raw(),
		point:  point,
		fd:     int32(eventfd),
	}
	if waitAvailable {
		e.flags = SyncobjWaitAvailable
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLSyncobjEventfd),
		uintptr(unsafe.Pointer(e)))
}
