package mode

import (
	"os"
	"sort"
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

// Atomic commit flags. PageFlipEvent and PageFlipAsync from the
// page-flip path are accepted as well.
const (
	AtomicTestOnly     = 0x0100
	AtomicNonblock     = 0x0200
	AtomicAllowModeset = 0x0400
)

type sysAtomic struct {
	flags         uint32
	countObjs     uint32
	objsPtr       uint64
	countPropsPtr uint64
	propsPtr      uint64
	propValuesPtr uint64
	reserved      uint64
	userData      uint64
}

// AtomicRequest accumulates property assignments for one atomic
// commit. The zero value is an empty request. It is laid out as the
// kernel consumes it: object handles sorted ascending, a property
// count per object, and a flattened property/value table where each
// object's span is itself sorted by property handle.
type AtomicRequest struct {
	objects    []uint32
	propCounts []uint32

	props  []uint32
	values []uint64
}

// Set records obj.prop = value, replacing any value previously set for
// the same object and property in this request.
func (r *AtomicRequest) Set(obj ObjectID, prop PropertyID, value uint64) {
	objRaw := obj.Raw()
	objIdx := sort.Search(len(r.objects), func(i int) bool {
		return r.objects[i] >= objRaw
	})
	if objIdx == len(r.objects) || r.objects[objIdx] != objRaw {
		r.objects = insertU32(r.objects, objIdx, objRaw)
		r.propCounts = insertU32(r.propCounts, objIdx, 0)
	}

	span := 0
	for i := 0; i < objIdx; i++ {
		span += int(r.propCounts[i])
	}
	count := int(r.propCounts[objIdx])

	propRaw := prop.Raw()
	rel := sort.Search(count, func(i int) bool {
		return r.props[span+i] >= propRaw
	})
	at := span + rel
	if rel < count && r.props[at] == propRaw {
		r.values[at] = value
		return
	}
	r.props = insertU32(r.props, at, propRaw)
	r.values = insertU64(r.values, at, value)
	r.propCounts[objIdx]++
}

// Len reports the number of assignments in the request.
func (r *AtomicRequest) Len() int { return len(r.props) }

// Reset empties the request, retaining its storage.
func (r *AtomicRequest) Reset() {
	r.objects = r.objects[:0]
	r.propCounts = r.propCounts[:0]
	r.props = r.props[:0]
	r.values = r.values[:0]
}

// AtomicCommit submits the request. With AtomicTestOnly the kernel
// checks the configuration without applying it. userData is carried
// into the completion events requested with PageFlipEvent.
func AtomicCommit(file *os.File, req *AtomicRequest, flags uint32, userData uint64) error {
	a := &sysAtomic{
		flags:    flags,
		userData: userData,
	}
	if len(req.objects) > 0 {
		a.countObjs = uint32(len(req.objects))
		a.objsPtr = uint64(uintptr(unsafe.Pointer(&req.objects[0])))
		a.countPropsPtr = uint64(uintptr(unsafe.Pointer(&req.propCounts[0])))
	}
	if len(req.props) > 0 {
		a.propsPtr = uint64(uintptr(unsafe.Pointer(&req.props[0])))
		a.propValuesPtr = uint64(uintptr(unsafe.Pointer(&req.values[0])))
	}
	return ioctl.Do(file.Fd(), uintptr(IOCTLModeAtomic),
		uintptr(unsafe.Pointer(a)))
}

func insertU32(s []uint32, i int, v uint32) []uint32 {
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func insertU64(s []uint64, i int, v uint64) []uint64 {
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
