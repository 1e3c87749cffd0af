package ioctl

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Kind is the closed set of failures a DRM ioctl can report. Errnos
// are translated exactly once, here; callers above the gateway only
// ever see these.
type Kind int

const (
	// Unknown covers every errno without a dedicated kind.
	Unknown Kind = iota

	// InvalidFileDescriptor means the fd is closed or is not a DRM
	// device node (EBADF, ENOTTY).
	InvalidFileDescriptor

	// MemoryFault means a pointer inside the request structure was
	// inaccessible (EFAULT). This is a bug in this library, not in
	// the caller.
	MemoryFault

	// InvalidArgument means an unsupported feature or an invalid
	// combination of values (EINVAL).
	InvalidArgument

	// PermissionDenied covers EACCES and EPERM, e.g. mode setting
	// without the master lock.
	PermissionDenied

	// Busy means the resource is in use, e.g. the master lock is
	// already held (EBUSY).
	Busy

	// NoSpace means the device is out of memory (ENOSPC).
	NoSpace
)

func (k Kind) String() string {
	switch k {
	case InvalidFileDescriptor:
		return "invalid file descriptor"
	case MemoryFault:
		return "invalid memory access"
	case InvalidArgument:
		return "invalid argument"
	case PermissionDenied:
		return "permission denied"
	case Busy:
		return "device or resource busy"
	case NoSpace:
		return "no space left on device"
	}
	return "unknown system error"
}

// Error is the error type returned by Do.
type Error struct {
	Kind  Kind
	Errno unix.Errno
}

func (e *Error) Error() string {
	if e.Kind == Unknown {
		return fmt.Sprintf("ioctl: unknown system error: %s", e.Errno.Error())
	}
	return "ioctl: " + e.Kind.String()
}

// Is matches any *Error of the same Kind, so call sites can test with
// errors.Is(err, ioctl.ErrBusy) without caring about the errno.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Unwrap exposes the underlying errno for callers that need it.
func (e *Error) Unwrap() error {
	return e.Errno
}

// Sentinels for errors.Is.
var (
	ErrInvalidFileDescriptor = &Error{Kind: InvalidFileDescriptor}
	ErrMemoryFault           = &Error{Kind: MemoryFault}
	ErrInvalidArgument       = &Error{Kind: InvalidArgument}
	ErrPermissionDenied      = &Error{Kind: PermissionDenied}
	ErrBusy                  = &Error{Kind: Busy}
	ErrNoSpace               = &Error{Kind: NoSpace}
)

func translate(errno unix.Errno) error {
	e := &Error{Errno: errno}
	switch errno {
	case unix.EBADF, unix.ENOTTY:
		e.Kind = InvalidFileDescriptor
	case unix.EFAULT:
		e.Kind = MemoryFault
	case unix.EINVAL:
		e.Kind = InvalidArgument
	case unix.EACCES, unix.EPERM:
		e.Kind = PermissionDenied
	case unix.EBUSY:
		e.Kind = Busy
	case unix.ENOSPC:
		e.Kind = NoSpace
	default:
		e.Kind = Unknown
	}
	return e
}
