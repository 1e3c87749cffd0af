package drm

import (
	"fmt"
	"runtime"
)

// NodeType selects one of the three DRM minor-node families of a card.
type NodeType int

const (
	// NodePrimary is the full-featured node (card<N>); mode setting
	// requires the master lock on it.
	NodePrimary NodeType = iota

	// NodeControl is the historical non-master mode-setting node
	// (controlD<N>).
	NodeControl

	// NodeRender exposes the render/compute subset without any
	// master requirement (renderD<N>).
	NodeRender
)

// Character-device major numbers of the DRM subsystem per OS family.
const (
	MajorLinux   = 226
	MajorFreeBSD = 145
	MajorNetBSD  = 34
	MajorOpenBSD = 87 // 88 on x86
)

// nodeName returns the device-node basename for a node type and index.
// OpenBSD uses its own naming scheme; everything else follows Linux.
func nodeName(typ NodeType, n int) string {
	openbsd := runtime.GOOS == "openbsd"
	switch typ {
	case NodeControl:
		if openbsd {
			return fmt.Sprintf("drmC%d", n)
		}
		return fmt.Sprintf("controlD%d", n)
	case NodeRender:
		if openbsd {
			return fmt.Sprintf("drmR%d", n)
		}
		return fmt.Sprintf("renderD%d", n)
	default:
		if openbsd {
			return fmt.Sprintf("drm%d", n)
		}
		return fmt.Sprintf("card%d", n)
	}
}
