package drm

import (
	"unsafe"

	"github.com/gokms/drm/ioctl"
)

// IOCTLBase is the ioctl identifier character of the DRM subsystem.
const IOCTLBase = 'd'

// Core ioctl request codes, mirrored from <drm.h>. The mode-setting
// codes (0xA0 and up, except sync objects) live in the mode package.
var (
	// DRM_IOWR(0x00, struct drm_version)
	IOCTLVersion = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysVersion{})), IOCTLBase, 0x00)

	// DRM_IOWR(0x01, struct drm_unique)
	IOCTLGetUnique = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysUnique{})), IOCTLBase, 0x01)

	// DRM_IOR(0x02, struct drm_auth)
	IOCTLGetMagic = ioctl.NewCode(ioctl.Read,
		uint16(unsafe.Sizeof(sysAuth{})), IOCTLBase, 0x02)

	// DRM_IOWR(0x07, struct drm_set_version)
	IOCTLSetVersion = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSetVersion{})), IOCTLBase, 0x07)

	// DRM_IOW(0x09, struct drm_gem_close)
	IOCTLGemClose = ioctl.NewCode(ioctl.Write,
		uint16(unsafe.Sizeof(sysGemClose{})), IOCTLBase, 0x09)

	// DRM_IOWR(0x0a, struct drm_gem_flink)
	IOCTLGemFlink = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysGemFlink{})), IOCTLBase, 0x0a)

	// DRM_IOWR(0x0b, struct drm_gem_open)
	IOCTLGemOpen = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysGemOpen{})), IOCTLBase, 0x0b)

	// DRM_IOWR(0x0c, struct drm_get_cap)
	IOCTLGetCap = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysCapability{})), IOCTLBase, 0x0c)

	// DRM_IOW(0x0d, struct drm_set_client_cap)
	IOCTLSetClientCap = ioctl.NewCode(ioctl.Write,
		uint16(unsafe.Sizeof(sysClientCap{})), IOCTLBase, 0x0d)

	// DRM_IOW(0x11, struct drm_auth)
	IOCTLAuthMagic = ioctl.NewCode(ioctl.Write,
		uint16(unsafe.Sizeof(sysAuth{})), IOCTLBase, 0x11)

	// DRM_IO(0x1e)
	IOCTLSetMaster = ioctl.NewCode(ioctl.None, 0, IOCTLBase, 0x1e)

	// DRM_IO(0x1f)
	IOCTLDropMaster = ioctl.NewCode(ioctl.None, 0, IOCTLBase, 0x1f)

	// DRM_IOWR(0x2d, struct drm_prime_handle)
	IOCTLPrimeHandleToFD = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysPrimeHandle{})), IOCTLBase, 0x2d)

	// DRM_IOWR(0x2e, struct drm_prime_handle)
	IOCTLPrimeFDToHandle = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysPrimeHandle{})), IOCTLBase, 0x2e)

	// DRM_IOWR(0x3a, union drm_wait_vblank)
	IOCTLWaitVblank = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysWaitVblank{})), IOCTLBase, 0x3a)

	// DRM_IOWR(0xBF, struct drm_syncobj_create)
	IOCTLSyncobjCreate = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSyncobjCreate{})), IOCTLBase, 0xBF)

	// DRM_IOWR(0xC0, struct drm_syncobj_destroy)
	IOCTLSyncobjDestroy = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSyncobjDestroy{})), IOCTLBase, 0xC0)

	// DRM_IOWR(0xC1, struct drm_syncobj_handle)
	IOCTLSyncobjHandleToFD = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSyncobjHandle{})), IOCTLBase, 0xC1)

	// DRM_IOWR(0xC2, struct drm_syncobj_handle)
	IOCTLSyncobjFDToHandle = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSyncobjHandle{})), IOCTLBase, 0xC2)

	// DRM_IOWR(0xC3, struct drm_syncobj_wait)
	IOCTLSyncobjWait = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSyncobjWait{})), IOCTLBase, 0xC3)

	// DRM_IOWR(0xC4, struct drm_syncobj_array)
	IOCTLSyncobjReset = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSyncobjArray{})), IOCTLBase, 0xC4)

	// DRM_IOWR(0xC5, struct drm_syncobj_array)
	IOCTLSyncobjSignal = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSyncobjArray{})), IOCTLBase, 0xC5)

	// DRM_IOWR(0xCA, struct drm_syncobj_timeline_wait)
	IOCTLSyncobjTimelineWait = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSyncobjTimelineWait{})), IOCTLBase, 0xCA)

	// DRM_IOWR(0xCB, struct drm_syncobj_timeline_array)
	IOCTLSyncobjQuery = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSyncobjTimelineArray{})), IOCTLBase, 0xCB)

	// DRM_IOWR(0xCC, struct drm_syncobj_transfer)
	IOCTLSyncobjTransfer = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSyncobjTransfer{})), IOCTLBase, 0xCC)

	// DRM_IOWR(0xCD, struct drm_syncobj_timeline_array)
	IOCTLSyncobjTimelineSignal = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSyncobjTimelineArray{})), IOCTLBase, 0xCD)

	// DRM_IOWR(0xCF, struct drm_syncobj_eventfd)
	IOCTLSyncobjEventfd = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysSyncobjEventfd{})), IOCTLBase, 0xCF)
)
