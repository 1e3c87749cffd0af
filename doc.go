// Package drm provides a library to interact with DRM
// (Direct Rendering Manager) and KMS (Kernel Mode Setting) interfaces.
// DRM is a low level interface for the graphics card (gpu) and this package
// enables the creation of graphics library on top of the kernel drm/kms
// subsystem.
//
// The package wraps the raw character-device ioctl surface in typed
// calls: device and capability negotiation, the DRM master lock, PRIME
// buffer sharing, sync objects and vblank waits live here; the KMS
// object graph (connectors, encoders, CRTCs, planes, framebuffers,
// properties and atomic commits) lives in the mode subpackage.
package drm
