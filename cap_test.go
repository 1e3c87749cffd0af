package drm_test

import (
	"testing"

	"github.com/gokms/drm"
)

func TestGetCap(t *testing.T) {
	file := openCard(t)
	defer file.Close()

	// Every driver answers the dumb-buffer capability.
	value, err := drm.GetCap(file, drm.CapDumbBuffer)
	if err != nil {
		t.Fatal(err)
	}
	if hasDumb := drm.HasDumbBuffer(file); hasDumb != (value != 0) {
		t.Errorf("HasDumbBuffer %v disagrees with capability value %d",
			hasDumb, value)
	}
}

func TestSetClientCap(t *testing.T) {
	file := openCard(t)
	defer file.Close()

	// Universal planes is supported by every modern driver.
	if err := drm.SetClientCap(file, drm.ClientCapUniversalPlanes, true); err != nil {
		t.Fatal(err)
	}
}
