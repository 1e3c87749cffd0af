package drm_test

import (
	"os"
	"testing"

	"github.com/gokms/drm"
)

// openCard returns the first card node, skipping the test on machines
// without DRM hardware.
func openCard(t *testing.T) *os.File {
	t.Helper()
	file, err := drm.OpenCard(0)
	if err != nil {
		t.Skipf("no drm card available: %v", err)
	}
	return file
}

func TestAvailable(t *testing.T) {
	v, err := drm.Available()
	if err != nil {
		t.Skipf("drm not available: %v", err)
	}
	if v.Name == "" {
		t.Fatalf("driver version has no name: %#v", v)
	}
	t.Logf("Driver name: %s", v.Name)
	t.Logf("Driver version: %d.%d.%d", v.Major, v.Minor, v.Patch)
	t.Logf("Driver date: %s", v.Date)
	t.Logf("Driver description: %s", v.Desc)
}

func TestGetVersion(t *testing.T) {
	file := openCard(t)
	defer file.Close()

	version, err := drm.GetVersion(file)
	if err != nil {
		t.Fatal(err)
	}
	if version.Name == "" {
		t.Error("driver reported an empty name")
	}
}

func TestGetBusID(t *testing.T) {
	file := openCard(t)
	defer file.Close()

	busID, err := drm.GetBusID(file)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("Bus ID: %q", busID)
}

func TestGetMagic(t *testing.T) {
	file := openCard(t)
	defer file.Close()

	magic, err := drm.GetMagic(file)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("Auth magic: %d", magic)
}
