package drm_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/gokms/drm"
	"github.com/gokms/drm/ioctl"
)

func openSyncobjCard(t *testing.T) *os.File {
	t.Helper()
	file := openCard(t)
	value, err := drm.GetCap(file, drm.CapSyncobj)
	if err != nil || value == 0 {
		file.Close()
		t.Skip("no syncobj support")
	}
	return file
}

func TestSyncobjLifecycle(t *testing.T) {
	file := openSyncobjCard(t)
	defer file.Close()

	obj, err := drm.CreateSyncobj(file, false)
	if err != nil {
		t.Fatal(err)
	}
	if obj.Raw() == 0 {
		t.Fatal("syncobj handle is zero")
	}
	if err := drm.DestroySyncobj(file, obj); err != nil {
		t.Fatal(err)
	}
}

func TestSyncobjSignalWait(t *testing.T) {
	file := openSyncobjCard(t)
	defer file.Close()

	obj, err := drm.CreateSyncobj(file, true)
	if err != nil {
		t.Fatal(err)
	}
	defer drm.DestroySyncobj(file, obj)

	deadline, err := drm.MonotonicDeadline(time.Second)
	if err != nil {
		t.Fatal(err)
	}

	// created signaled, a wait returns immediately
	first, err := drm.SyncobjWait(file,
		[]drm.SyncobjID{obj}, deadline, drm.SyncobjWaitAll)
	if err != nil {
		t.Fatal(err)
	}
	if first != 0 {
		t.Errorf("first signaled index: got %d, want 0", first)
	}

	if err := drm.SyncobjReset(file, []drm.SyncobjID{obj}); err != nil {
		t.Fatal(err)
	}
	if err := drm.SyncobjSignal(file, []drm.SyncobjID{obj}); err != nil {
		t.Fatal(err)
	}
}

func TestSyncobjWaitEmpty(t *testing.T) {
	file := openSyncobjCard(t)
	defer file.Close()

	_, err := drm.SyncobjWait(file, nil, 0, 0)
	if !errors.Is(err, ioctl.ErrInvalidArgument) {
		t.Errorf("empty wait: got %v, want invalid argument", err)
	}
}

func TestSyncobjFDRoundTrip(t *testing.T) {
	file := openSyncobjCard(t)
	defer file.Close()

	obj, err := drm.CreateSyncobj(file, false)
	if err != nil {
		t.Fatal(err)
	}
	defer drm.DestroySyncobj(file, obj)

	fd, err := drm.SyncobjToFD(file, obj, false)
	if err != nil {
		t.Fatal(err)
	}
	defer unix.Close(fd)

	imported, err := drm.SyncobjFromFD(file, fd, false)
	if err != nil {
		t.Fatal(err)
	}
	drm.DestroySyncobj(file, imported)
}
