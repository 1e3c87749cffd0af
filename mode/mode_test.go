package mode_test

import (
	"os"
	"testing"

	"github.com/gokms/drm"
	"github.com/gokms/drm/mode"
)

func openCard(t *testing.T) *os.File {
	t.Helper()
	file, err := drm.OpenCard(0)
	if err != nil {
		t.Skipf("no drm card available: %v", err)
	}
	return file
}

func TestGetResources(t *testing.T) {
	file := openCard(t)
	defer file.Close()

	res, err := mode.GetResources(file)
	if err != nil {
		t.Fatal(err)
	}

	t.Logf("Framebuffer ids: %v", res.Fbs)
	t.Logf("CRTC ids: %v", res.Crtcs)
	t.Logf("Connector ids: %v", res.Connectors)
	t.Logf("Encoder ids: %v", res.Encoders)
	t.Logf("Framebuffer size: %dx%d .. %dx%d",
		res.MinWidth, res.MinHeight, res.MaxWidth, res.MaxHeight)

	if res.MaxWidth == 0 || res.MaxHeight == 0 {
		t.Error("device reports a zero maximum framebuffer size")
	}
}

func TestGetConnector(t *testing.T) {
	file := openCard(t)
	defer file.Close()

	res, err := mode.GetResources(file)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range res.Connectors {
		conn, err := mode.GetConnector(file, id, false)
		if err != nil {
			t.Fatal(err)
		}
		if conn.ID != id {
			t.Errorf("connector id mismatch: %d != %d", conn.ID, id)
		}
		if len(conn.Props) != len(conn.PropValues) {
			t.Errorf("connector %d: %d props but %d values",
				id, len(conn.Props), len(conn.PropValues))
		}
		t.Logf("connector %d: type=%s connection=%d modes=%d",
			id, mode.ConnectorTypeName(conn.Type),
			conn.Connection, len(conn.Modes))
	}
}

func TestGetCrtcAndGamma(t *testing.T) {
	file := openCard(t)
	defer file.Close()

	res, err := mode.GetResources(file)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range res.Crtcs {
		crtc, err := mode.GetCrtc(file, id)
		if err != nil {
			t.Fatal(err)
		}
		if crtc.GammaSize == 0 {
			continue
		}
		red := make([]uint16, crtc.GammaSize)
		green := make([]uint16, crtc.GammaSize)
		blue := make([]uint16, crtc.GammaSize)
		if err := mode.GetGamma(file, id, red, green, blue); err != nil {
			t.Logf("crtc %d: gamma not readable: %v", id, err)
		}
	}
}

func TestGetPlanes(t *testing.T) {
	file := openCard(t)
	defer file.Close()

	if err := drm.SetClientCap(file, drm.ClientCapUniversalPlanes, true); err != nil {
		t.Skipf("universal planes unavailable: %v", err)
	}

	planes, err := mode.GetPlaneResources(file)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range planes {
		plane, err := mode.GetPlane(file, id)
		if err != nil {
			t.Fatal(err)
		}
		if len(plane.Formats) == 0 {
			t.Errorf("plane %d reports no formats", id)
		}
	}
}

func TestObjectProperties(t *testing.T) {
	file := openCard(t)
	defer file.Close()

	res, err := mode.GetResources(file)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range res.Connectors {
		props, values, err := mode.GetObjectProperties(file, id)
		if err != nil {
			t.Fatal(err)
		}
		if len(props) != len(values) {
			t.Fatalf("parallel slices differ: %d != %d",
				len(props), len(values))
		}
		for i, propID := range props {
			prop, err := mode.GetProperty(file, propID)
			if err != nil {
				t.Fatal(err)
			}
			v := prop.Value(values[i])
			t.Logf("%s (%s) = %d", prop.Name, prop.Type, v.Raw)
		}
	}
}

func TestDumbBuffer(t *testing.T) {
	file := openCard(t)
	defer file.Close()

	if !drm.HasDumbBuffer(file) {
		t.Skip("no dumb buffer support")
	}

	buf, err := mode.CreateDumb(file, 64, 64, 32)
	if err != nil {
		t.Fatal(err)
	}
	defer mode.DestroyDumb(file, buf.Handle)

	if buf.Pitch < 64*4 {
		t.Errorf("pitch %d too small for 64 pixels at 32bpp", buf.Pitch)
	}
	if buf.Size < uint64(buf.Pitch)*64 {
		t.Errorf("size %d smaller than pitch*height", buf.Size)
	}

	mmap, err := buf.Map(file)
	if err != nil {
		t.Fatal(err)
	}
	defer mmap.UnsafeUnmap()

	mmap[0] = 0xff
	if mmap[0] != 0xff {
		t.Error("mapping is not writable")
	}
}

func TestBlobRoundTrip(t *testing.T) {
	file := openCard(t)
	defer file.Close()

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	id, err := mode.CreateBlob(file, data)
	if err != nil {
		t.Skipf("blobs unsupported: %v", err)
	}
	defer mode.DestroyBlob(file, id)

	got, err := mode.GetBlob(file, id)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(data) {
		t.Errorf("blob contents differ: %v != %v", got, data)
	}
}
