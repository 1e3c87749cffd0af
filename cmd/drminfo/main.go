// Command drminfo dumps a card's driver version, capabilities and
// mode-setting resources.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/gokms/drm"
	"github.com/gokms/drm/mode"
)

var (
	card   = pflag.IntP("card", "c", 0, "card number to open (/dev/dri/cardN)")
	probe  = pflag.BoolP("probe", "b", false, "force-probe connectors instead of using cached state")
	planes = pflag.BoolP("planes", "p", false, "list planes (enables the universal-planes capability)")
	props  = pflag.BoolP("props", "P", false, "list properties of every object")
)

func main() {
	pflag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	file, err := drm.OpenCard(*card)
	if err != nil {
		log.Fatalw("cannot open card", "card", *card, "err", err)
	}
	defer file.Close()

	version, err := drm.GetVersion(file)
	if err != nil {
		log.Fatalw("cannot read driver version", "err", err)
	}
	fmt.Printf("driver: %s %d.%d.%d (%s)\n  %s\n",
		version.Name, version.Major, version.Minor, version.Patch,
		version.Date, version.Desc)

	printCaps(file)

	if *planes || *props {
		if err := drm.SetClientCap(file, drm.ClientCapUniversalPlanes, true); err != nil {
			log.Warnw("universal planes unavailable", "err", err)
		}
		if err := drm.SetClientCap(file, drm.ClientCapAtomic, true); err != nil {
			log.Warnw("atomic properties unavailable", "err", err)
		}
	}

	res, err := mode.GetResources(file)
	if err != nil {
		log.Fatalw("cannot read resources", "err", err)
	}
	fmt.Printf("\nframebuffer size: %dx%d .. %dx%d\n",
		res.MinWidth, res.MinHeight, res.MaxWidth, res.MaxHeight)
	fmt.Printf("fbs=%d crtcs=%d connectors=%d encoders=%d\n",
		len(res.Fbs), len(res.Crtcs), len(res.Connectors), len(res.Encoders))

	for _, id := range res.Connectors {
		conn, err := mode.GetConnector(file, id, *probe)
		if err != nil {
			log.Errorw("cannot read connector", "connector", id, "err", err)
			continue
		}
		printConnector(file, conn)
	}

	for _, id := range res.Crtcs {
		crtc, err := mode.GetCrtc(file, id)
		if err != nil {
			log.Errorw("cannot read crtc", "crtc", id, "err", err)
			continue
		}
		fmt.Printf("\ncrtc %d: fb=%d pos=(%d,%d) gamma=%d",
			crtc.ID, crtc.FB, crtc.X, crtc.Y, crtc.GammaSize)
		if crtc.ModeValid {
			fmt.Printf(" mode=%s", crtc.Mode.ModeName())
		}
		fmt.Println()
		if *props {
			printProperties(file, id)
		}
	}

	if *planes {
		ids, err := mode.GetPlaneResources(file)
		if err != nil {
			log.Fatalw("cannot read plane resources", "err", err)
		}
		for _, id := range ids {
			plane, err := mode.GetPlane(file, id)
			if err != nil {
				log.Errorw("cannot read plane", "plane", id, "err", err)
				continue
			}
			fmt.Printf("\nplane %d: crtc=%d fb=%d crtcs=%#x formats=%d\n",
				plane.ID, plane.CRTC, plane.FB,
				plane.PossibleCrtcs, len(plane.Formats))
			if *props {
				printProperties(file, id)
			}
		}
	}
}

func printCaps(file *os.File) {
	caps := []struct {
		name string
		cap  uint64
	}{
		{"dumb buffers", drm.CapDumbBuffer},
		{"vblank high crtc", drm.CapVBlankHighCRTC},
		{"prime", drm.CapPrime},
		{"async page flip", drm.CapAsyncPageFlip},
		{"cursor size", drm.CapCursorWidth},
		{"addfb2 modifiers", drm.CapAddFB2Modifiers},
		{"crtc in vblank event", drm.CapCrtcInVblankEvent},
		{"syncobj", drm.CapSyncobj},
		{"syncobj timeline", drm.CapSyncobjTimeline},
		{"atomic async page flip", drm.CapAtomicAsyncPageFlip},
	}
	fmt.Println("\ncapabilities:")
	for _, c := range caps {
		value, err := drm.GetCap(file, c.cap)
		if err != nil {
			fmt.Printf("  %-24s unsupported\n", c.name)
			continue
		}
		fmt.Printf("  %-24s %d\n", c.name, value)
	}
}

func printConnector(file *os.File, conn *mode.Connector) {
	state := "unknown"
	switch conn.Connection {
	case mode.Connected:
		state = "connected"
	case mode.Disconnected:
		state = "disconnected"
	}
	fmt.Printf("\nconnector %d: %s-%d %s, %dx%dmm, encoder=%d\n",
		conn.ID, mode.ConnectorTypeName(conn.Type), conn.TypeID,
		state, conn.PhysWidth, conn.PhysHeight, conn.CurrentEncoder)
	for _, m := range conn.Modes {
		fmt.Printf("  %-16s %dx%d@%d\n",
			m.ModeName(), m.Hdisplay, m.Vdisplay, m.Vrefresh)
	}
}

func printProperties(file *os.File, obj mode.ObjectID) {
	ids, values, err := mode.GetObjectProperties(file, obj)
	if err != nil {
		fmt.Printf("  properties unavailable: %v\n", err)
		return
	}
	for i, id := range ids {
		prop, err := mode.GetProperty(file, id)
		if err != nil {
			fmt.Printf("  prop %d: %v\n", id, err)
			continue
		}
		fmt.Printf("  %-24s (%s) = %d\n",
			prop.Name, prop.Type, values[i])
	}
}
