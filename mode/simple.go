package mode

import (
	"os"

	"github.com/pkg/errors"
)

type (
	// Modeset pairs one connected connector with a free CRTC and the
	// connector's preferred mode.
	Modeset struct {
		Width, Height uint16

		Mode Info
		Conn ConnectorID
		Crtc CRTCID
	}

	// SimpleModeset discovers one Modeset per connected connector,
	// the starting point for single-process scan-out programs.
	SimpleModeset struct {
		Modesets []Modeset
		driFile  *os.File
	}
)

// NewSimpleModeset probes the card and returns a modeset plan covering
// every connected connector that could be paired with a CRTC.
func NewSimpleModeset(file *os.File) (*SimpleModeset, error) {
	mset := &SimpleModeset{driFile: file}
	if err := mset.prepare(); err != nil {
		return nil, err
	}
	return mset, nil
}

func (mset *SimpleModeset) prepare() error {
	res, err := GetResources(mset.driFile)
	if err != nil {
		return errors.Wrap(err, "cannot retrieve resources")
	}

	for _, connID := range res.Connectors {
		conn, err := GetConnector(mset.driFile, connID, false)
		if err != nil {
			return errors.Wrapf(err, "cannot retrieve connector %d", connID)
		}

		dev := Modeset{Conn: connID}
		ok, err := mset.setupDev(res, conn, &dev)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		mset.Modesets = append(mset.Modesets, dev)
	}
	return nil
}

func (mset *SimpleModeset) setupDev(res *Resources, conn *Connector, dev *Modeset) (bool, error) {
	// check if a monitor is connected
	if conn.Connection != Connected {
		return false, nil
	}

	// the first mode is the connector's preferred one
	if len(conn.Modes) == 0 {
		return false, errors.Errorf("no valid mode for connector %d", conn.ID)
	}
	dev.Mode = conn.Modes[0]
	dev.Width = conn.Modes[0].Hdisplay
	dev.Height = conn.Modes[0].Vdisplay

	err := mset.findCrtc(res, conn, dev)
	if err != nil {
		return false, errors.Wrapf(err, "no valid crtc for connector %d", conn.ID)
	}
	return true, nil
}

func (mset *SimpleModeset) crtcTaken(id CRTCID) bool {
	for _, dev := range mset.Modesets {
		if dev.Crtc == id {
			return true
		}
	}
	return false
}

func (mset *SimpleModeset) findCrtc(res *Resources, conn *Connector, dev *Modeset) error {
	// Prefer the CRTC currently driving the connector.
	if conn.CurrentEncoder != 0 {
		encoder, err := GetEncoder(mset.driFile, conn.CurrentEncoder)
		if err != nil {
			return err
		}
		if encoder.CRTC != 0 && !mset.crtcTaken(encoder.CRTC) {
			dev.Crtc = encoder.CRTC
			return nil
		}
	}

	// The connector is unbound, or its CRTC is already claimed by an
	// earlier modeset; try every encoder/CRTC combination.
	for _, encID := range conn.Encoders {
		encoder, err := GetEncoder(mset.driFile, encID)
		if err != nil {
			return errors.Wrapf(err, "cannot retrieve encoder %d", encID)
		}
		for j, crtcID := range res.Crtcs {
			if encoder.PossibleCrtcs&(1<<uint(j)) == 0 {
				continue
			}
			if !mset.crtcTaken(crtcID) {
				dev.Crtc = crtcID
				return nil
			}
		}
	}

	return errors.Errorf("cannot find a suitable CRTC for connector %d", conn.ID)
}

// Restore reprograms the CRTC from a configuration saved with GetCrtc
// before the modeset took it over.
func (mset *SimpleModeset) Restore(dev *Modeset, saved *Crtc) error {
	var mode *Info
	if saved.ModeValid {
		mode = &saved.Mode
	}
	err := SetCrtc(mset.driFile, saved.ID, saved.FB,
		saved.X, saved.Y, []ConnectorID{dev.Conn}, mode)
	return errors.Wrap(err, "failed to restore CRTC")
}
