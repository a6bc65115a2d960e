package status

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"

	"github.com/coolhat/coolhatctl/internal/errors"
)

// OLED renders snapshots on the hat's ssd1306 display. Like the fan
// controller it re-opens the bus on every render, so a transient display
// fault on one tick does not poison the next.
type OLED struct {
	busName string
	opts    ssd1306.Opts
}

// NewOLED probes the display once so callers can fall back to another
// presenter when no display is attached.
func NewOLED(busName string) (*OLED, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(errors.ErrDisplayInit, err)
	}

	o := &OLED{busName: busName, opts: ssd1306.DefaultOpts}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDisplayInit, err)
	}
	defer bus.Close()

	if _, err := ssd1306.NewI2C(bus, &o.opts); err != nil {
		return nil, errors.Wrap(errors.ErrDisplayInit, err)
	}

	return o, nil
}

func (o *OLED) Render(snapshot Snapshot) error {
	bus, err := i2creg.Open(o.busName)
	if err != nil {
		return errors.Wrap(errors.ErrDisplayRender, err)
	}
	defer bus.Close()

	dev, err := ssd1306.NewI2C(bus, &o.opts)
	if err != nil {
		return errors.Wrap(errors.ErrDisplayRender, err)
	}

	if err := dev.Draw(dev.Bounds(), frame(snapshot, o.opts.W, o.opts.H), image.Point{}); err != nil {
		return errors.Wrap(errors.ErrDisplayRender, err)
	}

	return nil
}

// frame lays the snapshot out the way the original hat display did: load
// and temperature share the top row, the remaining lines stack below.
func frame(snapshot Snapshot, width, height int) image.Image {
	img := image.NewGray(image.Rect(0, 0, width, height))

	face := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}

	drawAt := func(x, row int, text string) {
		drawer.Dot = fixed.P(x, (row+1)*face.Height-face.Descent)
		drawer.DrawString(text)
	}

	drawAt(0, 0, snapshot.CPULine())
	drawAt(width/2, 0, snapshot.TempLine())
	drawAt(0, 1, snapshot.RAMLine())
	drawAt(0, 2, snapshot.DiskLine())
	drawAt(0, 3, snapshot.IPLine())

	return img
}
