package thermal

// RGB is an 8-bit-per-channel LED color.
type RGB struct {
	R, G, B byte
}

// Setting is the immutable fan/LED configuration for one band. FanLevel is
// the raw PWM register value the hat firmware expects, not a percentage:
// 0x00 is off, 0x02..0x09 scale from 20% to 90%, and 0x01 is full speed.
type Setting struct {
	FanLevel byte
	Color    RGB
}

var settings = [BandCount]Setting{
	BandBelow40: {FanLevel: 0x00, Color: RGB{0x00, 0x88, 0x00}},
	Band40To45:  {FanLevel: 0x02, Color: RGB{0x00, 0x44, 0x44}},
	Band45To47:  {FanLevel: 0x04, Color: RGB{0x00, 0x00, 0x88}},
	Band47To49:  {FanLevel: 0x06, Color: RGB{0x44, 0x00, 0x44}},
	Band49To51:  {FanLevel: 0x08, Color: RGB{0x88, 0x00, 0x00}},
	Band51To53:  {FanLevel: 0x09, Color: RGB{0xff, 0x00, 0x00}},
	BandAbove53: {FanLevel: 0x01, Color: RGB{0xff, 0xff, 0xff}},
}

// Setting returns the control setting for the band. Out-of-range bands get
// the fail-safe maximum cooling setting.
func (b Band) Setting() Setting {
	if b < 0 || b >= BandCount {
		return settings[MaxBand]
	}

	return settings[b]
}
