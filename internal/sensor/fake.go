package sensor

import "errors"

// Fake is a test double that returns scripted temperature readings.
// Each call to Read consumes the next reading; once exhausted, the last
// reading repeats.
type Fake struct {
	Readings []Reading

	index int
}

// Reading is a single scripted sample. If Err is non-nil it is returned
// instead of the temperature.
type Reading struct {
	Temperature float64
	Err         error
}

// NewFake creates a Fake returning the given temperatures in order.
func NewFake(temperatures ...float64) *Fake {
	f := &Fake{}
	for _, t := range temperatures {
		f.Readings = append(f.Readings, Reading{Temperature: t})
	}

	return f
}

func (f *Fake) Read() (float64, error) {
	if len(f.Readings) == 0 {
		return 0, errors.New("no readings configured")
	}

	r := f.Readings[f.index]
	if f.index < len(f.Readings)-1 {
		f.index++
	}

	if r.Err != nil {
		return 0, r.Err
	}

	return r.Temperature, nil
}
