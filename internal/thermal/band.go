// Package thermal maps CPU temperatures onto the fixed bands the cooling
// hat is driven by. Classification is a total function: every temperature
// falls in exactly one band, and the bands tile the whole real line.
package thermal

// Band is one of the seven ordered temperature ranges. The zero value is
// the coolest band; ordering follows the underlying intervals.
type Band int

const (
	BandBelow40 Band = iota // (-inf, 40)
	Band40To45              // [40, 45)
	Band45To47              // [45, 47)
	Band47To49              // [47, 49)
	Band49To51              // [49, 51)
	Band51To53              // [51, 53)
	BandAbove53             // [53, +inf)
)

// BandCount is the number of defined bands.
const BandCount = 7

// MaxBand is the hottest band, used as the fail-safe default before the
// first successful temperature read.
const MaxBand = BandAbove53

func (b Band) String() string {
	switch b {
	case BandBelow40:
		return "below40"
	case Band40To45:
		return "40to45"
	case Band45To47:
		return "45to47"
	case Band47To49:
		return "47to49"
	case Band49To51:
		return "49to51"
	case Band51To53:
		return "51to53"
	case BandAbove53:
		return "above53"
	default:
		return "unknown"
	}
}

// Bands returns all bands in ascending order.
func Bands() []Band {
	return []Band{
		BandBelow40,
		Band40To45,
		Band45To47,
		Band47To49,
		Band49To51,
		Band51To53,
		BandAbove53,
	}
}

// Classify returns the band the given temperature (degrees Celsius) lies in.
// Comparisons are strict: a temperature exactly on a threshold belongs to
// the higher band (45.0 is in [45,47), not [40,45)).
func Classify(temperature float64) Band {
	switch {
	case temperature < 40:
		return BandBelow40
	case temperature < 45:
		return Band40To45
	case temperature < 47:
		return Band45To47
	case temperature < 49:
		return Band47To49
	case temperature < 51:
		return Band49To51
	case temperature < 53:
		return Band51To53
	default:
		return BandAbove53
	}
}
