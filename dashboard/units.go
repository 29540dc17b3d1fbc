package dashboard

import (
	"math"
	"strings"
)

// SpeedUnit is the display unit for wind speed.
type SpeedUnit string

const (
	KilometersPerHour SpeedUnit = "km/h"
	MilesPerHour      SpeedUnit = "mph"
)

const (
	kelvinOffset = 273.15
	msToKmh      = 3.6
	msToMph      = 2.237
)

// KelvinToCelsius returns round(k - 273.15). The result is integer-valued; NaN
// input yields NaN.
func KelvinToCelsius(k float64) float64 {
	return math.Round(k - kelvinOffset)
}

// MetersPerSecondToPreferredUnit converts a speed in m/s. Any unit other than
// mph is treated as km/h.
func MetersPerSecondToPreferredUnit(speed float64, unit SpeedUnit) float64 {
	if unit == MilesPerHour {
		return speed * msToMph
	}
	return speed * msToKmh
}

func MetersToKilometers(m float64) float64 {
	return m / 1000
}

// ParseSpeedUnit maps a query value to a SpeedUnit, defaulting to km/h.
func ParseSpeedUnit(s string) SpeedUnit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mph":
		return MilesPerHour
	default:
		return KilometersPerHour
	}
}
