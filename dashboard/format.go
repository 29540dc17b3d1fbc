package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	dayNameLayout   = "Monday"
	dateLayout      = "02.01.2006"
	shortDateLayout = "02.01"
	hourOfDayLayout = "3:04 PM"
)

// FormatTemperature renders an already converted Celsius value, e.g. "27°".
func FormatTemperature(c float64) string {
	if c == 0 {
		c = 0 // drop the sign of -0
	}
	return fmt.Sprintf("%.0f°", c)
}

// FormatKilometers keeps at most one decimal and trims a trailing ".0": 8 -> "8km", 8.52 -> "8.5km".
func FormatKilometers(km float64) string {
	return strconv.FormatFloat(math.Round(km*10)/10, 'f', -1, 64) + "km"
}

func FormatSpeed(v float64, unit SpeedUnit) string {
	if unit == "" {
		unit = KilometersPerHour
	}
	return fmt.Sprintf("%.0f%s", math.Round(v), unit)
}

func FormatPressure(hpa int) string {
	return fmt.Sprintf("%d hPa", hpa)
}

func FormatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// FormatClock renders epoch seconds as H:mm at the given UTC offset (seconds).
func FormatClock(epoch int64, offsetSeconds int) string {
	t := time.Unix(epoch, 0).In(time.FixedZone("", offsetSeconds))
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}
