package dashboard

import (
	"fmt"
	"strings"
	"time"

	"weather-dash/config"
)

// DefaultIconBase is the glyph family used when the provider sent no icon code.
const DefaultIconBase = "01"

const (
	nightStartsAt = 18
	dayStartsAt   = 6
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// SelectIcon picks the day or night variant of the glyph family named by
// iconCode, using the hour of dtTxt. Hours in [18, 6) are night. An unparseable
// timestamp selects the day variant.
func SelectIcon(iconCode, dtTxt string) string {
	base := strings.TrimRight(strings.TrimSpace(iconCode), "dn")
	if base == "" {
		base = DefaultIconBase
	}

	if isNight(dtTxt) {
		return base + "n"
	}
	return base + "d"
}

// IconURL returns the image asset for an icon identifier.
func IconURL(id string) string {
	return fmt.Sprintf(config.OPEN_WEATHER_ICON_URL_FORMAT, id)
}

func isNight(dtTxt string) bool {
	t, ok := parseTimestamp(dtTxt)
	if !ok {
		return false
	}
	h := t.Hour()
	return h >= nightStartsAt || h < dayStartsAt
}

// parseTimestamp reads the provider's textual timestamp. The wall clock is kept
// as written.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
