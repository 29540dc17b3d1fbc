package dashboard

import (
	"math"

	"weather-dash/models/forecast"
)

const middayHour = 12

// DailySummary is one row of the multi-day forecast.
type DailySummary struct {
	DayName     string `json:"day_name"`
	Date        string `json:"date"`
	Min         string `json:"min"`
	Max         string `json:"max"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IconURL     string `json:"icon_url"`
	Rain        string `json:"rain"`
}

type dayBucket struct {
	key     string
	min     float64
	max     float64
	pop     float64
	midday  *forecast.Entry
	gap     int
	dayName string
	date    string
}

// DailySummaries groups entries by the calendar date of dt_txt, keeping the
// order in which days first appear. Entries with an unreadable timestamp are
// skipped.
func DailySummaries(entries []forecast.Entry) []DailySummary {
	var buckets []*dayBucket
	index := map[string]*dayBucket{}

	for i := range entries {
		e := &entries[i]
		t, ok := parseTimestamp(e.DtTxt)
		if !ok {
			continue
		}

		key := t.Format("2006-01-02")
		b, found := index[key]
		if !found {
			b = &dayBucket{
				key:     key,
				min:     math.Inf(1),
				max:     math.Inf(-1),
				gap:     math.MaxInt,
				dayName: t.Format(dayNameLayout),
				date:    t.Format(shortDateLayout),
			}
			index[key] = b
			buckets = append(buckets, b)
		}

		b.min = math.Min(b.min, e.Main.TempMin)
		b.max = math.Max(b.max, e.Main.TempMax)
		b.pop = math.Max(b.pop, e.Pop)

		gap := t.Hour() - middayHour
		if gap < 0 {
			gap = -gap
		}
		if gap < b.gap {
			b.gap = gap
			b.midday = e
		}
	}

	out := make([]DailySummary, 0, len(buckets))
	for _, b := range buckets {
		var iconCode, description string
		if cond := b.midday.PrimaryCondition(); cond != nil {
			iconCode = cond.Icon
			description = cond.Description
		}
		// daily rows always show the day glyph
		icon := SelectIcon(iconCode, b.key+" 12:00:00")

		out = append(out, DailySummary{
			DayName:     b.dayName,
			Date:        b.date,
			Min:         FormatTemperature(KelvinToCelsius(b.min)),
			Max:         FormatTemperature(KelvinToCelsius(b.max)),
			Description: description,
			Icon:        icon,
			IconURL:     IconURL(icon),
			Rain:        FormatPercent(int(math.Round(b.pop * 100))),
		})
	}
	return out
}
