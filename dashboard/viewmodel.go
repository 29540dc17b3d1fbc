package dashboard

import (
	"weather-dash/models/forecast"
	"weather-dash/util"
)

// Fallbacks used when the payload is missing a field.
const (
	DefaultVisibilityMeters = 10000
	DefaultWindSpeed        = 1.64
	DefaultSunrise          = 1702949452
	DefaultSunset           = 1702517657
	DefaultTemperature      = 0
)

type ViewOptions struct {
	City string
	Unit SpeedUnit
}

// DashboardView is the fully populated page model. Every field is display
// ready; templates never apply defaults of their own.
type DashboardView struct {
	State   string `json:"state"`
	Loading bool   `json:"loading"`

	City    string `json:"city"`
	Country string `json:"country,omitempty"`
	DayName string `json:"day_name"`
	Date    string `json:"date"`

	Current Conditions     `json:"current"`
	Hourly  []HourlyItem   `json:"hourly"`
	Details WeatherDetails `json:"details"`
	Daily   []DailySummary `json:"daily"`
	Unit    SpeedUnit      `json:"unit"`
}

type Conditions struct {
	Temp        string `json:"temp"`
	FeelsLike   string `json:"feels_like"`
	TempMin     string `json:"temp_min"`
	TempMax     string `json:"temp_max"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IconURL     string `json:"icon_url"`
}

type HourlyItem struct {
	Time    string  `json:"time"`
	Label   string  `json:"label"`
	Temp    string  `json:"temp"`
	TempC   float64 `json:"temp_c"`
	Icon    string  `json:"icon"`
	IconURL string  `json:"icon_url"`
}

// WeatherDetails backs the six-cell metrics grid.
type WeatherDetails struct {
	Visibility  string `json:"visibility"`
	AirPressure string `json:"air_pressure"`
	Humidity    string `json:"humidity"`
	Sunrise     string `json:"sunrise"`
	Sunset      string `json:"sunset"`
	WindSpeed   string `json:"wind_speed"`
}

// NewDashboardView normalizes a fetch result into a page model. Failed
// results render with the fallbacks, exactly like a payload with every
// optional field missing.
func NewDashboardView(result Result, opts ViewOptions) DashboardView {
	unit := opts.Unit
	if unit == "" {
		unit = KilometersPerHour
	}

	view := DashboardView{
		State:   result.State.String(),
		Loading: result.State == Pending,
		City:    util.CapitalizeCityName(opts.City),
		Unit:    unit,
		Hourly:  []HourlyItem{},
		Daily:   []DailySummary{},
	}

	var payload *forecast.Payload
	if result.State == Ready {
		payload = result.Payload
	}

	var city forecast.City
	if payload != nil {
		city = payload.City
		if city.Name != "" {
			view.City = city.Name
		}
		view.Country = city.Country
	}

	today := payload.Today()
	view.Current = currentConditions(today)
	view.Details = weatherDetails(today, city, unit)
	if today != nil {
		if t, ok := parseTimestamp(today.DtTxt); ok {
			view.DayName = t.Format(dayNameLayout)
			view.Date = t.Format(dateLayout)
		}
	}

	if payload != nil {
		for i := range payload.List {
			view.Hourly = append(view.Hourly, hourlyItem(&payload.List[i]))
		}
		view.Daily = DailySummaries(payload.List)
	}

	return view
}

func currentConditions(e *forecast.Entry) Conditions {
	c := Conditions{
		Temp:      FormatTemperature(DefaultTemperature),
		FeelsLike: FormatTemperature(DefaultTemperature),
		TempMin:   FormatTemperature(DefaultTemperature),
		TempMax:   FormatTemperature(DefaultTemperature),
	}

	var iconCode, dtTxt string
	if e != nil {
		c.Temp = FormatTemperature(KelvinToCelsius(e.Main.Temp))
		c.FeelsLike = FormatTemperature(KelvinToCelsius(e.Main.FeelsLike))
		c.TempMin = FormatTemperature(KelvinToCelsius(e.Main.TempMin))
		c.TempMax = FormatTemperature(KelvinToCelsius(e.Main.TempMax))
		dtTxt = e.DtTxt
		if cond := e.PrimaryCondition(); cond != nil {
			c.Description = cond.Description
			iconCode = cond.Icon
		}
	}

	c.Icon = SelectIcon(iconCode, dtTxt)
	c.IconURL = IconURL(c.Icon)
	return c
}

func weatherDetails(e *forecast.Entry, city forecast.City, unit SpeedUnit) WeatherDetails {
	visibility := float64(DefaultVisibilityMeters)
	wind := DefaultWindSpeed
	var pressure, humidity int
	if e != nil {
		if e.Visibility != nil {
			visibility = *e.Visibility
		}
		if e.Wind != nil {
			wind = e.Wind.Speed
		}
		pressure = e.Main.Pressure
		humidity = e.Main.Humidity
	}

	sunrise, sunset := city.Sunrise, city.Sunset
	if sunrise == 0 {
		sunrise = DefaultSunrise
	}
	if sunset == 0 {
		sunset = DefaultSunset
	}

	return WeatherDetails{
		Visibility:  FormatKilometers(MetersToKilometers(visibility)),
		AirPressure: FormatPressure(pressure),
		Humidity:    FormatPercent(humidity),
		Sunrise:     FormatClock(sunrise, city.Timezone),
		Sunset:      FormatClock(sunset, city.Timezone),
		WindSpeed:   FormatSpeed(MetersPerSecondToPreferredUnit(wind, unit), unit),
	}
}

func hourlyItem(e *forecast.Entry) HourlyItem {
	c := KelvinToCelsius(e.Main.Temp)
	item := HourlyItem{
		Temp:  FormatTemperature(c),
		TempC: c,
	}
	if t, ok := parseTimestamp(e.DtTxt); ok {
		item.Time = t.Format(hourOfDayLayout)
		item.Label = t.Format(shortDateLayout) + " " + item.Time
	}

	var iconCode string
	if cond := e.PrimaryCondition(); cond != nil {
		iconCode = cond.Icon
	}
	item.Icon = SelectIcon(iconCode, e.DtTxt)
	item.IconURL = IconURL(item.Icon)
	return item
}
