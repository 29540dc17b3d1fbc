package dashboard

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dash/models/forecast"
)

func floatPtr(f float64) *float64 { return &f }

func samplePayload() *forecast.Payload {
	return &forecast.Payload{
		Cod: "200",
		Cnt: 3,
		List: []forecast.Entry{
			{
				Dt:         1702980000,
				Main:       forecast.Main{Temp: 300, FeelsLike: 301.2, TempMin: 298.4, TempMax: 300.6, Pressure: 1012, Humidity: 61},
				Weather:    []forecast.Condition{{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"}},
				Wind:       &forecast.Wind{Speed: 1.67, Deg: 20},
				Visibility: floatPtr(8000),
				Pop:        0.1,
				DtTxt:      "2023-12-19 09:00:00",
			},
			{
				Dt:      1702990800,
				Main:    forecast.Main{Temp: 295.1, TempMin: 294, TempMax: 296, Pressure: 1011, Humidity: 70},
				Weather: []forecast.Condition{{ID: 500, Main: "Rain", Description: "light rain", Icon: "10d"}},
				Pop:     0.45,
				DtTxt:   "2023-12-19 12:00:00",
			},
			{
				Dt:      1703001600,
				Main:    forecast.Main{Temp: 290, TempMin: 289.5, TempMax: 290.2, Pressure: 1013, Humidity: 80},
				Weather: []forecast.Condition{{ID: 801, Main: "Clouds", Description: "few clouds", Icon: "02d"}},
				DtTxt:   "2023-12-19 21:00:00",
			},
		},
		City: forecast.City{
			Name:     "Sylhet",
			Country:  "BD",
			Timezone: 6 * 3600,
			Sunrise:  1702946100,
			Sunset:   1702984800,
		},
	}
}

func TestNewDashboardView_Ready(t *testing.T) {
	// Act
	view := NewDashboardView(ReadyResult(samplePayload()), ViewOptions{City: "sylhet"})

	// Assert
	assert.Equal(t, "ready", view.State)
	assert.False(t, view.Loading)
	assert.Equal(t, "Sylhet", view.City)
	assert.Equal(t, "BD", view.Country)
	assert.Equal(t, "Tuesday", view.DayName)
	assert.Equal(t, "19.12.2023", view.Date)

	assert.Equal(t, "27°", view.Current.Temp)
	assert.Equal(t, "28°", view.Current.FeelsLike)
	assert.Equal(t, "25°", view.Current.TempMin)
	assert.Equal(t, "27°", view.Current.TempMax)
	assert.Equal(t, "clear sky", view.Current.Description)
	assert.Equal(t, "01d", view.Current.Icon)

	assert.Equal(t, "8km", view.Details.Visibility)
	assert.Equal(t, "1012 hPa", view.Details.AirPressure)
	assert.Equal(t, "61%", view.Details.Humidity)
	assert.Equal(t, "6km/h", view.Details.WindSpeed)
	assert.Equal(t, "6:35", view.Details.Sunrise)
	assert.Equal(t, "17:20", view.Details.Sunset)

	require.Len(t, view.Hourly, 3)
	assert.Equal(t, "9:00 AM", view.Hourly[0].Time)
	assert.Equal(t, "12:00 PM", view.Hourly[1].Time)
	assert.Equal(t, "9:00 PM", view.Hourly[2].Time)
	assert.Equal(t, "02n", view.Hourly[2].Icon)
	assert.Equal(t, "17°", view.Hourly[2].Temp)
	assert.Equal(t, 17.0, view.Hourly[2].TempC)
	assert.Equal(t, "19.12 9:00 PM", view.Hourly[2].Label)

	require.Len(t, view.Daily, 1)
}

func TestNewDashboardView_MilesPerHour(t *testing.T) {
	view := NewDashboardView(ReadyResult(samplePayload()), ViewOptions{Unit: MilesPerHour})

	// 1.67 m/s * 2.237 = 3.74
	assert.Equal(t, "4mph", view.Details.WindSpeed)
	assert.Equal(t, MilesPerHour, view.Unit)
}

func TestNewDashboardView_MissingOptionalFields(t *testing.T) {
	// Setup
	p := samplePayload()
	p.List[0].Visibility = nil
	p.List[0].Wind = nil
	p.List[0].Weather = nil
	p.City.Sunrise = 0
	p.City.Sunset = 0
	p.City.Timezone = 0

	// Act
	view := NewDashboardView(ReadyResult(p), ViewOptions{})

	// Assert
	assert.Equal(t, "10km", view.Details.Visibility)
	assert.Equal(t, "6km/h", view.Details.WindSpeed)
	assert.Equal(t, "1:30", view.Details.Sunrise)
	assert.Equal(t, "1:34", view.Details.Sunset)
	assert.Equal(t, "", view.Current.Description)
	assert.Equal(t, "01d", view.Current.Icon)
}

func TestNewDashboardView_CalmWindIsNotReplaced(t *testing.T) {
	p := samplePayload()
	p.List[0].Wind = &forecast.Wind{Speed: 0}

	view := NewDashboardView(ReadyResult(p), ViewOptions{})

	assert.Equal(t, "0km/h", view.Details.WindSpeed)
}

func TestNewDashboardView_FailedDegradesToDefaults(t *testing.T) {
	// Act
	view := NewDashboardView(FailedResult(errors.New("boom")), ViewOptions{City: "dhaka"})

	// Assert
	assert.Equal(t, "failed", view.State)
	assert.False(t, view.Loading)
	assert.Equal(t, "Dhaka", view.City)
	assert.Equal(t, "0°", view.Current.Temp)
	assert.Equal(t, "0°", view.Current.FeelsLike)
	assert.Equal(t, "01d", view.Current.Icon)
	assert.Equal(t, "10km", view.Details.Visibility)
	assert.Equal(t, "0 hPa", view.Details.AirPressure)
	assert.Equal(t, "0%", view.Details.Humidity)
	assert.Equal(t, "6km/h", view.Details.WindSpeed)
	assert.Equal(t, "1:30", view.Details.Sunrise)
	assert.Equal(t, "1:34", view.Details.Sunset)
	assert.Empty(t, view.Hourly)
	assert.Empty(t, view.Daily)
}

func TestNewDashboardView_NonASCIICity(t *testing.T) {
	view := NewDashboardView(FailedResult(nil), ViewOptions{City: "érd"})

	assert.Equal(t, "Érd", view.City)
	assert.True(t, utf8.ValidString(view.City))
}

func TestNewDashboardView_EmptyListDegrades(t *testing.T) {
	view := NewDashboardView(ReadyResult(&forecast.Payload{}), ViewOptions{City: "sylhet"})

	assert.Equal(t, "ready", view.State)
	assert.Equal(t, "0°", view.Current.Temp)
	assert.Equal(t, "Sylhet", view.City)
}

func TestNewDashboardView_Pending(t *testing.T) {
	view := NewDashboardView(PendingResult(), ViewOptions{City: "sylhet"})

	assert.Equal(t, "pending", view.State)
	assert.True(t, view.Loading)
}

func TestResult_States(t *testing.T) {
	assert.False(t, PendingResult().Settled())

	r := ReadyResult(nil)
	assert.Equal(t, Failed, r.State)
	assert.ErrorIs(t, r.Err, ErrEmptyPayload)

	r = FailedResult(nil)
	assert.True(t, r.Settled())
	assert.ErrorIs(t, r.Err, ErrEmptyPayload)

	assert.Equal(t, "unknown", State(42).String())
}
