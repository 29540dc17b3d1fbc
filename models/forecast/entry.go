package forecast

// Entry matches one element in the 'list' array, a single 3-hourly sample.
type Entry struct {
	Dt         int64       `json:"dt"`
	Main       Main        `json:"main"`
	Weather    []Condition `json:"weather"`
	Clouds     Clouds      `json:"clouds"`
	Wind       *Wind       `json:"wind,omitempty"`
	Visibility *float64    `json:"visibility,omitempty"` // absent for some samples
	Pop        float64     `json:"pop"`
	Sys        Sys         `json:"sys"`
	DtTxt      string      `json:"dt_txt"`
}

// Main holds temperatures (Kelvin), pressure (hPa) and humidity (%).
type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	SeaLevel  int     `json:"sea_level"`
	GrndLevel int     `json:"grnd_level"`
	Humidity  int     `json:"humidity"`
	TempKf    float64 `json:"temp_kf"`
}

// Condition is one element of the 'weather' array.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Clouds struct {
	All int `json:"all"`
}

// Wind speed is in m/s, direction in degrees.
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
	Gust  float64 `json:"gust"`
}

// Sys carries the part-of-day marker ("d" or "n").
type Sys struct {
	Pod string `json:"pod"`
}

// PrimaryCondition returns the first weather condition, or nil when the list is empty.
func (e *Entry) PrimaryCondition() *Condition {
	if e == nil || len(e.Weather) == 0 {
		return nil
	}
	return &e.Weather[0]
}
