package model

// WeatherCondition is one element of a "weather" array in the upstream payload.
type WeatherCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CurrentWeather models the "current" block of a one-call response.
type CurrentWeather struct {
	Temp      float64            `json:"temp"`
	FeelsLike float64            `json:"feels_like"`
	Humidity  float64            `json:"humidity"`
	Weather   []WeatherCondition `json:"weather"`
}

// DailyTemp holds the high and low of a forecast day.
type DailyTemp struct {
	Max float64 `json:"max"`
	Min float64 `json:"min"`
}

// DailyWeather is one entry of the "daily" array. Index 0 is today.
type DailyWeather struct {
	Dt      int64              `json:"dt"`
	Temp    DailyTemp          `json:"temp"`
	Weather []WeatherCondition `json:"weather"`
}

// WeatherPayload is the subset of the upstream response the widget reads.
type WeatherPayload struct {
	Current *CurrentWeather `json:"current"`
	Daily   []DailyWeather  `json:"daily"`
}
