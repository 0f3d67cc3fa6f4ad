package weather

import (
	"time"

	"chamber-directory/internal/model"
)

// Fallback values shown when the upstream cannot be used.
const (
	FallbackTemp        = 24
	FallbackHumidity    = 60
	FallbackDescription = "partly cloudy"
	FallbackIcon        = "02d"
)

// Fallback synthesizes the fixed substitute payload, with forecast days
// anchored at now.
func Fallback(now time.Time) model.WeatherPayload {
	day := func(offset int, max, min float64, desc, icon string) model.DailyWeather {
		return model.DailyWeather{
			Dt:      now.AddDate(0, 0, offset).Unix(),
			Temp:    model.DailyTemp{Max: max, Min: min},
			Weather: []model.WeatherCondition{{Description: desc, Icon: icon}},
		}
	}

	return model.WeatherPayload{
		Current: &model.CurrentWeather{
			Temp:      FallbackTemp,
			FeelsLike: FallbackTemp,
			Humidity:  FallbackHumidity,
			Weather:   []model.WeatherCondition{{Description: FallbackDescription, Icon: FallbackIcon}},
		},
		Daily: []model.DailyWeather{
			day(0, 26, 15, FallbackDescription, FallbackIcon),
			day(1, 27, 16, "clear sky", "01d"),
			day(2, 25, 14, "scattered clouds", "03d"),
			day(3, 23, 13, "light rain", "10d"),
		},
	}
}
