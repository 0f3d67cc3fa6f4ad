package weather

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"chamber-directory/internal/model"
)

// ForecastDays is how many days after today the widget shows.
const ForecastDays = 3

const iconURL = "https://openweathermap.org/img/wn/%s@2x.png"

// Report is the view model of the weather widget.
type Report struct {
	Current  Current `json:"current"`
	Forecast []Day   `json:"forecast"`
	Unit     string  `json:"unit"`
	Fallback bool    `json:"fallback"`
	Cached   bool    `json:"cached"`
}

// Current conditions, rounded for display.
type Current struct {
	Temp        int    `json:"temp"`
	FeelsLike   int    `json:"feelsLike"`
	Humidity    int    `json:"humidity"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
}

// Day is one forecast entry.
type Day struct {
	Label       string `json:"label"`
	High        int    `json:"high"`
	Low         int    `json:"low"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
}

// validate is the defensive shape check; it is not a schema validator.
func validate(p model.WeatherPayload) error {
	if p.Current == nil {
		return fmt.Errorf("missing current block")
	}
	if len(p.Current.Weather) == 0 {
		return fmt.Errorf("missing current.weather")
	}
	if len(p.Daily) < ForecastDays+1 {
		return fmt.Errorf("daily has %d entries, want at least %d", len(p.Daily), ForecastDays+1)
	}
	for i, d := range p.Daily[:ForecastDays+1] {
		if len(d.Weather) == 0 {
			return fmt.Errorf("missing daily[%d].weather", i)
		}
	}
	return nil
}

func unitSymbol(units string) string {
	switch units {
	case "imperial":
		return "°F"
	case "standard":
		return "K"
	default:
		return "°C"
	}
}

// buildReport assumes p passed validate.
func buildReport(p model.WeatherPayload, units string, loc *time.Location) Report {
	caser := cases.Title(language.English)
	cond := p.Current.Weather[0]

	r := Report{
		Current: Current{
			Temp:        round(p.Current.Temp),
			FeelsLike:   round(p.Current.FeelsLike),
			Humidity:    round(p.Current.Humidity),
			Description: caser.String(cond.Description),
			IconURL:     fmt.Sprintf(iconURL, cond.Icon),
		},
		Unit: unitSymbol(units),
	}

	for i, d := range p.Daily[:ForecastDays+1] {
		label := "Today"
		if i > 0 {
			label = time.Unix(d.Dt, 0).In(loc).Weekday().String()
		}
		r.Forecast = append(r.Forecast, Day{
			Label:       label,
			High:        round(d.Temp.Max),
			Low:         round(d.Temp.Min),
			Description: caser.String(d.Weather[0].Description),
			IconURL:     fmt.Sprintf(iconURL, d.Weather[0].Icon),
		})
	}
	return r
}

func round(f float64) int {
	return int(math.Round(f))
}
