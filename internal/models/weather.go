package models

// EventRecommendation is the coarse suitability tag stored on a weather report
type EventRecommendation string

const (
	RecommendationSuitable   EventRecommendation = "suitable"
	RecommendationCaution    EventRecommendation = "caution"
	RecommendationUnsuitable EventRecommendation = "unsuitable"
)

// Valid reports whether r is one of the known recommendations
func (r EventRecommendation) Valid() bool {
	switch r {
	case RecommendationSuitable, RecommendationCaution, RecommendationUnsuitable:
		return true
	}
	return false
}

// Period names a part of the day in a report's breakdown
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodNight     Period = "night"
)

// Periods returns the canonical display order
func Periods() []Period {
	return []Period{PeriodMorning, PeriodAfternoon, PeriodNight}
}

// PeriodWeather is the weather for a single part of the day
type PeriodWeather struct {
	Temp      int    `json:"temp"`      // Celsius
	Condition string `json:"condition"` // e.g., "clear", "drizzle"
	Humidity  int    `json:"humidity"`  // percent
	Wind      int    `json:"wind"`      // km/h
}

// WeatherRecord is the weather report for one area of the city.
// Records are treated as immutable once fetched.
type WeatherRecord struct {
	ID                  string                   `json:"id"`
	Area                string                   `json:"area"`
	Temperature         int                      `json:"temperature"` // Celsius
	Condition           string                   `json:"condition"`
	Humidity            int                      `json:"humidity"`  // 0-100
	WindSpeed           int                      `json:"windSpeed"` // km/h
	EventRecommendation EventRecommendation      `json:"eventRecommendation"`
	TimeWeather         map[Period]PeriodWeather `json:"timeWeather"`
}

// PeriodWeather returns the breakdown for p, if the record has one
func (w WeatherRecord) PeriodWeather(p Period) (PeriodWeather, bool) {
	pw, ok := w.TimeWeather[p]
	return pw, ok
}
