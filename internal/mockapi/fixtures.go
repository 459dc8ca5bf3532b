package mockapi

import "github.com/ngmaloney/area-weather/internal/models"

func periods(morning, afternoon, night models.PeriodWeather) map[models.Period]models.PeriodWeather {
	return map[models.Period]models.PeriodWeather{
		models.PeriodMorning:   morning,
		models.PeriodAfternoon: afternoon,
		models.PeriodNight:     night,
	}
}

// Fixtures returns the seeded weather reports for Kigali areas, in the
// order the API serves them.
func Fixtures() []models.WeatherRecord {
	return []models.WeatherRecord{
		{
			ID: "1", Area: "Nyarugenge", Temperature: 24, Condition: "partly cloudy",
			Humidity: 65, WindSpeed: 12, EventRecommendation: models.RecommendationSuitable,
			TimeWeather: periods(
				models.PeriodWeather{Temp: 20, Condition: "clear", Humidity: 70, Wind: 8},
				models.PeriodWeather{Temp: 28, Condition: "partly cloudy", Humidity: 60, Wind: 15},
				models.PeriodWeather{Temp: 22, Condition: "clear", Humidity: 75, Wind: 10},
			),
		},
		{
			ID: "2", Area: "Gasabo", Temperature: 26, Condition: "sunny",
			Humidity: 58, WindSpeed: 15, EventRecommendation: models.RecommendationSuitable,
			TimeWeather: periods(
				models.PeriodWeather{Temp: 22, Condition: "clear", Humidity: 65, Wind: 12},
				models.PeriodWeather{Temp: 30, Condition: "sunny", Humidity: 50, Wind: 18},
				models.PeriodWeather{Temp: 24, Condition: "clear", Humidity: 70, Wind: 12},
			),
		},
		{
			ID: "3", Area: "Kicukiro", Temperature: 23, Condition: "overcast",
			Humidity: 72, WindSpeed: 8, EventRecommendation: models.RecommendationCaution,
			TimeWeather: periods(
				models.PeriodWeather{Temp: 19, Condition: "cloudy", Humidity: 80, Wind: 6},
				models.PeriodWeather{Temp: 27, Condition: "overcast", Humidity: 65, Wind: 10},
				models.PeriodWeather{Temp: 21, Condition: "cloudy", Humidity: 78, Wind: 8},
			),
		},
		{
			ID: "4", Area: "Kimironko", Temperature: 21, Condition: "light rain",
			Humidity: 85, WindSpeed: 20, EventRecommendation: models.RecommendationUnsuitable,
			TimeWeather: periods(
				models.PeriodWeather{Temp: 18, Condition: "drizzle", Humidity: 90, Wind: 15},
				models.PeriodWeather{Temp: 24, Condition: "light rain", Humidity: 80, Wind: 25},
				models.PeriodWeather{Temp: 19, Condition: "rain", Humidity: 88, Wind: 18},
			),
		},
		{
			ID: "5", Area: "Remera", Temperature: 25, Condition: "partly sunny",
			Humidity: 60, WindSpeed: 14, EventRecommendation: models.RecommendationSuitable,
			TimeWeather: periods(
				models.PeriodWeather{Temp: 21, Condition: "cloudy", Humidity: 68, Wind: 10},
				models.PeriodWeather{Temp: 29, Condition: "partly sunny", Humidity: 52, Wind: 18},
				models.PeriodWeather{Temp: 23, Condition: "clear", Humidity: 65, Wind: 12},
			),
		},
		{
			ID: "6", Area: "Gikondo", Temperature: 22, Condition: "cloudy",
			Humidity: 68, WindSpeed: 10, EventRecommendation: models.RecommendationCaution,
			TimeWeather: periods(
				models.PeriodWeather{Temp: 19, Condition: "overcast", Humidity: 75, Wind: 8},
				models.PeriodWeather{Temp: 25, Condition: "cloudy", Humidity: 62, Wind: 12},
				models.PeriodWeather{Temp: 20, Condition: "cloudy", Humidity: 72, Wind: 9},
			),
		},
		{
			ID: "7", Area: "Nyamirambo", Temperature: 27, Condition: "sunny",
			Humidity: 55, WindSpeed: 16, EventRecommendation: models.RecommendationSuitable,
			TimeWeather: periods(
				models.PeriodWeather{Temp: 23, Condition: "clear", Humidity: 62, Wind: 12},
				models.PeriodWeather{Temp: 31, Condition: "sunny", Humidity: 48, Wind: 20},
				models.PeriodWeather{Temp: 25, Condition: "clear", Humidity: 60, Wind: 14},
			),
		},
		{
			ID: "8", Area: "Kacyiru", Temperature: 20, Condition: "heavy rain",
			Humidity: 92, WindSpeed: 25, EventRecommendation: models.RecommendationUnsuitable,
			TimeWeather: periods(
				models.PeriodWeather{Temp: 17, Condition: "rain", Humidity: 95, Wind: 20},
				models.PeriodWeather{Temp: 23, Condition: "heavy rain", Humidity: 90, Wind: 30},
				models.PeriodWeather{Temp: 18, Condition: "rain", Humidity: 93, Wind: 22},
			),
		},
	}
}
