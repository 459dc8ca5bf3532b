package models

// FavoriteRecord is a user bookmark pointing at one weather report.
// AreaName is copied from the report when the favorite is created.
type FavoriteRecord struct {
	ID        string `json:"id"`        // Assigned by the API on creation
	WeatherID string `json:"weatherId"` // WeatherRecord.ID
	AreaName  string `json:"areaName"`
}

// FindFavorite returns the favorite for weatherID, if any
func FindFavorite(favorites []FavoriteRecord, weatherID string) (FavoriteRecord, bool) {
	for _, f := range favorites {
		if f.WeatherID == weatherID {
			return f, true
		}
	}
	return FavoriteRecord{}, false
}

// IsFavorited reports whether any favorite points at weatherID
func IsFavorited(favorites []FavoriteRecord, weatherID string) bool {
	_, ok := FindFavorite(favorites, weatherID)
	return ok
}
