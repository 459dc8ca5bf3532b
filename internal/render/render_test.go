package render

import (
	"strings"
	"testing"

	"github.com/ngmaloney/area-weather/internal/mockapi"
	"github.com/ngmaloney/area-weather/internal/models"
)

func TestCards_Empty(t *testing.T) {
	for _, filtered := range [][]models.WeatherRecord{nil, {}} {
		out := Cards(filtered, nil, CardOptions{})

		if !strings.Contains(out, EmptyCardsTitle) {
			t.Errorf("empty view should contain %q, got:\n%s", EmptyCardsTitle, out)
		}
		if !strings.Contains(out, EmptyCardsHint) {
			t.Errorf("empty view should contain %q", EmptyCardsHint)
		}
	}
}

func TestCards_OneCardPerRecord(t *testing.T) {
	fixtures := mockapi.Fixtures()
	out := Cards(fixtures, nil, CardOptions{Columns: 3})

	for _, w := range fixtures {
		if strings.Count(out, w.Area) != 1 {
			t.Errorf("expected area %s exactly once", w.Area)
		}
	}
	if strings.Contains(out, EmptyCardsTitle) {
		t.Error("non-empty view must not show the empty state")
	}
	if got := strings.Count(out, NotFavoritedGlyph); got != len(fixtures) {
		t.Errorf("unfavorited glyph count = %d, want %d", got, len(fixtures))
	}
}

func TestCards_FavoriteGlyph(t *testing.T) {
	fixtures := mockapi.Fixtures()[:3]
	favorites := []models.FavoriteRecord{{ID: "12", WeatherID: "2", AreaName: "Gasabo"}}

	out := Cards(fixtures, favorites, CardOptions{})

	if got := strings.Count(out, FavoritedGlyph); got != 1 {
		t.Errorf("favorited glyph count = %d, want 1", got)
	}
	if got := strings.Count(out, NotFavoritedGlyph); got != 2 {
		t.Errorf("unfavorited glyph count = %d, want 2", got)
	}
}

func TestCards_Contents(t *testing.T) {
	kimironko := mockapi.Fixtures()[3]
	out := Cards([]models.WeatherRecord{kimironko}, nil, CardOptions{})

	for _, want := range []string{"Kimironko", "21°C", "light rain", "Humidity 85%", "Wind 20 km/h", "UNSUITABLE"} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}
}

func TestCards_Idempotent(t *testing.T) {
	fixtures := mockapi.Fixtures()
	favorites := []models.FavoriteRecord{{ID: "1", WeatherID: "4", AreaName: "Kimironko"}}
	opts := CardOptions{Selected: "3", Columns: 2}

	first := Cards(fixtures, favorites, opts)
	second := Cards(fixtures, favorites, opts)

	if first != second {
		t.Error("rendering the same inputs twice produced different output")
	}
}

func TestCards_SelectionChangesOutput(t *testing.T) {
	fixtures := mockapi.Fixtures()[:2]

	plain := Cards(fixtures, nil, CardOptions{})
	selected := Cards(fixtures, nil, CardOptions{Selected: "1"})

	if plain == selected {
		t.Error("selected card should be drawn differently")
	}
}

func TestCards_ColumnsLayout(t *testing.T) {
	fixtures := mockapi.Fixtures()[:4]

	oneCol := Cards(fixtures, nil, CardOptions{Columns: 1})
	twoCol := Cards(fixtures, nil, CardOptions{Columns: 2})

	if strings.Count(twoCol, "\n") >= strings.Count(oneCol, "\n") {
		t.Error("two columns should use fewer lines than one")
	}
}

func TestFavorites_Empty(t *testing.T) {
	out := Favorites(nil, -1)
	if !strings.Contains(out, EmptyFavorites) {
		t.Errorf("Favorites(nil) = %q, want empty-state message", out)
	}
}

func TestFavorites_RowsWithRemoveControl(t *testing.T) {
	favorites := []models.FavoriteRecord{
		{ID: "3", WeatherID: "4", AreaName: "Kimironko"},
		{ID: "5", WeatherID: "1", AreaName: "Nyarugenge"},
	}

	out := Favorites(favorites, 1)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d rows, want 2:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[0], "Kimironko") || !strings.Contains(lines[0], "[remove #3]") {
		t.Errorf("row 0 = %q, want Kimironko keyed by favorite id 3", lines[0])
	}
	if !strings.Contains(lines[1], "Nyarugenge") || !strings.Contains(lines[1], "[remove #5]") {
		t.Errorf("row 1 = %q, want Nyarugenge keyed by favorite id 5", lines[1])
	}
	if !strings.Contains(lines[1], "›") {
		t.Error("selected row should carry the cursor")
	}
}

func TestDetail_CanonicalPeriodOrder(t *testing.T) {
	out := Detail(mockapi.Fixtures()[0])

	if !strings.Contains(out, "Nyarugenge - Detailed Weather") {
		t.Errorf("missing title:\n%s", out)
	}

	morning := strings.Index(out, "morning")
	afternoon := strings.Index(out, "afternoon")
	night := strings.Index(out, "night")
	if morning < 0 || afternoon < 0 || night < 0 {
		t.Fatalf("all periods should be rendered:\n%s", out)
	}
	if !(morning < afternoon && afternoon < night) {
		t.Errorf("periods out of order: morning=%d afternoon=%d night=%d", morning, afternoon, night)
	}

	for _, want := range []string{"Temperature:", "Condition:", "Humidity:", "Wind:", "20°C", "28°C", "22°C", "75%", "15 km/h"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q", want)
		}
	}
}

func TestDetail_MissingPeriods(t *testing.T) {
	w := models.WeatherRecord{
		ID:   "9",
		Area: "Kanombe",
		TimeWeather: map[models.Period]models.PeriodWeather{
			models.PeriodNight: {Temp: 16, Condition: "clear", Humidity: 70, Wind: 5},
		},
	}

	out := Detail(w)
	if strings.Contains(out, "morning") || strings.Contains(out, "afternoon") {
		t.Error("missing periods should be skipped")
	}
	if !strings.Contains(out, "16°C") {
		t.Error("night period should be rendered")
	}

	empty := Detail(models.WeatherRecord{Area: "Nowhere"})
	if !strings.Contains(empty, "No period breakdown available") {
		t.Errorf("Detail without periods = %q", empty)
	}
}
