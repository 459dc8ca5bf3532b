package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/ngmaloney/area-weather/internal/models"
)

var (
	// ErrDuplicate is returned when the weather report is already a favorite
	ErrDuplicate = errors.New("already in favorites")
	// ErrNotFound is returned when no favorite has the requested id
	ErrNotFound = errors.New("favorite not found")
)

// Repository handles persistence for favorites
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new favorites repository on an open database
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a favorite and returns it with its assigned id.
// At most one favorite may exist per weather id.
func (r *Repository) Create(ctx context.Context, weatherID, areaName string) (*models.FavoriteRecord, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (weather_id, area_name)
		VALUES (?, ?)
		ON CONFLICT(weather_id) DO NOTHING
	`, weatherID, areaName)
	if err != nil {
		return nil, fmt.Errorf("saving favorite: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking insert: %w", err)
	}
	if n == 0 {
		return nil, ErrDuplicate
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting last insert id: %w", err)
	}

	return &models.FavoriteRecord{
		ID:        strconv.FormatInt(id, 10),
		WeatherID: weatherID,
		AreaName:  areaName,
	}, nil
}

// List retrieves all favorites in creation order
func (r *Repository) List(ctx context.Context) ([]models.FavoriteRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, weather_id, area_name FROM favorites ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]models.FavoriteRecord, 0)
	for rows.Next() {
		var id int64
		var f models.FavoriteRecord
		if err := rows.Scan(&id, &f.WeatherID, &f.AreaName); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		f.ID = strconv.FormatInt(id, 10)
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

// Delete removes a favorite by id
func (r *Repository) Delete(ctx context.Context, id string) error {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, "DELETE FROM favorites WHERE id = ?", n)
	if err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
