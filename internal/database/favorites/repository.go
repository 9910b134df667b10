// Package favorites provides database operations for favorite management.
//
// The (id_usuario, id_cancion) pair is protected by a composite unique
// index; the advisory pre-check in the HTTP layer narrows the race
// window, but the index is the authoritative guarantee and a concurrent
// duplicate insert surfaces here as gorm.ErrDuplicatedKey.
package favorites

import (
	"gorm.io/gorm"

	"github.com/jrsanchez/musica/internal/entities"
)

// Repository handles all favorites database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favorites repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFavorites returns favorites with nested user and song data,
// paginated. Preloads are best-effort: a favorite whose parent is gone
// serializes without the nested object.
func (r *Repository) ListFavorites(limit, offset int) ([]entities.Favorite, error) {
	var favorites []entities.Favorite
	query := r.db.Preload("Usuario").Preload("Cancion").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&favorites).Error
	return favorites, err
}

// CreateFavorite inserts a new favorite pair. A duplicate pair surfaces
// as gorm.ErrDuplicatedKey via the composite unique index.
func (r *Repository) CreateFavorite(favorite *entities.Favorite) error {
	return r.db.Create(favorite).Error
}

// GetFavoriteByID retrieves a favorite by its surrogate key, with
// nested user and song data when the parents still exist.
func (r *Repository) GetFavoriteByID(id uint) (*entities.Favorite, error) {
	var favorite entities.Favorite
	err := r.db.Preload("Usuario").Preload("Cancion").First(&favorite, id).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// GetFavoriteByPair looks up a favorite by its (user, song) pair.
func (r *Repository) GetFavoriteByPair(userID, songID uint) (*entities.Favorite, error) {
	var favorite entities.Favorite
	err := r.db.Where("id_usuario = ? AND id_cancion = ?", userID, songID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// DeleteFavorite removes a favorite by ID.
func (r *Repository) DeleteFavorite(id uint) error {
	result := r.db.Delete(&entities.Favorite{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
