// Package songs provides database operations for the song catalogue,
// including the dynamic multi-field search used by /api/canciones/buscar.
package songs

import (
	"strings"

	"gorm.io/gorm"

	"github.com/jrsanchez/musica/internal/entities"
)

// SearchFilter holds the optional search predicates. Empty string and
// nil fields impose no constraint; supplied predicates are combined
// with AND. Text matches are case-insensitive substring matches, Anio
// is an exact match.
type SearchFilter struct {
	Titulo  string
	Artista string
	Genero  string
	Anio    *int
}

// Repository handles all song database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new songs repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListSongs returns songs in insertion order with pagination.
func (r *Repository) ListSongs(limit, offset int) ([]entities.Song, error) {
	var songs []entities.Song
	query := r.db.Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&songs).Error
	return songs, err
}

// CreateSong inserts a new song.
func (r *Repository) CreateSong(song *entities.Song) error {
	return r.db.Create(song).Error
}

// GetSongByID retrieves a song by ID.
func (r *Repository) GetSongByID(id uint) (*entities.Song, error) {
	var song entities.Song
	if err := r.db.First(&song, id).Error; err != nil {
		return nil, err
	}
	return &song, nil
}

// UpdateSong persists changes to an existing song.
func (r *Repository) UpdateSong(song *entities.Song) error {
	return r.db.Save(song).Error
}

// DeleteSong removes a song and all favorites referencing it within a
// single transaction.
func (r *Repository) DeleteSong(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_cancion = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Song{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// SearchSongs returns the songs matching every supplied predicate,
// paginated. With an empty filter it behaves like ListSongs.
func (r *Repository) SearchSongs(filter SearchFilter, limit, offset int) ([]entities.Song, error) {
	query := r.db.Model(&entities.Song{}).Order("id ASC")

	if filter.Titulo != "" {
		query = query.Where("LOWER(titulo) LIKE ?", contains(filter.Titulo))
	}
	if filter.Artista != "" {
		query = query.Where("LOWER(artista) LIKE ?", contains(filter.Artista))
	}
	if filter.Genero != "" {
		query = query.Where("LOWER(genero) LIKE ?", contains(filter.Genero))
	}
	if filter.Anio != nil {
		query = query.Where("año = ?", *filter.Anio)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var songs []entities.Song
	err := query.Find(&songs).Error
	return songs, err
}

func contains(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
