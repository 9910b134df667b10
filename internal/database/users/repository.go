// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetUserByID(id)
package users

import (
	"gorm.io/gorm"

	"github.com/jrsanchez/musica/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListUsers returns users in insertion order with pagination.
func (r *Repository) ListUsers(limit, offset int) ([]entities.User, error) {
	var users []entities.User
	query := r.db.Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&users).Error
	return users, err
}

// CreateUser inserts a new user. A duplicate correo surfaces as
// gorm.ErrDuplicatedKey via the unique index.
func (r *Repository) CreateUser(user *entities.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser persists changes to an existing user. Email collisions
// surface as gorm.ErrDuplicatedKey.
func (r *Repository) UpdateUser(user *entities.User) error {
	return r.db.Save(user).Error
}

// DeleteUser removes a user and all favorites referencing it within a
// single transaction.
func (r *Repository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_usuario = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// FavoritesByUser returns the favorite rows owned by a user, without
// nested relations (simple projection).
func (r *Repository) FavoritesByUser(userID uint) ([]entities.Favorite, error) {
	var favorites []entities.Favorite
	err := r.db.Where("id_usuario = ?", userID).Order("id ASC").Find(&favorites).Error
	return favorites, err
}
