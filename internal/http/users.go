package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jrsanchez/musica/internal/entities"
)

// UserStore defines database operations for user management.
type UserStore interface {
	ListUsers(limit, offset int) ([]entities.User, error)
	CreateUser(user *entities.User) error
	GetUserByID(id uint) (*entities.User, error)
	UpdateUser(user *entities.User) error
	DeleteUser(id uint) error
	FavoritesByUser(userID uint) ([]entities.Favorite, error)
}

// CreateUserRequest is the request body for creating a user.
type CreateUserRequest struct {
	Nombre string `json:"nombre" binding:"required,min=2,max=100"`
	Correo string `json:"correo" binding:"required,email"`
}

// UpdateUserRequest carries a partial update: nil fields are left
// untouched, supplied fields are re-validated.
type UpdateUserRequest struct {
	Nombre *string `json:"nombre" binding:"omitempty,min=2,max=100"`
	Correo *string `json:"correo" binding:"omitempty,email"`
}

// UserWithFavorites is the read projection for a user together with
// its favorite rows (no nested song/user duplication).
type UserWithFavorites struct {
	entities.User
	Favoritos []entities.Favorite `json:"favoritos"`
}

type UsersController struct {
	store UserStore
}

func NewUsersController(store UserStore) *UsersController {
	return &UsersController{store: store}
}

// ListUsers returns users in insertion order with pagination.
// GET /api/usuarios
func (uc *UsersController) ListUsers(c *gin.Context) {
	skip, limit := parsePagination(c)

	users, err := uc.store.ListUsers(limit, skip)
	if err != nil {
		respondInternalError(c, err, "list users")
		return
	}
	if users == nil {
		users = []entities.User{}
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser registers a new user. The unique index on correo is the
// authoritative duplicate guard.
// POST /api/usuarios
func (uc *UsersController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user := &entities.User{
		Nombre: req.Nombre,
		Correo: req.Correo,
	}

	if err := uc.store.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondConflict(c, "email already registered")
			return
		}
		respondInternalError(c, err, "create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser fetches a single user.
// GET /api/usuarios/:id
func (uc *UsersController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.store.GetUserByID(id)
	if err != nil {
		respondNotFound(c, "user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial update to a user.
// PUT /api/usuarios/:id
func (uc *UsersController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.store.GetUserByID(id)
	if err != nil {
		respondNotFound(c, "user")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if req.Nombre != nil {
		user.Nombre = *req.Nombre
	}
	if req.Correo != nil {
		user.Correo = *req.Correo
	}

	if err := uc.store.UpdateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondConflict(c, "email already registered")
			return
		}
		respondInternalError(c, err, "update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser deletes a user and, in the same transaction, every
// favorite referencing it.
// DELETE /api/usuarios/:id
func (uc *UsersController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := uc.store.DeleteUser(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "user")
			return
		}
		respondInternalError(c, err, "delete user")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUserFavorites returns a user together with its favorite rows.
// GET /api/usuarios/:id/favoritos
func (uc *UsersController) ListUserFavorites(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.store.GetUserByID(id)
	if err != nil {
		respondNotFound(c, "user")
		return
	}

	favorites, err := uc.store.FavoritesByUser(id)
	if err != nil {
		respondInternalError(c, err, "list user favorites")
		return
	}
	if favorites == nil {
		favorites = []entities.Favorite{}
	}

	c.JSON(http.StatusOK, UserWithFavorites{User: *user, Favoritos: favorites})
}
