package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jrsanchez/musica/internal/entities"
)

// FavoriteStore defines database operations for favorites management.
type FavoriteStore interface {
	ListFavorites(limit, offset int) ([]entities.Favorite, error)
	CreateFavorite(favorite *entities.Favorite) error
	GetFavoriteByID(id uint) (*entities.Favorite, error)
	GetFavoriteByPair(userID, songID uint) (*entities.Favorite, error)
	DeleteFavorite(id uint) error
}

// UserGetter and SongGetter are the narrow lookups the favorites
// handlers need for the referential-integrity pre-checks.
type UserGetter interface {
	GetUserByID(id uint) (*entities.User, error)
}

type SongGetter interface {
	GetSongByID(id uint) (*entities.Song, error)
}

// CreateFavoriteRequest is the request body for marking a favorite.
type CreateFavoriteRequest struct {
	UsuarioID uint `json:"id_usuario" binding:"required"`
	CancionID uint `json:"id_cancion" binding:"required"`
}

type FavoritesController struct {
	store FavoriteStore
	users UserGetter
	songs SongGetter
}

func NewFavoritesController(store FavoriteStore, users UserGetter, songs SongGetter) *FavoritesController {
	return &FavoritesController{store: store, users: users, songs: songs}
}

// ListFavorites returns favorites with nested user and song data when
// the parents still exist.
// GET /api/favoritos
func (fc *FavoritesController) ListFavorites(c *gin.Context) {
	skip, limit := parsePagination(c)

	favorites, err := fc.store.ListFavorites(limit, skip)
	if err != nil {
		respondInternalError(c, err, "list favorites")
		return
	}
	if favorites == nil {
		favorites = []entities.Favorite{}
	}
	c.JSON(http.StatusOK, favorites)
}

// CreateFavorite marks a song as favorite for a user.
// POST /api/favoritos
func (fc *FavoritesController) CreateFavorite(c *gin.Context) {
	var req CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "id_usuario and id_cancion are required")
		return
	}

	fc.createPair(c, req.UsuarioID, req.CancionID)
}

// CreateFavoriteSpecific is the path-parameter variant of CreateFavorite
// with identical validation and conflict semantics.
// POST /api/favoritos/:id/canciones/:id_cancion (:id is the user ID)
func (fc *FavoritesController) CreateFavoriteSpecific(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	songID, ok := parseIDParam(c, "id_cancion")
	if !ok {
		return
	}

	fc.createPair(c, userID, songID)
}

// createPair performs the shared existence checks, the advisory
// duplicate pre-check, and the insert. The composite unique index is
// the authoritative guard: a concurrent duplicate insert that slips
// past the pre-check still comes back as a conflict, not a crash.
func (fc *FavoritesController) createPair(c *gin.Context, userID, songID uint) {
	if _, err := fc.users.GetUserByID(userID); err != nil {
		respondNotFound(c, "user")
		return
	}
	if _, err := fc.songs.GetSongByID(songID); err != nil {
		respondNotFound(c, "song")
		return
	}

	if existing, err := fc.store.GetFavoriteByPair(userID, songID); err == nil && existing != nil {
		respondConflict(c, "song is already marked as favorite for this user")
		return
	}

	favorite := &entities.Favorite{
		UsuarioID: userID,
		CancionID: songID,
	}
	if err := fc.store.CreateFavorite(favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondConflict(c, "song is already marked as favorite for this user")
			return
		}
		respondInternalError(c, err, "create favorite")
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

// GetFavorite fetches a favorite by its own ID.
// GET /api/favoritos/:id
func (fc *FavoritesController) GetFavorite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	favorite, err := fc.store.GetFavoriteByID(id)
	if err != nil {
		respondNotFound(c, "favorite")
		return
	}
	c.JSON(http.StatusOK, favorite)
}

// DeleteFavorite unmarks a favorite by its own ID.
// DELETE /api/favoritos/:id
func (fc *FavoritesController) DeleteFavorite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := fc.store.DeleteFavorite(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "favorite")
			return
		}
		respondInternalError(c, err, "delete favorite")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteFavoriteSpecific unmarks a favorite looked up by its
// (user, song) pair rather than its surrogate key.
// DELETE /api/favoritos/:id/canciones/:id_cancion (:id is the user ID)
func (fc *FavoritesController) DeleteFavoriteSpecific(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	songID, ok := parseIDParam(c, "id_cancion")
	if !ok {
		return
	}

	favorite, err := fc.store.GetFavoriteByPair(userID, songID)
	if err != nil {
		respondNotFound(c, "favorite")
		return
	}

	if err := fc.store.DeleteFavorite(favorite.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "favorite")
			return
		}
		respondInternalError(c, err, "delete favorite")
		return
	}

	c.Status(http.StatusNoContent)
}
