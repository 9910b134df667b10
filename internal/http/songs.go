package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jrsanchez/musica/internal/database/songs"
	"github.com/jrsanchez/musica/internal/entities"
)

// SongStore defines database operations for the song catalogue.
type SongStore interface {
	ListSongs(limit, offset int) ([]entities.Song, error)
	CreateSong(song *entities.Song) error
	GetSongByID(id uint) (*entities.Song, error)
	UpdateSong(song *entities.Song) error
	DeleteSong(id uint) error
	SearchSongs(filter songs.SearchFilter, limit, offset int) ([]entities.Song, error)
}

// CreateSongRequest is the request body for creating a song.
type CreateSongRequest struct {
	Titulo   string `json:"titulo" binding:"required,min=1,max=200"`
	Artista  string `json:"artista" binding:"required,min=1,max=100"`
	Album    string `json:"album" binding:"required,min=1,max=200"`
	Duracion int    `json:"duracion" binding:"required,gt=0,lt=3600"`
	Anio     int    `json:"año" binding:"required,gte=1900,lte=2100"`
	Genero   string `json:"genero" binding:"required,min=1,max=50"`
}

// UpdateSongRequest carries a partial update: nil fields are left
// untouched, supplied fields are re-validated.
type UpdateSongRequest struct {
	Titulo   *string `json:"titulo" binding:"omitempty,min=1,max=200"`
	Artista  *string `json:"artista" binding:"omitempty,min=1,max=100"`
	Album    *string `json:"album" binding:"omitempty,min=1,max=200"`
	Duracion *int    `json:"duracion" binding:"omitempty,gt=0,lt=3600"`
	Anio     *int    `json:"año" binding:"omitempty,gte=1900,lte=2100"`
	Genero   *string `json:"genero" binding:"omitempty,min=1,max=50"`
}

type SongsController struct {
	store SongStore
}

func NewSongsController(store SongStore) *SongsController {
	return &SongsController{store: store}
}

// validateAnio enforces the dynamic upper bound: the release year may
// never exceed the current calendar year. Checked at create and update
// because the static gte/lte tags cannot express it.
func validateAnio(c *gin.Context, anio int) bool {
	current := time.Now().Year()
	if anio > current {
		respondFieldError(c, "año", "must not be later than "+strconv.Itoa(current))
		return false
	}
	return true
}

// ListSongs returns songs in insertion order with pagination.
// GET /api/canciones
func (sc *SongsController) ListSongs(c *gin.Context) {
	skip, limit := parsePagination(c)

	result, err := sc.store.ListSongs(limit, skip)
	if err != nil {
		respondInternalError(c, err, "list songs")
		return
	}
	if result == nil {
		result = []entities.Song{}
	}
	c.JSON(http.StatusOK, result)
}

// CreateSong adds a song to the catalogue.
// POST /api/canciones
func (sc *SongsController) CreateSong(c *gin.Context) {
	var req CreateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	if !validateAnio(c, req.Anio) {
		return
	}

	song := &entities.Song{
		Titulo:   req.Titulo,
		Artista:  req.Artista,
		Album:    req.Album,
		Duracion: req.Duracion,
		Anio:     req.Anio,
		Genero:   req.Genero,
	}

	if err := sc.store.CreateSong(song); err != nil {
		respondInternalError(c, err, "create song")
		return
	}

	c.JSON(http.StatusCreated, song)
}

// SearchSongs filters the catalogue by any combination of titulo,
// artista, genero (case-insensitive substring) and año (exact match).
// Absent parameters impose no constraint, so with none supplied this
// behaves like ListSongs.
// GET /api/canciones/buscar
func (sc *SongsController) SearchSongs(c *gin.Context) {
	skip, limit := parsePagination(c)

	filter := songs.SearchFilter{
		Titulo:  c.Query("titulo"),
		Artista: c.Query("artista"),
		Genero:  c.Query("genero"),
	}
	if anioStr := c.Query("año"); anioStr != "" {
		anio, err := strconv.Atoi(anioStr)
		if err != nil {
			respondFieldError(c, "año", "must be an integer")
			return
		}
		filter.Anio = &anio
	}

	result, err := sc.store.SearchSongs(filter, limit, skip)
	if err != nil {
		respondInternalError(c, err, "search songs")
		return
	}
	if result == nil {
		result = []entities.Song{}
	}
	c.JSON(http.StatusOK, result)
}

// GetSong fetches a single song.
// GET /api/canciones/:id
func (sc *SongsController) GetSong(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	song, err := sc.store.GetSongByID(id)
	if err != nil {
		respondNotFound(c, "song")
		return
	}
	c.JSON(http.StatusOK, song)
}

// UpdateSong applies a partial update to a song.
// PUT /api/canciones/:id
func (sc *SongsController) UpdateSong(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	song, err := sc.store.GetSongByID(id)
	if err != nil {
		respondNotFound(c, "song")
		return
	}

	var req UpdateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	if req.Anio != nil && !validateAnio(c, *req.Anio) {
		return
	}

	if req.Titulo != nil {
		song.Titulo = *req.Titulo
	}
	if req.Artista != nil {
		song.Artista = *req.Artista
	}
	if req.Album != nil {
		song.Album = *req.Album
	}
	if req.Duracion != nil {
		song.Duracion = *req.Duracion
	}
	if req.Anio != nil {
		song.Anio = *req.Anio
	}
	if req.Genero != nil {
		song.Genero = *req.Genero
	}

	if err := sc.store.UpdateSong(song); err != nil {
		respondInternalError(c, err, "update song")
		return
	}

	c.JSON(http.StatusOK, song)
}

// DeleteSong deletes a song and, in the same transaction, every
// favorite referencing it.
// DELETE /api/canciones/:id
func (sc *SongsController) DeleteSong(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := sc.store.DeleteSong(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "song")
			return
		}
		respondInternalError(c, err, "delete song")
		return
	}

	c.Status(http.StatusNoContent)
}
