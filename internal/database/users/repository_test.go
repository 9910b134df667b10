package users

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jrsanchez/musica/internal/database"
	"github.com/jrsanchez/musica/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	t.Helper()
	dbPath := "./test_users_" + t.Name() + ".db"

	db, err := database.NewDatabase(dbPath, false)
	require.NoError(t, err)

	repo := NewRepository(db.DB)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db.DB, repo, cleanup
}

func createTestUser(t *testing.T, repo *Repository, nombre, correo string) *entities.User {
	t.Helper()
	user := &entities.User{Nombre: nombre, Correo: correo}
	require.NoError(t, repo.CreateUser(user))
	return user
}

func TestRepository_CreateUser(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, repo, "Ana", "ana@x.com")

	assert.Greater(t, user.ID, uint(0))
	assert.False(t, user.FechaRegistro.IsZero())
}

func TestRepository_CreateUser_DuplicateEmail(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createTestUser(t, repo, "Ana", "ana@x.com")

	err := repo.CreateUser(&entities.User{Nombre: "Otra Ana", Correo: "ana@x.com"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestRepository_GetUserByID(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, repo, "Ana", "ana@x.com")

	found, err := repo.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Nombre)

	_, err = repo.GetUserByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_UpdateUser_EmailCollision(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createTestUser(t, repo, "Ana", "ana@x.com")
	user := createTestUser(t, repo, "Luis", "luis@x.com")

	user.Correo = "ana@x.com"
	err := repo.UpdateUser(user)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestRepository_ListUsers_Pagination(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createTestUser(t, repo, "Ana", "ana@x.com")
	createTestUser(t, repo, "Luis", "luis@x.com")
	createTestUser(t, repo, "Mar", "mar@x.com")

	users, err := repo.ListUsers(2, 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Ana", users[0].Nombre)

	users, err = repo.ListUsers(2, 2)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "Mar", users[0].Nombre)
}

func TestRepository_DeleteUser_CascadesFavorites(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, repo, "Ana", "ana@x.com")

	song := &entities.Song{Titulo: "T", Artista: "A", Album: "Al", Duracion: 200, Anio: 2000, Genero: "Rock"}
	require.NoError(t, db.Create(song).Error)
	require.NoError(t, db.Create(&entities.Favorite{UsuarioID: user.ID, CancionID: song.ID}).Error)

	require.NoError(t, repo.DeleteUser(user.ID))

	_, err := repo.GetUserByID(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	db.Model(&entities.Favorite{}).Where("id_usuario = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRepository_DeleteUser_Missing(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.DeleteUser(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_FavoritesByUser(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, repo, "Ana", "ana@x.com")

	for _, titulo := range []string{"Uno", "Dos"} {
		song := &entities.Song{Titulo: titulo, Artista: "A", Album: "Al", Duracion: 120, Anio: 1999, Genero: "Pop"}
		require.NoError(t, db.Create(song).Error)
		require.NoError(t, db.Create(&entities.Favorite{UsuarioID: user.ID, CancionID: song.ID}).Error)
	}

	favorites, err := repo.FavoritesByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)
	// Simple projection: nested relations not loaded
	assert.Nil(t, favorites[0].Usuario)
	assert.Nil(t, favorites[0].Cancion)
}
