package entities

import (
	"time"
)

// User is a registered listener. The wire format (JSON keys and column
// names) keeps the Spanish field names of the public API contract.
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Nombre        string    `gorm:"column:nombre;size:100" json:"nombre"`
	Correo        string    `gorm:"column:correo;uniqueIndex;size:255" json:"correo"`
	FechaRegistro time.Time `gorm:"column:fecha_registro;autoCreateTime" json:"fecha_registro"`

	Favoritos []Favorite `gorm:"foreignKey:UsuarioID" json:"-"`
}

// Song is a track in the catalogue.
type Song struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Titulo        string    `gorm:"column:titulo;index;size:200" json:"titulo"`
	Artista       string    `gorm:"column:artista;index;size:100" json:"artista"`
	Album         string    `gorm:"column:album;size:200" json:"album"`
	Duracion      int       `gorm:"column:duracion" json:"duracion"` // seconds, 1-3599
	Anio          int       `gorm:"column:año;index" json:"año"`
	Genero        string    `gorm:"column:genero;size:50" json:"genero"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`

	Favoritos []Favorite `gorm:"foreignKey:CancionID" json:"-"`
}

// Favorite marks a song as favourite for a user. The (usuario, cancion)
// pair is unique: a user may mark a given song at most once. The nested
// Usuario/Cancion objects are only serialized when preloaded.
type Favorite struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UsuarioID    uint      `gorm:"column:id_usuario;uniqueIndex:idx_favoritos_usuario_cancion" json:"id_usuario"`
	CancionID    uint      `gorm:"column:id_cancion;uniqueIndex:idx_favoritos_usuario_cancion" json:"id_cancion"`
	FechaMarcado time.Time `gorm:"column:fecha_marcado;autoCreateTime" json:"fecha_marcado"`

	Usuario *User `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	Cancion *Song `gorm:"foreignKey:CancionID" json:"cancion,omitempty"`
}

func (User) TableName() string {
	return "usuarios"
}

func (Song) TableName() string {
	return "canciones"
}

func (Favorite) TableName() string {
	return "favoritos"
}
