package model

import (
	"time"

	"github.com/google/uuid"
)

// Domicilio is embedded into Usuario and Proveedor.
type Domicilio struct {
	Calle        string `gorm:"column:calle"`
	Numero       string `gorm:"column:numero"`
	Ciudad       string `gorm:"column:ciudad"`
	Provincia    string `gorm:"column:provincia"`
	CodigoPostal string `gorm:"column:codigo_postal"`
}

// Usuario stores system users. Rol: "empleado" | "administrador".
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Lastname     string
	Nickname     string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Rol          string `gorm:"type:varchar(20);not null;default:'empleado'"`
	Image        string
	Domicilio    Domicilio `gorm:"embedded;embeddedPrefix:domicilio_"`
	CreateAt     time.Time `gorm:"autoCreateTime"`
}

func (Usuario) TableName() string { return "usuarios" }
