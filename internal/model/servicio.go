package model

import (
	"time"

	"github.com/google/uuid"
)

// Servicio is a service catalog entry. Trabajos snapshot these fields at
// assignment time, so edits here never alter existing work orders.
type Servicio struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Servicio    string    `gorm:"not null"`
	Descripcion string    `gorm:"not null"`
	Categoria   string    `gorm:"not null"`
	Costo       float64   `gorm:"not null"`
	Descuento   float64   `gorm:"not null;default:0"` // percentage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Servicio) TableName() string { return "servicios" }

// CategoriaServicio groups services for the service catalog UI.
type CategoriaServicio struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoriaServicio) TableName() string { return "categorias_servicio" }
