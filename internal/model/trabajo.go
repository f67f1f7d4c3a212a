package model

import (
	"time"

	"github.com/google/uuid"
)

// Trabajo is a work order: a bundle of services performed for a client.
// Deleted via soft delete (Active=false).
type Trabajo struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Cliente          string            `gorm:"not null"`
	Servicios        []TrabajoServicio `gorm:"foreignKey:TrabajoID;constraint:OnDelete:CASCADE"`
	Descripcion      string
	Fecha            *time.Time
	FechaVencimiento *time.Time
	TecnicoID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Observaciones    string
	Costo            float64 `gorm:"not null;default:0"`
	Active           bool    `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Tecnico *Usuario `gorm:"foreignKey:TecnicoID"`
}

func (Trabajo) TableName() string { return "trabajos" }

// TrabajoServicio is a snapshot of a Servicio at assignment time. Name, cost
// and discount are copied, never joined back to the live catalog.
type TrabajoServicio struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TrabajoID uuid.UUID `gorm:"type:uuid;not null;index"`
	Servicio  string    `gorm:"not null"`
	Categoria string
	Costo     float64
	Descuento float64
}

func (TrabajoServicio) TableName() string { return "trabajo_servicios" }
