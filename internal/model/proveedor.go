package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor is a supplier registry entry. Products reference providers by name
// (denormalized), so this table only backs the registry endpoints.
type Proveedor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Lastname  string    `gorm:"default:'No posee'"`
	Email     string    `gorm:"uniqueIndex"`
	Cel       string    `gorm:"default:'No posee'"`
	Domicilio Domicilio `gorm:"embedded;embeddedPrefix:domicilio_"`
	CreateAt  time.Time `gorm:"autoCreateTime"`
}

func (Proveedor) TableName() string { return "proveedores" }
