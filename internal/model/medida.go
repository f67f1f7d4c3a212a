package model

import (
	"time"

	"github.com/google/uuid"
)

// Medida is a unit-of-measure label for products.
type Medida struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"uniqueIndex;not null"`
	Abbreviation string
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Medida) TableName() string { return "medidas" }

// CategoriaProducto classifies catalog products. Sales aggregate against the
// product's category name, not this row.
type CategoriaProducto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CategoriaProducto) TableName() string { return "categorias_producto" }
