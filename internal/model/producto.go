package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog item. Quantity (stock) is only mutated by the sale
// transaction (a single atomic decrement) and by direct catalog edits; no
// other writer exists.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code        string    `gorm:"index;not null"`
	Name        string    `gorm:"index;not null"`
	Description string    `gorm:"not null"`
	Provider    string    `gorm:"not null"` // provider name, denormalized
	Category    string    `gorm:"not null"` // category name, denormalized
	Quantity    int       `gorm:"not null;default:0"`
	Medida      string
	PriceSIVA    decimal.Decimal `gorm:"type:decimal(12,2)"`
	PriceUSD     decimal.Decimal `gorm:"type:decimal(12,2)"`
	PorMarginal  decimal.Decimal `gorm:"type:decimal(6,2)"`
	PorDescuento decimal.Decimal `gorm:"type:decimal(6,2)"`
	PriceFinal   decimal.Decimal `gorm:"type:decimal(12,2)"`
	Active       bool            `gorm:"not null;default:true"`
	CreateAt     time.Time       `gorm:"autoCreateTime"`
}

func (Producto) TableName() string { return "productos" }
