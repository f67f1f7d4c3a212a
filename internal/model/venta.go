package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is an immutable sale record. The only field that may change after
// creation is Abonado. SaleID is the public 10-digit sequential identifier,
// distinct from the internal primary key.
type Venta struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID      string          `gorm:"uniqueIndex;not null;type:varchar(10)"`
	Cliente     string          `gorm:"not null"`
	Comprobante string          `gorm:"not null"` // Boleta | Factura
	Items       []VentaItem     `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MedioPago   string          `gorm:"not null"`
	Abonado     bool            `gorm:"not null"`
	// EmpleadoNombre is a snapshot taken at sale time so later user edits do
	// not rewrite sale history.
	EmpleadoID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EmpleadoNombre string    `gorm:"not null"`
	Mes            int       `gorm:"not null"` // 1-12, denormalized from Fecha
	Fecha          time.Time `gorm:"not null;index"`

	Empleado *Usuario `gorm:"foreignKey:EmpleadoID"`
}

func (Venta) TableName() string { return "ventas" }

// VentaItem is one line of a sale. PrecioUnitario is the price captured at the
// moment of sale; it never tracks later catalog price changes.
type VentaItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (VentaItem) TableName() string { return "venta_items" }
