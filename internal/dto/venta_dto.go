package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	Cantidad   int             `json:"cantidad"    validate:"required,min=1"`
	// PrecioUnitario is the price-at-sale captured by the cashier UI.
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
}

type RegistrarVentaRequest struct {
	Cliente     string             `json:"cliente"     validate:"required,min=2,max=120"`
	Comprobante string             `json:"comprobante" validate:"required,oneof=Boleta Factura"`
	Productos   []ItemVentaRequest `json:"productos"   validate:"dive"`
	MedioPago   string             `json:"medioPago"   validate:"required"`
	Abonado     bool               `json:"abonado"`
}

// UpdateEstadoRequest toggles the paid flag. The pointer distinguishes a
// missing field from an explicit false.
type UpdateEstadoRequest struct {
	Abonado *bool `json:"abonado"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	ProductoID     string          `json:"producto_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type EmpleadoResponse struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
}

type VentaResponse struct {
	ID          string              `json:"id"`
	SaleID      string              `json:"saleId"`
	Cliente     string              `json:"cliente"`
	Comprobante string              `json:"comprobante"`
	Productos   []ItemVentaResponse `json:"productos"`
	Total       decimal.Decimal     `json:"total"`
	MedioPago   string              `json:"medioPago"`
	Abonado     bool                `json:"abonado"`
	Empleado    *EmpleadoResponse   `json:"empleado,omitempty"`
	Mes         int                 `json:"mes"`
	Fecha       string              `json:"fecha"`
}

type RegistrarVentaResponse struct {
	Message string        `json:"message"`
	Venta   VentaResponse `json:"venta"`
	SaleID  string        `json:"saleId"`
}

// ProductoDisponibleResponse is one hit of the sellable-product search.
type ProductoDisponibleResponse struct {
	ID          string          `json:"_id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Medida      string          `json:"medida"`
	PriceFinal  decimal.Decimal `json:"price_final"`
}

type BuscarProductosResponse struct {
	Success   bool                         `json:"success"`
	Productos []ProductoDisponibleResponse `json:"productos"`
	Timestamp string                       `json:"timestamp"`
}
