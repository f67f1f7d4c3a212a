package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Code        string `json:"code"        validate:"required"`
	Name        string `json:"name"        validate:"required,min=2,max=120"`
	Description string `json:"description" validate:"required"`
	Provider    string `json:"provider"    validate:"required"`
	Category    string `json:"category"    validate:"required"`
	Quantity    int    `json:"quantity"    validate:"min=0"`
	Medida      string `json:"medida"`
	PriceSIVA    decimal.Decimal `json:"price_siva"`
	PriceUSD     decimal.Decimal `json:"price_usd"`
	PorMarginal  decimal.Decimal `json:"por_marginal"`
	PorDescuento decimal.Decimal `json:"por_descuento"`
	PriceFinal   decimal.Decimal `json:"price_final"`
}

type ActualizarProductoRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"        validate:"omitempty,min=2,max=120"`
	Description *string `json:"description"`
	Provider    *string `json:"provider"`
	Category    *string `json:"category"`
	Quantity    *int    `json:"quantity"    validate:"omitempty,min=0"`
	Medida      *string `json:"medida"`
	PriceSIVA    *decimal.Decimal `json:"price_siva"`
	PriceUSD     *decimal.Decimal `json:"price_usd"`
	PorMarginal  *decimal.Decimal `json:"por_marginal"`
	PorDescuento *decimal.Decimal `json:"por_descuento"`
	PriceFinal   *decimal.Decimal `json:"price_final"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string `json:"_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Medida      string `json:"medida"`
	PriceSIVA    decimal.Decimal `json:"price_siva"`
	PriceUSD     decimal.Decimal `json:"price_usd"`
	PorMarginal  decimal.Decimal `json:"por_marginal"`
	PorDescuento decimal.Decimal `json:"por_descuento"`
	PriceFinal   decimal.Decimal `json:"price_final"`
	Active       bool            `json:"active"`
	CreateAt     string          `json:"create_at"`
}
