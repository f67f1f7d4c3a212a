package dto

import "github.com/shopspring/decimal"

type MetricasClave struct {
	TotalVentas            decimal.Decimal `json:"totalVentas"`
	TotalProductosVendidos int             `json:"totalProductosVendidos"`
}

type VentaMensual struct {
	Mes   string          `json:"mes"` // month name
	Total decimal.Decimal `json:"total"`
}

type DistribucionVenta struct {
	Producto string          `json:"producto"`
	Total    decimal.Decimal `json:"total"`
}

// InformesResponse feeds the dashboard cards and charts.
type InformesResponse struct {
	MetricasClave      MetricasClave       `json:"metricasClave"`
	VentasMensuales    []VentaMensual      `json:"ventasMensuales"`
	DistribucionVentas []DistribucionVenta `json:"distribucionVentas"`
}
