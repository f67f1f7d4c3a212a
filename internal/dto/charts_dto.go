package dto

import "github.com/shopspring/decimal"

// ChartsFilter is bound from the query string of every stats endpoint.
// An explicit startDate/endDate range takes precedence over year.
type ChartsFilter struct {
	Year      int    `form:"year"`
	Month     int    `form:"month" validate:"omitempty,min=1,max=12"`
	StartDate string `form:"startDate"` // YYYY-MM-DD
	EndDate   string `form:"endDate"`
	Mode      string `form:"mode"` // monthly-stats only: "daily" delegates
	Limit     int    `form:"limit,default=10" validate:"min=1,max=100"`
}

type MonthlyStatEntry struct {
	Month      int             `json:"month"`
	TotalSales decimal.Decimal `json:"totalSales"`
	Count      int64           `json:"count"`
}

type DailyStatEntry struct {
	Date       string          `json:"date"` // YYYY-MM-DD
	TotalSales decimal.Decimal `json:"totalSales"`
	Count      int64           `json:"count"`
}

type CategoryStatEntry struct {
	Category      string          `json:"category"`
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalQuantity int64           `json:"totalQuantity"`
}

type TopProductEntry struct {
	ProductID     string          `json:"productId"`
	Name          string          `json:"name"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalSales    decimal.Decimal `json:"totalSales"`
}

// ChartsResponse is the common {success, data} envelope of the charts API.
type ChartsResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}
