package service

import (
	"context"
	"time"

	"agronat/internal/apierror"
	"agronat/internal/dto"
	"agronat/internal/repository"

	"github.com/shopspring/decimal"
)

// sinCategoria is the bucket for line items whose product carries no category
// or no longer resolves against the catalog.
const sinCategoria = "Sin categoría"

// ChartsService shapes the raw aggregation rows into what the dashboard
// charts expect: fixed-length month series, named category buckets and
// ranked product lists. It never mutates anything.
type ChartsService struct {
	ventas repository.VentaRepository
}

func NewChartsService(ventas repository.VentaRepository) *ChartsService {
	return &ChartsService{ventas: ventas}
}

// windowFromFilter builds the fecha range. An explicit startDate/endDate pair
// wins over year; year+month narrows to that month; everything empty means
// all-time.
func windowFromFilter(f dto.ChartsFilter) (repository.StatsWindow, error) {
	var w repository.StatsWindow
	if f.StartDate != "" || f.EndDate != "" {
		start, err := parseFecha(f.StartDate)
		if err != nil {
			return w, err
		}
		end, err := parseFecha(f.EndDate)
		if err != nil {
			return w, err
		}
		if end != nil {
			e := end.Add(24*time.Hour - time.Nanosecond)
			end = &e
		}
		w.Start, w.End = start, end
		return w, nil
	}
	if f.Year > 0 {
		if f.Month >= 1 && f.Month <= 12 {
			start := time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
			w.Start, w.End = &start, &end
			return w, nil
		}
		start := time.Date(f.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(f.Year, time.December, 31, 23, 59, 59, 999999999, time.UTC)
		w.Start, w.End = &start, &end
	}
	return w, nil
}

// MonthlyStats always returns exactly 12 entries, January through December,
// zero-filled for months without sales.
func (s *ChartsService) MonthlyStats(ctx context.Context, f dto.ChartsFilter) ([]dto.MonthlyStatEntry, error) {
	w, err := windowFromFilter(f)
	if err != nil {
		return nil, err
	}
	rows, err := s.ventas.MonthlyStats(ctx, w)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	out := make([]dto.MonthlyStatEntry, 12)
	for i := range out {
		out[i] = dto.MonthlyStatEntry{Month: i + 1, TotalSales: decimal.Zero}
	}
	for _, r := range rows {
		if r.Mes < 1 || r.Mes > 12 {
			continue
		}
		out[r.Mes-1].TotalSales = r.TotalSales
		out[r.Mes-1].Count = r.Count
	}
	return out, nil
}

// DailyStats returns one entry per day that had sales, ascending by date.
// Days without sales are omitted.
func (s *ChartsService) DailyStats(ctx context.Context, f dto.ChartsFilter) ([]dto.DailyStatEntry, error) {
	w, err := windowFromFilter(f)
	if err != nil {
		return nil, err
	}
	rows, err := s.ventas.DailyStats(ctx, w)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	out := make([]dto.DailyStatEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailyStatEntry{Date: r.Date, TotalSales: r.TotalSales, Count: r.Count})
	}
	return out, nil
}

// CategoryStats aggregates revenue and units per product category.
func (s *ChartsService) CategoryStats(ctx context.Context, f dto.ChartsFilter) ([]dto.CategoryStatEntry, error) {
	w, err := windowFromFilter(f)
	if err != nil {
		return nil, err
	}
	rows, err := s.ventas.CategoryStats(ctx, w)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	out := make([]dto.CategoryStatEntry, 0, len(rows))
	for _, r := range rows {
		name := sinCategoria
		if r.Category != nil && *r.Category != "" {
			name = *r.Category
		}
		out = append(out, dto.CategoryStatEntry{
			Category:      name,
			TotalSales:    r.TotalSales,
			TotalQuantity: r.TotalQuantity,
		})
	}
	return out, nil
}

// TopProducts ranks products by units sold, descending.
func (s *ChartsService) TopProducts(ctx context.Context, f dto.ChartsFilter) ([]dto.TopProductEntry, error) {
	w, err := windowFromFilter(f)
	if err != nil {
		return nil, err
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.ventas.TopProducts(ctx, w, limit)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	out := make([]dto.TopProductEntry, 0, len(rows))
	for _, r := range rows {
		name := "Producto eliminado"
		if r.Name != nil && *r.Name != "" {
			name = *r.Name
		}
		out = append(out, dto.TopProductEntry{
			ProductID:     r.ProductoID.String(),
			Name:          name,
			TotalQuantity: r.TotalQuantity,
			TotalSales:    r.TotalSales,
		})
	}
	return out, nil
}
