package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agronat/internal/apierror"
	"agronat/internal/dto"
	"agronat/internal/infra"
	"agronat/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var nombresMes = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// InformeService builds the dashboard summary and the downloadable exports:
// the sales spreadsheet and the per-sale PDF ticket.
type InformeService struct {
	ventas    repository.VentaRepository
	productos repository.ProductoRepository
	log       zerolog.Logger
}

func NewInformeService(ventas repository.VentaRepository, productos repository.ProductoRepository, log zerolog.Logger) *InformeService {
	return &InformeService{ventas: ventas, productos: productos, log: log}
}

// Informes aggregates the key metrics, the month-by-month revenue series and
// the per-product revenue distribution for the given year (zero for all-time).
func (s *InformeService) Informes(ctx context.Context, year int) (*dto.InformesResponse, error) {
	w, err := windowFromFilter(dto.ChartsFilter{Year: year})
	if err != nil {
		return nil, err
	}

	monthly, err := s.ventas.MonthlyStats(ctx, w)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	categories, err := s.ventas.CategoryStats(ctx, w)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	top, err := s.ventas.TopProducts(ctx, w, 100)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	resp := &dto.InformesResponse{
		VentasMensuales:    make([]dto.VentaMensual, 12),
		DistribucionVentas: make([]dto.DistribucionVenta, 0, len(top)),
	}
	resp.MetricasClave.TotalVentas = decimal.Zero
	for i := range resp.VentasMensuales {
		resp.VentasMensuales[i] = dto.VentaMensual{Mes: nombresMes[i], Total: decimal.Zero}
	}
	for _, r := range monthly {
		if r.Mes >= 1 && r.Mes <= 12 {
			resp.VentasMensuales[r.Mes-1].Total = r.TotalSales
		}
		resp.MetricasClave.TotalVentas = resp.MetricasClave.TotalVentas.Add(r.TotalSales)
	}
	for _, c := range categories {
		resp.MetricasClave.TotalProductosVendidos += int(c.TotalQuantity)
	}
	for _, t := range top {
		name := "Producto eliminado"
		if t.Name != nil && *t.Name != "" {
			name = *t.Name
		}
		resp.DistribucionVentas = append(resp.DistribucionVentas, dto.DistribucionVenta{
			Producto: name,
			Total:    t.TotalSales,
		})
	}
	return resp, nil
}

// ReporteVentasXLSX renders the sales of one month (mes 1-12, year zero means
// the current year) into a two-sheet spreadsheet and returns the file bytes
// plus a filename. A mes outside 1-12 means every sale.
func (s *InformeService) ReporteVentasXLSX(ctx context.Context, year, mes int) ([]byte, string, error) {
	if mes < 1 || mes > 12 {
		year, mes = 0, 0
	} else if year == 0 {
		year = time.Now().Year()
	}
	w, err := windowFromFilter(dto.ChartsFilter{Year: year, Month: mes})
	if err != nil {
		return nil, "", err
	}
	ventas, err := s.ventas.ListByWindow(ctx, w)
	if err != nil {
		return nil, "", apierror.Internal(err)
	}
	productos, err := s.productos.List(ctx)
	if err != nil {
		return nil, "", apierror.Internal(err)
	}

	buf, err := infra.BuildVentasWorkbook(ventas, productos)
	if err != nil {
		return nil, "", apierror.Internal(err)
	}

	name := fmt.Sprintf("reporte-ventas-%s.xlsx", time.Now().Format("2006-01-02"))
	if mes > 0 {
		name = fmt.Sprintf("reporte-ventas-%s-%d.xlsx", strings.ToLower(nombresMes[mes-1]), year)
	}
	s.log.Info().Str("archivo", name).Int("ventas", len(ventas)).Msg("reporte de ventas generado")
	return buf, name, nil
}

// TicketVenta renders the printable PDF ticket of one sale.
func (s *InformeService) TicketVenta(ctx context.Context, idVenta string) ([]byte, string, error) {
	id, err := uuid.Parse(idVenta)
	if err != nil {
		return nil, "", apierror.Validation("id de venta invalido: %s", idVenta)
	}
	venta, err := s.ventas.FindByID(ctx, id)
	if err != nil {
		return nil, "", notFoundOr(err, "venta no encontrada: %s", idVenta)
	}
	buf, err := infra.BuildTicketPDF(venta)
	if err != nil {
		return nil, "", apierror.Internal(err)
	}
	return buf, fmt.Sprintf("ticket-%s.pdf", venta.SaleID), nil
}
