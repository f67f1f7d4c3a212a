package service

import (
	"context"
	"testing"
	"time"

	"agronat/internal/dto"
	"agronat/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registrarReq(p uuid.UUID) dto.RegistrarVentaRequest {
	return dto.RegistrarVentaRequest{
		Cliente:     "Juan Gomez",
		Comprobante: "Boleta",
		MedioPago:   "Efectivo",
		Productos:   []dto.ItemVentaRequest{item(p, 1, "50.00")},
	}
}

func TestInformesResumenDelAno(t *testing.T) {
	ventas := &stubVentaRepo{
		monthlyRows: []repository.MonthlyRow{
			{Mes: 1, TotalSales: decimal.RequireFromString("100.00"), Count: 2},
			{Mes: 3, TotalSales: decimal.RequireFromString("250.00"), Count: 4},
		},
		categoryRows: []repository.CategoryRow{
			{Category: strPtr("Fertilizantes"), TotalSales: decimal.RequireFromString("300.00"), TotalQuantity: 6},
			{Category: nil, TotalSales: decimal.RequireFromString("50.00"), TotalQuantity: 3},
		},
		topRows: []repository.TopProductRow{
			{ProductoID: uuid.New(), Name: strPtr("Fertilizante"), TotalQuantity: 6, TotalSales: decimal.RequireFromString("300.00")},
		},
	}
	svc := NewInformeService(ventas, newStubProductoRepo(), zerolog.Nop())

	resp, err := svc.Informes(context.Background(), 2026)
	require.NoError(t, err)

	assert.True(t, resp.MetricasClave.TotalVentas.Equal(decimal.RequireFromString("350.00")))
	assert.Equal(t, 9, resp.MetricasClave.TotalProductosVendidos)

	require.Len(t, resp.VentasMensuales, 12)
	assert.Equal(t, "Enero", resp.VentasMensuales[0].Mes)
	assert.True(t, resp.VentasMensuales[0].Total.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, "Marzo", resp.VentasMensuales[2].Mes)
	assert.True(t, resp.VentasMensuales[1].Total.IsZero())

	require.Len(t, resp.DistribucionVentas, 1)
	assert.Equal(t, "Fertilizante", resp.DistribucionVentas[0].Producto)
}

func TestReporteVentasXLSXGeneraArchivo(t *testing.T) {
	svc, _, productos, usuarios := newVentaFixture()
	empleado := usuarios.add("Ana", "Perez", "ana@agronat.test")
	p := productos.add("Fertilizante", 10, "50.00")

	_, err := svc.RegistrarVenta(context.Background(), empleado, registrarReq(p))
	require.NoError(t, err)
	_, err = svc.RegistrarVenta(context.Background(), empleado, registrarReq(p))
	require.NoError(t, err)

	informes := NewInformeService(svc.ventas.(*stubVentaRepo), productos, zerolog.Nop())
	data, name, err := informes.ReporteVentasXLSX(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Contains(t, name, "reporte-ventas-")
	// XLSX files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestReporteVentasXLSXFiltraPorMes(t *testing.T) {
	ventas := &stubVentaRepo{}
	informes := NewInformeService(ventas, newStubProductoRepo(), zerolog.Nop())

	_, name, err := informes.ReporteVentasXLSX(context.Background(), 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, "reporte-ventas-marzo-2026.xlsx", name)

	require.NotNil(t, ventas.lastWindow.Start)
	require.NotNil(t, ventas.lastWindow.End)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), *ventas.lastWindow.Start)
	assert.Equal(t, time.March, ventas.lastWindow.End.Month())
	assert.Equal(t, 31, ventas.lastWindow.End.Day())

	// Without a valid mes the report covers every sale.
	ventas.lastWindow = repository.StatsWindow{}
	_, _, err = informes.ReporteVentasXLSX(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Nil(t, ventas.lastWindow.Start)
	assert.Nil(t, ventas.lastWindow.End)
}

func TestTicketVentaGeneraPDF(t *testing.T) {
	svc, _, productos, usuarios := newVentaFixture()
	empleado := usuarios.add("Ana", "Perez", "ana@agronat.test")
	p := productos.add("Fertilizante", 10, "50.00")

	resp, err := svc.RegistrarVenta(context.Background(), empleado, registrarReq(p))
	require.NoError(t, err)

	informes := NewInformeService(svc.ventas.(*stubVentaRepo), productos, zerolog.Nop())
	data, name, err := informes.TicketVenta(context.Background(), resp.Venta.ID)
	require.NoError(t, err)
	assert.Equal(t, "ticket-"+resp.SaleID+".pdf", name)
	assert.Equal(t, "%PDF", string(data[:4]))
}
