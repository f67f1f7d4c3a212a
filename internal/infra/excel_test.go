package infra

import (
	"testing"
	"time"

	"agronat/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVentasWorkbook(t *testing.T) {
	ventas := []model.Venta{
		{
			ID:             uuid.New(),
			SaleID:         "0000000001",
			Cliente:        "Juan Gomez",
			Comprobante:    "Boleta",
			MedioPago:      "Efectivo",
			EmpleadoNombre: "Ana Perez",
			Total:          decimal.RequireFromString("400.00"),
			Fecha:          time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Items: []model.VentaItem{
				{Cantidad: 3, PrecioUnitario: decimal.RequireFromString("50.00")},
			},
		},
		{
			ID:          uuid.New(),
			SaleID:      "0000000002",
			Cliente:     "Maria Lopez",
			Comprobante: "Factura",
			MedioPago:   "Tarjeta",
			Abonado:     true,
			Total:       decimal.RequireFromString("125.00"),
			Fecha:       time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC),
		},
	}
	productos := []model.Producto{
		{ID: uuid.New(), Code: "F-01", Name: "Fertilizante", Quantity: 7, Active: true},
	}

	data, err := BuildVentasWorkbook(ventas, productos)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	n, err := SheetRowCount(data, "Ventas")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = SheetRowCount(data, "Productos")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBuildVentasWorkbookVacio(t *testing.T) {
	data, err := BuildVentasWorkbook(nil, nil)
	require.NoError(t, err)

	n, err := SheetRowCount(data, "Ventas")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBuildTicketPDF(t *testing.T) {
	v := &model.Venta{
		ID:          uuid.New(),
		SaleID:      "0000000001",
		Cliente:     "Juan Gomez",
		Comprobante: "Boleta",
		MedioPago:   "Efectivo",
		Total:       decimal.RequireFromString("150.00"),
		Fecha:       time.Now(),
		Items: []model.VentaItem{
			{
				ProductoID:     uuid.New(),
				Cantidad:       3,
				PrecioUnitario: decimal.RequireFromString("50.00"),
				Subtotal:       decimal.RequireFromString("150.00"),
				Producto:       &model.Producto{Name: "Fertilizante triple 15"},
			},
		},
	}
	data, err := BuildTicketPDF(v)
	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}
