package service

import (
	"context"
	"errors"
	"testing"

	"agronat/internal/apierror"
	"agronat/internal/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVentaFixture() (*VentaService, *stubVentaRepo, *stubProductoRepo, *stubUsuarioRepo) {
	ventas := &stubVentaRepo{}
	productos := newStubProductoRepo()
	usuarios := newStubUsuarioRepo()
	svc := NewVentaService(ventas, productos, usuarios, nil, 5, zerolog.Nop())
	return svc, ventas, productos, usuarios
}

func item(id uuid.UUID, cantidad int, precio string) dto.ItemVentaRequest {
	return dto.ItemVentaRequest{
		ProductoID:     id.String(),
		Cantidad:       cantidad,
		PrecioUnitario: decimal.RequireFromString(precio),
	}
}

func TestRegistrarVentaDescuentaStockYCalculaTotal(t *testing.T) {
	svc, ventas, productos, usuarios := newVentaFixture()
	empleado := usuarios.add("Ana", "Perez", "ana@agronat.test")
	p1 := productos.add("Fertilizante", 10, "50.00")
	p2 := productos.add("Semillas", 5, "125.00")

	resp, err := svc.RegistrarVenta(context.Background(), empleado, dto.RegistrarVentaRequest{
		Cliente:     "Juan Gomez",
		Comprobante: "Boleta",
		MedioPago:   "Efectivo",
		Productos: []dto.ItemVentaRequest{
			item(p1, 3, "50.00"),
			item(p2, 2, "125.00"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "0000000001", resp.SaleID)
	assert.True(t, resp.Venta.Total.Equal(decimal.RequireFromString("400.00")),
		"total %s", resp.Venta.Total)

	assert.Equal(t, 7, productos.productos[p1].Quantity)
	assert.Equal(t, 3, productos.productos[p2].Quantity)

	require.Len(t, ventas.ventas, 1)
	assert.Equal(t, "Ana Perez", ventas.ventas[0].EmpleadoNombre)
}

func TestRegistrarVentaIDsSecuenciales(t *testing.T) {
	svc, _, productos, usuarios := newVentaFixture()
	empleado := usuarios.add("Ana", "Perez", "ana@agronat.test")
	p := productos.add("Fertilizante", 100, "10.00")

	var ids []string
	for i := 0; i < 3; i++ {
		resp, err := svc.RegistrarVenta(context.Background(), empleado, dto.RegistrarVentaRequest{
			Cliente:     "Juan Gomez",
			Comprobante: "Factura",
			MedioPago:   "Tarjeta",
			Productos:   []dto.ItemVentaRequest{item(p, 1, "10.00")},
		})
		require.NoError(t, err)
		ids = append(ids, resp.SaleID)
	}
	assert.Equal(t, []string{"0000000001", "0000000002", "0000000003"}, ids)
}

func TestRegistrarVentaCarritoVacio(t *testing.T) {
	svc, ventas, productos, usuarios := newVentaFixture()
	empleado := usuarios.add("Ana", "Perez", "ana@agronat.test")
	p := productos.add("Fertilizante", 10, "50.00")

	_, err := svc.RegistrarVenta(context.Background(), empleado, dto.RegistrarVentaRequest{
		Cliente:     "Juan Gomez",
		Comprobante: "Boleta",
		MedioPago:   "Efectivo",
	})
	require.Error(t, err)

	var ae *apierror.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apierror.KindValidation, ae.Kind)

	assert.Empty(t, ventas.ventas)
	assert.Equal(t, 10, productos.productos[p].Quantity)
}

func TestRegistrarVentaProductoInexistente(t *testing.T) {
	svc, ventas, productos, usuarios := newVentaFixture()
	empleado := usuarios.add("Ana", "Perez", "ana@agronat.test")
	p := productos.add("Fertilizante", 10, "50.00")

	_, err := svc.RegistrarVenta(context.Background(), empleado, dto.RegistrarVentaRequest{
		Cliente:     "Juan Gomez",
		Comprobante: "Boleta",
		MedioPago:   "Efectivo",
		Productos: []dto.ItemVentaRequest{
			item(p, 2, "50.00"),
			item(uuid.New(), 1, "99.00"),
		},
	})
	require.Error(t, err)

	var ae *apierror.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apierror.KindNotFound, ae.Kind)

	// The existing product keeps its stock: nothing was written.
	assert.Empty(t, ventas.ventas)
	assert.Equal(t, 10, productos.productos[p].Quantity)
}

func TestRegistrarVentaEmpleadoDesconocido(t *testing.T) {
	svc, _, productos, _ := newVentaFixture()
	p := productos.add("Fertilizante", 10, "50.00")

	_, err := svc.RegistrarVenta(context.Background(), uuid.New(), dto.RegistrarVentaRequest{
		Cliente:     "Juan Gomez",
		Comprobante: "Boleta",
		MedioPago:   "Efectivo",
		Productos:   []dto.ItemVentaRequest{item(p, 1, "50.00")},
	})
	require.Error(t, err)
	var ae *apierror.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apierror.KindNotFound, ae.Kind)
}

func TestActualizarEstado(t *testing.T) {
	svc, ventas, productos, usuarios := newVentaFixture()
	empleado := usuarios.add("Ana", "Perez", "ana@agronat.test")
	p := productos.add("Fertilizante", 10, "50.00")

	resp, err := svc.RegistrarVenta(context.Background(), empleado, dto.RegistrarVentaRequest{
		Cliente:     "Juan Gomez",
		Comprobante: "Boleta",
		MedioPago:   "Efectivo",
		Productos:   []dto.ItemVentaRequest{item(p, 1, "50.00")},
	})
	require.NoError(t, err)
	require.False(t, ventas.ventas[0].Abonado)

	require.NoError(t, svc.ActualizarEstado(context.Background(), resp.Venta.ID, true))
	assert.True(t, ventas.ventas[0].Abonado)

	// The flag can go back as well.
	require.NoError(t, svc.ActualizarEstado(context.Background(), resp.Venta.ID, false))
	assert.False(t, ventas.ventas[0].Abonado)

	err = svc.ActualizarEstado(context.Background(), uuid.NewString(), true)
	var ae *apierror.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apierror.KindNotFound, ae.Kind)
}

func TestBuscarDetallePorSaleID(t *testing.T) {
	svc, _, productos, usuarios := newVentaFixture()
	empleado := usuarios.add("Ana", "Perez", "ana@agronat.test")
	p := productos.add("Fertilizante", 10, "50.00")

	resp, err := svc.RegistrarVenta(context.Background(), empleado, dto.RegistrarVentaRequest{
		Cliente:     "Juan Gomez",
		Comprobante: "Boleta",
		MedioPago:   "Efectivo",
		Productos:   []dto.ItemVentaRequest{item(p, 2, "50.00")},
	})
	require.NoError(t, err)
	require.Equal(t, "0000000001", resp.SaleID)

	// The detail endpoint resolves the public 10-digit id, not the internal one.
	detalle, err := svc.BuscarDetalle(context.Background(), "0000000001")
	require.NoError(t, err)
	assert.Equal(t, resp.Venta.ID, detalle.ID)
	require.Len(t, detalle.Productos, 1)
	// The detail view reads the captured price, not the current catalog.
	assert.True(t, detalle.Productos[0].PrecioUnitario.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, detalle.Productos[0].Subtotal.Equal(decimal.RequireFromString("100.00")))

	_, err = svc.BuscarDetalle(context.Background(), "0000000099")
	var ae *apierror.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apierror.KindNotFound, ae.Kind)
}

func TestBuscarVentaPorIDInterno(t *testing.T) {
	svc, _, productos, usuarios := newVentaFixture()
	empleado := usuarios.add("Ana", "Perez", "ana@agronat.test")
	p := productos.add("Fertilizante", 10, "50.00")

	resp, err := svc.RegistrarVenta(context.Background(), empleado, dto.RegistrarVentaRequest{
		Cliente:     "Juan Gomez",
		Comprobante: "Boleta",
		MedioPago:   "Efectivo",
		Productos:   []dto.ItemVentaRequest{item(p, 1, "50.00")},
	})
	require.NoError(t, err)

	venta, err := svc.BuscarVenta(context.Background(), resp.Venta.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.SaleID, venta.SaleID)
	assert.Equal(t, "Juan Gomez", venta.Cliente)

	_, err = svc.BuscarVenta(context.Background(), uuid.NewString())
	var ae *apierror.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apierror.KindNotFound, ae.Kind)

	_, err = svc.BuscarVenta(context.Background(), "no-es-un-uuid")
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apierror.KindValidation, ae.Kind)
}

func TestPrecioCapturadoNoSigueAlCatalogo(t *testing.T) {
	svc, _, productos, usuarios := newVentaFixture()
	empleado := usuarios.add("Ana", "Perez", "ana@agronat.test")
	p := productos.add("Fertilizante", 10, "50.00")

	resp, err := svc.RegistrarVenta(context.Background(), empleado, dto.RegistrarVentaRequest{
		Cliente:     "Juan Gomez",
		Comprobante: "Boleta",
		MedioPago:   "Efectivo",
		Productos:   []dto.ItemVentaRequest{item(p, 1, "50.00")},
	})
	require.NoError(t, err)

	// Catalog price doubles after the sale.
	productos.productos[p].PriceFinal = decimal.RequireFromString("100.00")

	detalle, err := svc.BuscarDetalle(context.Background(), resp.SaleID)
	require.NoError(t, err)
	assert.True(t, detalle.Productos[0].PrecioUnitario.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, detalle.Total.Equal(decimal.RequireFromString("50.00")))
}
