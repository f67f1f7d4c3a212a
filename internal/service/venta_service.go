package service

import (
	"context"
	"time"

	"agronat/internal/apierror"
	"agronat/internal/dto"
	"agronat/internal/model"
	"agronat/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Notifier receives out-of-band alerts after a sale commits. Implementations
// must not block the sale path.
type Notifier interface {
	LowStock(productos []model.Producto)
}

// VentaService owns the sale ledger: registering sales, looking them up and
// flipping their paid state. A sale is written in one transaction; either the
// record, its items and every stock decrement land together, or nothing does.
type VentaService struct {
	ventas    repository.VentaRepository
	productos repository.ProductoRepository
	usuarios  repository.UsuarioRepository
	notifier  Notifier
	threshold int
	log       zerolog.Logger
}

func NewVentaService(
	ventas repository.VentaRepository,
	productos repository.ProductoRepository,
	usuarios repository.UsuarioRepository,
	notifier Notifier,
	lowStockThreshold int,
	log zerolog.Logger,
) *VentaService {
	return &VentaService{
		ventas:    ventas,
		productos: productos,
		usuarios:  usuarios,
		notifier:  notifier,
		threshold: lowStockThreshold,
		log:       log,
	}
}

// RegistrarVenta validates the cart, resolves every product before touching
// anything, then commits the sale record and the stock decrements atomically.
// The sale total is always the sum of the captured line subtotals.
func (s *VentaService) RegistrarVenta(ctx context.Context, empleadoID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error) {
	if len(req.Productos) == 0 {
		return nil, apierror.Validation("la venta no contiene productos")
	}

	empleado, err := s.usuarios.FindByID(ctx, empleadoID)
	if err != nil {
		return nil, notFoundOr(err, "empleado no encontrado")
	}

	// Resolve the whole cart up front. A missing product aborts here, before
	// any stock is touched.
	items := make([]model.VentaItem, 0, len(req.Productos))
	total := decimal.Zero
	for _, it := range req.Productos {
		pid, perr := uuid.Parse(it.ProductoID)
		if perr != nil {
			return nil, apierror.Validation("producto_id invalido: %s", it.ProductoID)
		}
		producto, ferr := s.productos.FindByID(ctx, pid)
		if ferr != nil {
			return nil, notFoundOr(ferr, "producto no encontrado: %s", it.ProductoID)
		}
		subtotal := it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad)))
		items = append(items, model.VentaItem{
			ProductoID:     producto.ID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       subtotal,
		})
		total = total.Add(subtotal)
	}

	now := time.Now()
	venta := &model.Venta{
		Cliente:        req.Cliente,
		Comprobante:    req.Comprobante,
		Items:          items,
		Total:          total,
		MedioPago:      req.MedioPago,
		Abonado:        req.Abonado,
		EmpleadoID:     empleado.ID,
		EmpleadoNombre: empleado.Name + " " + empleado.Lastname,
		Mes:            int(now.Month()),
		Fecha:          now,
	}

	err = runTx(s.ventas.DB(), func(tx *gorm.DB) error {
		saleID, terr := s.ventas.NextSaleID(ctx, tx)
		if terr != nil {
			return terr
		}
		venta.SaleID = saleID
		if terr = s.ventas.Create(ctx, tx, venta); terr != nil {
			return terr
		}
		for _, item := range venta.Items {
			if terr = s.productos.DecrementStockTx(tx, item.ProductoID, item.Cantidad); terr != nil {
				return terr
			}
		}
		return nil
	})
	if err != nil {
		return nil, apierror.Internal(err)
	}

	s.log.Info().
		Str("sale_id", venta.SaleID).
		Str("cliente", venta.Cliente).
		Str("total", venta.Total.String()).
		Int("items", len(venta.Items)).
		Msg("venta registrada")

	s.alertLowStock()

	return &dto.RegistrarVentaResponse{
		Message: "Venta registrada correctamente",
		Venta:   s.toResponse(venta),
		SaleID:  venta.SaleID,
	}, nil
}

// alertLowStock checks stock levels after a committed sale. It never blocks
// the response and a failure here never fails the sale.
func (s *VentaService) alertLowStock() {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		low, err := s.productos.BelowThreshold(ctx, s.threshold)
		if err != nil {
			s.log.Warn().Err(err).Msg("no se pudo consultar stock bajo")
			return
		}
		if len(low) > 0 {
			s.notifier.LowStock(low)
		}
	}()
}

// ProductosDisponibles searches active products for the cashier screen.
func (s *VentaService) ProductosDisponibles(ctx context.Context, query string) (*dto.BuscarProductosResponse, error) {
	productos, err := s.productos.Search(ctx, query)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	out := make([]dto.ProductoDisponibleResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.ProductoDisponibleResponse{
			ID:          p.ID.String(),
			Code:        p.Code,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Quantity:    p.Quantity,
			Medida:      p.Medida,
			PriceFinal:  p.PriceFinal,
		})
	}
	return &dto.BuscarProductosResponse{
		Success:   true,
		Productos: out,
		Timestamp: time.Now().Format(time.RFC3339),
	}, nil
}

// BuscarVenta fetches one sale by its internal id.
func (s *VentaService) BuscarVenta(ctx context.Context, idVenta string) (*dto.VentaResponse, error) {
	id, err := uuid.Parse(idVenta)
	if err != nil {
		return nil, apierror.Validation("id de venta invalido: %s", idVenta)
	}
	venta, err := s.ventas.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "venta no encontrada: %s", idVenta)
	}
	resp := s.toResponse(venta)
	return &resp, nil
}

// BuscarDetalle returns one sale by its public 10-digit id, with its captured
// line items. Prices come from the sale record itself, never from the current
// catalog.
func (s *VentaService) BuscarDetalle(ctx context.Context, saleID string) (*dto.VentaResponse, error) {
	venta, err := s.ventas.FindBySaleID(ctx, saleID)
	if err != nil {
		return nil, notFoundOr(err, "venta no encontrada: %s", saleID)
	}
	resp := s.toResponse(venta)
	return &resp, nil
}

// ActualizarEstado flips the paid flag in either direction.
func (s *VentaService) ActualizarEstado(ctx context.Context, idVenta string, abonado bool) error {
	id, err := uuid.Parse(idVenta)
	if err != nil {
		return apierror.Validation("id de venta invalido: %s", idVenta)
	}
	rows, err := s.ventas.UpdateAbonado(ctx, id, abonado)
	if err != nil {
		return apierror.Internal(err)
	}
	if rows == 0 {
		return apierror.NotFound("venta no encontrada: %s", idVenta)
	}
	return nil
}

// UltimasVentas lists the most recent sales for the dashboard feed.
func (s *VentaService) UltimasVentas(ctx context.Context, limit int) ([]dto.VentaResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	ventas, err := s.ventas.ListAll(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if len(ventas) > limit {
		ventas = ventas[:limit]
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, s.toResponse(&ventas[i]))
	}
	return out, nil
}

func (s *VentaService) toResponse(v *model.Venta) dto.VentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(v.Items))
	for _, it := range v.Items {
		item := dto.ItemVentaResponse{
			ProductoID:     it.ProductoID.String(),
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.Subtotal,
		}
		if it.Producto != nil {
			item.Name = it.Producto.Name
			item.Description = it.Producto.Description
		}
		items = append(items, item)
	}
	resp := dto.VentaResponse{
		ID:          v.ID.String(),
		SaleID:      v.SaleID,
		Cliente:     v.Cliente,
		Comprobante: v.Comprobante,
		Productos:   items,
		Total:       v.Total,
		MedioPago:   v.MedioPago,
		Abonado:     v.Abonado,
		Mes:         v.Mes,
		Fecha:       v.Fecha.Format(time.RFC3339),
	}
	if v.Empleado != nil {
		resp.Empleado = &dto.EmpleadoResponse{Name: v.Empleado.Name, Lastname: v.Empleado.Lastname}
	} else if v.EmpleadoNombre != "" {
		resp.Empleado = &dto.EmpleadoResponse{Name: v.EmpleadoNombre}
	}
	return resp
}
