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
)

// ProductoService manages the product catalog. Stock edits here are direct
// catalog maintenance; the sale path decrements stock on its own.
type ProductoService struct {
	productos repository.ProductoRepository
	log       zerolog.Logger
}

func NewProductoService(productos repository.ProductoRepository, log zerolog.Logger) *ProductoService {
	return &ProductoService{productos: productos, log: log}
}

func (s *ProductoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		Provider:     req.Provider,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Medida:       req.Medida,
		PriceSIVA:    req.PriceSIVA,
		PriceUSD:     req.PriceUSD,
		PorMarginal:  req.PorMarginal,
		PorDescuento: req.PorDescuento,
		PriceFinal:   req.PriceFinal,
		Active:       true,
	}
	if err := s.productos.Create(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	s.log.Info().Str("producto", p.Name).Str("code", p.Code).Msg("producto registrado")
	resp := toProductoResponse(p)
	return &resp, nil
}

func (s *ProductoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.productos.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, toProductoResponse(&productos[i]))
	}
	return out, nil
}

func (s *ProductoService) Obtener(ctx context.Context, idProducto string) (*dto.ProductoResponse, error) {
	id, err := uuid.Parse(idProducto)
	if err != nil {
		return nil, apierror.Validation("id de producto invalido: %s", idProducto)
	}
	p, err := s.productos.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "producto no encontrado: %s", idProducto)
	}
	resp := toProductoResponse(p)
	return &resp, nil
}

func (s *ProductoService) Actualizar(ctx context.Context, idProducto string, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	id, err := uuid.Parse(idProducto)
	if err != nil {
		return nil, apierror.Validation("id de producto invalido: %s", idProducto)
	}
	p, err := s.productos.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "producto no encontrado: %s", idProducto)
	}

	if req.Code != nil {
		p.Code = *req.Code
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Provider != nil {
		p.Provider = *req.Provider
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	if req.Medida != nil {
		p.Medida = *req.Medida
	}
	if req.PriceSIVA != nil {
		p.PriceSIVA = *req.PriceSIVA
	}
	if req.PriceUSD != nil {
		p.PriceUSD = *req.PriceUSD
	}
	if req.PorMarginal != nil {
		p.PorMarginal = *req.PorMarginal
	}
	if req.PorDescuento != nil {
		p.PorDescuento = *req.PorDescuento
	}
	if req.PriceFinal != nil {
		p.PriceFinal = *req.PriceFinal
	}

	if err := s.productos.Update(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	resp := toProductoResponse(p)
	return &resp, nil
}

func (s *ProductoService) Eliminar(ctx context.Context, idProducto string) error {
	id, err := uuid.Parse(idProducto)
	if err != nil {
		return apierror.Validation("id de producto invalido: %s", idProducto)
	}
	if _, err := s.productos.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "producto no encontrado: %s", idProducto)
	}
	if err := s.productos.SoftDelete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func toProductoResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:           p.ID.String(),
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		Provider:     p.Provider,
		Category:     p.Category,
		Quantity:     p.Quantity,
		Medida:       p.Medida,
		PriceSIVA:    p.PriceSIVA,
		PriceUSD:     p.PriceUSD,
		PorMarginal:  p.PorMarginal,
		PorDescuento: p.PorDescuento,
		PriceFinal:   p.PriceFinal,
		Active:       p.Active,
		CreateAt:     p.CreateAt.Format(time.RFC3339),
	}
}
