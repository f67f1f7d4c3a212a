package service

import (
	"context"
	"errors"
	"time"

	"agronat/internal/apierror"
	"agronat/internal/dto"
	"agronat/internal/model"
	"agronat/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ProveedorService struct {
	proveedores repository.ProveedorRepository
	productos   repository.ProductoRepository
	log         zerolog.Logger
}

func NewProveedorService(proveedores repository.ProveedorRepository, productos repository.ProductoRepository, log zerolog.Logger) *ProveedorService {
	return &ProveedorService{proveedores: proveedores, productos: productos, log: log}
}

func (s *ProveedorService) Registrar(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if req.Email != "" {
		if _, err := s.proveedores.FindByEmail(ctx, req.Email); err == nil {
			return nil, apierror.Conflict("el proveedor ya esta registrado: %s", req.Email)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
	}

	p := &model.Proveedor{
		Name:      req.Name,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Cel:       req.Cel,
		Domicilio: model.Domicilio{
			Calle:        req.Domicilio.Calle,
			Numero:       req.Domicilio.Numero,
			Ciudad:       req.Domicilio.Ciudad,
			Provincia:    req.Domicilio.Provincia,
			CodigoPostal: req.Domicilio.CodigoPostal,
		},
	}
	if err := s.proveedores.Create(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	s.log.Info().Str("proveedor", p.Name).Msg("proveedor registrado")
	resp := toProveedorResponse(p)
	return &resp, nil
}

// RegistrarDesdeProductos backfills the provider table from the distinct
// provider names already referenced by catalog products. Names that exist are
// skipped; the call is idempotent.
func (s *ProveedorService) RegistrarDesdeProductos(ctx context.Context) (int, error) {
	names, err := s.productos.DistinctProviders(ctx)
	if err != nil {
		return 0, apierror.Internal(err)
	}
	created := 0
	for _, name := range names {
		if _, err := s.proveedores.FindByName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, apierror.Internal(err)
		}
		p := &model.Proveedor{Name: name}
		if err := s.proveedores.Create(ctx, p); err != nil {
			return created, apierror.Internal(err)
		}
		created++
	}
	s.log.Info().Int("creados", created).Msg("proveedores importados desde productos")
	return created, nil
}

func (s *ProveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.proveedores.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, toProveedorResponse(&proveedores[i]))
	}
	return out, nil
}

func toProveedorResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Lastname:  p.Lastname,
		Email:     p.Email,
		Cel:       p.Cel,
		Domicilio: toDomicilioDTO(p.Domicilio),
		CreateAt:  p.CreateAt.Format(time.RFC3339),
	}
}
