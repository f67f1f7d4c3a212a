package service

import (
	"context"
	"errors"

	"agronat/internal/apierror"
	"agronat/internal/dto"
	"agronat/internal/model"
	"agronat/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// MedidaService manages the two lookup catalogs products reference by name.
type MedidaService struct {
	medidas repository.MedidaRepository
	log     zerolog.Logger
}

func NewMedidaService(medidas repository.MedidaRepository, log zerolog.Logger) *MedidaService {
	return &MedidaService{medidas: medidas, log: log}
}

func (s *MedidaService) RegistrarMedida(ctx context.Context, req dto.CrearMedidaRequest) (*dto.MedidaResponse, error) {
	if _, err := s.medidas.FindMedidaByName(ctx, req.Name); err == nil {
		return nil, apierror.Conflict("la medida ya existe: %s", req.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}
	m := &model.Medida{Name: req.Name, Abbreviation: req.Abbreviation, IsActive: true}
	if err := s.medidas.CreateMedida(ctx, m); err != nil {
		return nil, apierror.Internal(err)
	}
	return &dto.MedidaResponse{
		ID:           m.ID.String(),
		Name:         m.Name,
		Abbreviation: m.Abbreviation,
		IsActive:     m.IsActive,
	}, nil
}

func (s *MedidaService) ListarMedidas(ctx context.Context) ([]dto.MedidaResponse, error) {
	medidas, err := s.medidas.ListMedidas(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	out := make([]dto.MedidaResponse, 0, len(medidas))
	for _, m := range medidas {
		out = append(out, dto.MedidaResponse{
			ID:           m.ID.String(),
			Name:         m.Name,
			Abbreviation: m.Abbreviation,
			IsActive:     m.IsActive,
		})
	}
	return out, nil
}

func (s *MedidaService) RegistrarCategoria(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if _, err := s.medidas.FindCategoriaByName(ctx, req.Name); err == nil {
		return nil, apierror.Conflict("la categoria ya existe: %s", req.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}
	c := &model.CategoriaProducto{Name: req.Name, IsActive: true}
	if err := s.medidas.CreateCategoria(ctx, c); err != nil {
		return nil, apierror.Internal(err)
	}
	return &dto.CategoriaResponse{ID: c.ID.String(), Name: c.Name, IsActive: c.IsActive}, nil
}

func (s *MedidaService) ListarCategorias(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.medidas.ListCategorias(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, dto.CategoriaResponse{ID: c.ID.String(), Name: c.Name, IsActive: c.IsActive})
	}
	return out, nil
}
