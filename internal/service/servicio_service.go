package service

import (
	"context"

	"agronat/internal/apierror"
	"agronat/internal/dto"
	"agronat/internal/model"
	"agronat/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ServicioService manages the service catalog and its categories.
type ServicioService struct {
	servicios repository.ServicioRepository
	log       zerolog.Logger
}

func NewServicioService(servicios repository.ServicioRepository, log zerolog.Logger) *ServicioService {
	return &ServicioService{servicios: servicios, log: log}
}

func (s *ServicioService) Crear(ctx context.Context, req dto.CrearServicioRequest) (*dto.ServicioResponse, error) {
	sv := &model.Servicio{
		Servicio:    req.Servicio,
		Descripcion: req.Descripcion,
		Categoria:   req.Categoria,
		Costo:       req.Costo,
		Descuento:   req.Descuento,
	}
	if err := s.servicios.Create(ctx, sv); err != nil {
		return nil, apierror.Internal(err)
	}
	s.log.Info().Str("servicio", sv.Servicio).Msg("servicio registrado")
	resp := toServicioResponse(sv)
	return &resp, nil
}

func (s *ServicioService) Listar(ctx context.Context) ([]dto.ServicioResponse, error) {
	servicios, err := s.servicios.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	out := make([]dto.ServicioResponse, 0, len(servicios))
	for i := range servicios {
		out = append(out, toServicioResponse(&servicios[i]))
	}
	return out, nil
}

func (s *ServicioService) Actualizar(ctx context.Context, idServicio string, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error) {
	id, err := uuid.Parse(idServicio)
	if err != nil {
		return nil, apierror.Validation("id de servicio invalido: %s", idServicio)
	}
	sv, err := s.servicios.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "servicio no encontrado: %s", idServicio)
	}
	if req.Servicio != nil {
		sv.Servicio = *req.Servicio
	}
	if req.Descripcion != nil {
		sv.Descripcion = *req.Descripcion
	}
	if req.Categoria != nil {
		sv.Categoria = *req.Categoria
	}
	if req.Costo != nil {
		sv.Costo = *req.Costo
	}
	if req.Descuento != nil {
		sv.Descuento = *req.Descuento
	}
	if err := s.servicios.Update(ctx, sv); err != nil {
		return nil, apierror.Internal(err)
	}
	resp := toServicioResponse(sv)
	return &resp, nil
}

func (s *ServicioService) Eliminar(ctx context.Context, idServicio string) error {
	id, err := uuid.Parse(idServicio)
	if err != nil {
		return apierror.Validation("id de servicio invalido: %s", idServicio)
	}
	if _, err := s.servicios.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "servicio no encontrado: %s", idServicio)
	}
	if err := s.servicios.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func (s *ServicioService) CrearCategoria(ctx context.Context, req dto.CrearCategoriaServicioRequest) (*dto.CategoriaServicioResponse, error) {
	c := &model.CategoriaServicio{Nombre: req.Nombre}
	if err := s.servicios.CreateCategoria(ctx, c); err != nil {
		return nil, apierror.Internal(err)
	}
	return &dto.CategoriaServicioResponse{ID: c.ID.String(), Nombre: c.Nombre}, nil
}

func (s *ServicioService) ListarCategorias(ctx context.Context) ([]dto.CategoriaServicioResponse, error) {
	categorias, err := s.servicios.ListCategorias(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	out := make([]dto.CategoriaServicioResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, dto.CategoriaServicioResponse{ID: c.ID.String(), Nombre: c.Nombre})
	}
	return out, nil
}

func (s *ServicioService) EliminarCategoria(ctx context.Context, idCategoria string) error {
	id, err := uuid.Parse(idCategoria)
	if err != nil {
		return apierror.Validation("id de categoria invalido: %s", idCategoria)
	}
	if err := s.servicios.DeleteCategoria(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func toServicioResponse(sv *model.Servicio) dto.ServicioResponse {
	return dto.ServicioResponse{
		ID:          sv.ID.String(),
		Servicio:    sv.Servicio,
		Descripcion: sv.Descripcion,
		Categoria:   sv.Categoria,
		Costo:       sv.Costo,
		Descuento:   sv.Descuento,
	}
}
