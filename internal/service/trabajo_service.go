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

// TrabajoService manages work orders. Assigned services are snapshotted at
// registration time; later catalog edits never change an existing trabajo.
type TrabajoService struct {
	trabajos  repository.TrabajoRepository
	servicios repository.ServicioRepository
	usuarios  repository.UsuarioRepository
	log       zerolog.Logger
}

func NewTrabajoService(
	trabajos repository.TrabajoRepository,
	servicios repository.ServicioRepository,
	usuarios repository.UsuarioRepository,
	log zerolog.Logger,
) *TrabajoService {
	return &TrabajoService{trabajos: trabajos, servicios: servicios, usuarios: usuarios, log: log}
}

// resolveSnapshots looks up every requested service name and copies its
// current fields. Any unknown name aborts the whole operation.
func (s *TrabajoService) resolveSnapshots(ctx context.Context, nombres []string) ([]model.TrabajoServicio, error) {
	servicios, err := s.servicios.FindByNombres(ctx, nombres)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	byName := make(map[string]model.Servicio, len(servicios))
	for _, sv := range servicios {
		byName[sv.Servicio] = sv
	}
	out := make([]model.TrabajoServicio, 0, len(nombres))
	for _, nombre := range nombres {
		sv, ok := byName[nombre]
		if !ok {
			return nil, apierror.NotFound("servicio no encontrado: %s", nombre)
		}
		out = append(out, model.TrabajoServicio{
			Servicio:  sv.Servicio,
			Categoria: sv.Categoria,
			Costo:     sv.Costo,
			Descuento: sv.Descuento,
		})
	}
	return out, nil
}

// costoDesdeSnapshots sums the snapshot costs with their discounts applied.
func costoDesdeSnapshots(snapshots []model.TrabajoServicio) float64 {
	total := 0.0
	for _, sn := range snapshots {
		total += sn.Costo * (1 - sn.Descuento/100)
	}
	return total
}

func (s *TrabajoService) Registrar(ctx context.Context, req dto.RegistrarTrabajoRequest) (*dto.TrabajoResponse, error) {
	tecnicoID, err := uuid.Parse(req.Tecnico)
	if err != nil {
		return nil, apierror.Validation("id de tecnico invalido: %s", req.Tecnico)
	}
	tecnico, err := s.usuarios.FindByID(ctx, tecnicoID)
	if err != nil {
		return nil, notFoundOr(err, "tecnico no encontrado: %s", req.Tecnico)
	}

	snapshots, err := s.resolveSnapshots(ctx, req.Servicios)
	if err != nil {
		return nil, err
	}

	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}
	vencimiento, err := parseFecha(req.FechaVencimiento)
	if err != nil {
		return nil, err
	}

	costo := req.Costo
	if costo == 0 {
		costo = costoDesdeSnapshots(snapshots)
	}

	t := &model.Trabajo{
		Cliente:          req.Cliente,
		Servicios:        snapshots,
		Descripcion:      req.Descripcion,
		Fecha:            fecha,
		FechaVencimiento: vencimiento,
		TecnicoID:        tecnico.ID,
		Observaciones:    req.Observaciones,
		Costo:            costo,
		Active:           true,
	}
	if err := s.trabajos.Create(ctx, t); err != nil {
		return nil, apierror.Internal(err)
	}
	t.Tecnico = tecnico

	s.log.Info().Str("cliente", t.Cliente).Int("servicios", len(snapshots)).Msg("trabajo registrado")
	resp := toTrabajoResponse(t)
	return &resp, nil
}

func (s *TrabajoService) Listar(ctx context.Context) ([]dto.TrabajoResponse, error) {
	trabajos, err := s.trabajos.ListActive(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	out := make([]dto.TrabajoResponse, 0, len(trabajos))
	for i := range trabajos {
		out = append(out, toTrabajoResponse(&trabajos[i]))
	}
	return out, nil
}

func (s *TrabajoService) Obtener(ctx context.Context, idTrabajo string) (*dto.TrabajoResponse, error) {
	id, err := uuid.Parse(idTrabajo)
	if err != nil {
		return nil, apierror.Validation("id de trabajo invalido: %s", idTrabajo)
	}
	t, err := s.trabajos.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "trabajo no encontrado: %s", idTrabajo)
	}
	resp := toTrabajoResponse(t)
	return &resp, nil
}

func (s *TrabajoService) Editar(ctx context.Context, idTrabajo string, req dto.ActualizarTrabajoRequest) (*dto.TrabajoResponse, error) {
	id, err := uuid.Parse(idTrabajo)
	if err != nil {
		return nil, apierror.Validation("id de trabajo invalido: %s", idTrabajo)
	}
	t, err := s.trabajos.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "trabajo no encontrado: %s", idTrabajo)
	}

	if req.Cliente != nil {
		t.Cliente = *req.Cliente
	}
	if req.Descripcion != nil {
		t.Descripcion = *req.Descripcion
	}
	if req.Observaciones != nil {
		t.Observaciones = *req.Observaciones
	}
	if req.Fecha != nil {
		fecha, perr := parseFecha(*req.Fecha)
		if perr != nil {
			return nil, perr
		}
		t.Fecha = fecha
	}
	if req.FechaVencimiento != nil {
		vencimiento, perr := parseFecha(*req.FechaVencimiento)
		if perr != nil {
			return nil, perr
		}
		t.FechaVencimiento = vencimiento
	}
	if req.Tecnico != nil {
		tecnicoID, perr := uuid.Parse(*req.Tecnico)
		if perr != nil {
			return nil, apierror.Validation("id de tecnico invalido: %s", *req.Tecnico)
		}
		tecnico, ferr := s.usuarios.FindByID(ctx, tecnicoID)
		if ferr != nil {
			return nil, notFoundOr(ferr, "tecnico no encontrado: %s", *req.Tecnico)
		}
		t.TecnicoID = tecnico.ID
		t.Tecnico = tecnico
	}
	if len(req.Servicios) > 0 {
		snapshots, serr := s.resolveSnapshots(ctx, req.Servicios)
		if serr != nil {
			return nil, serr
		}
		if rerr := s.trabajos.ReplaceServicios(ctx, t, snapshots); rerr != nil {
			return nil, apierror.Internal(rerr)
		}
		t.Costo = costoDesdeSnapshots(snapshots)
	}

	if err := s.trabajos.Update(ctx, t); err != nil {
		return nil, apierror.Internal(err)
	}
	resp := toTrabajoResponse(t)
	return &resp, nil
}

func (s *TrabajoService) Eliminar(ctx context.Context, idTrabajo string) error {
	id, err := uuid.Parse(idTrabajo)
	if err != nil {
		return apierror.Validation("id de trabajo invalido: %s", idTrabajo)
	}
	rows, err := s.trabajos.SoftDelete(ctx, id)
	if err != nil {
		return apierror.Internal(err)
	}
	if rows == 0 {
		return apierror.NotFound("trabajo no encontrado: %s", idTrabajo)
	}
	return nil
}

func toTrabajoResponse(t *model.Trabajo) dto.TrabajoResponse {
	servicios := make([]dto.TrabajoServicioResponse, 0, len(t.Servicios))
	for _, sn := range t.Servicios {
		servicios = append(servicios, dto.TrabajoServicioResponse{
			Servicio:  sn.Servicio,
			Categoria: sn.Categoria,
			Costo:     sn.Costo,
			Descuento: sn.Descuento,
		})
	}
	resp := dto.TrabajoResponse{
		ID:            t.ID.String(),
		Cliente:       t.Cliente,
		Servicios:     servicios,
		Descripcion:   t.Descripcion,
		Observaciones: t.Observaciones,
		Costo:         t.Costo,
		Active:        t.Active,
	}
	if t.Fecha != nil {
		resp.Fecha = t.Fecha.Format("2006-01-02")
	}
	if t.FechaVencimiento != nil {
		resp.FechaVencimiento = t.FechaVencimiento.Format("2006-01-02")
	}
	if t.Tecnico != nil {
		resp.Tecnico = &dto.EmpleadoResponse{Name: t.Tecnico.Name, Lastname: t.Tecnico.Lastname}
	}
	return resp
}
