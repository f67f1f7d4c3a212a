package repository

import (
	"context"

	"agronat/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicioRepository interface {
	Create(ctx context.Context, s *model.Servicio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error)
	// FindByNombres resolves a batch of service names in one query. The
	// caller checks the result covers every requested name.
	FindByNombres(ctx context.Context, nombres []string) ([]model.Servicio, error)
	List(ctx context.Context) ([]model.Servicio, error)
	Update(ctx context.Context, s *model.Servicio) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateCategoria(ctx context.Context, c *model.CategoriaServicio) error
	ListCategorias(ctx context.Context) ([]model.CategoriaServicio, error)
	DeleteCategoria(ctx context.Context, id uuid.UUID) error
}

type servicioRepo struct{ db *gorm.DB }

func NewServicioRepository(db *gorm.DB) ServicioRepository { return &servicioRepo{db: db} }

func (r *servicioRepo) Create(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error) {
	var s model.Servicio
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *servicioRepo) FindByNombres(ctx context.Context, nombres []string) ([]model.Servicio, error) {
	var servicios []model.Servicio
	err := r.db.WithContext(ctx).Where("servicio IN ?", nombres).Find(&servicios).Error
	return servicios, err
}

func (r *servicioRepo) List(ctx context.Context) ([]model.Servicio, error) {
	var servicios []model.Servicio
	err := r.db.WithContext(ctx).Order("servicio ASC").Find(&servicios).Error
	return servicios, err
}

func (r *servicioRepo) Update(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *servicioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Servicio{}, "id = ?", id).Error
}

func (r *servicioRepo) CreateCategoria(ctx context.Context, c *model.CategoriaServicio) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *servicioRepo) ListCategorias(ctx context.Context) ([]model.CategoriaServicio, error) {
	var categorias []model.CategoriaServicio
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&categorias).Error
	return categorias, err
}

func (r *servicioRepo) DeleteCategoria(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CategoriaServicio{}, "id = ?", id).Error
}
