package repository

import (
	"context"

	"agronat/internal/model"

	"gorm.io/gorm"
)

// MedidaRepository covers the two small catalog lookups that products
// reference by name: units of measure and product categories.
type MedidaRepository interface {
	CreateMedida(ctx context.Context, m *model.Medida) error
	ListMedidas(ctx context.Context) ([]model.Medida, error)
	FindMedidaByName(ctx context.Context, name string) (*model.Medida, error)

	CreateCategoria(ctx context.Context, c *model.CategoriaProducto) error
	ListCategorias(ctx context.Context) ([]model.CategoriaProducto, error)
	FindCategoriaByName(ctx context.Context, name string) (*model.CategoriaProducto, error)
}

type medidaRepo struct{ db *gorm.DB }

func NewMedidaRepository(db *gorm.DB) MedidaRepository { return &medidaRepo{db: db} }

func (r *medidaRepo) CreateMedida(ctx context.Context, m *model.Medida) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *medidaRepo) ListMedidas(ctx context.Context) ([]model.Medida, error) {
	var medidas []model.Medida
	err := r.db.WithContext(ctx).Where("is_active = true").Order("name ASC").Find(&medidas).Error
	return medidas, err
}

func (r *medidaRepo) FindMedidaByName(ctx context.Context, name string) (*model.Medida, error) {
	var m model.Medida
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *medidaRepo) CreateCategoria(ctx context.Context, c *model.CategoriaProducto) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *medidaRepo) ListCategorias(ctx context.Context) ([]model.CategoriaProducto, error) {
	var categorias []model.CategoriaProducto
	err := r.db.WithContext(ctx).Where("is_active = true").Order("name ASC").Find(&categorias).Error
	return categorias, err
}

func (r *medidaRepo) FindCategoriaByName(ctx context.Context, name string) (*model.CategoriaProducto, error) {
	var c model.CategoriaProducto
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
