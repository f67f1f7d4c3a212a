package repository

import (
	"context"

	"agronat/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrabajoRepository interface {
	Create(ctx context.Context, t *model.Trabajo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Trabajo, error)
	ListActive(ctx context.Context) ([]model.Trabajo, error)
	Update(ctx context.Context, t *model.Trabajo) error
	// SoftDelete marks the work order inactive; the record and its
	// service snapshots stay queryable by id.
	SoftDelete(ctx context.Context, id uuid.UUID) (int64, error)
	// ReplaceServicios swaps the snapshot lines of a work order.
	ReplaceServicios(ctx context.Context, t *model.Trabajo, servicios []model.TrabajoServicio) error
}

type trabajoRepo struct{ db *gorm.DB }

func NewTrabajoRepository(db *gorm.DB) TrabajoRepository { return &trabajoRepo{db: db} }

func (r *trabajoRepo) Create(ctx context.Context, t *model.Trabajo) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *trabajoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Trabajo, error) {
	var t model.Trabajo
	err := r.db.WithContext(ctx).
		Preload("Servicios").Preload("Tecnico").
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *trabajoRepo) ListActive(ctx context.Context) ([]model.Trabajo, error) {
	var trabajos []model.Trabajo
	err := r.db.WithContext(ctx).
		Preload("Servicios").Preload("Tecnico").
		Where("active = true").
		Order("fecha DESC NULLS LAST").Find(&trabajos).Error
	return trabajos, err
}

func (r *trabajoRepo) Update(ctx context.Context, t *model.Trabajo) error {
	return r.db.WithContext(ctx).Omit("Servicios", "Tecnico").Save(t).Error
}

func (r *trabajoRepo) SoftDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Trabajo{}).
		Where("id = ? AND active = true", id).Update("active", false)
	return res.RowsAffected, res.Error
}

func (r *trabajoRepo) ReplaceServicios(ctx context.Context, t *model.Trabajo, servicios []model.TrabajoServicio) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trabajo_id = ?", t.ID).Delete(&model.TrabajoServicio{}).Error; err != nil {
			return err
		}
		for i := range servicios {
			servicios[i].TrabajoID = t.ID
		}
		if len(servicios) > 0 {
			if err := tx.Create(&servicios).Error; err != nil {
				return err
			}
		}
		t.Servicios = servicios
		return nil
	})
}
