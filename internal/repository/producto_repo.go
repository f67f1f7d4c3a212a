package repository

import (
	"context"

	"agronat/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for the product catalog.
// Services depend on this interface, not on the concrete GORM implementation.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context) ([]model.Producto, error)
	// Search filters active products by case-insensitive substring over
	// name and description. Empty query returns all active products.
	Search(ctx context.Context, query string) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// DecrementStockTx applies quantity = quantity - n as a single atomic
	// UPDATE, so concurrent sales never lose decrements.
	DecrementStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error
	// DistinctProviders lists the provider names referenced by products.
	DistinctProviders(ctx context.Context) ([]string, error)
	// BelowThreshold returns active products at or below the stock threshold.
	BelowThreshold(ctx context.Context, threshold int) ([]model.Producto, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("name ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Search(ctx context.Context, query string) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx).Where("active = true")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	err := q.Order("name ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ?", id).Update("active", false).Error
}

func (r *productoRepo) DecrementStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity - ?", cantidad)).Error
}

func (r *productoRepo) DistinctProviders(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Distinct("provider").Where("provider <> ''").Pluck("provider", &names).Error
	return names, err
}

func (r *productoRepo) BelowThreshold(ctx context.Context, threshold int) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("active = true AND quantity <= ?", threshold).
		Order("quantity ASC").Find(&productos).Error
	return productos, err
}
