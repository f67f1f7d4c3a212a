package repository

import (
	"context"
	"fmt"
	"time"

	"agronat/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatsWindow bounds an aggregation query. Nil bounds mean all-time.
type StatsWindow struct {
	Start *time.Time
	End   *time.Time
}

type MonthlyRow struct {
	Mes        int             `gorm:"column:mes"`
	TotalSales decimal.Decimal `gorm:"column:total_sales"`
	Count      int64           `gorm:"column:count"`
}

type DailyRow struct {
	Date       string          `gorm:"column:date"`
	TotalSales decimal.Decimal `gorm:"column:total_sales"`
	Count      int64           `gorm:"column:count"`
}

type CategoryRow struct {
	// Category is nil when the line item's product no longer resolves;
	// the service buckets those under "Sin categoría".
	Category      *string         `gorm:"column:category"`
	TotalSales    decimal.Decimal `gorm:"column:total_sales"`
	TotalQuantity int64           `gorm:"column:total_quantity"`
}

type TopProductRow struct {
	ProductoID    uuid.UUID       `gorm:"column:producto_id"`
	Name          *string         `gorm:"column:name"`
	TotalQuantity int64           `gorm:"column:total_quantity"`
	TotalSales    decimal.Decimal `gorm:"column:total_sales"`
}

// VentaRepository is the data access contract for the sale ledger and its
// read-side aggregations. All writes that belong to the sale transaction take
// an explicit *gorm.DB so the service controls transaction boundaries.
type VentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	FindBySaleID(ctx context.Context, saleID string) (*model.Venta, error)
	// UpdateAbonado returns the number of rows touched so callers can
	// distinguish a missing sale from a no-op.
	UpdateAbonado(ctx context.Context, id uuid.UUID, abonado bool) (int64, error)
	// NextSaleID allocates the next public identifier from a database
	// sequence, serialized across concurrent writers.
	NextSaleID(ctx context.Context, tx *gorm.DB) (string, error)
	ListAll(ctx context.Context) ([]model.Venta, error)
	ListByWindow(ctx context.Context, w StatsWindow) ([]model.Venta, error)

	MonthlyStats(ctx context.Context, w StatsWindow) ([]MonthlyRow, error)
	DailyStats(ctx context.Context, w StatsWindow) ([]DailyRow, error)
	CategoryStats(ctx context.Context, w StatsWindow) ([]CategoryRow, error)
	TopProducts(ctx context.Context, w StatsWindow, limit int) ([]TopProductRow, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Empleado").
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) FindBySaleID(ctx context.Context, saleID string) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Empleado").
		Where("sale_id = ?", saleID).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) UpdateAbonado(ctx context.Context, id uuid.UUID, abonado bool) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("id = ?", id).Update("abonado", abonado)
	return res.RowsAffected, res.Error
}

func (r *ventaRepo) NextSaleID(ctx context.Context, tx *gorm.DB) (string, error) {
	var num int64
	if err := tx.WithContext(ctx).Raw("SELECT nextval('ventas_sale_id_seq')").Scan(&num).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%010d", num), nil
}

func (r *ventaRepo) ListAll(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Empleado").
		Order("fecha DESC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListByWindow(ctx context.Context, w StatsWindow) ([]model.Venta, error) {
	var ventas []model.Venta
	q := r.db.WithContext(ctx).Preload("Items.Producto").Preload("Empleado")
	q = applyWindow(q, w, "ventas.fecha")
	err := q.Order("fecha ASC").Find(&ventas).Error
	return ventas, err
}

// applyWindow adds the inclusive fecha range to a query.
func applyWindow(q *gorm.DB, w StatsWindow, col string) *gorm.DB {
	if w.Start != nil {
		q = q.Where(col+" >= ?", *w.Start)
	}
	if w.End != nil {
		q = q.Where(col+" <= ?", *w.End)
	}
	return q
}

func (r *ventaRepo) MonthlyStats(ctx context.Context, w StatsWindow) ([]MonthlyRow, error) {
	var rows []MonthlyRow
	q := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("EXTRACT(MONTH FROM fecha)::int AS mes, SUM(total) AS total_sales, COUNT(*) AS count")
	q = applyWindow(q, w, "fecha")
	err := q.Group("mes").Order("mes ASC").Scan(&rows).Error
	return rows, err
}

func (r *ventaRepo) DailyStats(ctx context.Context, w StatsWindow) ([]DailyRow, error) {
	var rows []DailyRow
	q := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("to_char(fecha, 'YYYY-MM-DD') AS date, SUM(total) AS total_sales, COUNT(*) AS count")
	q = applyWindow(q, w, "fecha")
	err := q.Group("date").Order("date ASC").Scan(&rows).Error
	return rows, err
}

func (r *ventaRepo) CategoryStats(ctx context.Context, w StatsWindow) ([]CategoryRow, error) {
	var rows []CategoryRow
	q := r.db.WithContext(ctx).Table("venta_items AS vi").
		Select("p.category AS category, "+
			"SUM(vi.cantidad * vi.precio_unitario) AS total_sales, "+
			"SUM(vi.cantidad) AS total_quantity").
		Joins("JOIN ventas v ON v.id = vi.venta_id").
		Joins("LEFT JOIN productos p ON p.id = vi.producto_id")
	q = applyWindow(q, w, "v.fecha")
	err := q.Group("p.category").Order("total_sales DESC").Scan(&rows).Error
	return rows, err
}

func (r *ventaRepo) TopProducts(ctx context.Context, w StatsWindow, limit int) ([]TopProductRow, error) {
	var rows []TopProductRow
	q := r.db.WithContext(ctx).Table("venta_items AS vi").
		Select("vi.producto_id AS producto_id, MIN(p.name) AS name, "+
			"SUM(vi.cantidad) AS total_quantity, "+
			"SUM(vi.cantidad * vi.precio_unitario) AS total_sales").
		Joins("JOIN ventas v ON v.id = vi.venta_id").
		Joins("LEFT JOIN productos p ON p.id = vi.producto_id")
	q = applyWindow(q, w, "v.fecha")
	err := q.Group("vi.producto_id").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
