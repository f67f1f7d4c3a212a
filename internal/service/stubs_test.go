package service

import (
	"context"
	"fmt"
	"sort"

	"agronat/internal/model"
	"agronat/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil so services run their
// transaction body directly.

type stubVentaRepo struct {
	ventas []model.Venta
	seq    int64

	monthlyRows  []repository.MonthlyRow
	dailyRows    []repository.DailyRow
	categoryRows []repository.CategoryRow
	topRows      []repository.TopProductRow
	lastLimit    int
	lastWindow   repository.StatsWindow
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas = append(r.ventas, *v)
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	for i := range r.ventas {
		if r.ventas[i].ID == id {
			v := r.ventas[i]
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVentaRepo) FindBySaleID(_ context.Context, saleID string) (*model.Venta, error) {
	for i := range r.ventas {
		if r.ventas[i].SaleID == saleID {
			v := r.ventas[i]
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVentaRepo) UpdateAbonado(_ context.Context, id uuid.UUID, abonado bool) (int64, error) {
	for i := range r.ventas {
		if r.ventas[i].ID == id {
			r.ventas[i].Abonado = abonado
			return 1, nil
		}
	}
	return 0, nil
}

func (r *stubVentaRepo) NextSaleID(_ context.Context, _ *gorm.DB) (string, error) {
	r.seq++
	return fmt.Sprintf("%010d", r.seq), nil
}

func (r *stubVentaRepo) ListAll(_ context.Context) ([]model.Venta, error) {
	out := make([]model.Venta, len(r.ventas))
	copy(out, r.ventas)
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	return out, nil
}

func (r *stubVentaRepo) ListByWindow(_ context.Context, w repository.StatsWindow) ([]model.Venta, error) {
	r.lastWindow = w
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		if w.Start != nil && v.Fecha.Before(*w.Start) {
			continue
		}
		if w.End != nil && v.Fecha.After(*w.End) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *stubVentaRepo) MonthlyStats(_ context.Context, w repository.StatsWindow) ([]repository.MonthlyRow, error) {
	r.lastWindow = w
	return r.monthlyRows, nil
}

func (r *stubVentaRepo) DailyStats(_ context.Context, w repository.StatsWindow) ([]repository.DailyRow, error) {
	r.lastWindow = w
	return r.dailyRows, nil
}

func (r *stubVentaRepo) CategoryStats(_ context.Context, w repository.StatsWindow) ([]repository.CategoryRow, error) {
	r.lastWindow = w
	return r.categoryRows, nil
}

func (r *stubVentaRepo) TopProducts(_ context.Context, w repository.StatsWindow, limit int) ([]repository.TopProductRow, error) {
	r.lastWindow = w
	r.lastLimit = limit
	if limit < len(r.topRows) {
		return r.topRows[:limit], nil
	}
	return r.topRows, nil
}

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) add(name string, quantity int, price string) uuid.UUID {
	id := uuid.New()
	r.productos[id] = &model.Producto{
		ID:         id,
		Code:       "C-" + id.String()[:6],
		Name:       name,
		Quantity:   quantity,
		PriceFinal: decimal.RequireFromString(price),
		Active:     true,
	}
	return id
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) Search(_ context.Context, _ string) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Active = false
	}
	return nil
}

func (r *stubProductoRepo) DecrementStockTx(_ *gorm.DB, id uuid.UUID, cantidad int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Quantity -= cantidad
	return nil
}

func (r *stubProductoRepo) DistinctProviders(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range r.productos {
		if p.Provider != "" && !seen[p.Provider] {
			seen[p.Provider] = true
			out = append(out, p.Provider)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *stubProductoRepo) BelowThreshold(_ context.Context, threshold int) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Active && p.Quantity <= threshold {
			out = append(out, *p)
		}
	}
	return out, nil
}

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) add(name, lastname, email string) uuid.UUID {
	id := uuid.New()
	r.usuarios[id] = &model.Usuario{ID: id, Name: name, Lastname: lastname, Email: email, Rol: "empleado"}
	return id
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

type stubServicioRepo struct {
	servicios  map[uuid.UUID]*model.Servicio
	categorias map[uuid.UUID]*model.CategoriaServicio
}

func newStubServicioRepo() *stubServicioRepo {
	return &stubServicioRepo{
		servicios:  make(map[uuid.UUID]*model.Servicio),
		categorias: make(map[uuid.UUID]*model.CategoriaServicio),
	}
}

func (r *stubServicioRepo) add(nombre, categoria string, costo, descuento float64) uuid.UUID {
	id := uuid.New()
	r.servicios[id] = &model.Servicio{
		ID: id, Servicio: nombre, Categoria: categoria, Costo: costo, Descuento: descuento,
	}
	return id
}

func (r *stubServicioRepo) Create(_ context.Context, s *model.Servicio) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Servicio, error) {
	s, ok := r.servicios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubServicioRepo) FindByNombres(_ context.Context, nombres []string) ([]model.Servicio, error) {
	want := make(map[string]bool, len(nombres))
	for _, n := range nombres {
		want[n] = true
	}
	var out []model.Servicio
	for _, s := range r.servicios {
		if want[s.Servicio] {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubServicioRepo) List(_ context.Context) ([]model.Servicio, error) {
	out := make([]model.Servicio, 0, len(r.servicios))
	for _, s := range r.servicios {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubServicioRepo) Update(_ context.Context, s *model.Servicio) error {
	r.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.servicios, id)
	return nil
}

func (r *stubServicioRepo) CreateCategoria(_ context.Context, c *model.CategoriaServicio) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *stubServicioRepo) ListCategorias(_ context.Context) ([]model.CategoriaServicio, error) {
	out := make([]model.CategoriaServicio, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubServicioRepo) DeleteCategoria(_ context.Context, id uuid.UUID) error {
	delete(r.categorias, id)
	return nil
}

type stubTrabajoRepo struct {
	trabajos map[uuid.UUID]*model.Trabajo
}

func newStubTrabajoRepo() *stubTrabajoRepo {
	return &stubTrabajoRepo{trabajos: make(map[uuid.UUID]*model.Trabajo)}
}

func (r *stubTrabajoRepo) Create(_ context.Context, t *model.Trabajo) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cp := *t
	r.trabajos[t.ID] = &cp
	return nil
}

func (r *stubTrabajoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Trabajo, error) {
	t, ok := r.trabajos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	cp.Servicios = append([]model.TrabajoServicio(nil), t.Servicios...)
	return &cp, nil
}

func (r *stubTrabajoRepo) ListActive(_ context.Context) ([]model.Trabajo, error) {
	var out []model.Trabajo
	for _, t := range r.trabajos {
		if t.Active {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTrabajoRepo) Update(_ context.Context, t *model.Trabajo) error {
	cp := *t
	r.trabajos[t.ID] = &cp
	return nil
}

func (r *stubTrabajoRepo) SoftDelete(_ context.Context, id uuid.UUID) (int64, error) {
	t, ok := r.trabajos[id]
	if !ok || !t.Active {
		return 0, nil
	}
	t.Active = false
	return 1, nil
}

func (r *stubTrabajoRepo) ReplaceServicios(_ context.Context, t *model.Trabajo, servicios []model.TrabajoServicio) error {
	stored, ok := r.trabajos[t.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Servicios = servicios
	t.Servicios = servicios
	return nil
}
