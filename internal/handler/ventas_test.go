package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agronat/internal/dto"
	"agronat/internal/model"
	"agronat/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// catalogoStub records the query the handler forwards to the product search.
type catalogoStub struct {
	lastQuery string
	productos []model.Producto
}

func (r *catalogoStub) Create(_ context.Context, _ *model.Producto) error { return nil }

func (r *catalogoStub) FindByID(_ context.Context, _ uuid.UUID) (*model.Producto, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *catalogoStub) List(_ context.Context) ([]model.Producto, error) {
	return r.productos, nil
}

func (r *catalogoStub) Search(_ context.Context, query string) ([]model.Producto, error) {
	r.lastQuery = query
	return r.productos, nil
}

func (r *catalogoStub) Update(_ context.Context, _ *model.Producto) error     { return nil }
func (r *catalogoStub) SoftDelete(_ context.Context, _ uuid.UUID) error       { return nil }
func (r *catalogoStub) DecrementStockTx(_ *gorm.DB, _ uuid.UUID, _ int) error { return nil }

func (r *catalogoStub) DistinctProviders(_ context.Context) ([]string, error) { return nil, nil }

func (r *catalogoStub) BelowThreshold(_ context.Context, _ int) ([]model.Producto, error) {
	return nil, nil
}

func TestProductosDisponiblesUsaSearchQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalogo := &catalogoStub{productos: []model.Producto{
		{ID: uuid.New(), Code: "F-001", Name: "Fertilizante", Active: true},
	}}
	svc := service.NewVentaService(nil, catalogo, nil, nil, 5, zerolog.Nop())
	h := NewVentasHandler(svc)

	r := gin.New()
	r.GET("/api/sales/productos_disponibles", h.ProductosDisponibles)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sales/productos_disponibles?searchQuery=ferti", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ferti", catalogo.lastQuery)

	var resp dto.BuscarProductosResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Productos, 1)
	assert.Equal(t, "Fertilizante", resp.Productos[0].Name)
}
