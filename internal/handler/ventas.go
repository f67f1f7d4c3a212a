package handler

import (
	"net/http"

	"agronat/internal/apierror"
	"agronat/internal/dto"
	"agronat/internal/middleware"
	"agronat/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VentasHandler struct {
	ventas *service.VentaService
}

func NewVentasHandler(ventas *service.VentaService) *VentasHandler {
	return &VentasHandler{ventas: ventas}
}

// ProductosDisponibles lists sellable products for the cashier screen,
// optionally filtered with ?searchQuery=.
func (h *VentasHandler) ProductosDisponibles(c *gin.Context) {
	resp, err := h.ventas.ProductosDisponibles(c.Request.Context(), c.Query("searchQuery"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Registrar creates a sale on behalf of the authenticated employee.
func (h *VentasHandler) Registrar(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("token requerido"))
		return
	}
	empleadoID, err := uuid.Parse(claims.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("token invalido"))
		return
	}

	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.ventas.RegistrarVenta(c.Request.Context(), empleadoID, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Buscar fetches one sale by its internal id.
func (h *VentasHandler) Buscar(c *gin.Context) {
	resp, err := h.ventas.BuscarVenta(c.Request.Context(), c.Param("searchQuery"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Detalle returns one sale by its public sale id, with its captured line items.
func (h *VentasHandler) Detalle(c *gin.Context) {
	resp, err := h.ventas.BuscarDetalle(c.Request.Context(), c.Param("id_venta"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateEstado flips the paid flag.
func (h *VentasHandler) UpdateEstado(c *gin.Context) {
	var req dto.UpdateEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.Abonado == nil {
		c.JSON(http.StatusBadRequest, apierror.New("el campo abonado es requerido"))
		return
	}
	if err := h.ventas.ActualizarEstado(c.Request.Context(), c.Param("id"), *req.Abonado); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Estado actualizado correctamente"})
}

// Ultimas feeds the dashboard with the most recent sales.
func (h *VentasHandler) Ultimas(c *gin.Context) {
	resp, err := h.ventas.UltimasVentas(c.Request.Context(), 10)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
