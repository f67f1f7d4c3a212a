package handler

import (
	"net/http"

	"agronat/internal/dto"
	"agronat/internal/service"

	"github.com/gin-gonic/gin"
)

type ProveedoresHandler struct {
	proveedores *service.ProveedorService
}

func NewProveedoresHandler(proveedores *service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{proveedores: proveedores}
}

func (h *ProveedoresHandler) Registrar(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.proveedores.Registrar(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarDesdeProductos backfills providers from the names already present
// in the product catalog.
func (h *ProveedoresHandler) RegistrarDesdeProductos(c *gin.Context) {
	created, err := h.proveedores.RegistrarDesdeProductos(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Proveedores importados", "creados": created})
}

func (h *ProveedoresHandler) Listar(c *gin.Context) {
	resp, err := h.proveedores.Listar(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
