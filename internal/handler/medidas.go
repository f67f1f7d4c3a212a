package handler

import (
	"net/http"

	"agronat/internal/dto"
	"agronat/internal/service"

	"github.com/gin-gonic/gin"
)

type MedidasHandler struct {
	medidas *service.MedidaService
}

func NewMedidasHandler(medidas *service.MedidaService) *MedidasHandler {
	return &MedidasHandler{medidas: medidas}
}

func (h *MedidasHandler) RegistrarMedida(c *gin.Context) {
	var req dto.CrearMedidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.medidas.RegistrarMedida(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MedidasHandler) ListarMedidas(c *gin.Context) {
	resp, err := h.medidas.ListarMedidas(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MedidasHandler) RegistrarCategoria(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.medidas.RegistrarCategoria(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MedidasHandler) ListarCategorias(c *gin.Context) {
	resp, err := h.medidas.ListarCategorias(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
