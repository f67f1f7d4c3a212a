package handler

import (
	"net/http"

	"agronat/internal/dto"
	"agronat/internal/service"

	"github.com/gin-gonic/gin"
)

type TrabajosHandler struct {
	trabajos *service.TrabajoService
}

func NewTrabajosHandler(trabajos *service.TrabajoService) *TrabajosHandler {
	return &TrabajosHandler{trabajos: trabajos}
}

func (h *TrabajosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarTrabajoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.trabajos.Registrar(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TrabajosHandler) Listar(c *gin.Context) {
	resp, err := h.trabajos.Listar(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrabajosHandler) Obtener(c *gin.Context) {
	resp, err := h.trabajos.Obtener(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrabajosHandler) Editar(c *gin.Context) {
	var req dto.ActualizarTrabajoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.trabajos.Editar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrabajosHandler) Eliminar(c *gin.Context) {
	if err := h.trabajos.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trabajo eliminado correctamente"})
}
