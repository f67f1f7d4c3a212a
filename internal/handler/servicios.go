package handler

import (
	"net/http"

	"agronat/internal/dto"
	"agronat/internal/service"

	"github.com/gin-gonic/gin"
)

type ServiciosHandler struct {
	servicios *service.ServicioService
}

func NewServiciosHandler(servicios *service.ServicioService) *ServiciosHandler {
	return &ServiciosHandler{servicios: servicios}
}

func (h *ServiciosHandler) Registrar(c *gin.Context) {
	var req dto.CrearServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.servicios.Crear(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ServiciosHandler) Listar(c *gin.Context) {
	resp, err := h.servicios.Listar(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServiciosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.servicios.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServiciosHandler) Eliminar(c *gin.Context) {
	if err := h.servicios.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Servicio eliminado correctamente"})
}

func (h *ServiciosHandler) RegistrarCategoria(c *gin.Context) {
	var req dto.CrearCategoriaServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.servicios.CrearCategoria(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ServiciosHandler) ListarCategorias(c *gin.Context) {
	resp, err := h.servicios.ListarCategorias(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServiciosHandler) EliminarCategoria(c *gin.Context) {
	if err := h.servicios.EliminarCategoria(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Categoria eliminada correctamente"})
}
