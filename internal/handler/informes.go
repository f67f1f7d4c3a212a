package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"agronat/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type InformesHandler struct {
	informes *service.InformeService
}

func NewInformesHandler(informes *service.InformeService) *InformesHandler {
	return &InformesHandler{informes: informes}
}

// Informes returns the dashboard summary, filtered with ?year=.
func (h *InformesHandler) Informes(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	resp, err := h.informes.Informes(c.Request.Context(), year)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReporteVentas streams the sales spreadsheet as a download, filtered to one
// month of the current year with ?mes=.
func (h *InformesHandler) ReporteVentas(c *gin.Context) {
	mes, _ := strconv.Atoi(c.Query("mes"))
	data, name, err := h.informes.ReporteVentasXLSX(c.Request.Context(), 0, mes)
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, name))
	c.Data(http.StatusOK, xlsxMIME, data)
}

// Ticket streams the printable PDF receipt of one sale.
func (h *InformesHandler) Ticket(c *gin.Context) {
	data, name, err := h.informes.TicketVenta(c.Request.Context(), c.Param("id_venta"))
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename=%q`, name))
	c.Data(http.StatusOK, "application/pdf", data)
}
