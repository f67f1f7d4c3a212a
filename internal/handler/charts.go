package handler

import (
	"net/http"

	"agronat/internal/dto"
	"agronat/internal/service"

	"github.com/gin-gonic/gin"
)

type ChartsHandler struct {
	charts *service.ChartsService
}

func NewChartsHandler(charts *service.ChartsService) *ChartsHandler {
	return &ChartsHandler{charts: charts}
}

// MonthlyStats returns the 12-entry month series. With ?mode=daily it
// delegates to the daily series instead.
func (h *ChartsHandler) MonthlyStats(c *gin.Context) {
	var f dto.ChartsFilter
	if !bindQuery(c, &f) {
		return
	}
	if f.Mode == "daily" {
		h.daily(c, f)
		return
	}
	data, err := h.charts.MonthlyStats(c.Request.Context(), f)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ChartsResponse{Success: true, Data: data})
}

func (h *ChartsHandler) DailyStats(c *gin.Context) {
	var f dto.ChartsFilter
	if !bindQuery(c, &f) {
		return
	}
	h.daily(c, f)
}

func (h *ChartsHandler) daily(c *gin.Context, f dto.ChartsFilter) {
	data, err := h.charts.DailyStats(c.Request.Context(), f)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ChartsResponse{Success: true, Data: data})
}

func (h *ChartsHandler) CategoryStats(c *gin.Context) {
	var f dto.ChartsFilter
	if !bindQuery(c, &f) {
		return
	}
	data, err := h.charts.CategoryStats(c.Request.Context(), f)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ChartsResponse{Success: true, Data: data})
}

func (h *ChartsHandler) TopProducts(c *gin.Context) {
	var f dto.ChartsFilter
	if !bindQuery(c, &f) {
		return
	}
	data, err := h.charts.TopProducts(c.Request.Context(), f)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ChartsResponse{Success: true, Data: data})
}
