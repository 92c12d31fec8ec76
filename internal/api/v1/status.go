package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized   bool `json:"initialized"` // 是否已有企划数据
	StoreCount    int  `json:"storeCount"`
	SkuCount      int  `json:"skuCount"`
	FactCount     int  `json:"factCount"`
	CalendarWeeks int  `json:"calendarWeeks"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	factCount := h.store.FactCount()
	c.JSON(http.StatusOK, StatusResponse{
		Initialized:   factCount > 0,
		StoreCount:    len(h.store.ListStores()),
		SkuCount:      len(h.store.ListSkus()),
		FactCount:     factCount,
		CalendarWeeks: len(h.store.ListCalendar()),
	})
}
