package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merchplan/internal/pivot"
)

// GetCalendar 返回周历条目
// GET /api/calendar
func (h *Handler) GetCalendar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.store.ListCalendar()})
}

// GetMonthGroups 返回展示层用的月→周列分组
// 周历已导入时从周历推导，否则退回静态配置
// GET /api/months
func (h *Handler) GetMonthGroups(c *gin.Context) {
	groups := pivot.MonthGroupsFromCalendar(h.store.ListCalendar())
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}
