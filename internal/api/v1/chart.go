package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merchplan/internal/pivot"
)

// GetStoreChart 返回指定门店的周度销售额/毛利汇总，供图表消费
// GET /api/chart/:storeID
func (h *Handler) GetStoreChart(c *gin.Context) {
	storeID := c.Param("storeID")
	points := pivot.StoreWeeklySummary(storeID, h.store.ListFacts(), h.store.ListSkus())
	c.JSON(http.StatusOK, gin.H{"storeId": storeID, "points": points})
}
