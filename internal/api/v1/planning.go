package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merchplan/internal/model"
)

// ListFacts 返回原始企划事实行
// GET /api/facts
func (h *Handler) ListFacts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.store.ListFacts()})
}

// GetPlanning 返回透视后的企划行
// GET /api/planning
func (h *Handler) GetPlanning(c *gin.Context) {
	rows := h.engine.Pivot(h.store.ListFacts(), h.store.ListStores(), h.store.ListSkus())
	c.JSON(http.StatusOK, gin.H{"items": rows, "total": len(rows)})
}

type cellEditRequest struct {
	StoreRef string  `json:"storeRef"`
	SkuRef   string  `json:"skuRef"`
	Week     string  `json:"week"`
	Units    float64 `json:"units"`
}

type cellEditResponse struct {
	Row  *model.PivotRow `json:"row"`
	Week string          `json:"week"`
	Cell model.WeekCell  `json:"cell"`
}

// UpdatePlanningCell 单元格编辑：改写销量并同步重算该周指标
// PATCH /api/planning/cell
//
// 编辑回写规范事实表（同键后写覆盖），随后全量重透视，
// 返回受影响的透视行——与编辑前后的增量结果完全一致
func (h *Handler) UpdatePlanningCell(c *gin.Context) {
	var req cellEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if req.StoreRef == "" || req.SkuRef == "" || req.Week == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "storeRef/skuRef/week 不能为空"})
		return
	}

	h.store.UpsertFactUnits(req.StoreRef, req.SkuRef, req.Week, req.Units)

	stores := h.store.ListStores()
	rows := h.engine.Pivot(h.store.ListFacts(), stores, h.store.ListSkus())

	// 事实键用的是门店编号，透视键用的是解析后的标签
	label := req.StoreRef
	for _, s := range stores {
		if s.ID == req.StoreRef {
			label = s.Name
			break
		}
	}
	key := label + "||" + req.SkuRef

	weekKey := model.NormalizeWeek(req.Week)
	for _, row := range rows {
		if row.ID == key {
			c.JSON(http.StatusOK, cellEditResponse{Row: row, Week: weekKey, Cell: row.Cell(weekKey)})
			return
		}
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "透视行缺失"})
}
