package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"merchplan/internal/store"
)

type storeRequest struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

// ListStores 按显示顺序返回门店
// GET /api/stores
func (h *Handler) ListStores(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.store.ListStores()})
}

// AddStore 新增门店
// POST /api/stores
func (h *Handler) AddStore(c *gin.Context) {
	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	rec := h.store.AddStore(req.Name, req.City, req.State)
	c.JSON(http.StatusCreated, rec)
}

// UpdateStore 更新门店
// PATCH /api/stores/:id
func (h *Handler) UpdateStore(c *gin.Context) {
	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	rec, err := h.store.UpdateStore(c.Param("id"), req.Name, req.City, req.State)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "门店不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// RemoveStore 删除门店（不级联事实行）
// DELETE /api/stores/:id
func (h *Handler) RemoveStore(c *gin.Context) {
	if err := h.store.RemoveStore(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "门店不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已删除"})
}

type reorderRequest struct {
	FromIndex int `json:"fromIndex"`
	ToIndex   int `json:"toIndex"`
}

// ReorderStores 调整门店显示顺序，越界静默不动作
// POST /api/stores/reorder
func (h *Handler) ReorderStores(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	h.store.ReorderStore(req.FromIndex, req.ToIndex)
	c.JSON(http.StatusOK, gin.H{"items": h.store.ListStores()})
}
