package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"merchplan/internal/store"
)

type skuRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Cost  float64 `json:"cost"`
}

// ListSkus 返回商品列表
// GET /api/skus
func (h *Handler) ListSkus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.store.ListSkus()})
}

// AddSku 新增商品
// POST /api/skus
func (h *Handler) AddSku(c *gin.Context) {
	var req skuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	rec := h.store.AddSku(req.Name, req.Price, req.Cost)
	c.JSON(http.StatusCreated, rec)
}

// UpdateSku 更新商品
// PATCH /api/skus/:id
func (h *Handler) UpdateSku(c *gin.Context) {
	var req skuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	rec, err := h.store.UpdateSku(c.Param("id"), req.Name, req.Price, req.Cost)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "商品不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// RemoveSku 删除商品（不级联事实行）
// DELETE /api/skus/:id
func (h *Handler) RemoveSku(c *gin.Context) {
	if err := h.store.RemoveSku(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "商品不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已删除"})
}
