// Package v1 企划与档案管理的 JSON API
package v1

import (
	"github.com/gin-gonic/gin"

	"merchplan/internal/pivot"
	"merchplan/internal/store"
)

// Handler API 处理器
type Handler struct {
	store  *store.AppStore
	engine *pivot.Engine
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.AppStore) *Handler {
	return &Handler{
		store:  st,
		engine: pivot.NewEngine(),
	}
}

// RegisterRoutes 注册需要登录的业务路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 门店档案
	router.GET("/stores", h.ListStores)
	router.POST("/stores", h.AddStore)
	router.PATCH("/stores/:id", h.UpdateStore)
	router.DELETE("/stores/:id", h.RemoveStore)
	router.POST("/stores/reorder", h.ReorderStores)

	// 商品档案
	router.GET("/skus", h.ListSkus)
	router.POST("/skus", h.AddSku)
	router.PATCH("/skus/:id", h.UpdateSku)
	router.DELETE("/skus/:id", h.RemoveSku)

	// 周历与列结构
	router.GET("/calendar", h.GetCalendar)
	router.GET("/months", h.GetMonthGroups)

	// 企划数据
	router.GET("/facts", h.ListFacts)
	router.GET("/planning", h.GetPlanning)
	router.PATCH("/planning/cell", h.UpdatePlanningCell)

	// 图表
	router.GET("/chart/:storeID", h.GetStoreChart)

	// 导入导出
	router.POST("/import", h.Import)
	router.POST("/export", h.Export)
}
