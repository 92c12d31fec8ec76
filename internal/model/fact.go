package model

// FactRow 企划事实行（原始交易粒度记录）
// StoreRef/SkuRef 允许指向不存在的档案，透视时按占位规则解析
type FactRow struct {
	StoreRef   string  `json:"storeRef"`
	SkuRef     string  `json:"skuRef"`
	Week       string  `json:"week"`
	SalesUnits float64 `json:"salesUnits"`

	// 导入文件中可能带有预计算列，仅透传保存，透视时一律重新推导
	SalesDollars float64 `json:"salesDollars,omitempty"`
	CostDollars  float64 `json:"costDollars,omitempty"`
	GMDollars    float64 `json:"gmDollars,omitempty"`
	GMPercent    float64 `json:"gmPercent,omitempty"`
}
