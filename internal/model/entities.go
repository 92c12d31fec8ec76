package model

// Store 门店档案
type Store struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

// Sku 商品档案，Price/Cost 为单件售价与成本，是所有毛利计算的权威口径
type Sku struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Cost  float64 `json:"cost"`
}

// CalendarEntry 周历条目，定义周到月的归属关系
// 导入后不可编辑，重新导入时整体替换
type CalendarEntry struct {
	WeekLabel  string `json:"weekLabel"`
	MonthLabel string `json:"monthLabel"`
}
