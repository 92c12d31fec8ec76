package model

// WeekCell 透视行上单个周列的四项指标
type WeekCell struct {
	Units        float64 `json:"units"`
	SalesDollars float64 `json:"salesDollars"`
	GMDollars    float64 `json:"gmDollars"`
	GMPercent    float64 `json:"gmPercent"`
}

// PivotRow 透视行：每个 (门店, SKU) 组合一行
// Price/Cost 在首次遇到该组合时冻结，后续周列复用
// Weeks 按规范化周键索引，WeekOrder 记录周键首次出现顺序
type PivotRow struct {
	ID        string              `json:"id"` // 形如 "门店标签||SKU编号"
	StoreName string              `json:"storeName"`
	SkuName   string              `json:"skuName"`
	Price     float64             `json:"price"`
	Cost      float64             `json:"cost"`
	Weeks     map[string]WeekCell `json:"weeks"`
	WeekOrder []string            `json:"weekOrder"`
}

// Cell 取指定周的指标，不存在时返回零值
func (r *PivotRow) Cell(weekKey string) WeekCell {
	return r.Weeks[weekKey]
}

// SetCell 写入指定周的指标，首次写入时登记周键顺序
func (r *PivotRow) SetCell(weekKey string, cell WeekCell) {
	if r.Weeks == nil {
		r.Weeks = make(map[string]WeekCell)
	}
	if _, ok := r.Weeks[weekKey]; !ok {
		r.WeekOrder = append(r.WeekOrder, weekKey)
	}
	r.Weeks[weekKey] = cell
}
