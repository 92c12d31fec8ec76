package pivot

import "merchplan/internal/model"

// skuInfo SKU 查找表条目
type skuInfo struct {
	Name  string
	Price float64
	Cost  float64
}

// Engine 透视引擎
// 每次状态变化后全量重算，数据量在千行级别，无需增量更新
type Engine struct{}

// NewEngine 创建透视引擎
func NewEngine() *Engine {
	return &Engine{}
}

// Pivot 将事实表与当前档案透视为透视行序列
//
// 分组键使用门店标签而非编号：两个编号解析到同一标签时合并为一行，
// 这是沿用的设计决定（标签在实践中唯一）
// 输出顺序为分组键在事实表扫描中的首次出现顺序
func (e *Engine) Pivot(facts []model.FactRow, stores []model.Store, skus []model.Sku) []*model.PivotRow {
	storeLabels := make(map[string]string, len(stores))
	for _, s := range stores {
		storeLabels[s.ID] = s.Name
	}
	skuLookup := make(map[string]skuInfo, len(skus))
	for _, s := range skus {
		skuLookup[s.ID] = skuInfo{Name: s.Name, Price: s.Price, Cost: s.Cost}
	}

	byKey := make(map[string]*model.PivotRow)
	var order []*model.PivotRow

	for _, f := range facts {
		storeLabel, ok := storeLabels[f.StoreRef]
		if !ok {
			// 档案缺失：原始编号作为显示标签
			storeLabel = f.StoreRef
		}
		key := storeLabel + "||" + f.SkuRef

		row, ok := byKey[key]
		if !ok {
			// 档案缺失的 SKU 按零价零成本占位，名称退化为编号
			sku, found := skuLookup[f.SkuRef]
			if !found {
				sku = skuInfo{Name: f.SkuRef}
			}
			row = &model.PivotRow{
				ID:        key,
				StoreName: storeLabel,
				SkuName:   sku.Name,
				Price:     sku.Price,
				Cost:      sku.Cost,
			}
			byKey[key] = row
			order = append(order, row)
		}

		// 同键同周后写覆盖，价格成本沿用行上冻结值
		weekKey := model.NormalizeWeek(f.Week)
		row.SetCell(weekKey, Derive(f.SalesUnits, row.Price, row.Cost))
	}

	return order
}

// RecomputeCell 编辑重算：用透视行冻结的价格成本与新销量重算指定周
// 只改写该行该周，返回更新后的指标
func (e *Engine) RecomputeCell(row *model.PivotRow, weekKey string, units float64) model.WeekCell {
	cell := Derive(units, row.Price, row.Cost)
	row.SetCell(model.NormalizeWeek(weekKey), cell)
	return cell
}
