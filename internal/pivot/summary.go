package pivot

import (
	"sort"

	"merchplan/internal/model"
)

// WeekPoint 图表用的单周汇总点
type WeekPoint struct {
	Week         string  `json:"week"`
	SalesDollars float64 `json:"salesDollars"`
	GMDollars    float64 `json:"gmDollars"`
	GMPercent    float64 `json:"gmPercent"`
}

// StoreWeeklySummary 汇总指定门店的周度销售额与毛利
// 每周对该门店所有 SKU 的事实行求和，毛利率为汇总后的比值
// 周按序号升序排列，便于折线图直接消费
func StoreWeeklySummary(storeID string, facts []model.FactRow, skus []model.Sku) []WeekPoint {
	skuLookup := make(map[string]skuInfo, len(skus))
	for _, s := range skus {
		skuLookup[s.ID] = skuInfo{Name: s.Name, Price: s.Price, Cost: s.Cost}
	}

	type bucket struct {
		sales float64
		gm    float64
	}
	byWeek := make(map[string]*bucket)
	var weeks []string

	for _, f := range facts {
		if f.StoreRef != storeID {
			continue
		}
		weekKey := model.NormalizeWeek(f.Week)
		b, ok := byWeek[weekKey]
		if !ok {
			b = &bucket{}
			byWeek[weekKey] = b
			weeks = append(weeks, weekKey)
		}
		sku := skuLookup[f.SkuRef] // 缺失档案即零价零成本占位
		cell := Derive(f.SalesUnits, sku.Price, sku.Cost)
		b.sales += cell.SalesDollars
		b.gm += cell.GMDollars
	}

	sort.Slice(weeks, func(i, j int) bool {
		return model.WeekNumber(weeks[i]) < model.WeekNumber(weeks[j])
	})

	out := make([]WeekPoint, 0, len(weeks))
	for _, w := range weeks {
		b := byWeek[w]
		pct := 0.0
		if b.sales != 0 {
			pct = b.gm / b.sales
		}
		out = append(out, WeekPoint{Week: w, SalesDollars: b.sales, GMDollars: b.gm, GMPercent: pct})
	}
	return out
}
