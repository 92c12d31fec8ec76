package parser

import (
	"strings"

	"merchplan/internal/model"
)

// ParseStores 解析门店档案 Sheet
// 表头约定：ID / Label / City / State；ID 缺失时留空，由存储层生成
func ParseStores(records []map[string]string) []model.Store {
	out := make([]model.Store, 0, len(records))
	for _, rec := range records {
		out = append(out, model.Store{
			ID:    strings.TrimSpace(rec["ID"]),
			Name:  rec["Label"],
			City:  rec["City"],
			State: rec["State"],
		})
	}
	return out
}

// ParseSkus 解析商品档案 Sheet
// 表头约定：ID / Label / Price / Cost
func ParseSkus(records []map[string]string) []model.Sku {
	out := make([]model.Sku, 0, len(records))
	for _, rec := range records {
		out = append(out, model.Sku{
			ID:    strings.TrimSpace(rec["ID"]),
			Name:  rec["Label"],
			Price: CoerceFloat(rec["Price"]),
			Cost:  CoerceFloat(rec["Cost"]),
		})
	}
	return out
}

// ParseFacts 解析企划事实 Sheet (Planning / Calculations)
// 表头约定：Store / SKU / Week / Sales Units，预计算列可选
func ParseFacts(records []map[string]string) []model.FactRow {
	out := make([]model.FactRow, 0, len(records))
	for _, rec := range records {
		out = append(out, model.FactRow{
			StoreRef:     strings.TrimSpace(rec["Store"]),
			SkuRef:       strings.TrimSpace(rec["SKU"]),
			Week:         strings.TrimSpace(rec["Week"]),
			SalesUnits:   CoerceFloat(rec["Sales Units"]),
			SalesDollars: CoerceFloat(rec["Sales Dollars"]),
			CostDollars:  CoerceFloat(rec["Cost Dollars"]),
			GMDollars:    CoerceFloat(rec["GM Dollars"]),
			GMPercent:    CoerceFloat(rec["GM %"]),
		})
	}
	return out
}

// ParseCalendar 解析周历 Sheet
// 表头约定：Week Label / Month Label
func ParseCalendar(records []map[string]string) []model.CalendarEntry {
	out := make([]model.CalendarEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, model.CalendarEntry{
			WeekLabel:  strings.TrimSpace(rec["Week Label"]),
			MonthLabel: strings.TrimSpace(rec["Month Label"]),
		})
	}
	return out
}
