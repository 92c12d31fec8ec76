package pivot

import (
	"testing"

	"merchplan/internal/model"
)

func testStores() []model.Store {
	return []model.Store{
		{ID: "S1", Name: "Atlanta", City: "Atlanta", State: "GA"},
		{ID: "S2", Name: "Chicago", City: "Chicago", State: "IL"},
	}
}

func testSkus() []model.Sku {
	return []model.Sku{
		{ID: "P1", Name: "Widget", Price: 10, Cost: 4},
		{ID: "P2", Name: "Gadget", Price: 20, Cost: 15},
	}
}

// TestPivotRoundTrip 验证已知输入的完整透视结果
func TestPivotRoundTrip(t *testing.T) {
	facts := []model.FactRow{
		{StoreRef: "S1", SkuRef: "P1", Week: "W01", SalesUnits: 5},
	}

	rows := NewEngine().Pivot(facts, testStores(), testSkus())
	if len(rows) != 1 {
		t.Fatalf("pivot rows = %d, want 1", len(rows))
	}

	row := rows[0]
	if row.StoreName != "Atlanta" {
		t.Errorf("StoreName = %q, want Atlanta", row.StoreName)
	}
	if row.SkuName != "Widget" {
		t.Errorf("SkuName = %q, want Widget", row.SkuName)
	}
	cell := row.Cell("w01")
	if cell.Units != 5 || cell.SalesDollars != 50 || cell.GMDollars != 30 || cell.GMPercent != 0.6 {
		t.Errorf("w01 cell = %+v, want {5 50 30 0.6}", cell)
	}
}

// TestPivotInsertionOrder 透视行顺序为分组键首次出现顺序
// 同键同周后写覆盖先写
func TestPivotInsertionOrder(t *testing.T) {
	facts := []model.FactRow{
		{StoreRef: "S1", SkuRef: "P1", Week: "W01", SalesUnits: 5}, // A
		{StoreRef: "S2", SkuRef: "P2", Week: "W01", SalesUnits: 1}, // B
		{StoreRef: "S1", SkuRef: "P1", Week: "W01", SalesUnits: 9}, // C 与 A 同键同周
	}

	rows := NewEngine().Pivot(facts, testStores(), testSkus())
	if len(rows) != 2 {
		t.Fatalf("pivot rows = %d, want 2", len(rows))
	}
	if rows[0].StoreName != "Atlanta" || rows[1].StoreName != "Chicago" {
		t.Errorf("row order = [%s, %s], want [Atlanta, Chicago]", rows[0].StoreName, rows[1].StoreName)
	}
	if got := rows[0].Cell("w01").Units; got != 9 {
		t.Errorf("w01 units = %v, want 9 (last write wins)", got)
	}
}

// TestPivotUnknownSku 引用未知 SKU 时按零价零成本占位，不报错
func TestPivotUnknownSku(t *testing.T) {
	facts := []model.FactRow{
		{StoreRef: "S1", SkuRef: "GHOST", Week: "W01", SalesUnits: 5},
		{StoreRef: "S1", SkuRef: "GHOST", Week: "W02", SalesUnits: 3},
	}

	rows := NewEngine().Pivot(facts, testStores(), testSkus())
	if len(rows) != 1 {
		t.Fatalf("pivot rows = %d, want 1", len(rows))
	}

	row := rows[0]
	if row.SkuName != "GHOST" {
		t.Errorf("SkuName = %q, want GHOST (编号退化为名称)", row.SkuName)
	}
	if row.Price != 0 || row.Cost != 0 {
		t.Errorf("placeholder price/cost = %v/%v, want 0/0", row.Price, row.Cost)
	}
	for _, wk := range row.WeekOrder {
		if pct := row.Cell(wk).GMPercent; pct != 0 {
			t.Errorf("week %s GMPercent = %v, want 0", wk, pct)
		}
	}
}

// TestPivotUnknownStore 引用未知门店时用原始编号作为显示标签
func TestPivotUnknownStore(t *testing.T) {
	facts := []model.FactRow{
		{StoreRef: "NOPE", SkuRef: "P1", Week: "W01", SalesUnits: 1},
	}
	rows := NewEngine().Pivot(facts, testStores(), testSkus())
	if len(rows) != 1 || rows[0].StoreName != "NOPE" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

// TestPivotWeekNormalization 周标签大小写与空白不敏感，归并到同一列
func TestPivotWeekNormalization(t *testing.T) {
	facts := []model.FactRow{
		{StoreRef: "S1", SkuRef: "P1", Week: "W01", SalesUnits: 5},
		{StoreRef: "S1", SkuRef: "P1", Week: "w 01", SalesUnits: 7},
	}

	rows := NewEngine().Pivot(facts, testStores(), testSkus())
	row := rows[0]
	if len(row.WeekOrder) != 1 {
		t.Fatalf("week columns = %v, want single w01", row.WeekOrder)
	}
	if got := row.Cell("w01").Units; got != 7 {
		t.Errorf("w01 units = %v, want 7", got)
	}
}

// TestPivotLabelMerge 两个编号解析到同一标签时合并为一行（沿用的设计决定）
func TestPivotLabelMerge(t *testing.T) {
	stores := []model.Store{
		{ID: "S1", Name: "Same"},
		{ID: "S2", Name: "Same"},
	}
	facts := []model.FactRow{
		{StoreRef: "S1", SkuRef: "P1", Week: "W01", SalesUnits: 5},
		{StoreRef: "S2", SkuRef: "P1", Week: "W02", SalesUnits: 3},
	}

	rows := NewEngine().Pivot(facts, stores, testSkus())
	if len(rows) != 1 {
		t.Fatalf("pivot rows = %d, want 1 (merged by label)", len(rows))
	}
	if len(rows[0].WeekOrder) != 2 {
		t.Errorf("week columns = %v, want 2", rows[0].WeekOrder)
	}
}

// TestPivotFrozenPriceCost 行上的价格成本在首次遇到时冻结
func TestPivotFrozenPriceCost(t *testing.T) {
	facts := []model.FactRow{
		{StoreRef: "S1", SkuRef: "P1", Week: "W01", SalesUnits: 5},
		{StoreRef: "S1", SkuRef: "P1", Week: "W02", SalesUnits: 5},
	}
	rows := NewEngine().Pivot(facts, testStores(), testSkus())
	row := rows[0]
	if row.Cell("w01") != row.Cell("w02") {
		t.Errorf("w01/w02 cells differ with same units: %+v vs %+v", row.Cell("w01"), row.Cell("w02"))
	}
}

// TestRecomputeCell 编辑重算只改写目标周，其余周与其他行不受影响
func TestRecomputeCell(t *testing.T) {
	facts := []model.FactRow{
		{StoreRef: "S1", SkuRef: "P1", Week: "W01", SalesUnits: 5},
		{StoreRef: "S1", SkuRef: "P1", Week: "W02", SalesUnits: 3},
		{StoreRef: "S2", SkuRef: "P2", Week: "W01", SalesUnits: 2},
	}
	engine := NewEngine()
	rows := engine.Pivot(facts, testStores(), testSkus())

	otherBefore := rows[1].Cell("w01")
	w02Before := rows[0].Cell("w02")

	cell := engine.RecomputeCell(rows[0], "w01", 10)
	if cell.SalesDollars != 100 || cell.GMDollars != 60 || cell.GMPercent != 0.6 {
		t.Errorf("recomputed cell = %+v, want {10 100 60 0.6}", cell)
	}
	if rows[0].Cell("w01") != cell {
		t.Errorf("row cell not updated in place")
	}
	if rows[0].Cell("w02") != w02Before {
		t.Errorf("w02 changed by w01 edit: %+v", rows[0].Cell("w02"))
	}
	if rows[1].Cell("w01") != otherBefore {
		t.Errorf("other row changed by edit: %+v", rows[1].Cell("w01"))
	}
}
