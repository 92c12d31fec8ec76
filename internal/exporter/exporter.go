// Package exporter 将当前应用状态导出为工作簿，表头与导入约定一致
package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"merchplan/internal/model"
	"merchplan/internal/pivot"
	"merchplan/internal/store"
)

// Exporter 工作簿导出器
type Exporter struct {
	store *store.AppStore
}

// NewExporter 创建导出器
func NewExporter(st *store.AppStore) *Exporter {
	return &Exporter{store: st}
}

// Export 生成工作簿
// Planning Sheet 带推导后的金额列，便于脱离本工具直接查看
func (e *Exporter) Export() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := e.writeStores(f); err != nil {
		return nil, err
	}
	if err := e.writeSkus(f); err != nil {
		return nil, err
	}
	if err := e.writePlanning(f); err != nil {
		return nil, err
	}
	if err := e.writeCalendar(f); err != nil {
		return nil, err
	}

	// 删除 excelize 默认创建的 Sheet1
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	return f, nil
}

func (e *Exporter) writeStores(f *excelize.File) error {
	const sheet = "Stores"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	if err := writeRow(f, sheet, 1, []interface{}{"ID", "Label", "City", "State"}); err != nil {
		return err
	}
	for i, s := range e.store.ListStores() {
		if err := writeRow(f, sheet, i+2, []interface{}{s.ID, s.Name, s.City, s.State}); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeSkus(f *excelize.File) error {
	const sheet = "SKUs"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	if err := writeRow(f, sheet, 1, []interface{}{"ID", "Label", "Price", "Cost"}); err != nil {
		return err
	}
	for i, s := range e.store.ListSkus() {
		if err := writeRow(f, sheet, i+2, []interface{}{s.ID, s.Name, s.Price, s.Cost}); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writePlanning(f *excelize.File) error {
	const sheet = "Planning"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	headers := []interface{}{"Store", "SKU", "Week", "Sales Units", "Sales Dollars", "Cost Dollars", "GM Dollars", "GM %"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}

	skus := e.store.ListSkus()
	skuLookup := make(map[string]model.Sku, len(skus))
	for _, s := range skus {
		skuLookup[s.ID] = s
	}

	for i, fact := range e.store.ListFacts() {
		sku := skuLookup[fact.SkuRef] // 缺失档案即零价零成本
		cell := pivot.Derive(fact.SalesUnits, sku.Price, sku.Cost)
		row := []interface{}{
			fact.StoreRef, fact.SkuRef, fact.Week, fact.SalesUnits,
			cell.SalesDollars, fact.SalesUnits * sku.Cost, cell.GMDollars, cell.GMPercent,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeCalendar(f *excelize.File) error {
	const sheet = "Calendar"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	if err := writeRow(f, sheet, 1, []interface{}{"Week Label", "Month Label"}); err != nil {
		return err
	}
	for i, c := range e.store.ListCalendar() {
		if err := writeRow(f, sheet, i+2, []interface{}{c.WeekLabel, c.MonthLabel}); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNo int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, rowNo, err)
	}
	return nil
}
