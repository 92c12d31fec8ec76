// Package parser 按表头字段名读取工作簿 Sheet 并映射为领域记录
//
// 容错策略：缺列缺格取零值，非数值强转为 0，任何一行都不会使整个 Sheet 失败
package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetType 识别出的 Sheet 类型
type SheetType string

const (
	SheetTypeStores   SheetType = "stores"
	SheetTypeSkus     SheetType = "skus"
	SheetTypePlanning SheetType = "planning"
	SheetTypeCalendar SheetType = "calendar"
	SheetTypeUnknown  SheetType = "unknown"
)

// RecognizeSheet 按 Sheet 名识别类型（忽略大小写与首尾空白）
// "Planning" 与 "Calculations" 都是企划事实表
func RecognizeSheet(sheetName string) SheetType {
	switch strings.ToLower(NormalizeHeader(sheetName)) {
	case "stores":
		return SheetTypeStores
	case "skus":
		return SheetTypeSkus
	case "planning", "calculations":
		return SheetTypePlanning
	case "calendar":
		return SheetTypeCalendar
	default:
		return SheetTypeUnknown
	}
}

// SheetRecords 读取 Sheet 为按表头字段名索引的记录序列
// 第一行作为表头，空表头列忽略，数据行短于表头时缺列取空串
func SheetRecords(f *excelize.File, sheetName string) ([]map[string]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) < 1 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = NormalizeHeader(h)
	}

	var records []map[string]string
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(headers))
		empty := true
		for i, h := range headers {
			if h == "" {
				continue
			}
			val := ""
			if i < len(row) {
				val = row[i]
			}
			if val != "" {
				empty = false
			}
			rec[h] = val
		}
		if empty {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
