// Package importer 协调工作簿导入：逐 Sheet 解析并写入应用状态
package importer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"merchplan/internal/model"
	"merchplan/internal/parser"
	"merchplan/internal/store"
)

// Coordinator 导入协调器
type Coordinator struct {
	store *store.AppStore
}

// NewCoordinator 创建导入协调器
func NewCoordinator(st *store.AppStore) *Coordinator {
	return &Coordinator{store: st}
}

// ProgressEvent 导入进度事件
type ProgressEvent struct {
	Type      string      `json:"type"` // start/info/sheet_done/warning/done/error
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SheetResult 单个 Sheet 的处理结果
type SheetResult struct {
	SheetName string           `json:"sheetName"`
	SheetType parser.SheetType `json:"sheetType"`
	Status    string           `json:"status"` // imported/skipped/error
	Rows      int              `json:"rows"`
	Error     string           `json:"error,omitempty"`
}

// Report 导入报告
type Report struct {
	Filename       string        `json:"filename"`
	TotalSheets    int           `json:"totalSheets"`
	ImportedSheets int           `json:"importedSheets"`
	SkippedSheets  int           `json:"skippedSheets"`
	ImportedRows   int           `json:"importedRows"`
	Sheets         []SheetResult `json:"sheets"`
	Duration       time.Duration `json:"duration"`
}

// Import 执行导入，返回进度通道
// 每个 Sheet 独立解析：某个 Sheet 损坏或缺失只跳过该部分，不中断其余
func (c *Coordinator) Import(filePath string) <-chan ProgressEvent {
	ch := make(chan ProgressEvent, 100)
	go func() {
		defer close(ch)
		c.doImport(filePath, ch)
	}()
	return ch
}

func (c *Coordinator) doImport(filePath string, ch chan ProgressEvent) {
	startTime := time.Now()
	c.send(ch, ProgressEvent{
		Type:      "start",
		Message:   "开始导入工作簿",
		Data:      map[string]string{"filename": filepath.Base(filePath)},
		Timestamp: time.Now(),
	})

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		c.send(ch, ProgressEvent{
			Type:      "error",
			Message:   fmt.Sprintf("打开文件失败: %v", err),
			Timestamp: time.Now(),
		})
		return
	}
	defer f.Close()

	report := &Report{Filename: filepath.Base(filePath)}
	sheetList := f.GetSheetList()
	report.TotalSheets = len(sheetList)

	// 企划事实表延迟到最后应用："Planning" 优先于 "Calculations"
	var calcFacts, planningFacts []model.FactRow
	haveCalc, havePlanning := false, false

	for _, sheetName := range sheetList {
		sheetType := parser.RecognizeSheet(sheetName)
		if sheetType == parser.SheetTypeUnknown {
			report.record(SheetResult{SheetName: sheetName, SheetType: sheetType, Status: "skipped"})
			c.send(ch, ProgressEvent{
				Type:      "info",
				Message:   fmt.Sprintf("跳过未识别的 Sheet: %s", sheetName),
				Timestamp: time.Now(),
			})
			continue
		}

		records, err := parser.SheetRecords(f, sheetName)
		if err != nil {
			report.record(SheetResult{
				SheetName: sheetName,
				SheetType: sheetType,
				Status:    "error",
				Error:     err.Error(),
			})
			c.send(ch, ProgressEvent{
				Type:      "warning",
				Message:   fmt.Sprintf("Sheet \"%s\" 读取失败，已跳过: %v", sheetName, err),
				Timestamp: time.Now(),
			})
			continue
		}

		rows := 0
		switch sheetType {
		case parser.SheetTypeStores:
			stores := parser.ParseStores(records)
			c.store.ReplaceStores(stores)
			rows = len(stores)
		case parser.SheetTypeSkus:
			skus := parser.ParseSkus(records)
			c.store.ReplaceSkus(skus)
			rows = len(skus)
		case parser.SheetTypeCalendar:
			entries := parser.ParseCalendar(records)
			c.store.ReplaceCalendar(entries)
			rows = len(entries)
		case parser.SheetTypePlanning:
			facts := parser.ParseFacts(records)
			if strings.EqualFold(strings.TrimSpace(sheetName), "planning") {
				planningFacts = facts
				havePlanning = true
			} else {
				calcFacts = facts
				haveCalc = true
			}
			rows = len(facts)
		}

		report.record(SheetResult{SheetName: sheetName, SheetType: sheetType, Status: "imported", Rows: rows})
		c.send(ch, ProgressEvent{
			Type:    "sheet_done",
			Message: fmt.Sprintf("Sheet \"%s\" 导入成功: %d 行", sheetName, rows),
			Data: map[string]interface{}{
				"sheet_name": sheetName,
				"rows":       rows,
			},
			Timestamp: time.Now(),
		})
	}

	if havePlanning {
		c.store.SetFacts(planningFacts)
	} else if haveCalc {
		c.store.SetFacts(calcFacts)
	}

	report.Duration = time.Since(startTime)
	c.send(ch, ProgressEvent{
		Type:      "done",
		Message:   "导入完成",
		Data:      report,
		Timestamp: time.Now(),
	})
}

func (r *Report) record(res SheetResult) {
	r.Sheets = append(r.Sheets, res)
	switch res.Status {
	case "imported":
		r.ImportedSheets++
		r.ImportedRows += res.Rows
	case "skipped":
		r.SkippedSheets++
	}
}

// send 非阻塞发送进度事件，通道满时丢弃
func (c *Coordinator) send(ch chan ProgressEvent, event ProgressEvent) {
	select {
	case ch <- event:
	default:
	}
}
