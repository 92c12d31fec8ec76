package importer

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"merchplan/internal/store"
)

// writeWorkbook 在临时目录生成测试工作簿
func writeWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	first := true
	for name, rows := range sheets {
		if first {
			f.SetSheetName("Sheet1", name)
			first = false
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("NewSheet(%s): %v", name, err)
			}
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow(%s, %d): %v", name, i, err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "import.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

// drain 消费进度通道并返回按类型分组的事件计数
func drain(ch <-chan ProgressEvent) map[string]int {
	counts := map[string]int{}
	for ev := range ch {
		counts[ev.Type]++
	}
	return counts
}

// TestImportReplacesRegistries 导入后全量替换档案与事实
func TestImportReplacesRegistries(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Stores": {
			{"ID", "Label", "City", "State"},
			{"S1", "Atlanta Outfitters", "Atlanta", "GA"},
			{"S2", "Chicago Charm", "Chicago", "IL"},
		},
		"SKUs": {
			{"ID", "Label", "Price", "Cost"},
			{"P1", "Widget", 10, 4},
		},
		"Planning": {
			{"Store", "SKU", "Week", "Sales Units"},
			{"S1", "P1", "W01", 5},
			{"S2", "P1", "W02", 3},
		},
		"Calendar": {
			{"Week Label", "Month Label"},
			{"W01", "Feb"},
			{"W02", "Feb"},
		},
	})

	st := store.NewEmptyAppStore()
	counts := drain(NewCoordinator(st).Import(path))

	if counts["start"] != 1 || counts["done"] != 1 {
		t.Fatalf("event counts = %v", counts)
	}
	if counts["sheet_done"] != 4 {
		t.Errorf("sheet_done = %d, want 4", counts["sheet_done"])
	}
	if got := len(st.ListStores()); got != 2 {
		t.Errorf("stores = %d, want 2", got)
	}
	if got := len(st.ListSkus()); got != 1 {
		t.Errorf("skus = %d, want 1", got)
	}
	if got := st.FactCount(); got != 2 {
		t.Errorf("facts = %d, want 2", got)
	}
	if got := len(st.ListCalendar()); got != 2 {
		t.Errorf("calendar = %d, want 2", got)
	}
	facts := st.ListFacts()
	if facts[0].StoreRef != "S1" || facts[0].SalesUnits != 5 {
		t.Errorf("facts[0] = %+v", facts[0])
	}
}

// TestImportSkipsUnknownSheet 未识别的 Sheet 静默跳过，不中断其余
func TestImportSkipsUnknownSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Notes": {
			{"随便什么"},
			{"内容"},
		},
		"Stores": {
			{"ID", "Label", "City", "State"},
			{"S1", "Atlanta Outfitters", "Atlanta", "GA"},
		},
	})

	st := store.NewEmptyAppStore()
	counts := drain(NewCoordinator(st).Import(path))

	if counts["info"] != 1 {
		t.Errorf("info events = %d, want 1 (skip notice)", counts["info"])
	}
	if got := len(st.ListStores()); got != 1 {
		t.Errorf("stores = %d, want 1", got)
	}
}

// TestImportPlanningOverridesCalculations Planning 与 Calculations 并存时取 Planning
func TestImportPlanningOverridesCalculations(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Calculations": {
			{"Store", "SKU", "Week", "Sales Units"},
			{"S1", "P1", "W01", 99},
			{"S1", "P1", "W02", 99},
			{"S1", "P1", "W03", 99},
		},
		"Planning": {
			{"Store", "SKU", "Week", "Sales Units"},
			{"S1", "P1", "W01", 5},
		},
	})

	st := store.NewEmptyAppStore()
	drain(NewCoordinator(st).Import(path))

	facts := st.ListFacts()
	if len(facts) != 1 {
		t.Fatalf("facts = %d, want 1 (Planning only)", len(facts))
	}
	if facts[0].SalesUnits != 5 {
		t.Errorf("units = %v, want 5", facts[0].SalesUnits)
	}
}

// TestImportCalculationsFallback 仅有 Calculations 时以其为事实表
func TestImportCalculationsFallback(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Calculations": {
			{"Store", "SKU", "Week", "Sales Units"},
			{"S1", "P1", "W01", 7},
		},
	})

	st := store.NewEmptyAppStore()
	drain(NewCoordinator(st).Import(path))

	facts := st.ListFacts()
	if len(facts) != 1 || facts[0].SalesUnits != 7 {
		t.Fatalf("facts = %+v, want 1 row with units 7", facts)
	}
}

// TestImportMissingFile 打开失败时发出 error 事件
func TestImportMissingFile(t *testing.T) {
	st := store.NewEmptyAppStore()
	counts := drain(NewCoordinator(st).Import(filepath.Join(t.TempDir(), "missing.xlsx")))
	if counts["error"] != 1 {
		t.Errorf("error events = %d, want 1", counts["error"])
	}
	if counts["done"] != 0 {
		t.Errorf("done events = %d, want 0", counts["done"])
	}
}
