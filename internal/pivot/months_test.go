package pivot

import (
	"testing"

	"merchplan/internal/model"
)

// TestDefaultMonthGroups 静态分组覆盖 52 周且从 Feb 开始
func TestDefaultMonthGroups(t *testing.T) {
	groups := DefaultMonthGroups()
	if len(groups) != 12 {
		t.Fatalf("months = %d, want 12", len(groups))
	}
	if groups[0].Month != "Feb" || groups[11].Month != "Jan" {
		t.Errorf("month order = %s..%s, want Feb..Jan", groups[0].Month, groups[11].Month)
	}

	total := 0
	for _, g := range groups {
		total += len(g.Weeks)
	}
	if total != 52 {
		t.Errorf("total weeks = %d, want 52", total)
	}
}

// TestMonthGroupsFromCalendar 月份按首次出现顺序，周键规范化并去重
func TestMonthGroupsFromCalendar(t *testing.T) {
	entries := []model.CalendarEntry{
		{WeekLabel: "W01", MonthLabel: "Feb"},
		{WeekLabel: "W 02", MonthLabel: "Feb"},
		{WeekLabel: "w02", MonthLabel: "Feb"}, // 重复，应去重
		{WeekLabel: "W03", MonthLabel: "Mar"},
		{WeekLabel: "W04", MonthLabel: "Feb"}, // 回到已出现的月份
	}

	groups := MonthGroupsFromCalendar(entries)
	if len(groups) != 2 {
		t.Fatalf("months = %d, want 2", len(groups))
	}
	if groups[0].Month != "Feb" || groups[1].Month != "Mar" {
		t.Errorf("month order = [%s, %s], want [Feb, Mar]", groups[0].Month, groups[1].Month)
	}

	wantFeb := []string{"w01", "w02", "w04"}
	if len(groups[0].Weeks) != len(wantFeb) {
		t.Fatalf("Feb weeks = %v, want %v", groups[0].Weeks, wantFeb)
	}
	for i, w := range wantFeb {
		if groups[0].Weeks[i] != w {
			t.Errorf("Feb weeks[%d] = %s, want %s", i, groups[0].Weeks[i], w)
		}
	}
}

// TestMonthGroupsFromCalendarEmpty 周历为空时退回静态分组
func TestMonthGroupsFromCalendarEmpty(t *testing.T) {
	groups := MonthGroupsFromCalendar(nil)
	if len(groups) != 12 || groups[0].Month != "Feb" {
		t.Errorf("empty calendar should fall back to default groups, got %d months", len(groups))
	}

	// 条目全部无效时同样兜底
	groups = MonthGroupsFromCalendar([]model.CalendarEntry{{WeekLabel: "", MonthLabel: ""}})
	if len(groups) != 12 {
		t.Errorf("invalid-only calendar should fall back, got %d months", len(groups))
	}
}
