package pivot

import "merchplan/internal/model"

// MonthGroup 单个月份的周列分组
type MonthGroup struct {
	Month string   `json:"month"`
	Weeks []string `json:"weeks"`
}

// defaultMonthGroups 静态周月分组，周历未导入时的兜底配置
// 财年从二月起，周序号连续编排
var defaultMonthGroups = []MonthGroup{
	{Month: "Feb", Weeks: []string{"w01", "w02", "w03", "w04"}},
	{Month: "Mar", Weeks: []string{"w05", "w06", "w07", "w08", "w09"}},
	{Month: "Apr", Weeks: []string{"w10", "w11", "w12", "w13"}},
	{Month: "May", Weeks: []string{"w14", "w15", "w16", "w17"}},
	{Month: "Jun", Weeks: []string{"w18", "w19", "w20", "w21", "w22"}},
	{Month: "Jul", Weeks: []string{"w23", "w24", "w25", "w26"}},
	{Month: "Aug", Weeks: []string{"w27", "w28", "w29", "w30"}},
	{Month: "Sept", Weeks: []string{"w31", "w32", "w33", "w34", "w35"}},
	{Month: "Oct", Weeks: []string{"w36", "w37", "w38", "w39"}},
	{Month: "Nov", Weeks: []string{"w40", "w41", "w42", "w43"}},
	{Month: "Dec", Weeks: []string{"w44", "w45", "w46", "w47", "w48"}},
	{Month: "Jan", Weeks: []string{"w49", "w50", "w51", "w52"}},
}

// DefaultMonthGroups 返回静态分组的副本
func DefaultMonthGroups() []MonthGroup {
	out := make([]MonthGroup, len(defaultMonthGroups))
	for i, g := range defaultMonthGroups {
		weeks := make([]string, len(g.Weeks))
		copy(weeks, g.Weeks)
		out[i] = MonthGroup{Month: g.Month, Weeks: weeks}
	}
	return out
}

// MonthGroupsFromCalendar 由导入的周历推导周月分组
// 月份按首次出现顺序排列，周键规范化并在月内去重
// 周历为空时退回静态分组
func MonthGroupsFromCalendar(entries []model.CalendarEntry) []MonthGroup {
	if len(entries) == 0 {
		return DefaultMonthGroups()
	}

	byMonth := make(map[string]int)
	var out []MonthGroup
	seen := make(map[string]bool)

	for _, e := range entries {
		if e.MonthLabel == "" || e.WeekLabel == "" {
			continue
		}
		weekKey := model.NormalizeWeek(e.WeekLabel)
		dedupe := e.MonthLabel + "|" + weekKey
		if seen[dedupe] {
			continue
		}
		seen[dedupe] = true

		idx, ok := byMonth[e.MonthLabel]
		if !ok {
			idx = len(out)
			byMonth[e.MonthLabel] = idx
			out = append(out, MonthGroup{Month: e.MonthLabel})
		}
		out[idx].Weeks = append(out[idx].Weeks, weekKey)
	}

	if len(out) == 0 {
		return DefaultMonthGroups()
	}
	return out
}
