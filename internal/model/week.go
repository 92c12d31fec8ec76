package model

import (
	"regexp"
	"strconv"
	"strings"
)

var weekSpaceRe = regexp.MustCompile(`\s+`)

// NormalizeWeek 规范化周标签："W01" / "w 01" / " w01 " 均归一为 "w01"
// 分组与列键一律使用规范化结果
func NormalizeWeek(label string) string {
	return strings.ToLower(weekSpaceRe.ReplaceAllString(label, ""))
}

// WeekNumber 提取周标签中的序号，用于图表等场景的数值排序
// 无法提取时返回 0
func WeekNumber(label string) int {
	digits := strings.Builder{}
	for _, r := range label {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, _ := strconv.Atoi(digits.String())
	return n
}
