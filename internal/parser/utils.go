package parser

import (
	"strconv"
	"strings"
)

// NormalizeHeader 规范化表头：去首尾空白、压缩内部连续空白为单个空格
func NormalizeHeader(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// CoerceFloat 宽松数值转换，空值或非数值一律取 0
// 兼容千分位逗号、货币符号与百分号等常见单元格格式
func CoerceFloat(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
