// Package pivot 实现企划数据的透视聚合与毛利指标推导
//
// 事实行按 (门店标签, SKU编号) 分组，每组一行透视行，每周一组四项指标
// 指标推导集中在 Derive 一处，导入透视与编辑重算共用同一公式
package pivot

import "merchplan/internal/model"

// Derive 纯函数：由销量与单件售价/成本推导周指标
//
//	salesDollars = units × price
//	gmDollars    = salesDollars − units × cost
//	gmPercent    = gmDollars / salesDollars，销售额为 0 时取 0（避免除零）
func Derive(units, price, cost float64) model.WeekCell {
	salesDollars := units * price
	gmDollars := salesDollars - units*cost
	gmPercent := 0.0
	if salesDollars != 0 {
		gmPercent = gmDollars / salesDollars
	}
	return model.WeekCell{
		Units:        units,
		SalesDollars: salesDollars,
		GMDollars:    gmDollars,
		GMPercent:    gmPercent,
	}
}
