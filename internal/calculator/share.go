package calculator

import "github.com/shopspring/decimal"

// Share 分项在序列中的占比（百分比，保留 1 位小数）
func Share(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	d := decimal.NewFromFloat(value).
		Div(decimal.NewFromFloat(total)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	return d.InexactFloat64()
}

// RoundPercent 百分比展示值（保留 1 位小数）
func RoundPercent(p float64) float64 {
	return decimal.NewFromFloat(p).Round(1).InexactFloat64()
}
