// Package format 金额与增速的展示格式（只做输出，不做解析）
package format

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter 按区域设置分组数字并加货币符号
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New 创建格式化器；locale 无法解析时退回 en-US
func New(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Default ₹ + en-US 分组
func Default() *Formatter {
	return New("en-US", "₹")
}

// Amount 金额：整数不带小数，非整数保留两位
func (f *Formatter) Amount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.symbol + "—"
	}
	d := decimal.NewFromFloat(v)
	if d.IsInteger() {
		return f.symbol + f.printer.Sprintf("%d", d.IntPart())
	}
	return f.symbol + f.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Growth 增速：保留 1 位小数，正数带 "+"
func (f *Formatter) Growth(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return "n/a"
	}
	d := decimal.NewFromFloat(p).Round(1)
	s := d.StringFixed(1)
	if d.IsPositive() {
		s = "+" + s
	}
	return s + "%"
}

// Percent 占比：保留 1 位小数
func (f *Formatter) Percent(p float64) string {
	return decimal.NewFromFloat(p).Round(1).StringFixed(1) + "%"
}
