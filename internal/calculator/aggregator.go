package calculator

import (
	"errors"

	"revenueplatform/internal/model"
)

var (
	// ErrNoRecords 记录列表为空，无法确定当前报告期
	ErrNoRecords = errors.New("insufficient data: no revenue records")
	// ErrZeroBaseline 上期总收入为 0，增速无意义
	ErrZeroBaseline = errors.New("insufficient data: previous period total is zero")
	// ErrUnknownSelector 未知的分项选择器
	ErrUnknownSelector = errors.New("unknown breakdown selector")
)

// Totals 单期汇总
type Totals struct {
	TaxTotal    float64 `json:"taxTotal"`
	NonTaxTotal float64 `json:"nonTaxTotal"`
	Total       float64 `json:"total"`
}

// TrendPoint 趋势图数据点
type TrendPoint struct {
	Period        string  `json:"period"`
	TaxRevenue    float64 `json:"taxRevenue"`
	NonTaxRevenue float64 `json:"nonTaxRevenue"`
	Total         float64 `json:"total"`
}

// Slice 饼图/柱状图的一个分项
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CommercialTotal 商业税五项合计
func CommercialTotal(r model.RevenueRecord) float64 {
	ct := r.TaxRevenue.CommercialTaxes
	return ct.SGST + ct.IGST + ct.HotelTax + ct.ProfessionalTax + ct.SalesTradeTax
}

// TotalsFor 计算单期税收/非税/总收入
func TotalsFor(r model.RevenueRecord) Totals {
	tax := CommercialTotal(r) +
		r.TaxRevenue.Excise +
		r.TaxRevenue.Electricity +
		r.TaxRevenue.StampsRegistration +
		r.TaxRevenue.Transport +
		r.TaxRevenue.LandRevenue

	nt := r.NonTaxRevenue
	nonTax := nt.Mining + nt.WaterResource + nt.ForestResource

	return Totals{
		TaxTotal:    tax,
		NonTaxTotal: nonTax,
		Total:       tax + nonTax,
	}
}

// GrowthRate 环比增速（百分比）
// previous 为 nil 时返回 0；上期总额为 0 时返回 ErrZeroBaseline
func GrowthRate(current model.RevenueRecord, previous *model.RevenueRecord) (float64, error) {
	if previous == nil {
		return 0, nil
	}
	prev := TotalsFor(*previous).Total
	if prev == 0 {
		return 0, ErrZeroBaseline
	}
	cur := TotalsFor(current).Total
	return (cur - prev) / prev * 100, nil
}

// TrendSeries 按输入顺序生成趋势序列
func TrendSeries(records []model.RevenueRecord) []TrendPoint {
	points := make([]TrendPoint, 0, len(records))
	for _, r := range records {
		t := TotalsFor(r)
		points = append(points, TrendPoint{
			Period:        r.Period,
			TaxRevenue:    t.TaxTotal,
			NonTaxRevenue: t.NonTaxTotal,
			Total:         t.Total,
		})
	}
	return points
}

// Latest 返回当前期与上一期（按列表末尾位置）
func Latest(records []model.RevenueRecord) (current model.RevenueRecord, previous *model.RevenueRecord, err error) {
	n := len(records)
	if n == 0 {
		return model.RevenueRecord{}, nil, ErrNoRecords
	}
	current = records[n-1]
	if n > 1 {
		p := records[n-2]
		previous = &p
	}
	return current, previous, nil
}
