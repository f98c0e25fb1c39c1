package calculator

import (
	"revenueplatform/internal/model"
)

// Selector 分项选择器
type Selector string

const (
	SelectorTaxCategories   Selector = "tax"        // 六大税收类别
	SelectorCommercialTaxes Selector = "commercial" // 商业税五项
	SelectorNonTaxSources   Selector = "nonTax"     // 非税三项
)

// Selectors 全部选择器
func Selectors() []Selector {
	return []Selector{SelectorTaxCategories, SelectorCommercialTaxes, SelectorNonTaxSources}
}

// BreakdownSeries 将记录的固定字段子集投影为分项序列
func BreakdownSeries(r model.RevenueRecord, sel Selector) ([]Slice, error) {
	tr := r.TaxRevenue
	switch sel {
	case SelectorTaxCategories:
		return []Slice{
			{Name: "Commercial Taxes", Value: CommercialTotal(r)},
			{Name: "Excise", Value: tr.Excise},
			{Name: "Electricity", Value: tr.Electricity},
			{Name: "Transport", Value: tr.Transport},
			{Name: "Stamps & Registration", Value: tr.StampsRegistration},
			{Name: "Land Revenue", Value: tr.LandRevenue},
		}, nil
	case SelectorCommercialTaxes:
		ct := tr.CommercialTaxes
		return []Slice{
			{Name: "SGST", Value: ct.SGST},
			{Name: "IGST", Value: ct.IGST},
			{Name: "Sales/Trade Tax", Value: ct.SalesTradeTax},
			{Name: "Hotel Tax", Value: ct.HotelTax},
			{Name: "Professional Tax", Value: ct.ProfessionalTax},
		}, nil
	case SelectorNonTaxSources:
		nt := r.NonTaxRevenue
		return []Slice{
			{Name: "Mining", Value: nt.Mining},
			{Name: "Water Resource", Value: nt.WaterResource},
			{Name: "Forest Resource", Value: nt.ForestResource},
		}, nil
	default:
		return nil, ErrUnknownSelector
	}
}

// LatestBreakdown 对最新一期做分项投影；列表为空返回 ErrNoRecords
func LatestBreakdown(records []model.RevenueRecord, sel Selector) ([]Slice, error) {
	current, _, err := Latest(records)
	if err != nil {
		return nil, err
	}
	return BreakdownSeries(current, sel)
}

// SumSlices 分项合计
func SumSlices(slices []Slice) float64 {
	sum := 0.0
	for _, s := range slices {
		sum += s.Value
	}
	return sum
}
