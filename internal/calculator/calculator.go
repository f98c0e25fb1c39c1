package calculator

import (
	"errors"

	"revenueplatform/internal/model"
)

// Indicator 指标卡片
type Indicator struct {
	ID    string  `json:"id"`             // 指标ID
	Name  string  `json:"name"`           // 指标名称
	Value float64 `json:"value"`          // 指标值
	Unit  string  `json:"unit"`           // 单位 (₹、%)
	Note  string  `json:"note,omitempty"` // 卡片副标题
}

// IndicatorGroup 指标分组
type IndicatorGroup struct {
	Name       string      `json:"name"`       // 分组名称
	Indicators []Indicator `json:"indicators"` // 指标列表
}

// Overview 概览面板数据
type Overview struct {
	Period          string   `json:"period"`
	Current         Totals   `json:"current"`
	PreviousPeriod  string   `json:"previousPeriod,omitempty"`
	Previous        *Totals  `json:"previous,omitempty"`
	Growth          *float64 `json:"growth"` // 上期总额为 0 时为 null
	CommercialTotal float64  `json:"commercialTotal"`

	TaxBreakdown        []Slice `json:"taxBreakdown"`
	CommercialBreakdown []Slice `json:"commercialBreakdown"`
	NonTaxBreakdown     []Slice `json:"nonTaxBreakdown"`
}

// ShareSlice 带占比的分项
type ShareSlice struct {
	Slice
	Percent float64 `json:"percent"`
}

// Charts 图表面板数据
type Charts struct {
	Period     string       `json:"period"`
	Trend      []TrendPoint `json:"trend"`
	Comparison []TrendPoint `json:"comparison"`

	TaxBreakdown        []ShareSlice `json:"taxBreakdown"`
	CommercialBreakdown []ShareSlice `json:"commercialBreakdown"`
	NonTaxBreakdown     []ShareSlice `json:"nonTaxBreakdown"`
}

// BuildOverview 计算概览面板
func BuildOverview(records []model.RevenueRecord) (*Overview, error) {
	current, previous, err := Latest(records)
	if err != nil {
		return nil, err
	}

	ov := &Overview{
		Period:          current.Period,
		Current:         TotalsFor(current),
		CommercialTotal: CommercialTotal(current),
	}

	if previous != nil {
		pt := TotalsFor(*previous)
		ov.Previous = &pt
		ov.PreviousPeriod = previous.Period
	}

	growth, err := GrowthRate(current, previous)
	switch {
	case err == nil:
		ov.Growth = &growth
	case errors.Is(err, ErrZeroBaseline):
		// 保持 null，由前端显示“数据不足”
	default:
		return nil, err
	}

	if ov.TaxBreakdown, err = BreakdownSeries(current, SelectorTaxCategories); err != nil {
		return nil, err
	}
	if ov.CommercialBreakdown, err = BreakdownSeries(current, SelectorCommercialTaxes); err != nil {
		return nil, err
	}
	if ov.NonTaxBreakdown, err = BreakdownSeries(current, SelectorNonTaxSources); err != nil {
		return nil, err
	}

	return ov, nil
}

// BuildCharts 计算图表面板
func BuildCharts(records []model.RevenueRecord) (*Charts, error) {
	current, _, err := Latest(records)
	if err != nil {
		return nil, err
	}

	trend := TrendSeries(records)
	ch := &Charts{
		Period:     current.Period,
		Trend:      trend,
		Comparison: append([]TrendPoint(nil), trend...),
	}

	build := func(sel Selector) ([]ShareSlice, error) {
		slices, err := BreakdownSeries(current, sel)
		if err != nil {
			return nil, err
		}
		return withShares(slices), nil
	}

	if ch.TaxBreakdown, err = build(SelectorTaxCategories); err != nil {
		return nil, err
	}
	if ch.CommercialBreakdown, err = build(SelectorCommercialTaxes); err != nil {
		return nil, err
	}
	if ch.NonTaxBreakdown, err = build(SelectorNonTaxSources); err != nil {
		return nil, err
	}

	return ch, nil
}

func withShares(slices []Slice) []ShareSlice {
	total := SumSlices(slices)
	out := make([]ShareSlice, 0, len(slices))
	for _, s := range slices {
		out = append(out, ShareSlice{Slice: s, Percent: Share(s.Value, total)})
	}
	return out
}

// Cards 概览顶部的四张汇总卡片
func Cards(ov *Overview) []IndicatorGroup {
	if ov == nil {
		return []IndicatorGroup{}
	}

	totalNote := "Insufficient data for growth"
	if ov.Growth != nil {
		totalNote = "Growth from last period"
	}

	return []IndicatorGroup{
		{
			Name: "Summary",
			Indicators: []Indicator{
				{ID: "total", Name: "Total Revenue", Value: ov.Current.Total, Unit: "₹", Note: totalNote},
				{ID: "tax", Name: "Tax Revenue", Value: ov.Current.TaxTotal, Unit: "₹", Note: "Share of total"},
				{ID: "nonTax", Name: "Non-Tax Revenue", Value: ov.Current.NonTaxTotal, Unit: "₹", Note: "Share of total"},
				{ID: "commercial", Name: "Commercial Taxes", Value: ov.CommercialTotal, Unit: "₹", Note: "Largest tax revenue component"},
			},
		},
		{
			Name: "Ratios",
			Indicators: []Indicator{
				{ID: "growth", Name: "Growth", Value: growthValue(ov), Unit: "%"},
				{ID: "taxShare", Name: "Tax Share", Value: Share(ov.Current.TaxTotal, ov.Current.Total), Unit: "%"},
				{ID: "nonTaxShare", Name: "Non-Tax Share", Value: Share(ov.Current.NonTaxTotal, ov.Current.Total), Unit: "%"},
			},
		},
	}
}

func growthValue(ov *Overview) float64 {
	if ov.Growth == nil {
		return 0
	}
	return RoundPercent(*ov.Growth)
}
