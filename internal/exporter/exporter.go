package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"revenueplatform/internal/calculator"
	"revenueplatform/internal/model"
)

// 工作表名称
const (
	SheetOverview   = "Overview"
	SheetTrend      = "Trend"
	SheetTax        = "Tax Breakdown"
	SheetCommercial = "Commercial Taxes"
	SheetNonTax     = "Non-Tax Revenue"
)

// Exporter 收入报表导出器
type Exporter struct {
	progress func(ProgressEvent)
}

// NewExporter 创建导出器；progress 可为 nil
func NewExporter(progress func(ProgressEvent)) *Exporter {
	return &Exporter{progress: progress}
}

type styles struct {
	title  int
	header int
	amount int
	pct    int
}

// Export 将当前记录导出为工作簿；记录为空返回 calculator.ErrNoRecords
func (e *Exporter) Export(records []model.RevenueRecord) (*excelize.File, error) {
	ov, err := calculator.BuildOverview(records)
	if err != nil {
		return nil, err
	}
	charts, err := calculator.BuildCharts(records)
	if err != nil {
		return nil, err
	}
	reportProgress(e.progress, 10, "Computing totals")

	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeOverview(f, st, ov); err != nil {
		_ = f.Close()
		return nil, err
	}
	reportProgress(e.progress, 30, "Writing overview")

	if err := writeTrend(f, st, charts.Trend); err != nil {
		_ = f.Close()
		return nil, err
	}
	reportProgress(e.progress, 50, "Writing trend")

	breakdowns := []struct {
		sheet  string
		slices []calculator.ShareSlice
	}{
		{SheetTax, charts.TaxBreakdown},
		{SheetCommercial, charts.CommercialBreakdown},
		{SheetNonTax, charts.NonTaxBreakdown},
	}
	for i, b := range breakdowns {
		if err := writeBreakdown(f, st, b.sheet, charts.Period, b.slices); err != nil {
			_ = f.Close()
			return nil, err
		}
		reportProgress(e.progress, 60+i*10, "Writing "+b.sheet)
	}

	f.SetActiveSheet(0)
	reportProgress(e.progress, 100, "Done")
	return f, nil
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E7EEF7"}},
	}); err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}
	if s.amount, err = f.NewStyle(&excelize.Style{NumFmt: 3}); err != nil { // #,##0
		return s, fmt.Errorf("create amount style: %w", err)
	}
	if s.pct, err = f.NewStyle(&excelize.Style{NumFmt: 2}); err != nil { // 0.00
		return s, fmt.Errorf("create percent style: %w", err)
	}
	return s, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func writeOverview(f *excelize.File, st styles, ov *calculator.Overview) error {
	sheet := SheetOverview

	if err := f.SetCellValue(sheet, "A1", "Revenue Overview"); err != nil {
		return err
	}
	_ = f.SetCellStyle(sheet, "A1", "A1", st.title)
	if err := f.SetSheetRow(sheet, "A2", &[]interface{}{"Current period", ov.Period}); err != nil {
		return err
	}
	if ov.PreviousPeriod != "" {
		if err := f.SetSheetRow(sheet, "A3", &[]interface{}{"Previous period", ov.PreviousPeriod}); err != nil {
			return err
		}
	}

	row := 5
	if err := f.SetSheetRow(sheet, cell(1, row), &[]interface{}{"Group", "Indicator", "Value", "Unit", "Note"}); err != nil {
		return err
	}
	_ = f.SetCellStyle(sheet, cell(1, row), cell(5, row), st.header)

	for _, g := range calculator.Cards(ov) {
		for _, it := range g.Indicators {
			row++
			if err := f.SetSheetRow(sheet, cell(1, row), &[]interface{}{g.Name, it.Name, it.Value, it.Unit, it.Note}); err != nil {
				return err
			}
			style := st.amount
			if it.Unit == "%" {
				style = st.pct
			}
			_ = f.SetCellStyle(sheet, cell(3, row), cell(3, row), style)
		}
	}

	_ = f.SetColWidth(sheet, "A", "B", 20)
	_ = f.SetColWidth(sheet, "C", "C", 14)
	_ = f.SetColWidth(sheet, "E", "E", 32)
	return nil
}

func writeTrend(f *excelize.File, st styles, points []calculator.TrendPoint) error {
	sheet := SheetTrend
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Period", "Tax Revenue", "Non-Tax Revenue", "Total"}); err != nil {
		return err
	}
	_ = f.SetCellStyle(sheet, "A1", "D1", st.header)

	for i, p := range points {
		row := i + 2
		if err := f.SetSheetRow(sheet, cell(1, row), &[]interface{}{p.Period, p.TaxRevenue, p.NonTaxRevenue, p.Total}); err != nil {
			return err
		}
	}
	if n := len(points); n > 0 {
		_ = f.SetCellStyle(sheet, "B2", cell(4, n+1), st.amount)
	}

	_ = f.SetColWidth(sheet, "A", "D", 18)
	return nil
}

func writeBreakdown(f *excelize.File, st styles, sheet, period string, slices []calculator.ShareSlice) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{sheet + " (" + period + ")"}); err != nil {
		return err
	}
	_ = f.SetCellStyle(sheet, "A1", "A1", st.title)
	if err := f.SetSheetRow(sheet, "A2", &[]interface{}{"Name", "Value", "Share %"}); err != nil {
		return err
	}
	_ = f.SetCellStyle(sheet, "A2", "C2", st.header)

	total := 0.0
	for i, s := range slices {
		row := i + 3
		if err := f.SetSheetRow(sheet, cell(1, row), &[]interface{}{s.Name, s.Value, s.Percent}); err != nil {
			return err
		}
		_ = f.SetCellStyle(sheet, cell(2, row), cell(2, row), st.amount)
		_ = f.SetCellStyle(sheet, cell(3, row), cell(3, row), st.pct)
		total += s.Value
	}

	totalRow := len(slices) + 3
	if err := f.SetSheetRow(sheet, cell(1, totalRow), &[]interface{}{"Total", total}); err != nil {
		return err
	}
	_ = f.SetCellStyle(sheet, cell(1, totalRow), cell(1, totalRow), st.header)
	_ = f.SetCellStyle(sheet, cell(2, totalRow), cell(2, totalRow), st.amount)

	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "C", 14)
	return nil
}
