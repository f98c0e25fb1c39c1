package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revenueplatform/internal/calculator"
)

// displayCard 带展示文本的指标卡片
type displayCard struct {
	calculator.Indicator
	Display string `json:"display"`
}

type overviewResponse struct {
	*calculator.Overview
	Cards   []displayCard     `json:"cards"`
	Display map[string]string `json:"display"`
}

// GetOverview 概览面板
// GET /api/overview
func (h *Handler) GetOverview(c *gin.Context) {
	records, err := h.app.Records()
	if err != nil {
		h.writeError(c, err)
		return
	}

	ov, err := calculator.BuildOverview(records)
	if err != nil {
		h.writeError(c, err)
		return
	}

	growth := "n/a"
	if ov.Growth != nil {
		growth = h.format.Growth(*ov.Growth)
	}

	c.JSON(http.StatusOK, overviewResponse{
		Overview: ov,
		Cards:    h.displayCards(calculator.Cards(ov)),
		Display: map[string]string{
			"total":      h.format.Amount(ov.Current.Total),
			"tax":        h.format.Amount(ov.Current.TaxTotal),
			"nonTax":     h.format.Amount(ov.Current.NonTaxTotal),
			"commercial": h.format.Amount(ov.CommercialTotal),
			"growth":     growth,
		},
	})
}

func (h *Handler) displayCards(groups []calculator.IndicatorGroup) []displayCard {
	out := []displayCard{}
	for _, g := range groups {
		for _, it := range g.Indicators {
			d := h.format.Amount(it.Value)
			if it.Unit == "%" {
				d = h.format.Percent(it.Value)
			}
			out = append(out, displayCard{Indicator: it, Display: d})
		}
	}
	return out
}

// GetCharts 图表面板
// GET /api/charts
func (h *Handler) GetCharts(c *gin.Context) {
	records, err := h.app.Records()
	if err != nil {
		h.writeError(c, err)
		return
	}

	charts, err := calculator.BuildCharts(records)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, charts)
}

// GetBreakdown 最新一期的单个分项序列
// GET /api/charts/breakdown/:selector
func (h *Handler) GetBreakdown(c *gin.Context) {
	records, err := h.app.Records()
	if err != nil {
		h.writeError(c, err)
		return
	}

	slices, err := calculator.LatestBreakdown(records, calculator.Selector(c.Param("selector")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"selector": c.Param("selector"),
		"items":    slices,
		"total":    calculator.SumSlices(slices),
	})
}

// ListRecords 当前记录列表
// GET /api/records
func (h *Handler) ListRecords(c *gin.Context) {
	records, err := h.app.Records()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": records, "total": len(records)})
}
