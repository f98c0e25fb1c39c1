package model

// CommercialTaxes 商业税（SGST / IGST / 酒店税 / 职业税 / 销售贸易税）
type CommercialTaxes struct {
	SGST            float64 `json:"sgst"`
	IGST            float64 `json:"igst"`
	HotelTax        float64 `json:"hotelTax"`
	ProfessionalTax float64 `json:"professionalTax"`
	SalesTradeTax   float64 `json:"salesTradeTax"`
}

// TaxRevenue 税收收入
type TaxRevenue struct {
	CommercialTaxes    CommercialTaxes `json:"commercialTaxes"`
	Excise             float64         `json:"excise"`             // 消费税
	Electricity        float64         `json:"electricity"`        // 电力税
	StampsRegistration float64         `json:"stampsRegistration"` // 印花与登记
	Transport          float64         `json:"transport"`          // 车辆税
	LandRevenue        float64         `json:"landRevenue"`        // 土地收入
}

// NonTaxRevenue 非税收入
type NonTaxRevenue struct {
	Mining         float64 `json:"mining"`
	WaterResource  float64 `json:"waterResource"`
	ForestResource float64 `json:"forestResource"`
}

// RevenueRecord 单个报告期的收入数据
//
// 记录创建后不再修改；缺失字段按 0 处理。
type RevenueRecord struct {
	Period        string        `json:"period"` // 报告期，如 "Q1 2024"
	TaxRevenue    TaxRevenue    `json:"taxRevenue"`
	NonTaxRevenue NonTaxRevenue `json:"nonTaxRevenue"`
}

// Amounts 按固定顺序返回记录的全部金额字段（用于存储与校验）
func (r RevenueRecord) Amounts() []float64 {
	ct := r.TaxRevenue.CommercialTaxes
	return []float64{
		ct.SGST, ct.IGST, ct.HotelTax, ct.ProfessionalTax, ct.SalesTradeTax,
		r.TaxRevenue.Excise, r.TaxRevenue.Electricity, r.TaxRevenue.StampsRegistration,
		r.TaxRevenue.Transport, r.TaxRevenue.LandRevenue,
		r.NonTaxRevenue.Mining, r.NonTaxRevenue.WaterResource, r.NonTaxRevenue.ForestResource,
	}
}

// AmountFieldNames 与 Amounts 顺序一致的字段名
var AmountFieldNames = []string{
	"sgst", "igst", "hotelTax", "professionalTax", "salesTradeTax",
	"excise", "electricity", "stampsRegistration", "transport", "landRevenue",
	"mining", "waterResource", "forestResource",
}
