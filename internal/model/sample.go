package model

// SampleRecords 启动时加载的演示数据（Q1-Q3 2024）
func SampleRecords() []RevenueRecord {
	return []RevenueRecord{
		{
			Period: "Q1 2024",
			TaxRevenue: TaxRevenue{
				CommercialTaxes: CommercialTaxes{
					SGST:            45000,
					IGST:            38000,
					HotelTax:        12000,
					ProfessionalTax: 8500,
					SalesTradeTax:   25000,
				},
				Excise:             32000,
				Electricity:        28000,
				StampsRegistration: 18000,
				Transport:          22000,
				LandRevenue:        15000,
			},
			NonTaxRevenue: NonTaxRevenue{
				Mining:         35000,
				WaterResource:  12000,
				ForestResource: 8000,
			},
		},
		{
			Period: "Q2 2024",
			TaxRevenue: TaxRevenue{
				CommercialTaxes: CommercialTaxes{
					SGST:            48000,
					IGST:            42000,
					HotelTax:        14000,
					ProfessionalTax: 9000,
					SalesTradeTax:   27000,
				},
				Excise:             35000,
				Electricity:        30000,
				StampsRegistration: 20000,
				Transport:          24000,
				LandRevenue:        16000,
			},
			NonTaxRevenue: NonTaxRevenue{
				Mining:         38000,
				WaterResource:  13000,
				ForestResource: 9000,
			},
		},
		{
			Period: "Q3 2024",
			TaxRevenue: TaxRevenue{
				CommercialTaxes: CommercialTaxes{
					SGST:            52000,
					IGST:            45000,
					HotelTax:        16000,
					ProfessionalTax: 9500,
					SalesTradeTax:   29000,
				},
				Excise:             38000,
				Electricity:        32000,
				StampsRegistration: 22000,
				Transport:          26000,
				LandRevenue:        17000,
			},
			NonTaxRevenue: NonTaxRevenue{
				Mining:         42000,
				WaterResource:  14000,
				ForestResource: 10000,
			},
		},
	}
}

// SubstituteRecords 模拟上传完成后替换进来的固定数据（Q4 2024）
func SubstituteRecords() []RevenueRecord {
	return []RevenueRecord{
		{
			Period: "Q4 2024",
			TaxRevenue: TaxRevenue{
				CommercialTaxes: CommercialTaxes{
					SGST:            55000,
					IGST:            47000,
					HotelTax:        18000,
					ProfessionalTax: 11000,
					SalesTradeTax:   32000,
				},
				Excise:             41000,
				Electricity:        35000,
				StampsRegistration: 25000,
				Transport:          29000,
				LandRevenue:        19000,
			},
			NonTaxRevenue: NonTaxRevenue{
				Mining:         45000,
				WaterResource:  16000,
				ForestResource: 12000,
			},
		},
	}
}
