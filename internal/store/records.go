package store

import (
	"fmt"

	"revenueplatform/internal/model"
)

const recordColumns = `
	period,
	sgst, igst, hotel_tax, professional_tax, sales_trade_tax,
	excise, electricity, stamps_registration, transport, land_revenue,
	mining, water_resource, forest_resource`

// ReplaceRecords 整体替换收入记录（同一事务内先删后插，seq 取输入顺序）
func (s *Store) ReplaceRecords(records []model.RevenueRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM revenue_records"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO revenue_records (seq,` + recordColumns + `
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		args := make([]interface{}, 0, 15)
		args = append(args, i+1, r.Period)
		for _, v := range r.Amounts() {
			args = append(args, v)
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert record %q: %w", r.Period, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListRecords 按 seq 升序返回全部记录
func (s *Store) ListRecords() ([]model.RevenueRecord, error) {
	rows, err := s.db.Query("SELECT" + recordColumns + " FROM revenue_records ORDER BY seq ASC")
	if err != nil {
		return nil, fmt.Errorf("query records failed: %w", err)
	}
	defer rows.Close()

	out := []model.RevenueRecord{}
	for rows.Next() {
		var r model.RevenueRecord
		ct := &r.TaxRevenue.CommercialTaxes
		tr := &r.TaxRevenue
		nt := &r.NonTaxRevenue
		if err := rows.Scan(
			&r.Period,
			&ct.SGST, &ct.IGST, &ct.HotelTax, &ct.ProfessionalTax, &ct.SalesTradeTax,
			&tr.Excise, &tr.Electricity, &tr.StampsRegistration, &tr.Transport, &tr.LandRevenue,
			&nt.Mining, &nt.WaterResource, &nt.ForestResource,
		); err != nil {
			return nil, fmt.Errorf("scan record failed: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records failed: %w", err)
	}
	return out, nil
}

// CountRecords 记录数
func (s *Store) CountRecords() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(1) FROM revenue_records").Scan(&n); err != nil {
		return 0, fmt.Errorf("count records failed: %w", err)
	}
	return n, nil
}
