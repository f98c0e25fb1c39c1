package model

import (
	"fmt"
	"strings"
)

// ValidateRecord 校验单条记录（报告期非空、金额非负）
func ValidateRecord(r RevenueRecord) []string {
	errs := make([]string, 0, 2)

	if strings.TrimSpace(r.Period) == "" {
		errs = append(errs, "period is required")
	}
	for i, v := range r.Amounts() {
		if v < 0 {
			errs = append(errs, fmt.Sprintf("%s must not be negative", AmountFieldNames[i]))
		}
	}

	return errs
}

// ValidateRecords 校验记录列表，额外检查报告期唯一
func ValidateRecords(records []RevenueRecord) []string {
	errs := []string{}
	seen := make(map[string]bool, len(records))

	for _, r := range records {
		for _, e := range ValidateRecord(r) {
			if r.Period != "" {
				e = r.Period + ": " + e
			}
			errs = append(errs, e)
		}
		if r.Period == "" {
			continue
		}
		if seen[r.Period] {
			errs = append(errs, fmt.Sprintf("duplicate period %q", r.Period))
		}
		seen[r.Period] = true
	}

	return errs
}
