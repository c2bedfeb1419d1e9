package domain

import (
	"math"
	"strconv"
	"strings"
)

const (
	ColumnUserID           = "user_id"
	ColumnName             = "name"
	ColumnEmail            = "email"
	ColumnMonthlyIncome    = "monthly_income"
	ColumnCreditScore      = "credit_score"
	ColumnEmploymentStatus = "employment_status"
	ColumnAge              = "age"
)

// RequiredColumns is the column set every uploaded table must carry.
var RequiredColumns = []string{
	ColumnUserID,
	ColumnName,
	ColumnEmail,
	ColumnMonthlyIncome,
	ColumnCreditScore,
	ColumnEmploymentStatus,
	ColumnAge,
}

// ApplicantRecord is one CSV row with the raw, unparsed cell values.
type ApplicantRecord struct {
	UserID           string `csv:"user_id"`
	Name             string `csv:"name"`
	Email            string `csv:"email"`
	MonthlyIncome    string `csv:"monthly_income"`
	CreditScore      string `csv:"credit_score"`
	EmploymentStatus string `csv:"employment_status"`
	Age              string `csv:"age"`
}

// ParseNumber parses a raw numeric cell. Empty cells, NaN and infinities are
// reported as not numeric.
func ParseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}
