package domain

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

type Violation string

const (
	ViolationUserID           Violation = "invalid_user_id"
	ViolationMonthlyIncome    Violation = "invalid_monthly_income"
	ViolationCreditScore      Violation = "invalid_credit_score"
	ViolationAge              Violation = "invalid_age"
	ViolationEmploymentStatus Violation = "invalid_employment_status"
	ViolationEmail            Violation = "invalid_email"
)

type StagingRow struct {
	JobID            string      `db:"job_id"`
	RowNumber        int         `db:"row_number"`
	UserID           *string     `db:"user_id"`
	Name             *string     `db:"name"`
	Email            *string     `db:"email"`
	MonthlyIncome    *float64    `db:"monthly_income"`
	CreditScore      *int        `db:"credit_score"`
	EmploymentStatus *string     `db:"employment_status"`
	Age              *int        `db:"age"`
	IsValid          bool        `db:"is_valid"`
	ValidationErrors []Violation `db:"validation_errors"`
}

// NewStagingRow tags a raw record with its violations. Absent or unparseable
// cells become nil. Well-formed user ids are stored in canonical form.
func NewStagingRow(jobID string, rowNumber int, rec ApplicantRecord, violations []Violation) *StagingRow {
	row := &StagingRow{
		JobID:            jobID,
		RowNumber:        rowNumber,
		UserID:           nullableString(rec.UserID),
		Name:             nullableString(rec.Name),
		Email:            nullableString(rec.Email),
		MonthlyIncome:    nullableNumber(rec.MonthlyIncome),
		CreditScore:      nullableInt(rec.CreditScore),
		EmploymentStatus: nullableString(rec.EmploymentStatus),
		Age:              nullableInt(rec.Age),
		IsValid:          len(violations) == 0,
	}

	if !row.IsValid {
		row.ValidationErrors = violations
	}

	if id, err := uuid.Parse(strings.TrimSpace(rec.UserID)); err == nil {
		canonical := id.String()
		row.UserID = &canonical
	}

	return row
}

// ViolationCodes returns the violations as plain strings.
func (r *StagingRow) ViolationCodes() []string {
	if len(r.ValidationErrors) == 0 {
		return nil
	}

	codes := make([]string, len(r.ValidationErrors))
	for i, v := range r.ValidationErrors {
		codes[i] = string(v)
	}

	return codes
}

func nullableString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	return &raw
}

func nullableNumber(raw string) *float64 {
	v, ok := ParseNumber(raw)
	if !ok {
		return nil
	}

	return &v
}

func nullableInt(raw string) *int {
	v, ok := ParseNumber(raw)
	if !ok || v > math.MaxInt32 || v < math.MinInt32 {
		return nil
	}

	n := int(v)

	return &n
}
