package validator

import (
	"strings"

	"github.com/google/uuid"
	"github.com/kurochkinivan/loan_ingestor/internal/domain"
)

const (
	MinCreditScore = 300
	MaxCreditScore = 900
	MinAge         = 18
	MaxAge         = 100
)

var employmentStatuses = map[string]struct{}{
	"Salaried":      {},
	"Self-Employed": {},
	"Business":      {},
}

// ValidateRow checks every rule independently and returns the violations in
// rule order. An empty result means the row is valid.
func ValidateRow(rec domain.ApplicantRecord) []domain.Violation {
	var violations []domain.Violation

	if _, err := uuid.Parse(strings.TrimSpace(rec.UserID)); err != nil {
		violations = append(violations, domain.ViolationUserID)
	}

	if income, ok := domain.ParseNumber(rec.MonthlyIncome); !ok || income <= 0 {
		violations = append(violations, domain.ViolationMonthlyIncome)
	}

	if !inRange(rec.CreditScore, MinCreditScore, MaxCreditScore) {
		violations = append(violations, domain.ViolationCreditScore)
	}

	if !inRange(rec.Age, MinAge, MaxAge) {
		violations = append(violations, domain.ViolationAge)
	}

	if _, ok := employmentStatuses[rec.EmploymentStatus]; !ok {
		violations = append(violations, domain.ViolationEmploymentStatus)
	}

	if !strings.Contains(rec.Email, "@") {
		violations = append(violations, domain.ViolationEmail)
	}

	return violations
}

func inRange(raw string, lo, hi float64) bool {
	v, ok := domain.ParseNumber(raw)
	return ok && v >= lo && v <= hi
}
