package validator

import (
	"strings"

	"github.com/kurochkinivan/loan_ingestor/internal/domain"
)

// MissingColumns returns the required columns absent from header, in the
// order of domain.RequiredColumns. Extra columns are ignored.
func MissingColumns(header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = struct{}{}
	}

	var missing []string
	for _, col := range domain.RequiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}

	return missing
}
