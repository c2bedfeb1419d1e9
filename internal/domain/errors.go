package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidEvent = errors.New("invalid upload event")
	ErrJobNotFound  = errors.New("job not found")
)

// SchemaError is returned when an uploaded table lacks required columns.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing columns: %s", strings.Join(e.Missing, ", "))
}
