package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/loan_ingestor/internal/domain"
	"github.com/kurochkinivan/loan_ingestor/internal/validator"
)

const utf8BOM = "\ufeff"

// ParseApplicants reads a comma separated table with a header row. The header
// is checked against the required columns before any row is decoded.
func ParseApplicants(r io.Reader) ([]domain.ApplicantRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.SchemaError{Missing: validator.MissingColumns(nil)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], utf8BOM))
	}

	if missing := validator.MissingColumns(header); len(missing) > 0 {
		return nil, &domain.SchemaError{Missing: missing}
	}

	dec, err := csvutil.NewDecoder(&fixedWidthReader{r: reader, width: len(header)}, header...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	var records []domain.ApplicantRecord
	for {
		var rec domain.ApplicantRecord

		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode record #%d: %w", len(records)+1, err)
		}

		records = append(records, rec)
	}

	return records, nil
}

// fixedWidthReader pads short records with empty cells and drops cells past
// the header, so ragged rows surface as row violations instead of aborting.
type fixedWidthReader struct {
	r     *csv.Reader
	width int
}

func (f *fixedWidthReader) Read() ([]string, error) {
	record, err := f.r.Read()
	if err != nil {
		return nil, err
	}

	if len(record) > f.width {
		return record[:f.width], nil
	}

	for len(record) < f.width {
		record = append(record, "")
	}

	return record, nil
}
