package domain

type IngestionResult struct {
	Job  *IngestionJob
	Rows []*StagingRow // empty when the job failed before validation

	// Skipped is set when the job had already reached a terminal status.
	Skipped bool
}

func (r *IngestionResult) InvalidRows() []*StagingRow {
	var invalid []*StagingRow
	for _, row := range r.Rows {
		if !row.IsValid {
			invalid = append(invalid, row)
		}
	}

	return invalid
}
