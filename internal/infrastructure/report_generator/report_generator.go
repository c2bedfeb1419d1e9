package report_generator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/loan_ingestor/internal/domain"
)

const (
	titleHeight   = 12
	summaryHeight = 7
	tableHeight   = 6
)

var (
	titleProps   = props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	labelProps   = props.Text{Size: 10, Style: fontstyle.Bold}
	valueProps   = props.Text{Size: 10}
	headerProps  = props.Text{Size: 9, Style: fontstyle.Bold}
	cellProps    = props.Text{Size: 9}
	sectionProps = props.Text{Size: 12, Style: fontstyle.Bold, Top: 3}
)

type ReportGenerator struct{}

func New() *ReportGenerator {
	return &ReportGenerator{}
}

// GenerateReport renders the job summary followed by every rejected row.
func (g *ReportGenerator) GenerateReport(outputPath string, result *domain.IngestionResult) error {
	m := maroto.New(config.NewBuilder().Build())

	m.AddRows(text.NewRow(titleHeight, "Ingestion report", titleProps))
	m.AddRows(summaryRows(result.Job)...)

	invalid := result.InvalidRows()
	if len(invalid) > 0 {
		m.AddRows(text.NewRow(titleHeight, fmt.Sprintf("Rejected rows (%d)", len(invalid)), sectionProps))
		m.AddRow(tableHeight,
			text.NewCol(2, "Row", headerProps),
			text.NewCol(5, "User ID", headerProps),
			text.NewCol(5, "Violations", headerProps),
		)

		for _, r := range invalid {
			m.AddRow(tableHeight,
				text.NewCol(2, strconv.Itoa(r.RowNumber), cellProps),
				text.NewCol(5, derefOr(r.UserID, "-"), cellProps),
				text.NewCol(5, strings.Join(r.ViolationCodes(), ", "), cellProps),
			)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf to %q: %w", outputPath, err)
	}

	return nil
}

func summaryRows(job *domain.IngestionJob) []core.Row {
	fields := [][2]string{
		{"Job ID", job.JobID},
		{"Source", job.SourceKey},
		{"Status", string(job.Status)},
		{"Total rows", strconv.Itoa(job.TotalRows)},
		{"Valid rows", strconv.Itoa(job.ValidRows)},
		{"Invalid rows", strconv.Itoa(job.InvalidRows)},
		{"Processed rows", strconv.Itoa(job.ProcessedRows)},
		{"Started at", formatTime(job.StartedAt)},
		{"Completed at", formatTime(job.CompletedAt)},
	}

	if job.ErrorMessage != nil {
		fields = append(fields, [2]string{"Error", *job.ErrorMessage})
	}

	rows := make([]core.Row, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, summaryRow(f[0], f[1]))
	}

	return rows
}

func summaryRow(label, value string) core.Row {
	return row.New(summaryHeight).Add(
		text.NewCol(4, label, labelProps),
		text.NewCol(8, value, valueProps),
	)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}

	return t.UTC().Format(time.RFC3339)
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}

	return *s
}
