package report_generator

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/finsight/internal/domain"
)

const (
	maxTransactionRows = 1000
	previewLen         = 80
)

var (
	titleStyle  = props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}
	headerStyle = props.Text{Size: 9, Style: fontstyle.Bold}
	cellStyle   = props.Text{Size: 8}
	amountStyle = props.Text{Size: 8, Align: align.Right}
)

type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// GenerateReport writes a PDF summary of a successful submission.
func (g *Generator) GenerateReport(outputPath string, s *domain.Submission, transactions []*domain.Transaction) error {
	m := maroto.New(config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build())

	m.AddRows(text.NewRow(12, "FinSight Report", titleStyle))
	m.AddRows(g.summaryRows(s)...)

	if s.Category.IsMultiSlot() {
		m.AddRows(sectionRows(s.Result)...)
	} else {
		m.AddRows(transactionRows(transactions)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save report %q: %w", outputPath, err)
	}

	return nil
}

func (g *Generator) summaryRows(s *domain.Submission) []core.Row {
	processed := "-"
	if s.ProcessedAt != nil {
		processed = s.ProcessedAt.Format(time.DateTime)
	}

	fields := [][2]string{
		{"Document", s.Name},
		{"Document type", s.Category.Label()},
		{"Submission", s.ID.String()},
		{"Processed at", processed},
		{"Generated at", g.now().Format(time.DateTime)},
	}

	rows := make([]core.Row, 0, len(fields)+1)
	for _, f := range fields {
		rows = append(rows, keyValueRow(f[0], f[1]))
	}

	return append(rows, text.NewRow(6, ""))
}

func keyValueRow(key, value string) core.Row {
	return row.New(6).Add(
		text.NewCol(3, key, headerStyle),
		text.NewCol(9, value, cellStyle),
	)
}

func transactionRows(transactions []*domain.Transaction) []core.Row {
	rows := []core.Row{
		text.NewRow(8, fmt.Sprintf("Transactions (%d)", len(transactions)), props.Text{Size: 11, Style: fontstyle.Bold}),
		row.New(6).Add(
			text.NewCol(2, "Date", headerStyle),
			text.NewCol(5, "Description", headerStyle),
			text.NewCol(2, "Amount", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
			text.NewCol(1, "Type", headerStyle),
			text.NewCol(2, "Category", headerStyle),
		),
	}

	for i, t := range transactions {
		if i == maxTransactionRows {
			rows = append(rows, text.NewRow(6, fmt.Sprintf("... %d more", len(transactions)-i), cellStyle))
			break
		}

		rows = append(rows, row.New(5).Add(
			text.NewCol(2, t.Date, cellStyle),
			text.NewCol(5, t.Description, cellStyle),
			text.NewCol(2, strconv.FormatFloat(float64(t.Amount), 'f', 2, 64), amountStyle),
			text.NewCol(1, t.Type, cellStyle),
			text.NewCol(2, t.Category, cellStyle),
		))
	}

	return rows
}

// sectionRows lists the top-level sections of a multi-document result.
func sectionRows(result json.RawMessage) []core.Row {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(result, &sections); err != nil {
		return []core.Row{text.NewRow(6, "Result is not a JSON object", cellStyle)}
	}

	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	rows := []core.Row{text.NewRow(8, "Report sections", props.Text{Size: 11, Style: fontstyle.Bold})}
	for _, k := range keys {
		rows = append(rows, keyValueRow(k, preview(sections[k])))
	}

	return rows
}

func preview(raw json.RawMessage) string {
	s := string(raw)
	if len(s) > previewLen {
		return s[:previewLen] + "..."
	}
	return s
}
