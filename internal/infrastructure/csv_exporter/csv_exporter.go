package csv_exporter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/finsight/internal/domain"
)

type Exporter struct {
	comma rune
}

func New() *Exporter {
	return &Exporter{comma: ','}
}

// Export writes the transactions with a header row. An empty slice still
// produces the header.
func (e *Exporter) Export(w io.Writer, transactions []*domain.Transaction) error {
	cw := csv.NewWriter(w)
	cw.Comma = e.comma

	enc := csvutil.NewEncoder(cw)

	if len(transactions) == 0 {
		if err := enc.EncodeHeader(domain.Transaction{}); err != nil {
			return fmt.Errorf("failed to encode header: %w", err)
		}
	}

	for i, t := range transactions {
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("failed to encode transaction #%d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}

func (e *Exporter) ExportFile(path string, transactions []*domain.Transaction) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return e.Export(f, transactions)
}
