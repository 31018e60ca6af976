package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/simaogato/txengine/internal/usecase/report"
)

// CSVRenderer writes `client,available,held,total,locked` rows
type CSVRenderer struct{}

func (CSVRenderer) Render(w io.Writer, accounts []report.AccountSummary) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, account := range accounts {
		if err := writer.Write(row(account)); err != nil {
			return fmt.Errorf("failed to write client %d: %w", account.Client, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
