package render

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/simaogato/txengine/internal/usecase/report"
)

// TableRenderer writes an aligned text table for humans
type TableRenderer struct{}

func (TableRenderer) Render(w io.Writer, accounts []report.AccountSummary) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(Header)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, account := range accounts {
		table.Append(row(account))
	}

	table.Render()
	return nil
}
