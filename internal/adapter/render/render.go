package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/simaogato/txengine/internal/usecase/report"
)

// ErrUnknownFormat is returned by New for an unsupported output format
var ErrUnknownFormat = errors.New("unknown report format")

// Supported output formats
const (
	FormatCSV   = "csv"
	FormatTable = "table"
)

// Header is the column order shared by all formats
var Header = []string{"client", "available", "held", "total", "locked"}

// Renderer writes the final account listing
type Renderer interface {
	Render(w io.Writer, accounts []report.AccountSummary) error
}

// New returns the renderer for a format name
func New(format string) (Renderer, error) {
	switch format {
	case FormatCSV, "":
		return CSVRenderer{}, nil
	case FormatTable:
		return TableRenderer{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// row formats a summary using exactly 4 fractional digits for amounts
func row(account report.AccountSummary) []string {
	return []string{
		strconv.FormatUint(uint64(account.Client), 10),
		account.Available.String(),
		account.Held.String(),
		account.Total.String(),
		strconv.FormatBool(account.Locked),
	}
}
