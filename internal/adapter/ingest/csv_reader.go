package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/simaogato/txengine/internal/domain"
)

// ErrMalformedRecord is returned for any row that cannot be turned into an event
var ErrMalformedRecord = errors.New("malformed transaction record")

const (
	columnType   = "type"
	columnClient = "client"
	columnTx     = "tx"
	columnAmount = "amount"
)

// CSVReader reads transaction events from CSV with a `type,client,tx,amount` header.
// Fields are trimmed and the amount column may be omitted on dispute-family rows.
type CSVReader struct {
	reader  *csv.Reader
	columns map[string]int
}

// NewCSVReader creates a reader over r; the header is consumed on the first Next call
func NewCSVReader(r io.Reader) *CSVReader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	return &CSVReader{reader: reader}
}

// Next returns the next event, or io.EOF once the input is exhausted
func (r *CSVReader) Next() (domain.Event, error) {
	if r.columns == nil {
		if err := r.readHeader(); err != nil {
			return domain.Event{}, err
		}
	}

	record, err := r.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Event{}, io.EOF
		}
		return domain.Event{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	line, _ := r.reader.FieldPos(0)
	event, err := r.parse(record)
	if err != nil {
		return domain.Event{}, fmt.Errorf("line %d: %w", line, err)
	}

	return event, nil
}

func (r *CSVReader) readHeader() error {
	header, err := r.reader.Read()
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("%w: header: %v", ErrMalformedRecord, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{columnType, columnClient, columnTx} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("%w: header is missing column %q", ErrMalformedRecord, required)
		}
	}

	r.columns = columns
	return nil
}

func (r *CSVReader) parse(record []string) (domain.Event, error) {
	eventType, err := domain.ParseEventType(r.field(record, columnType))
	if err != nil {
		return domain.Event{}, err
	}

	client, err := strconv.ParseUint(r.field(record, columnClient), 10, 16)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: client: %v", ErrMalformedRecord, err)
	}

	tx, err := strconv.ParseUint(r.field(record, columnTx), 10, 32)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: tx: %v", ErrMalformedRecord, err)
	}

	event := domain.Event{
		Type:   eventType,
		Client: domain.ClientID(client),
		Tx:     domain.TransactionID(tx),
	}

	// Amounts on dispute-family rows are ignored, even if present
	if eventType.RequiresAmount() {
		raw := r.field(record, columnAmount)
		if raw == "" {
			return domain.Event{}, fmt.Errorf("%w: %s requires an amount", ErrMalformedRecord, eventType)
		}
		amount, err := domain.ParseAmount(raw)
		if err != nil {
			return domain.Event{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		event.Amount = &amount
	}

	return event, nil
}

// field returns the trimmed value of a named column, or "" if the row is too short
func (r *CSVReader) field(record []string, column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
