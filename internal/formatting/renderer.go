package formatting

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"spcli/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ErrEmptyPayload is returned when rendering the zero Payload.
var ErrEmptyPayload = errors.New("nothing to render: payload has no shape")

// Renderer writes payloads to an output stream.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render writes exactly one rendering of p: a table when tableMode is set,
// indented JSON otherwise.
func (r *Renderer) Render(tableMode bool, p Payload) error {
	if p.Kind() != KindScalar && p.Kind() != KindCollection {
		return ErrEmptyPayload
	}
	logging.Debug("Renderer", "Rendering %s payload with %d records (table=%t)", p.Kind(), p.Len(), tableMode)

	if tableMode {
		return r.renderTable(p)
	}
	return r.renderJSON(p)
}

func (r *Renderer) renderJSON(p Payload) error {
	data, err := MarshalIndented(p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}

func (r *Renderer) renderTable(p Payload) error {
	header, rows := TableRows(p)
	if len(header) == 0 && len(rows) == 0 {
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	style := table.StyleDefault
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			tableRow[i] = cell
		}
		t.AppendRow(tableRow)
	}

	t.Render()
	return nil
}

// TableRows computes the table layout for p. For a Collection the header is
// the field names of the first record, and each record becomes a row of its
// own values in its own field order; later records are not checked against
// the header. For a Scalar the header and the single row come from the
// record itself.
func TableRows(p Payload) ([]string, [][]string) {
	switch p.Kind() {
	case KindScalar:
		record, _ := p.Scalar()
		return Keys(record), [][]string{cells(record)}
	case KindCollection:
		records, _ := p.Collection()
		var header []string
		rows := make([][]string, 0, len(records))
		for i, record := range records {
			if i == 0 {
				header = Keys(record)
			}
			rows = append(rows, cells(record))
		}
		return header, rows
	default:
		return nil, nil
	}
}

// MarshalIndented encodes the payload as JSON indented by one space, keeping
// field order.
func MarshalIndented(p Payload) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	if err := enc.Encode(p.value()); err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", p.Kind(), err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func cells(record Record) []string {
	values := Values(record)
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = FormatCell(v)
	}
	return row
}

// FormatCell formats one field value for table display.
func FormatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case string:
		return v
	case bool:
		if v {
			return "True"
		}
		return "False"
	case json.Number:
		return v.String()
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Sprintf("%v", v)
		}
		return strings.TrimRight(buf.String(), "\n")
	}
}
