// Package output serializes records into the semicolon separated import
// files expected by the ERP bulk importer.
package output

import (
	"bytes"
	"encoding/csv"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Separator is the field separator of every import file.
const Separator = ';'

// Column maps one output column to a record field.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Static returns a column whose value is the same for every record.
func Static[T any](header, value string) Column[T] {
	return Column[T]{Header: header, Value: func(T) string { return value }}
}

// Blank returns a column that is always empty.
func Blank[T any](header string) Column[T] {
	return Static[T](header, "")
}

// Table describes one import file.
type Table[T any] struct {
	// Name is the file name without extension (e.g. "base_products").
	Name    string
	Columns []Column[T]
}

// FileName returns the name of the file the table is written to.
func (t Table[T]) FileName() string {
	return t.Name + ".csv"
}

// Headers returns the column headers in order.
func (t Table[T]) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Header
	}
	return headers
}

// Encode writes the header and one line per record to w.
// The output starts with a UTF-8 byte order mark, lines end with CRLF and
// the last line has no line break.
func (t Table[T]) Encode(w io.Writer, records []T) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.Comma = Separator
	cw.UseCRLF = true

	if err := cw.Write(t.Headers()); err != nil {
		return err
	}
	row := make([]string, len(t.Columns))
	for _, rec := range records {
		for i, c := range t.Columns {
			row[i] = c.Value(rec)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	body := bytes.TrimSuffix(buf.Bytes(), []byte("\r\n"))
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	if _, err := bw.Write(body); err != nil {
		return err
	}
	return bw.Close()
}
