package utils

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

// CSVWriter writes exports where every free-text field is quoted and embedded
// quotes are doubled. Numbers, booleans and timestamps are written bare.
type CSVWriter struct {
	w    *bufio.Writer
	rows int
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: bufio.NewWriter(w)}
}

// Field is one CSV cell.
type Field struct {
	value  string
	quoted bool
}

func Text(s string) Field { return Field{value: s, quoted: true} }

func TextPtr(s *string) Field {
	if s == nil {
		return Text("")
	}
	return Text(*s)
}

// Raw writes s unquoted; for identifiers and enum values only.
func Raw(s string) Field { return Field{value: s} }

func Int(n int64) Field { return Field{value: strconv.FormatInt(n, 10)} }

func Bool(b bool) Field { return Field{value: strconv.FormatBool(b)} }

func Time(t time.Time) Field { return Field{value: t.UTC().Format(time.RFC3339)} }

func TimePtr(t *time.Time) Field {
	if t == nil {
		return Field{}
	}
	return Time(*t)
}

func QuoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Header writes the header row; header names are always quoted.
func (cw *CSVWriter) Header(names ...string) error {
	fields := make([]Field, len(names))
	for i, n := range names {
		fields[i] = Text(n)
	}
	return cw.write(fields)
}

func (cw *CSVWriter) Row(fields ...Field) error {
	if err := cw.write(fields); err != nil {
		return err
	}
	cw.rows++
	return nil
}

func (cw *CSVWriter) write(fields []Field) error {
	for i, f := range fields {
		if i > 0 {
			if err := cw.w.WriteByte(','); err != nil {
				return err
			}
		}
		v := f.value
		if f.quoted {
			v = QuoteCSV(v)
		}
		if _, err := cw.w.WriteString(v); err != nil {
			return err
		}
	}
	return cw.w.WriteByte('\n')
}

// Rows is the number of data rows written so far.
func (cw *CSVWriter) Rows() int {
	return cw.rows
}

func (cw *CSVWriter) Flush() error {
	return cw.w.Flush()
}
