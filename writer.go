package fixedcsv

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

var (
	// ErrUnwritableField is returned when a field cannot be written so that it splits back unchanged.
	ErrUnwritableField = errors.New("fixedcsv: field cannot be written as a single field")

	errNilWriter      = errors.New("fixedcsv: writer is nil")
	errWriterNoTarget = errors.New("fixedcsv: writer destination cannot be nil")
)

// Writer emits rows using the same literal policy as Splitter: fields are written as they are,
// so quote bytes already in a field pass through untouched. A field holding a Comma and no Quote
// bytes is wrapped in quotes, which a Splitter with TrimQuotes reads back as the original text.
type Writer struct {
	dst *bufio.Writer

	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// UseCRLF writes lines terminated with \r\n when set.
	UseCRLF bool

	err error
}

// NewWriter creates a new Writer with internal buffering tuned for bulk writes.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst:   bufio.NewWriterSize(w, defaultBufferSize),
		Comma: ',',
		Quote: '"',
	}
}

// Reset updates the underlying writer while preserving the configuration flags.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.err = nil
}

// Write emits a single row terminated with the configured newline sequence. Nothing is written
// when a field fails with ErrUnwritableField, and the Writer stays usable.
func (w *Writer) Write(row []string) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}

	comma := w.Comma
	if comma == 0 {
		comma = ','
	}
	quote := w.Quote
	if quote == 0 {
		quote = '"'
	}

	// Check every field first so a rejected row leaves no partial line behind.
	wrap := make([]bool, len(row))
	for i, field := range row {
		needsWrap, ok := classifyField(field, comma, quote, i == len(row)-1)
		if !ok {
			return ErrUnwritableField
		}
		wrap[i] = needsWrap
	}

	for i := range row {
		if i > 0 {
			if err := w.dst.WriteByte(comma); err != nil {
				w.err = err
				return err
			}
		}
		if err := w.writeField(row[i], quote, wrap[i]); err != nil {
			w.err = err
			return err
		}
	}

	if w.UseCRLF {
		if _, err := w.dst.Write([]byte{'\r', '\n'}); err != nil {
			w.err = err
			return err
		}
	} else {
		if err := w.dst.WriteByte('\n'); err != nil {
			w.err = err
			return err
		}
	}
	return nil
}

// WriteAll writes multiple rows, stopping at the first error.
func (w *Writer) WriteAll(rows []Row) error {
	if w == nil {
		return errNilWriter
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable writes the header of t followed by all of its rows.
func (w *Writer) WriteTable(t *Table) error {
	if err := w.Write(t.Columns()); err != nil {
		return err
	}
	return w.WriteAll(t.rows)
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

func (w *Writer) writeField(field string, quote byte, wrap bool) error {
	if !wrap {
		_, err := w.dst.WriteString(field)
		return err
	}
	if err := w.dst.WriteByte(quote); err != nil {
		return err
	}
	if _, err := w.dst.WriteString(field); err != nil {
		return err
	}
	return w.dst.WriteByte(quote)
}

// classifyField reports whether field must be wrapped in quotes and whether it can be written at all.
// Only the last field of a line may leave a quoted span open.
func classifyField(field string, comma, quote byte, last bool) (wrap bool, ok bool) {
	if strings.ContainsAny(field, "\r\n") {
		return false, false
	}
	if strings.IndexByte(field, quote) == -1 {
		return strings.IndexByte(field, comma) != -1, true
	}

	inQuotes := false
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case quote:
			inQuotes = !inQuotes
		case comma:
			if !inQuotes {
				return false, false
			}
		}
	}
	return false, !inQuotes || last
}
