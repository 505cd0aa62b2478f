package fixedcsv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFieldCount is returned when a line does not split into exactly the configured number of fields.
	ErrFieldCount = errors.New("fixedcsv: wrong number of fields")
	// ErrColumnCount is returned when the column count is not a positive integer.
	ErrColumnCount = errors.New("fixedcsv: column count must be positive")
)

// ParseError contains location information for line splitting errors. Line is zero when the
// error comes from a Splitter used outside a Reader.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line == 0 {
		return fmt.Sprintf("fixedcsv: parse error at column %d: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("fixedcsv: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Splitter splits single CSV lines into a fixed number of fields.
//
// A Quote byte toggles a quoted span in which Comma does not split. Quote bytes are left in the
// field text unless TrimQuotes is set. A Splitter holds no per-line state and may be shared.
type Splitter struct {
	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// TrimQuotes removes every Quote byte from the returned fields.
	TrimQuotes bool

	n int
}

// NewSplitter returns a Splitter producing n fields per line. It fails with ErrColumnCount when n < 1.
func NewSplitter(n int) (*Splitter, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrColumnCount, n)
	}
	return &Splitter{Comma: ',', Quote: '"', n: n}, nil
}

// SplitLine splits line into exactly n fields using the default delimiters and the literal quote policy.
func SplitLine(line string, n int) (Row, error) {
	s, err := NewSplitter(n)
	if err != nil {
		return nil, err
	}
	return s.Split(line)
}

// Columns reports the number of fields every line must contain.
func (s *Splitter) Columns() int {
	return s.n
}

// Split allocates a new Row and fills it from line.
func (s *Splitter) Split(line string) (Row, error) {
	dst := make(Row, s.n)
	if err := s.SplitInto(dst, line); err != nil {
		return nil, err
	}
	return dst, nil
}

// SplitInto fills dst from line. It panics unless dst holds exactly Columns() fields. Fields are
// substrings of line. On error the content of dst is unspecified and a *ParseError wrapping
// ErrFieldCount is returned.
func (s *Splitter) SplitInto(dst Row, line string) error {
	if len(dst) != s.n {
		panic(fmt.Sprintf("fixedcsv: destination row has %d fields, want %d", len(dst), s.n))
	}
	if column, err := s.split(dst, line); err != nil {
		return &ParseError{Column: column, Err: err}
	}
	return nil
}

// split performs the scan and reports the 1-based column at which a field count mismatch was detected.
func (s *Splitter) split(dst Row, line string) (int, error) {
	comma := s.Comma
	if comma == 0 {
		comma = ','
	}
	quote := s.Quote
	if quote == 0 {
		quote = '"'
	}
	last := len(dst) - 1

	// Fast path for lines without quotes: jump from comma to comma.
	if strings.IndexByte(line, quote) == -1 {
		start, idx := 0, 0
		for {
			next := strings.IndexByte(line[start:], comma)
			if next == -1 {
				break
			}
			if idx == last {
				return start + next + 1, ErrFieldCount
			}
			dst[idx] = line[start : start+next]
			start += next + 1
			idx++
		}
		if idx != last {
			return len(line) + 1, ErrFieldCount
		}
		dst[idx] = line[start:]
		return 0, nil
	}

	inQuotes := false
	start, idx := 0, 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case quote:
			inQuotes = !inQuotes
		case comma:
			if inQuotes {
				continue
			}
			if idx == last {
				return i + 1, ErrFieldCount
			}
			dst[idx] = s.field(line[start:i], quote)
			start = i + 1
			idx++
		}
	}
	// The final field is closed by the end of the line, not by a comma.
	if idx != last {
		return len(line) + 1, ErrFieldCount
	}
	dst[idx] = s.field(line[start:], quote)
	return 0, nil
}

func (s *Splitter) field(f string, quote byte) string {
	if !s.TrimQuotes || strings.IndexByte(f, quote) == -1 {
		return f
	}
	return strings.ReplaceAll(f, string(quote), "")
}
