package fixedcsv

import (
	"bytes"
	"errors"
	"io"
	"unsafe"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

// ErrNoHeader is returned when the input ends before a header line is found.
var ErrNoHeader = errors.New("fixedcsv: missing header line")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader reads newline-delimited lines from a stream and splits each one into a Row of a fixed
// number of fields. Lines end at '\n'; a '\r' right before it is dropped. Empty lines are skipped.
type Reader struct {
	src io.Reader

	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// TrimQuotes removes every Quote byte from the returned fields.
	TrimQuotes bool
	// ReuseRecord indicates whether Read should reuse the backing array of the returned Row and the
	// bytes its fields point into. A reused Row is only valid until the next call to Read.
	ReuseRecord bool

	n int

	buf    []byte
	bufPos int
	bufLen int
	bufErr error

	lineBuf  []byte
	record   Row
	finished bool
	started  bool
	line     int
}

// NewReader creates a Reader that splits lines from r into n fields, panicking if r is nil.
// It fails with ErrColumnCount when n < 1.
func NewReader(r io.Reader, n int) (*Reader, error) {
	if r == nil {
		panic("fixedcsv: reader source cannot be nil")
	}
	if _, err := NewSplitter(n); err != nil {
		return nil, err
	}

	return &Reader{
		src:     r,
		Comma:   ',',
		Quote:   '"',
		n:       n,
		buf:     make([]byte, defaultBufferSize),
		lineBuf: make([]byte, 0, 512),
	}, nil
}

// Line returns the number of physical lines consumed so far, empty lines included.
func (r *Reader) Line() int {
	return r.line
}

// ReadHeader reads the first non-empty line as the column names. It must be called before Read.
// The returned Row is never reused. A leading UTF-8 byte order mark is dropped.
func (r *Reader) ReadHeader() (Row, error) {
	reuse := r.ReuseRecord
	r.ReuseRecord = false
	header, err := r.Read()
	r.ReuseRecord = reuse

	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	return header, err
}

// Read splits the next non-empty line. It returns io.EOF when no lines remain. A line with the
// wrong number of fields yields a *ParseError wrapping ErrFieldCount; reading may continue with
// the following line.
func (r *Reader) Read() (Row, error) {
	if r == nil || r.src == nil {
		return nil, io.EOF
	}

	for {
		if r.finished {
			return nil, io.EOF
		}
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}
		if !r.started {
			line = bytes.TrimPrefix(line, utf8BOM)
		}
		if len(line) == 0 {
			continue
		}
		r.started = true
		return r.splitLine(line)
	}
}

// ReadAll exhausts the reader, repeatedly calling Read to collect rows until io.EOF and returning
// the accumulated rows plus the first non-EOF error encountered. ReuseRecord is ignored.
func (r *Reader) ReadAll() (rows []Row, err error) {
	reuse := r.ReuseRecord
	r.ReuseRecord = false
	defer func() { r.ReuseRecord = reuse }()

	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// ReadTable reads the header and every remaining row into a Table.
func (r *Reader) ReadTable() (*Table, error) {
	header, err := r.ReadHeader()
	if err != nil {
		return nil, err
	}
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return NewTable(header, rows)
}

// splitLine turns the current line into a Row, respecting ReuseRecord.
func (r *Reader) splitLine(line []byte) (Row, error) {
	var (
		text string
		row  Row
	)
	if r.ReuseRecord {
		// Zero-copy string construction so fields share the line buffer.
		text = unsafe.String(unsafe.SliceData(line), len(line))
		if len(r.record) != r.n {
			r.record = make(Row, r.n)
		}
		row = r.record
	} else {
		// r.record is only ever handed out while reusing.
		text = string(line)
		row = make(Row, r.n)
	}

	s := Splitter{Comma: r.Comma, Quote: r.Quote, TrimQuotes: r.TrimQuotes, n: r.n}
	if column, err := s.split(row, text); err != nil {
		return nil, &ParseError{Line: r.line, Column: column, Err: err}
	}
	return row, nil
}

// readLine returns the next line without its terminator. The slice aliases lineBuf.
func (r *Reader) readLine() ([]byte, error) {
	r.lineBuf = r.lineBuf[:0]

	for {
		// Ensure the working buffer has data before scanning for the terminator.
		if r.bufPos >= r.bufLen {
			if r.bufErr != nil {
				err := r.bufErr
				r.bufErr = nil
				r.finished = true
				if err != io.EOF {
					return nil, err
				}
				// Flush a trailing line if data ended without a newline.
				if len(r.lineBuf) > 0 {
					r.line++
					return trimCR(r.lineBuf), nil
				}
				return nil, io.EOF
			}

			// Pull the next chunk from the source.
			n, err := r.src.Read(r.buf)
			r.bufPos = 0
			r.bufLen = n
			r.bufErr = err
			continue
		}

		data := r.buf[r.bufPos:r.bufLen]
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			r.lineBuf = append(r.lineBuf, data[:i]...)
			r.bufPos += i + 1
			r.line++
			return trimCR(r.lineBuf), nil
		}
		r.lineBuf = append(r.lineBuf, data...)
		r.bufPos = r.bufLen
	}
}

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}
