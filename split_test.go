package fixedcsv

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitterSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		n     int
		trim  bool
		comma byte
		want  Row
	}{
		{
			name: "header",
			line: "a,b,c",
			n:    3,
			want: Row{"a", "b", "c"},
		},
		{
			name: "quotedCommaKeepsQuotes",
			line: `1,"2,3",4`,
			n:    3,
			want: Row{"1", `"2,3"`, "4"},
		},
		{
			name: "quotedCommaTrimQuotes",
			line: `1,"2,3",4`,
			n:    3,
			trim: true,
			want: Row{"1", "2,3", "4"},
		},
		{
			name: "doubledQuotesNotCollapsed",
			line: `a,"b""c",d`,
			n:    3,
			want: Row{"a", `"b""c"`, "d"},
		},
		{
			name: "doubledQuotesTrimmed",
			line: `a,"b""c",d`,
			n:    3,
			trim: true,
			want: Row{"a", "bc", "d"},
		},
		{
			name: "quoteInsideField",
			line: `x,ab"c,d"e`,
			n:    2,
			want: Row{"x", `ab"c,d"e`},
		},
		{
			name: "singleColumn",
			line: "whole line here",
			n:    1,
			want: Row{"whole line here"},
		},
		{
			name: "singleColumnQuotedComma",
			line: `"a,b"`,
			n:    1,
			want: Row{`"a,b"`},
		},
		{
			name: "emptyFields",
			line: ",,",
			n:    3,
			want: Row{"", "", ""},
		},
		{
			name: "emptyLineSingleColumn",
			line: "",
			n:    1,
			want: Row{""},
		},
		{
			name: "unbalancedQuoteSwallowsRest",
			line: `a,"b,c`,
			n:    2,
			want: Row{"a", `"b,c`},
		},
		{
			name:  "customComma",
			line:  "left;right",
			n:     2,
			comma: ';',
			want:  Row{"left", "right"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := NewSplitter(tc.n)
			require.NoError(t, err)
			s.TrimQuotes = tc.trim
			if tc.comma != 0 {
				s.Comma = tc.comma
			}

			got, err := s.Split(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSplitterFieldCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		line   string
		n      int
		column int
	}{
		{name: "tooFew", line: "1,2", n: 3, column: 4},
		{name: "tooFewQuoted", line: `1,"2,3"`, n: 3, column: 8},
		{name: "tooMany", line: "1,2,3,4", n: 3, column: 6},
		{name: "tooManyQuoted", line: `"a",b,"c",d`, n: 3, column: 10},
		{name: "emptyLine", line: "", n: 2, column: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := SplitLine(tc.line, tc.n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFieldCount), "error %v should wrap ErrFieldCount", err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, 0, perr.Line)
			assert.Equal(t, tc.column, perr.Column)
		})
	}
}

func TestNewSplitterColumnCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1} {
		_, err := NewSplitter(n)
		assert.True(t, errors.Is(err, ErrColumnCount), "NewSplitter(%d) error = %v", n, err)
	}
	_, err := SplitLine("a", 0)
	assert.True(t, errors.Is(err, ErrColumnCount))
}

func TestSplitterSplitIntoReusesRow(t *testing.T) {
	t.Parallel()

	s, err := NewSplitter(2)
	require.NoError(t, err)

	dst := make(Row, 2)
	require.NoError(t, s.SplitInto(dst, "a,b"))
	assert.Equal(t, Row{"a", "b"}, dst)
	require.NoError(t, s.SplitInto(dst, "c,d"))
	assert.Equal(t, Row{"c", "d"}, dst)
	assert.Equal(t, 2, s.Columns())
}

func TestSplitterSplitIntoWrongLengthPanics(t *testing.T) {
	t.Parallel()

	s, err := NewSplitter(3)
	require.NoError(t, err)
	assert.Panics(t, func() { _ = s.SplitInto(make(Row, 2), "a,b,c") })
}

func TestSplitLineMatchesNaiveSplitWithoutQuotes(t *testing.T) {
	t.Parallel()

	lines := []string{
		"a,b,c",
		",,",
		"Agriculture,2023,1-5,size,value,unit,0.5",
		"x,,y",
	}
	for _, line := range lines {
		want := strings.Split(line, ",")
		got, err := SplitLine(line, len(want))
		require.NoError(t, err)
		assert.Equal(t, want, []string(got))
	}
}

func TestParseErrorMethods(t *testing.T) {
	t.Parallel()

	err := &ParseError{Line: 3, Column: 7, Err: ErrFieldCount}
	got := err.Error()
	assert.Contains(t, got, "line 3")
	assert.Contains(t, got, "column 7")
	assert.True(t, errors.Is(err, ErrFieldCount))
	assert.Equal(t, ErrFieldCount, err.Unwrap())

	noLine := &ParseError{Column: 2, Err: ErrFieldCount}
	assert.NotContains(t, noLine.Error(), "line")
	assert.Contains(t, noLine.Error(), "column 2")

	var nilErr *ParseError
	assert.Equal(t, "", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}
