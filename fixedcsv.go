// # FixedCSV: Fixed-Width CSV Tables for Go
//
// FixedCSV reads CSV data whose column count is known before parsing starts. Each line is split with a single
// quote-aware byte scan straight into a row of exactly N fields, and the rows are kept in a read-only Table that
// hands out name to value views by row index.
//
// # Features
//
// - `Splitter` with a literal quote policy (quote bytes are kept) or an opt-in `TrimQuotes` policy.
// - Line-oriented `Reader` with CRLF handling, empty-line skipping, and optional record reuse.
// - `Writer` that emits fields verbatim; a field holding a comma and no quotes is wrapped in quotes and only
//   splits back unchanged with `TrimQuotes`.
// - Structured error reporting via `ParseError`, `ErrFieldCount`, `ErrColumnCount`, and `ErrRowOutOfRange`.
// - `LoadFile` for plain and lz4-compressed files.
//
// # Quoting
//
// A quote byte toggles a quoted span in which commas do not split. Quotes are never unescaped: `1,"2,3",4` splits
// into `1`, `"2,3"` and `4`. Doubled quotes, embedded newlines, and variable column counts are not supported.
package fixedcsv
