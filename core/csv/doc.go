// Package csv implements the CSV encoding rules shared by all export
// manifest generators.
//
// The rules intentionally differ from encoding/csv: a cell is quoted only
// when it contains a comma, quote, or line break; numeric cells render as
// the bare number; nil cells render empty; and the output may be prefixed
// with a UTF-8 byte-order mark so spreadsheet applications detect the
// encoding.
package csv
