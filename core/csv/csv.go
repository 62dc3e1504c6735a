package csv

import (
	"fmt"
	"strconv"
	"strings"
)

// BOM is the UTF-8 byte-order mark some spreadsheet applications require.
const BOM = "\ufeff"

// Options controls manifest encoding.
type Options struct {
	// IncludeBOM prefixes the output with a UTF-8 byte-order mark.
	IncludeBOM bool
}

// EscapeCell renders a single cell. Strings are wrapped in double quotes
// with internal quotes doubled whenever they contain a comma, quote, or
// line break; numbers render bare; nil renders empty.
func EscapeCell(v any) string {
	switch cell := v.(type) {
	case nil:
		return ""
	case string:
		return escapeString(cell)
	case int:
		return strconv.Itoa(cell)
	case int64:
		return strconv.FormatInt(cell, 10)
	case float64:
		return strconv.FormatFloat(cell, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(cell)
	default:
		return escapeString(fmt.Sprintf("%v", cell))
	}
}

// Encode renders a header line plus one line per row. With zero rows the
// result is the header line only.
func Encode(header []string, rows [][]any, opts Options) string {
	var sb strings.Builder
	if opts.IncludeBOM {
		sb.WriteString(BOM)
	}

	for i, name := range header {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(escapeString(name))
	}

	for _, row := range rows {
		sb.WriteByte('\n')
		for i, cell := range row {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(EscapeCell(cell))
		}
	}

	return sb.String()
}

func escapeString(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
}
