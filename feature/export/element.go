package export

import (
	"brick-manager/core/csv"
)

var elementHeader = []string{"Element ID", "Quantity"}

// GenerateElement renders the manufacturer element manifest. A row is
// included only when it carries an element code and a positive shortage;
// every other row is reported as unmapped.
func GenerateElement(rows []MissingRow, opts Options) Output {
	body := make([][]any, 0, len(rows))
	unmapped := make([]MissingRow, 0)

	for _, row := range rows {
		element := row.elementID()
		if element == "" || row.QuantityMissing <= 0 {
			unmapped = append(unmapped, row)
			continue
		}
		body = append(body, []any{element, row.QuantityMissing})
	}

	return Output{
		CSV:      csv.Encode(elementHeader, body, csv.Options{IncludeBOM: opts.IncludeBOM}),
		Unmapped: unmapped,
	}
}
