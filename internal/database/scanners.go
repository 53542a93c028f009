// Package database provides read-only access to the flight-delay store.
//
// FILE: scanners.go
// PURPOSE: Converts raw result sets into Records keyed by column name.
//
// KEY FUNCTIONS:
// - scanRecords: Materializes every row of a result set
// - normalizeValue: Converts driver values into display-friendly Go values
package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// Record is one result row, keyed by UPPERCASED column name.
// NULL columns are present with a nil value.
type Record map[string]any

// Has reports whether the record carries a column (even if NULL)
func (r Record) Has(column string) bool {
	_, ok := r[strings.ToUpper(column)]
	return ok
}

// scanRecords reads every remaining row. When two projected columns share a
// name the later one wins.
func scanRecords(rows *sql.Rows) ([]Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	keys := make([]string, len(columns))
	for i, col := range columns {
		keys[i] = strings.ToUpper(col)
	}

	records := make([]Record, 0)
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		rec := make(Record, len(columns))
		for i, key := range keys {
			rec[key] = normalizeValue(values[i])
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return records, nil
}

// normalizeValue copies driver-owned byte slices into strings; MySQL returns
// text columns as []byte when scanning into interface values.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case sql.RawBytes:
		return string(val)
	default:
		return val
	}
}
