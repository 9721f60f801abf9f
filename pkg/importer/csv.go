package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseCSV reads an uploaded CSV file with a header row.
//
// Header names are matched case-insensitively against the known fields,
// other columns are kept as they are. Values are not validated here,
// use Reconcile for that.
func ParseCSV(f io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []RawRow{}, nil
	}
	if err != nil {
		return readError(err)
	}

	columns, err := headerColumns(header)
	if err != nil {
		return csvReadError(reader, err)
	}

	rows := []RawRow{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return readError(err)
		}

		row := RawRow{}
		for i, value := range record {
			if i >= len(columns) || columns[i] == "" {
				continue
			}

			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			row[columns[i]] = value
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// headerColumns maps the header to field names.
func headerColumns(header []string) ([]string, error) {
	columns := make([]string, len(header))
	known := 0

	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		columns[i] = h

		for _, field := range knownFields {
			if strings.EqualFold(h, field) {
				columns[i] = field
				known++
				break
			}
		}
	}

	if known == 0 {
		return nil, ErrCSVHeader
	}

	return columns, nil
}

// csvReadError returns an error with the line of the last record read.
func csvReadError(r *csv.Reader, err error) ([]RawRow, error) {
	line, _ := r.FieldPos(0)
	return []RawRow{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}

// readError wraps errors returned by the CSV reader itself.
func readError(err error) ([]RawRow, error) {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return []RawRow{}, fmt.Errorf("error in line %d of the CSV: %w", parseErr.Line, err)
	}

	return []RawRow{}, fmt.Errorf("could not read CSV: %w", err)
}
