package table

import (
	"math"
	"strconv"
	"strings"
)

// Infer builds a typed Table from a header and raw text records, choosing
// for each column the narrowest type that parses every non-empty value:
// integer before float before string. A column whose values all read as
// true/false becomes bool. Empty cells are null and do not constrain the
// choice. Timestamp-looking columns are left as strings; parsing them is
// an explicit, separate step (see ParseTimestamp).
func Infer(header []string, records [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, &SchemaError{Reason: "no columns"}
	}
	if len(records) == 0 {
		return nil, &SchemaError{Column: header[0], Reason: "no rows to infer from"}
	}
	for i, rec := range records {
		if len(rec) != len(header) {
			return nil, &SchemaError{Row: i, Reason: "row arity mismatch"}
		}
	}

	cols := make([]Column, len(header))
	for c, name := range header {
		cols[c] = Column{Name: name, Type: inferColumnType(records, c)}
	}

	rows := make([][]interface{}, len(records))
	for r, rec := range records {
		row := make([]interface{}, len(cols))
		for c := range cols {
			row[c] = parseCell(rec[c], cols[c].Type)
		}
		rows[r] = row
	}
	return &Table{cols: cols, rows: rows}, nil
}

func inferColumnType(records [][]string, col int) Type {
	canInt, canFloat, canBool := true, true, true
	nonEmpty := false
	for _, rec := range records {
		raw := strings.TrimSpace(rec[col])
		if raw == "" {
			continue
		}
		nonEmpty = true
		if canInt {
			if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
				canInt = false
			}
		}
		if canFloat {
			if _, err := strconv.ParseFloat(raw, 64); err != nil {
				canFloat = false
			}
		}
		if canBool {
			if _, err := strconv.ParseBool(raw); err != nil {
				canBool = false
			}
		}
	}
	// An all-null column carries no evidence; string is the safe widest type.
	if !nonEmpty {
		return TypeString
	}
	switch {
	case canInt:
		return TypeInt
	case canFloat:
		return TypeFloat
	case canBool:
		return TypeBool
	default:
		return TypeString
	}
}

// parseCell converts one raw cell to its typed value. A cell that fails its
// column type is recovered as null rather than failing the load.
func parseCell(raw string, typ Type) interface{} {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	switch typ {
	case TypeInt:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil
		}
		return v
	case TypeFloat:
		v, err := strconv.ParseFloat(raw, 64)
		// NaN and infinities have no defined ordering or aggregate value;
		// recover them as null like any other unusable cell.
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return v
	case TypeBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil
		}
		return v
	default:
		return raw
	}
}
