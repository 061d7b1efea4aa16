package mapper

import (
	"time"

	"semantic-notes-be/internal/repository/table"
	"semantic-notes-be/pkg/field"
)

// Row-to-field helpers. A column missing from the row maps to Unset, a
// SQL NULL to Null, anything else to a value. Drivers are not uniform
// about numeric widths, so the integer helper accepts the usual ones.

func int64Field(row table.Row, col string) field.Value[int64] {
	v, ok := row[col]
	if !ok {
		return field.Unset[int64]()
	}
	if v == nil {
		return field.Null[int64]()
	}
	switch x := v.(type) {
	case int64:
		return field.Of(x)
	case int32:
		return field.Of(int64(x))
	case int:
		return field.Of(int64(x))
	case float64:
		return field.Of(int64(x))
	default:
		return field.Null[int64]()
	}
}

func stringField(row table.Row, col string) field.Value[string] {
	v, ok := row[col]
	if !ok {
		return field.Unset[string]()
	}
	if v == nil {
		return field.Null[string]()
	}
	switch x := v.(type) {
	case string:
		return field.Of(x)
	case []byte:
		return field.Of(string(x))
	default:
		return field.Null[string]()
	}
}

func timeField(row table.Row, col string) field.Value[time.Time] {
	v, ok := row[col]
	if !ok {
		return field.Unset[time.Time]()
	}
	if v == nil {
		return field.Null[time.Time]()
	}
	if t, ok := v.(time.Time); ok {
		return field.Of(t)
	}
	return field.Null[time.Time]()
}
