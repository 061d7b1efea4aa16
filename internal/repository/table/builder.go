package table

import (
	"fmt"
	"strings"

	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/pkg/field"
)

// Statement builders. Column names come from the mapper layer (never
// from request data); every value travels as a bind parameter. The
// builders are pure so the precondition checks run before any store
// call.

func buildInsert(tableName string, fields *field.Map) (string, []interface{}, error) {
	cols, args := fields.Bound()
	if len(cols) == 0 {
		return "", nil, fmt.Errorf("insert into %s: %w", tableName, contract.ErrPrecondition)
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(tableName)
	b.WriteString(" (")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(") VALUES (")
	for i := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('?')
	}
	b.WriteString(") RETURNING *")
	return b.String(), args, nil
}

func buildUpdate(tableName string, set, where *field.Map) (string, []interface{}, error) {
	setCols, setArgs := set.Bound()
	if len(setCols) == 0 {
		return "", nil, fmt.Errorf("update %s: empty SET: %w", tableName, contract.ErrPrecondition)
	}
	whereCols, whereArgs := where.Bound()
	if len(whereCols) == 0 {
		// An unconditional update is never permitted.
		return "", nil, fmt.Errorf("update %s: empty WHERE: %w", tableName, contract.ErrPrecondition)
	}

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(tableName)
	b.WriteString(" SET ")
	for i, c := range setCols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c)
		b.WriteString(" = ?")
	}
	b.WriteString(" WHERE ")
	writeConditions(&b, whereCols)
	b.WriteString(" RETURNING *")
	return b.String(), append(setArgs, whereArgs...), nil
}

func buildDelete(tableName string, where *field.Map) (string, []interface{}, error) {
	whereCols, whereArgs := where.Bound()
	if len(whereCols) == 0 {
		// Guards against accidental full-table deletes.
		return "", nil, fmt.Errorf("delete from %s: empty WHERE: %w", tableName, contract.ErrPrecondition)
	}

	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(tableName)
	b.WriteString(" WHERE ")
	writeConditions(&b, whereCols)
	b.WriteString(" RETURNING *")
	return b.String(), whereArgs, nil
}

func buildSelect(tableName string, where *field.Map) (string, []interface{}) {
	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	b.WriteString(tableName)

	whereCols, whereArgs := where.Bound()
	if len(whereCols) > 0 {
		b.WriteString(" WHERE ")
		writeConditions(&b, whereCols)
	}
	return b.String(), whereArgs
}

func writeConditions(b *strings.Builder, cols []string) {
	for i, c := range cols {
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString(c)
		b.WriteString(" = ?")
	}
}
