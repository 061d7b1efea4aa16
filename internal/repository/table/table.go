// Package table implements a generic, relation-agnostic CRUD primitive.
// A Table turns the populated fields of an entity (as a field.Map) into
// parameterized INSERT/UPDATE/DELETE/SELECT statements and executes
// them through GORM. Typed repositories sit on top of it.
package table

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/pkg/field"
)

// Row is one result row keyed by column name, as returned by
// RETURNING * or SELECT *.
type Row = map[string]interface{}

type Table struct {
	db   *gorm.DB
	name string
}

// New creates a Table for the given relation. The db handle may be a
// transaction; the Table issues single statements and owns no
// transactional state itself.
func New(db *gorm.DB, name string) *Table {
	return &Table{db: db, name: name}
}

func (t *Table) Name() string {
	return t.name
}

// Insert writes one row built from the populated fields and returns it
// as stored (server-assigned defaults included).
func (t *Table) Insert(ctx context.Context, fields *field.Map) (Row, error) {
	sql, args, err := buildInsert(t.name, fields)
	if err != nil {
		return nil, err
	}

	var row Row
	res := t.db.WithContext(ctx).Raw(sql, args...).Scan(&row)
	if res.Error != nil {
		return nil, fmt.Errorf("insert into %s: %w", t.name, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("insert into %s: %w", t.name, contract.ErrWriteFailed)
	}
	return row, nil
}

// Update applies the populated SET fields to all rows matching the
// WHERE fields and returns the first updated row. An empty WHERE map
// fails with contract.ErrPrecondition before any store call.
func (t *Table) Update(ctx context.Context, set, where *field.Map) (Row, error) {
	sql, args, err := buildUpdate(t.name, set, where)
	if err != nil {
		return nil, err
	}

	var rows []Row
	res := t.db.WithContext(ctx).Raw(sql, args...).Scan(&rows)
	if res.Error != nil {
		return nil, fmt.Errorf("update %s: %w", t.name, res.Error)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("update %s: %w", t.name, contract.ErrWriteFailed)
	}
	return rows[0], nil
}

// Delete removes all rows matching the WHERE fields and returns the
// first removed row. An empty WHERE map fails with
// contract.ErrPrecondition before any store call.
func (t *Table) Delete(ctx context.Context, where *field.Map) (Row, error) {
	sql, args, err := buildDelete(t.name, where)
	if err != nil {
		return nil, err
	}

	var rows []Row
	res := t.db.WithContext(ctx).Raw(sql, args...).Scan(&rows)
	if res.Error != nil {
		return nil, fmt.Errorf("delete from %s: %w", t.name, res.Error)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("delete from %s: %w", t.name, contract.ErrWriteFailed)
	}
	return rows[0], nil
}

// Select returns all rows matching the WHERE fields as equality
// predicates conjoined with AND. An empty WHERE map returns every row;
// no match yields an empty slice, never an error.
func (t *Table) Select(ctx context.Context, where *field.Map) ([]Row, error) {
	sql, args := buildSelect(t.name, where)

	var rows []Row
	if err := t.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("select from %s: %w", t.name, err)
	}
	return rows, nil
}
