package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semantic-notes-be/internal/repository/contract"
	"semantic-notes-be/pkg/field"
)

func TestBuildInsert(t *testing.T) {
	fm := field.NewMap().
		Put("title", field.Of("a title")).
		Put("content", field.Null[string]()).
		Put("author_id", field.Of(int64(1)))

	sql, args, err := buildInsert("note.content", fm)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO note.content (title, content, author_id) VALUES (?, ?, ?) RETURNING *", sql)
	assert.Equal(t, []interface{}{"a title", nil, int64(1)}, args)
}

func TestBuildInsertEmpty(t *testing.T) {
	_, _, err := buildInsert("note.content", field.NewMap())
	assert.ErrorIs(t, err, contract.ErrPrecondition)

	// All-Unset behaves like empty.
	fm := field.NewMap().Put("title", field.Unset[string]())
	_, _, err = buildInsert("note.content", fm)
	assert.ErrorIs(t, err, contract.ErrPrecondition)
}

func TestBuildUpdate(t *testing.T) {
	set := field.NewMap().
		Put("title", field.Of("new")).
		Put("content", field.Null[string]())
	where := field.NewMap().
		Put("id", field.Of(int64(9)))

	sql, args, err := buildUpdate("note.content", set, where)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE note.content SET title = ?, content = ? WHERE id = ? RETURNING *", sql)
	assert.Equal(t, []interface{}{"new", nil, int64(9)}, args)
}

func TestBuildUpdatePreconditions(t *testing.T) {
	set := field.NewMap().Put("title", field.Of("new"))
	where := field.NewMap().Put("id", field.Of(int64(9)))

	_, _, err := buildUpdate("note.content", field.NewMap(), where)
	assert.ErrorIs(t, err, contract.ErrPrecondition)

	_, _, err = buildUpdate("note.content", set, field.NewMap())
	assert.ErrorIs(t, err, contract.ErrPrecondition)
}

func TestBuildDelete(t *testing.T) {
	where := field.NewMap().
		Put("id", field.Of(int64(9))).
		Put("author_id", field.Of(int64(1)))

	sql, args, err := buildDelete("note.content", where)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM note.content WHERE id = ? AND author_id = ? RETURNING *", sql)
	assert.Equal(t, []interface{}{int64(9), int64(1)}, args)
}

func TestBuildDeleteEmptyWhere(t *testing.T) {
	_, _, err := buildDelete("note.content", field.NewMap())
	assert.ErrorIs(t, err, contract.ErrPrecondition)
}

func TestBuildSelect(t *testing.T) {
	sql, args := buildSelect("note.permission", field.NewMap().Put("note_id", field.Of(int64(3))))
	assert.Equal(t, "SELECT * FROM note.permission WHERE note_id = ?", sql)
	assert.Equal(t, []interface{}{int64(3)}, args)

	// Unlike writes, an unfiltered select is allowed.
	sql, args = buildSelect("note.permission", field.NewMap())
	assert.Equal(t, "SELECT * FROM note.permission", sql)
	assert.Empty(t, args)
}

func TestBuildersUseOnlyPlaceholders(t *testing.T) {
	// Values never appear in the statement text.
	fm := field.NewMap().Put("title", field.Of("'); DROP TABLE note.content; --"))
	sql, _, err := buildInsert("note.content", fm)
	require.NoError(t, err)
	assert.False(t, strings.Contains(sql, "DROP TABLE"))
}
