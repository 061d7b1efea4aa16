package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueStates(t *testing.T) {
	unset := Unset[string]()
	assert.True(t, unset.IsUnset())
	assert.False(t, unset.Present())
	_, ok := unset.Get()
	assert.False(t, ok)

	null := Null[string]()
	assert.True(t, null.IsNull())
	assert.True(t, null.Present())
	assert.Nil(t, null.Raw())
	_, ok = null.Get()
	assert.False(t, ok)

	set := Of("hello")
	assert.True(t, set.IsSet())
	assert.True(t, set.Present())
	got, ok := set.Get()
	assert.True(t, ok)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "hello", set.Raw())
}

func TestFromPtr(t *testing.T) {
	// A nil pointer means the key was absent from the request, not an
	// explicit null, so it must stay out of the operation entirely.
	nothing := FromPtr[int64](nil)
	assert.True(t, nothing.IsUnset())
	assert.False(t, nothing.IsNull())

	v := int64(42)
	f := FromPtr(&v)
	assert.True(t, f.IsSet())
	assert.Equal(t, int64(42), f.OrZero())
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, "fallback", Unset[string]().OrElse("fallback"))
	assert.Equal(t, "fallback", Null[string]().OrElse("fallback"))
	assert.Equal(t, "value", Of("value").OrElse("fallback"))
}

func TestMapBoundDropsUnsetKeepsNull(t *testing.T) {
	m := NewMap().
		Put("id", Unset[int64]()).
		Put("title", Of("a title")).
		Put("content", Null[string]()).
		Put("author_id", Of(int64(7)))

	cols, args := m.Bound()

	// Unset columns vanish; Null columns bind as nil.
	assert.Equal(t, []string{"title", "content", "author_id"}, cols)
	assert.Equal(t, []interface{}{"a title", nil, int64(7)}, args)
}

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := NewMap().
		Put("b", Of(2)).
		Put("a", Of(1)).
		Put("c", Of(3))

	assert.Equal(t, []string{"b", "a", "c"}, m.Columns())
}

func TestMapEmpty(t *testing.T) {
	assert.True(t, NewMap().Empty())
	assert.True(t, NewMap().Put("x", Unset[int]()).Empty())
	assert.False(t, NewMap().Put("x", Null[int]()).Empty())
}
