// Package field provides a three-state wrapper for entity fields.
//
// A field is either Unset (not part of the operation), Null (explicit
// SQL NULL) or Set (a concrete value). The distinction matters when
// building partial mutations: Unset fields never reach the database,
// Null fields are bound as NULL parameters.
package field

// Kind identifies which of the three states a Value holds.
type Kind uint8

const (
	KindUnset Kind = iota
	KindNull
	KindSet
)

// State is the type-erased view of a Value, used when collecting
// heterogeneous fields into a Map.
type State interface {
	// Present reports whether the field takes part in the operation
	// (Null or Set).
	Present() bool

	// Null reports whether the field is an explicit NULL.
	Null() bool

	// Raw returns the bindable parameter value: the concrete value for
	// Set, nil for Null. Calling Raw on an Unset field returns nil.
	Raw() interface{}
}

// Value is a three-state field wrapper. The zero value is Unset.
type Value[T any] struct {
	kind Kind
	val  T
}

// Unset returns a field that is not part of the operation.
func Unset[T any]() Value[T] {
	return Value[T]{}
}

// Null returns a field holding an explicit NULL.
func Null[T any]() Value[T] {
	return Value[T]{kind: KindNull}
}

// Of returns a field holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{kind: KindSet, val: v}
}

// FromPtr maps a nil pointer to Unset and a non-nil pointer to its
// value. Useful for partial-update request bodies where an omitted
// JSON key decodes to a nil pointer.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return Unset[T]()
	}
	return Of(*p)
}

func (v Value[T]) Kind() Kind    { return v.kind }
func (v Value[T]) IsUnset() bool { return v.kind == KindUnset }
func (v Value[T]) IsNull() bool  { return v.kind == KindNull }
func (v Value[T]) IsSet() bool   { return v.kind == KindSet }

// Get returns the held value and whether the field is Set.
func (v Value[T]) Get() (T, bool) {
	return v.val, v.kind == KindSet
}

// OrZero returns the held value, or the zero value of T when the field
// is not Set.
func (v Value[T]) OrZero() T {
	return v.val
}

// OrElse returns the held value, or fallback when the field is not Set.
func (v Value[T]) OrElse(fallback T) T {
	if v.kind == KindSet {
		return v.val
	}
	return fallback
}

// Present implements State.
func (v Value[T]) Present() bool { return v.kind != KindUnset }

// Null implements State.
func (v Value[T]) Null() bool { return v.kind == KindNull }

// Raw implements State.
func (v Value[T]) Raw() interface{} {
	if v.kind == KindSet {
		return v.val
	}
	return nil
}
