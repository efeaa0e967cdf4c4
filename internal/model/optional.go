package model

import (
	"bytes"
	"encoding/json"
)

// Optional separates "absent" from "present but empty". A JSON null or a
// missing key decodes to an unset Optional; use the omitzero tag to keep an
// unset value off the wire.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsSet() bool { return o.set }

// IsZero lets encoding/json's omitzero drop unset values.
func (o Optional[T]) IsZero() bool { return !o.set }

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// OrZero returns the value, or T's zero value when unset.
func (o Optional[T]) OrZero() T { return o.value }

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Optional[T]{value: v, set: true}
	return nil
}
