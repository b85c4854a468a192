package hashing

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ErrSerialization matches every [SerializationError] via errors.Is.
var ErrSerialization = errors.New("kbloom: item serialization failed")

// SerializationError is returned when an item cannot be converted to its
// canonical byte form. Nothing is hashed when it occurs.
type SerializationError struct {
	Item any
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("kbloom: cannot serialize item of type %T: %v", e.Item, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrSerialization].
func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}

// canonicalMode sorts map keys and uses the shortest encodings, so equal
// values always serialize to equal bytes.
var canonicalMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("hashing: invalid canonical CBOR options: %v", err))
	}
	return em
}()

// CBOR serializes items with canonical CBOR (RFC 7049 section 3.9). Values
// such as channels and functions have no CBOR form and are rejected.
type CBOR struct{}

// Serialize implements [Serializer].
func (CBOR) Serialize(item any) ([]byte, error) {
	b, err := canonicalMode.Marshal(item)
	if err != nil {
		return nil, &SerializationError{Item: item, Err: err}
	}
	return b, nil
}
