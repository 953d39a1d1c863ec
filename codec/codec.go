// Package codec defines the typed codec contract shared by every domain
// encoder/decoder in this module: encode is total for well-constructed
// values, decode validates structure and fails with a DecodeError naming the
// target type and the mismatch. Composite codecs hold the codecs for their
// field types by value so that composition stays explicit at each call site.
package codec

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/Dexaran/mantis/rlpval"
)

// Codec converts between a domain type and its raw RLP item form.
type Codec[T any] interface {
	Encode(T) rlpval.Value
	Decode(rlpval.Value) (T, error)
}

// DecodeError reports a raw RLP item whose framing is intact but whose shape
// (list arity, byte-string length, nested kind) does not match the target
// type.
type DecodeError struct {
	Type   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s: %s", e.Type, e.Reason)
}

// Errorf builds a DecodeError for the named type.
func Errorf(typ, format string, args ...interface{}) error {
	return &DecodeError{Type: typ, Reason: fmt.Sprintf(format, args...)}
}

// IsDecodeFailure reports whether err belongs to the decode error taxonomy:
// malformed raw framing or a shape mismatch. Anything outside the taxonomy
// must not be swallowed by best-effort decoders.
func IsDecodeFailure(err error) bool {
	var de *DecodeError
	return errors.Is(err, rlpval.ErrMalformed) || errors.As(err, &de)
}

// FieldBytes asserts that v is a byte string.
func FieldBytes(v rlpval.Value, typ string) ([]byte, error) {
	b, ok := v.(rlpval.Bytes)
	if !ok {
		return nil, Errorf(typ, "expected byte string, got list")
	}
	return b, nil
}

// FixedBytes asserts that v is a byte string of exactly n bytes.
func FixedBytes(v rlpval.Value, typ string, n int) ([]byte, error) {
	b, err := FieldBytes(v, typ)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, Errorf(typ, "expected %d byte field, got %d bytes", n, len(b))
	}
	return b, nil
}

// FieldList asserts that v is a list.
func FieldList(v rlpval.Value, typ string) (rlpval.List, error) {
	l, ok := v.(rlpval.List)
	if !ok {
		return nil, Errorf(typ, "expected list, got byte string")
	}
	return l, nil
}

// Uint decodes a canonical big-endian unsigned integer: the empty string is
// zero, leading zero bytes are rejected.
func Uint(v rlpval.Value, typ string) (*big.Int, error) {
	b, err := FieldBytes(v, typ)
	if err != nil {
		return nil, err
	}
	if len(b) > 0 && b[0] == 0 {
		return nil, Errorf(typ, "non-canonical integer (leading zero bytes)")
	}
	return new(big.Int).SetBytes(b), nil
}

// UintValue encodes an unsigned integer in canonical big-endian form. A nil
// integer encodes as zero.
func UintValue(i *big.Int) rlpval.Value {
	if i == nil {
		return rlpval.Bytes{}
	}
	return rlpval.Bytes(i.Bytes())
}
