// Package rlpval models the generic recursive RLP container: a value is
// either an opaque byte string or an ordered list of values. The type carries
// no domain meaning on its own; typed codecs impose meaning during decode and
// discard it during encode.
package rlpval

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// MaxDepth bounds nested-list recursion when decoding untrusted input.
const MaxDepth = 32

// ErrMalformed is returned when raw input is inconsistent with its own
// framing: length prefixes claiming more bytes than are available,
// non-canonical prefixes, trailing bytes, or nesting beyond MaxDepth.
var ErrMalformed = errors.New("malformed RLP encoding")

// Value is a raw RLP item, either Bytes or List.
type Value interface {
	rlpValue()
}

// Bytes is an opaque byte string item, possibly empty.
type Bytes []byte

// List is an ordered sequence of items.
type List []Value

func (Bytes) rlpValue() {}
func (List) rlpValue()  {}

// EncodeToBytes serializes a value tree with RLP length-prefix framing. A
// single byte below 0x80 encodes as itself with no prefix. The function is
// total: every tree built from Bytes and List has an encoding.
func EncodeToBytes(v Value) []byte {
	enc, err := rlp.EncodeToBytes(toInterface(v))
	if err != nil {
		// unreachable for trees built from Bytes and List
		panic(fmt.Sprintf("rlpval: unencodable value: %v", err))
	}
	return enc
}

// toInterface converts a value tree to the []byte / []interface{} form
// understood by the underlying rlp encoder.
func toInterface(v Value) interface{} {
	switch val := v.(type) {
	case Bytes:
		return []byte(val)
	case List:
		items := make([]interface{}, len(val))
		for i, item := range val {
			items[i] = toInterface(item)
		}
		return items
	default:
		panic(fmt.Sprintf("rlpval: unknown value type %T", v))
	}
}

// DecodeBytes parses a single top-level value from data. The stream is sized
// to the input, so a prefix claiming more bytes than are available fails, as
// do trailing bytes after the top-level value and lists nested more than
// MaxDepth levels deep. All failures wrap ErrMalformed.
func DecodeBytes(data []byte) (Value, error) {
	s := rlp.NewStream(bytes.NewReader(data), uint64(len(data)))
	v, err := decodeValue(s, 0)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.Kind(); !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(ErrMalformed, "trailing bytes after top-level value")
	}
	return v, nil
}

func decodeValue(s *rlp.Stream, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, errors.Wrapf(ErrMalformed, "list nesting exceeds %d levels", MaxDepth)
	}
	kind, _, err := s.Kind()
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	if kind != rlp.List {
		b, err := s.Bytes()
		if err != nil {
			return nil, errors.Wrap(ErrMalformed, err.Error())
		}
		return Bytes(b), nil
	}
	if _, err := s.List(); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	items := List{}
	for {
		if _, _, err := s.Kind(); err != nil {
			if errors.Is(err, rlp.EOL) {
				break
			}
			return nil, errors.Wrap(ErrMalformed, err.Error())
		}
		item, err := decodeValue(s, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := s.ListEnd(); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	return items, nil
}
