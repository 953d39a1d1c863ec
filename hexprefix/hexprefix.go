// Package hexprefix implements the compact hex-prefix encoding that packs a
// trie path (a sequence of 4-bit nibbles) together with a leaf/extension flag
// into whole bytes. The flag nibble occupies the high half of the first byte:
// bit 1 marks a leaf, bit 0 marks an odd-length path whose first nibble sits
// in the low half of the same byte.
package hexprefix

import (
	"github.com/pkg/errors"

	"github.com/Dexaran/mantis/rlpval"
)

const (
	flagOdd  = 1
	flagLeaf = 2
)

// Encode packs a nibble path and the leaf flag into bytes. Callers must
// supply nibble values below 16.
func Encode(nibbles []byte, isLeaf bool) []byte {
	flag := byte(0)
	if isLeaf {
		flag = flagLeaf
	}
	buf := make([]byte, len(nibbles)/2+1)
	if len(nibbles)&1 == 1 {
		flag |= flagOdd
		buf[0] = flag<<4 | nibbles[0]
		nibbles = nibbles[1:]
	} else {
		buf[0] = flag << 4
	}
	packNibbles(nibbles, buf[1:])
	return buf
}

func packNibbles(nibbles []byte, bytes []byte) {
	for bi, ni := 0, 0; ni < len(nibbles); bi, ni = bi+1, ni+2 {
		bytes[bi] = nibbles[ni]<<4 | nibbles[ni+1]
	}
}

// Decode unpacks hex-prefix bytes back into the nibble path and leaf flag.
// It is the exact left inverse of Encode for all valid inputs. Empty input,
// an out-of-range flag nibble and nonzero padding fail with ErrMalformed.
func Decode(b []byte) ([]byte, bool, error) {
	if len(b) == 0 {
		return nil, false, errors.Wrap(rlpval.ErrMalformed, "empty hex-prefix input")
	}
	flag := b[0] >> 4
	if flag > flagLeaf|flagOdd {
		return nil, false, errors.Wrapf(rlpval.ErrMalformed, "invalid hex-prefix flag nibble %d", flag)
	}
	isLeaf := flag&flagLeaf != 0
	nibbles := make([]byte, 0, len(b)*2-1)
	if flag&flagOdd != 0 {
		nibbles = append(nibbles, b[0]&0x0f)
	} else if b[0]&0x0f != 0 {
		return nil, false, errors.Wrap(rlpval.ErrMalformed, "nonzero hex-prefix padding nibble")
	}
	for _, by := range b[1:] {
		nibbles = append(nibbles, by>>4, by&0x0f)
	}
	return nibbles, isLeaf, nil
}
