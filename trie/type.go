package trie

import (
	"github.com/ipfs/go-cid"
	"github.com/pkg/errors"

	"github.com/Dexaran/mantis/shared"
	account "github.com/Dexaran/mantis/state_account"
)

// Node is a Merkle Patricia trie node. The variant set is closed: Branch,
// Extension and Leaf. The wire form carries no type tag, so the codec
// disambiguates by list arity, with the hex-prefix leaf flag as the
// tiebreaker between the two 2-element shapes.
type Node interface {
	trieNode()
}

// BranchChildren is the fixed number of child slots in a branch node.
const BranchChildren = 16

// Branch has sixteen child hash slots, one per next path nibble, plus a
// terminator value for keys ending at this node. Children are referenced by
// keccak hash, never held directly; an empty slot is an empty byte slice.
type Branch struct {
	Children [BranchChildren][]byte
	Value    []byte
}

// Extension compresses a shared path fragment. Child is the keccak hash of
// the next node; resolving it is the storage engine's job.
type Extension struct {
	Path  []byte // nibbles
	Child []byte
}

// Leaf carries the remaining path nibbles and the account they lead to.
type Leaf struct {
	Path  []byte // nibbles
	Value account.Account
}

func (Branch) trieNode()    {}
func (Extension) trieNode() {}
func (Leaf) trieNode()      {}

// NewBranch builds a branch from a slice of child hashes. Any count other
// than sixteen is a contract violation and is rejected here, before the
// value can ever reach an encoder.
func NewBranch(children [][]byte, value []byte) (Branch, error) {
	if len(children) != BranchChildren {
		return Branch{}, errors.Errorf("branch node requires exactly %d child slots, got %d", BranchChildren, len(children))
	}
	b := Branch{Value: value}
	copy(b.Children[:], children)
	return b, nil
}

// ChildCid returns the content address of the child in slot i under the
// given multicodec, or cid.Undef for an empty slot.
func (b Branch) ChildCid(codec uint64, i int) cid.Cid {
	if len(b.Children[i]) == 0 {
		return cid.Undef
	}
	return shared.Keccak256ToCid(codec, b.Children[i])
}

// ChildCid returns the content address of the extension's child node.
func (e Extension) ChildCid(codec uint64) cid.Cid {
	return shared.Keccak256ToCid(codec, e.Child)
}

// EncodedCid hashes an encoded node and returns its content address under
// the given multicodec.
func EncodedCid(codec uint64, enc []byte) (cid.Cid, error) {
	return shared.RawToCid(codec, enc)
}

const typeName = "MptNode"
