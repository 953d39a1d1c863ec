package trie

import (
	"fmt"

	"github.com/Dexaran/mantis/codec"
	"github.com/Dexaran/mantis/hexprefix"
	"github.com/Dexaran/mantis/rlpval"
	account "github.com/Dexaran/mantis/state_account"
)

// Codec converts trie nodes to and from their structural RLP shapes. The
// account codec for leaf payloads is held by value.
type Codec struct {
	Accounts account.Codec
}

var _ codec.Codec[Node] = Codec{}

// Encode packs a node into its wire shape: a branch is a 17-element list, an
// extension and a leaf are 2-element lists distinguished by the hex-prefix
// flag. A leaf payload is double-encoded: the account's own RLP encoding is
// embedded as a byte string inside the node list.
func (c Codec) Encode(n Node) rlpval.Value {
	switch node := n.(type) {
	case Branch:
		items := make(rlpval.List, 0, BranchChildren+1)
		for _, child := range node.Children {
			items = append(items, rlpval.Bytes(child))
		}
		return append(items, rlpval.Bytes(node.Value))
	case Extension:
		return rlpval.List{
			rlpval.Bytes(hexprefix.Encode(node.Path, false)),
			rlpval.Bytes(node.Child),
		}
	case Leaf:
		return rlpval.List{
			rlpval.Bytes(hexprefix.Encode(node.Path, true)),
			rlpval.Bytes(rlpval.EncodeToBytes(c.Accounts.Encode(node.Value))),
		}
	default:
		panic(fmt.Sprintf("trie: unknown node type %T", n))
	}
}

// EncodeToBytes returns the node's full RLP encoding.
func (c Codec) EncodeToBytes(n Node) []byte {
	return rlpval.EncodeToBytes(c.Encode(n))
}
