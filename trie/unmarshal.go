package trie

import (
	"github.com/Dexaran/mantis/codec"
	"github.com/Dexaran/mantis/hexprefix"
	"github.com/Dexaran/mantis/rlpval"
)

// Decode maps the raw list shape onto the node variants: a 17-element list
// is a branch, a 2-element list is a leaf or extension depending on the
// hex-prefix flag of its first element, any other shape is unrecognized.
func (c Codec) Decode(v rlpval.Value) (Node, error) {
	items, err := codec.FieldList(v, typeName)
	if err != nil {
		return nil, err
	}
	switch len(items) {
	case BranchChildren + 1:
		return c.decodeBranch(items)
	case 2:
		return c.decodeTwoMemberNode(items)
	default:
		return nil, codec.Errorf(typeName, "unrecognized arity %d", len(items))
	}
}

// DecodeBytes raw-decodes data and then decodes the node from it.
func (c Codec) DecodeBytes(data []byte) (Node, error) {
	v, err := rlpval.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	return c.Decode(v)
}

func (c Codec) decodeBranch(items rlpval.List) (Node, error) {
	var branch Branch
	for i := 0; i < BranchChildren; i++ {
		// children are referenced by hash and resolved lazily by the
		// storage engine, never decoded recursively here
		child, err := codec.FieldBytes(items[i], typeName)
		if err != nil {
			return nil, codec.Errorf(typeName, "branch child %d is not a byte string", i)
		}
		branch.Children[i] = child
	}
	value, err := codec.FieldBytes(items[BranchChildren], typeName)
	if err != nil {
		return nil, codec.Errorf(typeName, "branch terminator is not a byte string")
	}
	branch.Value = value
	return branch, nil
}

func (c Codec) decodeTwoMemberNode(items rlpval.List) (Node, error) {
	compact, err := codec.FieldBytes(items[0], typeName)
	if err != nil {
		return nil, err
	}
	path, isLeaf, err := hexprefix.Decode(compact)
	if err != nil {
		return nil, err
	}
	payload, err := codec.FieldBytes(items[1], typeName)
	if err != nil {
		return nil, err
	}
	if !isLeaf {
		return Extension{Path: path, Child: payload}, nil
	}
	// the leaf payload is itself an embedded RLP encoding
	inner, err := rlpval.DecodeBytes(payload)
	if err != nil {
		return nil, err
	}
	acct, err := c.Accounts.Decode(inner)
	if err != nil {
		return nil, err
	}
	return Leaf{Path: path, Value: acct}, nil
}
