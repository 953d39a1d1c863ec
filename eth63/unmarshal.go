package eth63

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/Dexaran/mantis/codec"
	"github.com/Dexaran/mantis/log"
	"github.com/Dexaran/mantis/rct"
	"github.com/Dexaran/mantis/rlpval"
	"github.com/Dexaran/mantis/trie"
)

func decodeHashes(v rlpval.Value, typ string) ([]common.Hash, error) {
	items, err := codec.FieldList(v, typ)
	if err != nil {
		return nil, err
	}
	hashes := make([]common.Hash, len(items))
	for i, item := range items {
		b, err := codec.FixedBytes(item, typ, common.HashLength)
		if err != nil {
			return nil, err
		}
		hashes[i] = common.BytesToHash(b)
	}
	return hashes, nil
}

// DecodeGetNodeData unpacks a GetNodeData body.
func DecodeGetNodeData(v rlpval.Value) (GetNodeData, error) {
	hashes, err := decodeHashes(v, "GetNodeData")
	if err != nil {
		return GetNodeData{}, err
	}
	return GetNodeData{Hashes: hashes}, nil
}

// DecodeGetNodeDataBytes raw-decodes data and unpacks a GetNodeData body.
func DecodeGetNodeDataBytes(data []byte) (GetNodeData, error) {
	v, err := rlpval.DecodeBytes(data)
	if err != nil {
		return GetNodeData{}, err
	}
	return DecodeGetNodeData(v)
}

// DecodeNodeData unpacks a NodeData body. Each element gets the full
// two-stage node decode; an element that fails it with a decode-taxonomy
// error is kept as its raw bytes, since responses legitimately interleave
// contract bytecode with structural nodes. Failures outside the taxonomy
// propagate.
func DecodeNodeData(v rlpval.Value) (NodeData, error) {
	items, err := codec.FieldList(v, "NodeData")
	if err != nil {
		return NodeData{}, err
	}
	nodes := trie.Codec{}
	values := make([]NodeOrRaw, len(items))
	for i, item := range items {
		raw, err := codec.FieldBytes(item, "NodeData")
		if err != nil {
			return NodeData{}, err
		}
		node, err := nodes.DecodeBytes(raw)
		switch {
		case err == nil:
			values[i] = NodeOrRaw{Node: node}
		case codec.IsDecodeFailure(err):
			values[i] = NodeOrRaw{Raw: raw}
		default:
			return NodeData{}, err
		}
	}
	return NodeData{Values: values}, nil
}

// DecodeNodeDataBytes raw-decodes data and unpacks a NodeData body.
func DecodeNodeDataBytes(data []byte) (NodeData, error) {
	v, err := rlpval.DecodeBytes(data)
	if err != nil {
		return NodeData{}, err
	}
	return DecodeNodeData(v)
}

// DecodeGetReceipts unpacks a GetReceipts body.
func DecodeGetReceipts(v rlpval.Value) (GetReceipts, error) {
	hashes, err := decodeHashes(v, "GetReceipts")
	if err != nil {
		return GetReceipts{}, err
	}
	return GetReceipts{BlockHashes: hashes}, nil
}

// DecodeGetReceiptsBytes raw-decodes data and unpacks a GetReceipts body.
func DecodeGetReceiptsBytes(data []byte) (GetReceipts, error) {
	v, err := rlpval.DecodeBytes(data)
	if err != nil {
		return GetReceipts{}, err
	}
	return DecodeGetReceipts(v)
}

// DecodeReceipts unpacks a Receipts body. Every element of the outer list
// must itself be a list; a byte string there is a hard failure, not
// something to recover from.
func DecodeReceipts(v rlpval.Value) (Receipts, error) {
	outer, err := codec.FieldList(v, "Receipts")
	if err != nil {
		return Receipts{}, err
	}
	rcts := rct.Codec{Logs: log.Codec{}}
	blocks := make([][]rct.Receipt, len(outer))
	for i, item := range outer {
		inner, ok := item.(rlpval.List)
		if !ok {
			return Receipts{}, codec.Errorf("Receipts", "block %d: expected receipt list, got byte string", i)
		}
		list := make([]rct.Receipt, len(inner))
		for j, rv := range inner {
			r, err := rcts.Decode(rv)
			if err != nil {
				return Receipts{}, err
			}
			list[j] = r
		}
		blocks[i] = list
	}
	return Receipts{ReceiptsForBlocks: blocks}, nil
}

// DecodeReceiptsBytes raw-decodes data and unpacks a Receipts body.
func DecodeReceiptsBytes(data []byte) (Receipts, error) {
	v, err := rlpval.DecodeBytes(data)
	if err != nil {
		return Receipts{}, err
	}
	return DecodeReceipts(v)
}
