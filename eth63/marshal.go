package eth63

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/Dexaran/mantis/log"
	"github.com/Dexaran/mantis/rct"
	"github.com/Dexaran/mantis/rlpval"
	"github.com/Dexaran/mantis/trie"
)

func encodeHashes(hashes []common.Hash) rlpval.Value {
	items := make(rlpval.List, len(hashes))
	for i, h := range hashes {
		items[i] = rlpval.Bytes(h.Bytes())
	}
	return items
}

// Encode returns the message body as a raw RLP item.
func (m GetNodeData) Encode() rlpval.Value {
	return encodeHashes(m.Hashes)
}

// EncodeToBytes returns the framed body bytes.
func (m GetNodeData) EncodeToBytes() []byte {
	return rlpval.EncodeToBytes(m.Encode())
}

// Encode returns the message body as a raw RLP item. A structural element
// re-encodes through the trie codec; a raw element passes through untouched.
func (m NodeData) Encode() rlpval.Value {
	nodes := trie.Codec{}
	items := make(rlpval.List, len(m.Values))
	for i, e := range m.Values {
		if e.IsNode() {
			items[i] = rlpval.Bytes(nodes.EncodeToBytes(e.Node))
		} else {
			items[i] = rlpval.Bytes(e.Raw)
		}
	}
	return items
}

// EncodeToBytes returns the framed body bytes.
func (m NodeData) EncodeToBytes() []byte {
	return rlpval.EncodeToBytes(m.Encode())
}

// Encode returns the message body as a raw RLP item.
func (m GetReceipts) Encode() rlpval.Value {
	return encodeHashes(m.BlockHashes)
}

// EncodeToBytes returns the framed body bytes.
func (m GetReceipts) EncodeToBytes() []byte {
	return rlpval.EncodeToBytes(m.Encode())
}

// Encode returns the message body as a raw RLP item: an outer list with one
// inner receipt list per block.
func (m Receipts) Encode() rlpval.Value {
	rcts := rct.Codec{Logs: log.Codec{}}
	outer := make(rlpval.List, len(m.ReceiptsForBlocks))
	for i, block := range m.ReceiptsForBlocks {
		inner := make(rlpval.List, len(block))
		for j, r := range block {
			inner[j] = rcts.Encode(r)
		}
		outer[i] = inner
	}
	return outer
}

// EncodeToBytes returns the framed body bytes.
func (m Receipts) EncodeToBytes() []byte {
	return rlpval.EncodeToBytes(m.Encode())
}
