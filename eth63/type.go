// Package eth63 implements the RLP bodies of the eth/63 state-retrieval
// messages: GetNodeData, NodeData, GetReceipts and Receipts. Message codes
// are relative to the subprotocol offset negotiated by the transport layer;
// the code travels in the outer framing and is never embedded in the body.
package eth63

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/Dexaran/mantis/rct"
	"github.com/Dexaran/mantis/trie"
)

// Message codes, relative to the subprotocol offset.
const (
	GetNodeDataCode = 0x0d
	NodeDataCode    = 0x0e
	GetReceiptsCode = 0x0f
	ReceiptsCode    = 0x10
)

// Message is a protocol message body.
type Message interface {
	Code() uint64 // Code returns the message code relative to the subprotocol offset.
	Name() string // Name returns a string corresponding to the message type.
}

// GetNodeData requests trie nodes or contract code by keccak hash.
type GetNodeData struct {
	Hashes []common.Hash
}

// NodeData answers GetNodeData. Elements that parse as trie nodes are
// carried structurally; anything else (contract bytecode, unknown blobs)
// rides along as its raw bytes.
type NodeData struct {
	Values []NodeOrRaw
}

// NodeOrRaw is either a structurally decoded trie node or the element's raw
// bytes, never both.
type NodeOrRaw struct {
	Node trie.Node // nil when the element did not decode as a node
	Raw  []byte    // the preserved bytes when Node is nil
}

// IsNode reports whether the element decoded structurally.
func (e NodeOrRaw) IsNode() bool { return e.Node != nil }

// GetReceipts requests the receipt lists of the given blocks.
type GetReceipts struct {
	BlockHashes []common.Hash
}

// Receipts answers GetReceipts with one receipt list per requested block, in
// request order.
type Receipts struct {
	ReceiptsForBlocks [][]rct.Receipt
}

func (GetNodeData) Code() uint64 { return GetNodeDataCode }
func (GetNodeData) Name() string { return "GetNodeData" }

func (NodeData) Code() uint64 { return NodeDataCode }
func (NodeData) Name() string { return "NodeData" }

func (GetReceipts) Code() uint64 { return GetReceiptsCode }
func (GetReceipts) Name() string { return "GetReceipts" }

func (Receipts) Code() uint64 { return ReceiptsCode }
func (Receipts) Name() string { return "Receipts" }
