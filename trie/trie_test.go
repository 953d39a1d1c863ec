package trie_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"

	"github.com/Dexaran/mantis/codec"
	"github.com/Dexaran/mantis/hexprefix"
	"github.com/Dexaran/mantis/rlpval"
	account "github.com/Dexaran/mantis/state_account"
	"github.com/Dexaran/mantis/trie"
)

var (
	nodeCodec   = trie.Codec{}
	mockAccount = account.Account{
		Nonce:       big.NewInt(2),
		Balance:     big.NewInt(1337),
		StorageRoot: crypto.Keccak256Hash([]byte{0xaa}),
		CodeHash:    crypto.Keccak256Hash([]byte{}),
	}
	mockAccountRLP     = account.EncodeToBytes(mockAccount)
	mockLeafPath       = []byte{0x03, 0x01, 0x01, 0x04, 0x06}
	mockLeafNodeRLP, _ = rlp.EncodeToBytes([]interface{}{
		hexprefix.Encode(mockLeafPath, true),
		mockAccountRLP,
	})
	mockExtensionPath       = []byte{0x01, 0x01, 0x01, 0x04}
	mockExtensionHash       = crypto.Keccak256(mockLeafNodeRLP)
	mockExtensionNodeRLP, _ = rlp.EncodeToBytes([]interface{}{
		hexprefix.Encode(mockExtensionPath, false),
		mockExtensionHash,
	})
	mockChild0           = crypto.Keccak256([]byte{0})
	mockChild5           = crypto.Keccak256([]byte{5})
	mockChildE           = crypto.Keccak256([]byte{14})
	mockBranchNodeRLP, _ = rlp.EncodeToBytes([]interface{}{
		mockChild0,
		[]byte{}, []byte{}, []byte{}, []byte{},
		mockChild5,
		[]byte{}, []byte{}, []byte{}, []byte{}, []byte{}, []byte{}, []byte{}, []byte{},
		mockChildE,
		[]byte{},
		[]byte{},
	})
)

func TestDecodeLeaf(t *testing.T) {
	node, err := nodeCodec.DecodeBytes(mockLeafNodeRLP)
	if err != nil {
		t.Fatalf("unable to decode leaf node: %v", err)
	}
	leaf, ok := node.(trie.Leaf)
	if !ok {
		t.Fatalf("2-element node with leaf flag should decode as Leaf, got %T", node)
	}
	if !bytes.Equal(leaf.Path, mockLeafPath) {
		t.Errorf("leaf path (%x) does not match expected path (%x)", leaf.Path, mockLeafPath)
	}
	if leaf.Value.Balance.Cmp(mockAccount.Balance) != 0 {
		t.Errorf("leaf account balance (%v) does not match expected balance (%v)", leaf.Value.Balance, mockAccount.Balance)
	}
	if leaf.Value.StorageRoot != mockAccount.StorageRoot {
		t.Errorf("leaf account storage root (%x) does not match expected root (%x)", leaf.Value.StorageRoot, mockAccount.StorageRoot)
	}
}

func TestDecodeExtension(t *testing.T) {
	node, err := nodeCodec.DecodeBytes(mockExtensionNodeRLP)
	if err != nil {
		t.Fatalf("unable to decode extension node: %v", err)
	}
	ext, ok := node.(trie.Extension)
	if !ok {
		t.Fatalf("2-element node without leaf flag should decode as Extension, got %T", node)
	}
	if !bytes.Equal(ext.Path, mockExtensionPath) {
		t.Errorf("extension path (%x) does not match expected path (%x)", ext.Path, mockExtensionPath)
	}
	if !bytes.Equal(ext.Child, mockExtensionHash) {
		t.Errorf("extension child hash (%x) does not match expected hash (%x)", ext.Child, mockExtensionHash)
	}
}

func TestDecodeBranch(t *testing.T) {
	node, err := nodeCodec.DecodeBytes(mockBranchNodeRLP)
	if err != nil {
		t.Fatalf("unable to decode branch node: %v", err)
	}
	branch, ok := node.(trie.Branch)
	if !ok {
		t.Fatalf("17-element node should decode as Branch, got %T", node)
	}
	if !bytes.Equal(branch.Children[0], mockChild0) {
		t.Errorf("branch child 0 (%x) does not match expected hash (%x)", branch.Children[0], mockChild0)
	}
	if !bytes.Equal(branch.Children[5], mockChild5) {
		t.Errorf("branch child 5 (%x) does not match expected hash (%x)", branch.Children[5], mockChild5)
	}
	if !bytes.Equal(branch.Children[14], mockChildE) {
		t.Errorf("branch child 14 (%x) does not match expected hash (%x)", branch.Children[14], mockChildE)
	}
	if len(branch.Children[1]) != 0 {
		t.Errorf("branch child 1 should be empty, got %x", branch.Children[1])
	}
	if len(branch.Value) != 0 {
		t.Errorf("branch terminator should be empty, got %x", branch.Value)
	}
}

func TestDecodeUnrecognizedArity(t *testing.T) {
	for _, arity := range []int{0, 1, 3, 16, 18} {
		items := make(rlpval.List, arity)
		for i := range items {
			items[i] = rlpval.Bytes{0x01}
		}
		_, err := nodeCodec.Decode(items)
		var de *codec.DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("arity %d should fail with a DecodeError, got %v", arity, err)
		}
		if de.Type != "MptNode" {
			t.Errorf("arity %d error names type %q, want MptNode", arity, de.Type)
		}
	}
	if _, err := nodeCodec.Decode(rlpval.Bytes{0x01}); !codec.IsDecodeFailure(err) {
		t.Errorf("byte string should not decode as a node, got %v", err)
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	for _, enc := range [][]byte{mockLeafNodeRLP, mockExtensionNodeRLP, mockBranchNodeRLP} {
		node, err := nodeCodec.DecodeBytes(enc)
		if err != nil {
			t.Fatalf("unable to decode node %x: %v", enc, err)
		}
		reenc := nodeCodec.EncodeToBytes(node)
		if !bytes.Equal(reenc, enc) {
			t.Errorf("node re-encoding (%x) does not match original encoding (%x)", reenc, enc)
		}
		again := nodeCodec.EncodeToBytes(node)
		if !bytes.Equal(again, reenc) {
			t.Errorf("repeated node encodings differ: %x vs %x", again, reenc)
		}
	}
}

func TestLeafPayloadDoubleEncoding(t *testing.T) {
	enc := nodeCodec.EncodeToBytes(trie.Leaf{Path: mockLeafPath, Value: mockAccount})
	if !bytes.Equal(enc, mockLeafNodeRLP) {
		t.Errorf("leaf encoding (%x) does not match the expected consensus encoding (%x)", enc, mockLeafNodeRLP)
	}
}

func TestNewBranchArity(t *testing.T) {
	for _, count := range []int{0, 1, 15, 17, 32} {
		children := make([][]byte, count)
		if _, err := trie.NewBranch(children, nil); err == nil {
			t.Errorf("branch construction with %d children should fail", count)
		}
	}
	children := make([][]byte, trie.BranchChildren)
	children[3] = mockChild0
	branch, err := trie.NewBranch(children, []byte{0x01})
	if err != nil {
		t.Fatalf("branch construction with 16 children should succeed: %v", err)
	}
	if !bytes.Equal(branch.Children[3], mockChild0) {
		t.Errorf("branch child 3 (%x) does not match expected hash (%x)", branch.Children[3], mockChild0)
	}
}

func TestChildCid(t *testing.T) {
	ext := trie.Extension{Path: mockExtensionPath, Child: mockExtensionHash}
	c := ext.ChildCid(0x96)
	decoded, err := multihash.Decode(c.Hash())
	if err != nil {
		t.Fatalf("extension child cid has an undecodable multihash: %v", err)
	}
	if !bytes.Equal(decoded.Digest, mockExtensionHash) {
		t.Errorf("extension child cid digest (%x) does not match the child hash (%x)", decoded.Digest, mockExtensionHash)
	}

	var branch trie.Branch
	branch.Children[5] = mockChild5
	if branch.ChildCid(0x96, 0).Defined() {
		t.Errorf("empty branch slot should have no cid")
	}
	decoded, err = multihash.Decode(branch.ChildCid(0x96, 5).Hash())
	if err != nil {
		t.Fatalf("branch child cid has an undecodable multihash: %v", err)
	}
	if !bytes.Equal(decoded.Digest, mockChild5) {
		t.Errorf("branch child cid digest (%x) does not match the child hash (%x)", decoded.Digest, mockChild5)
	}
}
