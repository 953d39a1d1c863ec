package rct_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Dexaran/mantis/codec"
	"github.com/Dexaran/mantis/log"
	"github.com/Dexaran/mantis/rct"
	"github.com/Dexaran/mantis/rlpval"
)

var (
	rctCodec    = rct.Codec{Logs: log.Codec{}}
	mockReceipt = rct.Receipt{
		PostTxState:       crypto.Keccak256([]byte{0x01}),
		CumulativeGasUsed: big.NewInt(21000),
		Bloom:             make([]byte, 256),
		Logs: []log.Log{
			{
				Address: common.BytesToAddress([]byte{0x11}),
				Topics:  []common.Hash{crypto.Keccak256Hash([]byte("Transfer")), common.HexToHash("0x01")},
				Data:    []byte{0xca, 0xfe},
			},
			{
				Address: common.BytesToAddress([]byte{0x22}),
				Topics:  nil,
				Data:    nil,
			},
		},
	}
)

func TestReceiptCodec(t *testing.T) {
	enc := rlpval.EncodeToBytes(rctCodec.Encode(mockReceipt))
	v, err := rlpval.DecodeBytes(enc)
	if err != nil {
		t.Fatalf("unable to raw-decode receipt encoding: %v", err)
	}
	dec, err := rctCodec.Decode(v)
	if err != nil {
		t.Fatalf("unable to decode receipt: %v", err)
	}
	if !bytes.Equal(dec.PostTxState, mockReceipt.PostTxState) {
		t.Errorf("receipt post state (%x) does not match expected post state (%x)", dec.PostTxState, mockReceipt.PostTxState)
	}
	if dec.CumulativeGasUsed.Cmp(mockReceipt.CumulativeGasUsed) != 0 {
		t.Errorf("receipt cumulative gas used (%v) does not match expected value (%v)", dec.CumulativeGasUsed, mockReceipt.CumulativeGasUsed)
	}
	if !bytes.Equal(dec.Bloom, mockReceipt.Bloom) {
		t.Errorf("receipt bloom (%x) does not match expected bloom (%x)", dec.Bloom, mockReceipt.Bloom)
	}
	if len(dec.Logs) != len(mockReceipt.Logs) {
		t.Fatalf("receipt should have %d logs, got %d", len(mockReceipt.Logs), len(dec.Logs))
	}
	for i, l := range dec.Logs {
		if l.Address != mockReceipt.Logs[i].Address {
			t.Errorf("receipt log%d address (%x) does not match expected address (%x)", i, l.Address, mockReceipt.Logs[i].Address)
		}
		if len(l.Topics) != len(mockReceipt.Logs[i].Topics) {
			t.Errorf("receipt log%d should have %d topics, got %d", i, len(mockReceipt.Logs[i].Topics), len(l.Topics))
		}
	}
	reenc := rlpval.EncodeToBytes(rctCodec.Encode(dec))
	if !bytes.Equal(reenc, enc) {
		t.Errorf("receipt re-encoding (%x) does not match original encoding (%x)", reenc, enc)
	}
}

func TestReceiptDecodeShape(t *testing.T) {
	if _, err := rctCodec.Decode(rlpval.List{rlpval.Bytes{}, rlpval.Bytes{}}); !codec.IsDecodeFailure(err) {
		t.Errorf("2-element list should not decode as receipt, got %v", err)
	}
	badLogs := rctCodec.Encode(mockReceipt).(rlpval.List)
	badLogs[3] = rlpval.Bytes{0x01}
	if _, err := rctCodec.Decode(badLogs); !codec.IsDecodeFailure(err) {
		t.Errorf("byte string logs field should not decode, got %v", err)
	}
}
