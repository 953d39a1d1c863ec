package rct

import (
	"github.com/Dexaran/mantis/codec"
	"github.com/Dexaran/mantis/log"
	"github.com/Dexaran/mantis/rlpval"
)

// Codec converts receipts to and from the 4-element RLP list
// [postTxState, cumulativeGasUsed, bloom, logs]. The log codec is held by
// value and applied to each element of the nested logs list.
type Codec struct {
	Logs log.Codec
}

var _ codec.Codec[Receipt] = Codec{}

// Encode packs the receipt fields in wire order.
func (c Codec) Encode(r Receipt) rlpval.Value {
	logs := make(rlpval.List, len(r.Logs))
	for i, l := range r.Logs {
		logs[i] = c.Logs.Encode(l)
	}
	return rlpval.List{
		rlpval.Bytes(r.PostTxState),
		codec.UintValue(r.CumulativeGasUsed),
		rlpval.Bytes(r.Bloom),
		logs,
	}
}
