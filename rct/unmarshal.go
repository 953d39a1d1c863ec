package rct

import (
	"github.com/Dexaran/mantis/codec"
	"github.com/Dexaran/mantis/log"
	"github.com/Dexaran/mantis/rlpval"
)

// Decode unpacks a receipt, checking the 4-element arity and decoding each
// element of the nested logs list with the log codec.
func (c Codec) Decode(v rlpval.Value) (Receipt, error) {
	items, err := codec.FieldList(v, typeName)
	if err != nil {
		return Receipt{}, err
	}
	if len(items) != 4 {
		return Receipt{}, codec.Errorf(typeName, "expected 4 fields, got %d", len(items))
	}
	postTxState, err := codec.FieldBytes(items[0], typeName)
	if err != nil {
		return Receipt{}, err
	}
	gasUsed, err := codec.Uint(items[1], typeName)
	if err != nil {
		return Receipt{}, err
	}
	bloom, err := codec.FieldBytes(items[2], typeName)
	if err != nil {
		return Receipt{}, err
	}
	logItems, err := codec.FieldList(items[3], typeName)
	if err != nil {
		return Receipt{}, err
	}
	logs := make([]log.Log, len(logItems))
	for i, item := range logItems {
		l, err := c.Logs.Decode(item)
		if err != nil {
			return Receipt{}, err
		}
		logs[i] = l
	}
	return Receipt{
		PostTxState:       postTxState,
		CumulativeGasUsed: gasUsed,
		Bloom:             bloom,
		Logs:              logs,
	}, nil
}
