package rct

import (
	"math/big"

	"github.com/Dexaran/mantis/log"
)

// Receipt is a pre-Byzantium style transaction receipt: the post-transaction
// state root, the cumulative gas used in the block up to and including this
// transaction, the 2048-bit logs bloom filter, and the emitted logs in order.
type Receipt struct {
	PostTxState       []byte
	CumulativeGasUsed *big.Int
	Bloom             []byte
	Logs              []log.Log
}

const typeName = "Receipt"
