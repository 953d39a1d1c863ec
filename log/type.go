package log

import "github.com/ethereum/go-ethereum/common"

// Log is a single transaction log entry: the emitting contract address, the
// indexed 32-byte topics in emission order, and the opaque data payload.
type Log struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

const typeName = "Log"
