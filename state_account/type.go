package account

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Account is the state trie leaf payload. Nonce and balance are unbounded
// non-negative integers; the storage root and code hash are 32-byte keccak
// digests. Values are immutable once constructed.
type Account struct {
	Nonce       *big.Int
	Balance     *big.Int
	StorageRoot common.Hash
	CodeHash    common.Hash
}

const typeName = "Account"
