package account

import (
	"github.com/Dexaran/mantis/codec"
	"github.com/Dexaran/mantis/rlpval"
)

// Codec converts accounts to and from the 4-element RLP list
// [nonce, balance, storageRoot, codeHash].
type Codec struct{}

var _ codec.Codec[Account] = Codec{}

// Encode packs the account fields in wire order.
func (Codec) Encode(a Account) rlpval.Value {
	return rlpval.List{
		codec.UintValue(a.Nonce),
		codec.UintValue(a.Balance),
		rlpval.Bytes(a.StorageRoot.Bytes()),
		rlpval.Bytes(a.CodeHash.Bytes()),
	}
}

// EncodeToBytes returns the account's full RLP encoding.
func EncodeToBytes(a Account) []byte {
	return rlpval.EncodeToBytes(Codec{}.Encode(a))
}
