package account

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/Dexaran/mantis/codec"
	"github.com/Dexaran/mantis/rlpval"
)

// Decode unpacks an account, checking every field position: 4-element list,
// canonical integers, 32-byte hashes.
func (Codec) Decode(v rlpval.Value) (Account, error) {
	items, err := codec.FieldList(v, typeName)
	if err != nil {
		return Account{}, err
	}
	if len(items) != 4 {
		return Account{}, codec.Errorf(typeName, "expected 4 fields, got %d", len(items))
	}
	nonce, err := codec.Uint(items[0], typeName)
	if err != nil {
		return Account{}, err
	}
	balance, err := codec.Uint(items[1], typeName)
	if err != nil {
		return Account{}, err
	}
	storageRoot, err := codec.FixedBytes(items[2], typeName, common.HashLength)
	if err != nil {
		return Account{}, err
	}
	codeHash, err := codec.FixedBytes(items[3], typeName, common.HashLength)
	if err != nil {
		return Account{}, err
	}
	return Account{
		Nonce:       nonce,
		Balance:     balance,
		StorageRoot: common.BytesToHash(storageRoot),
		CodeHash:    common.BytesToHash(codeHash),
	}, nil
}

// DecodeBytes raw-decodes data and then decodes the account from it.
func DecodeBytes(data []byte) (Account, error) {
	v, err := rlpval.DecodeBytes(data)
	if err != nil {
		return Account{}, err
	}
	return Codec{}.Decode(v)
}
