package log

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/Dexaran/mantis/codec"
	"github.com/Dexaran/mantis/rlpval"
)

// Decode unpacks a log, checking the 3-element arity, the 20-byte address
// and the 32-byte length of every topic.
func (Codec) Decode(v rlpval.Value) (Log, error) {
	items, err := codec.FieldList(v, typeName)
	if err != nil {
		return Log{}, err
	}
	if len(items) != 3 {
		return Log{}, codec.Errorf(typeName, "expected 3 fields, got %d", len(items))
	}
	addr, err := codec.FixedBytes(items[0], typeName, common.AddressLength)
	if err != nil {
		return Log{}, err
	}
	topicItems, err := codec.FieldList(items[1], typeName)
	if err != nil {
		return Log{}, err
	}
	topics := make([]common.Hash, len(topicItems))
	for i, item := range topicItems {
		topic, err := codec.FixedBytes(item, typeName, common.HashLength)
		if err != nil {
			return Log{}, err
		}
		topics[i] = common.BytesToHash(topic)
	}
	data, err := codec.FieldBytes(items[2], typeName)
	if err != nil {
		return Log{}, err
	}
	return Log{
		Address: common.BytesToAddress(addr),
		Topics:  topics,
		Data:    data,
	}, nil
}
