package log

import (
	"github.com/Dexaran/mantis/codec"
	"github.com/Dexaran/mantis/rlpval"
)

// Codec converts logs to and from the 3-element RLP list
// [address, topics, data].
type Codec struct{}

var _ codec.Codec[Log] = Codec{}

// Encode packs the log fields in wire order.
func (Codec) Encode(l Log) rlpval.Value {
	topics := make(rlpval.List, len(l.Topics))
	for i, topic := range l.Topics {
		topics[i] = rlpval.Bytes(topic.Bytes())
	}
	return rlpval.List{
		rlpval.Bytes(l.Address.Bytes()),
		topics,
		rlpval.Bytes(l.Data),
	}
}
