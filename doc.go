/*
Package mantis provides the wire codec layer for an Ethereum-style peer
protocol: the generic recursive RLP container and its raw framing (rlpval),
the compact hex-prefix path encoding (hexprefix), structural codecs for the
three Merkle Patricia trie node shapes (trie), the state account, receipt and
log value codecs (state_account, rct, log), and the eth/63 state-retrieval
message bodies GetNodeData, NodeData, GetReceipts and Receipts (eth63).

Every operation is a pure function over immutable inputs. Decoders never
panic on malformed input; each failure is classified either as a framing
violation (rlpval.ErrMalformed) or as a shape mismatch for the target type
(codec.DecodeError). Encoders are total for values that satisfy their
construction invariants.
*/
package mantis
