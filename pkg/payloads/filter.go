package payloads

// Filter is a log-filter descriptor for eth_newFilter, eth_getLogs and
// eth_getFilterLogs. Every field is optional; absent fields are omitted
// from the serialized object rather than sent as null.
//
// Topics are order dependent: position i matches the i-th indexed event
// argument. A nil entry at a position is a wildcard, a multi-element
// entry matches any of its values.
type Filter struct {
	FromBlock *BlockNumberOrTag `json:"fromBlock,omitempty"`
	ToBlock   *BlockNumberOrTag `json:"toBlock,omitempty"`
	Addresses []Address         `json:"address,omitempty"`
	Topics    [][]HexString32   `json:"topics,omitempty"`
	BlockHash *HexString32      `json:"blockHash,omitempty"`
}
