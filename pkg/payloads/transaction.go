package payloads

// AccessListEntry is one EIP-2930 access list item.
type AccessListEntry struct {
	Address     Address       `json:"address"`
	StorageKeys []HexString32 `json:"storageKeys"`
}

// TransactionWithSender is the transaction descriptor for operations
// the node signs or submits on behalf of an unlocked account
// (eth_sendTransaction, eth_signTransaction). From is the only
// mandatory field; the node fills in gas, nonce and fee fields that are
// left empty.
type TransactionWithSender struct {
	From                 Address           `json:"from"`
	To                   *Address          `json:"to,omitempty"`
	Gas                  Uint              `json:"gas,omitempty"`
	GasPrice             Uint              `json:"gasPrice,omitempty"`
	MaxFeePerGas         Uint              `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas Uint              `json:"maxPriorityFeePerGas,omitempty"`
	Value                Uint256           `json:"value,omitempty"`
	Input                HexBytes          `json:"input,omitempty"`
	Nonce                Uint              `json:"nonce,omitempty"`
	Type                 Uint              `json:"type,omitempty"`
	ChainID              Uint              `json:"chainId,omitempty"`
	AccessList           []AccessListEntry `json:"accessList,omitempty"`
}

// TransactionCall is the sparse transaction descriptor used for
// read-only simulation (eth_call, eth_estimateGas). Every field is
// optional, including the sender.
type TransactionCall struct {
	From                 *Address          `json:"from,omitempty"`
	To                   *Address          `json:"to,omitempty"`
	Gas                  Uint              `json:"gas,omitempty"`
	GasPrice             Uint              `json:"gasPrice,omitempty"`
	MaxFeePerGas         Uint              `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas Uint              `json:"maxPriorityFeePerGas,omitempty"`
	Value                Uint256           `json:"value,omitempty"`
	Input                HexBytes          `json:"input,omitempty"`
	Type                 Uint              `json:"type,omitempty"`
	AccessList           []AccessListEntry `json:"accessList,omitempty"`
}
