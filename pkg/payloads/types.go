package payloads

// Wire-format value types of the Ethereum JSON-RPC interface. These are
// plain hex-encoded strings with a 0x prefix; the validation package
// checks the format, nothing here carries behavior beyond marshaling.

// Address is a 20 byte account address, 0x-prefixed, fixed length.
type Address string

func (a Address) String() string {
	return string(a)
}

// HexString32 is a fixed-length 32 byte hex string. Used for block and
// transaction hashes, storage keys, seed hashes and difficulty targets.
type HexString32 string

func (h HexString32) String() string {
	return string(h)
}

// HexString8 is a fixed-length 8 byte hex string. Used for proof-of-work
// nonces.
type HexString8 string

func (h HexString8) String() string {
	return string(h)
}

// HexBytes is a variable-length hex string: signed messages, raw
// transactions, contract bytecode.
type HexBytes string

func (h HexBytes) String() string {
	return string(h)
}

// Uint is an unsigned integer encoded as a hex quantity, e.g. "0x5".
type Uint string

// Uint256 is a 256 bit unsigned integer encoded as a hex quantity.
type Uint256 string
