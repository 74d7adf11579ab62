package payloads

import "encoding/json"

// BlockTag is a symbolic pointer to a well-known chain position.
type BlockTag string

const (
	Latest   BlockTag = "latest"
	Earliest BlockTag = "earliest"
	Pending  BlockTag = "pending"
)

/*
BlockNumberOrTag is a tagged union: a block is addressed either by a
concrete hex-encoded height or by one of the fixed symbolic tags. Only
one variant is ever set; the constructors below are the only way to
build a value, so validation is a match over which variant is present
instead of a structural guess.
*/
type BlockNumberOrTag struct {
	number Uint
	tag    BlockTag
}

// BlockNumber addresses a block by its hex-encoded height.
func BlockNumber(number Uint) BlockNumberOrTag {
	return BlockNumberOrTag{number: number}
}

// BlockByTag addresses a block by a symbolic tag.
func BlockByTag(tag BlockTag) BlockNumberOrTag {
	return BlockNumberOrTag{tag: tag}
}

// LatestBlock is the most frequently used variant, prebuilt.
var LatestBlock = BlockByTag(Latest)

// Number returns the numeric variant and whether it is the active one.
func (b BlockNumberOrTag) Number() (Uint, bool) {
	return b.number, b.number != ""
}

// Tag returns the symbolic variant and whether it is the active one.
func (b BlockNumberOrTag) Tag() (BlockTag, bool) {
	return b.tag, b.tag != ""
}

func (b BlockNumberOrTag) String() string {
	if b.number != "" {
		return string(b.number)
	}
	return string(b.tag)
}

// MarshalJSON emits the active variant as a bare JSON string, which is
// what the positional parameter slot expects.
func (b BlockNumberOrTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}
